package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for the names the algorithms log with

// Algorithm names the significance method producing the log line.
func Algorithm(name string) Field {
	return String("algorithm", name)
}

// RunID tags all lines of one computation run.
func RunID(id string) Field {
	return String("run_id", id)
}

// Nodes records the node count of the input graph.
func Nodes(n int) Field {
	return Int("nodes", n)
}

// Edges records the edge count of the input graph.
func Edges(n int) Field {
	return Int("edges", n)
}

// Sources records how many source-node passes a run performs.
func Sources(n int) Field {
	return Int("sources", n)
}

// Workers records the fan-out width of a parallel run.
func Workers(n int) Field {
	return Int("workers", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
