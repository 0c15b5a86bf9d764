// Package datasets bundles small reference networks and loads edge
// list files, optionally snappy-compressed, described by YAML
// manifests.
package datasets

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/dd0wney/netsig/pkg/graph"
)

//go:embed karate.txt
var karateEdgeList []byte

// KarateClub returns Zachary's karate club network: 34 nodes, 78
// edges, the standard small benchmark for significance measures.
func KarateClub() *graph.Undirected {
	g, err := ReadEdgeList(bytes.NewReader(karateEdgeList))
	if err != nil {
		// The embedded list is fixed at build time.
		panic(fmt.Sprintf("datasets: embedded karate club is malformed: %v", err))
	}
	return g
}

// CompressedSuffix marks edge-list files stored with snappy block
// compression.
const CompressedSuffix = ".snappy"

// LoadEdgeList reads an edge-list file into a graph. Files ending in
// CompressedSuffix are snappy-decoded first.
func LoadEdgeList(path string) (*graph.Undirected, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	if strings.HasSuffix(path, CompressedSuffix) {
		decoded, err := snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		data = decoded
	}

	g, err := ReadEdgeList(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// ReadEdgeList parses whitespace-separated "u v" or "u v weight"
// lines. Blank lines and lines starting with '#' are skipped.
func ReadEdgeList(r io.Reader) (*graph.Undirected, error) {
	g := graph.NewUndirected()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 'u v' or 'u v weight', got %q", lineNo, line)
		}

		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node id %q: %w", lineNo, fields[0], err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node id %q: %w", lineNo, fields[1], err)
		}

		weight := graph.DefaultWeight
		if len(fields) == 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNo, fields[2], err)
			}
		}

		if err := g.AddWeightedEdge(graph.NodeID(u), graph.NodeID(v), weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	return g, nil
}

// WriteEdgeList writes g in the format ReadEdgeList parses. Weights
// are included only when they differ from the default.
func WriteEdgeList(w io.Writer, g *graph.Undirected) error {
	bw := bufio.NewWriter(w)
	for _, key := range g.EdgeKeys() {
		weight, _ := g.Weight(key.U, key.V)
		var err error
		if weight == graph.DefaultWeight {
			_, err = fmt.Fprintf(bw, "%d %d\n", key.U, key.V)
		} else {
			_, err = fmt.Fprintf(bw, "%d %d %g\n", key.U, key.V, weight)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
