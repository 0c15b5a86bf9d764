package algorithms

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/netsig/pkg/logging"
	"github.com/dd0wney/netsig/pkg/metrics"
)

// observe logs the start of a computation and returns the function
// that records its outcome. Every run gets a uuid so the start and
// finish lines of concurrent computations can be correlated. Extra
// fields carry per-algorithm context such as fan-out width.
func observe(algorithm string, nodes, edges int, fields ...logging.Field) func(err error) {
	runID := uuid.NewString()
	base := append([]logging.Field{
		logging.Algorithm(algorithm),
		logging.RunID(runID),
		logging.Nodes(nodes),
		logging.Edges(edges),
	}, fields...)
	logger := logging.With(base...)
	logger.Debug("computation started")

	metrics.Default().ObserveGraph(nodes, edges)
	start := time.Now()

	return func(err error) {
		elapsed := time.Since(start)
		metrics.Default().ObserveComputation(algorithm, err, elapsed)
		if err != nil {
			logger.Error("computation failed", logging.Error(err), logging.Latency(elapsed))
			return
		}
		logger.Debug("computation finished", logging.Latency(elapsed))
	}
}
