// Package significance holds the result envelopes the algorithms
// return: score maps annotated with the method that produced them,
// plus ranking, export and matrix views.
package significance

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// envelope carries the metadata every significance result shares.
type envelope struct {
	Method string         `json:"algorithm"`
	Params map[string]any `json:"params,omitempty"`
}

// describeStats renders the summary line Describe implementations share.
func describeStats(method string, count int, minV, maxV, mean float64, precision int, params map[string]any) string {
	if precision <= 0 {
		precision = 3
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d scores", method, count)
	if count > 0 {
		fmt.Fprintf(&b, ", min=%.*f max=%.*f mean=%.*f", precision, minV, precision, maxV, precision, mean)
	}
	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, params[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}

func summarize(values []float64) (minV, maxV, mean float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	minV, maxV = math.Inf(1), math.Inf(-1)
	total := 0.0
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		total += v
	}
	return minV, maxV, total / float64(len(values))
}

// writeJSONFile marshals payload to path, creating or truncating it.
func writeJSONFile(path string, payload any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, payload)
}

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
