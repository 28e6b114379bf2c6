package output

import (
	"encoding/json"
	"io"

	"github.com/nkamat/throng/internal/runner"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatResults outputs per-item run results as JSON
func (f *JSONFormatter) FormatResults(w io.Writer, results []runner.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resultMaps(results))
}

// resultMaps converts results to a serialization-friendly structure shared
// by the JSON and YAML formatters
func resultMaps(results []runner.Result) []map[string]interface{} {
	output := make([]map[string]interface{}, len(results))

	for i, result := range results {
		item := map[string]interface{}{
			"item":     result.Item,
			"index":    result.Index,
			"duration": result.Duration.String(),
		}

		if result.Err != nil {
			item["status"] = "failed"
			item["error"] = result.Err.Error()
		} else {
			item["status"] = "success"
			item["output"] = result.Output
		}

		output[i] = item
	}

	return output
}
