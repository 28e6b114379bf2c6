// Package output provides formatters for displaying throng CLI results.
//
// The package supports multiple output formats (table, JSON, YAML) and a
// unified interface for formatting both single data items and per-item run
// results.
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format a single data item
//	data := map[string]interface{}{"key": "value"}
//	formatter.Format(os.Stdout, data)
//
//	// Format per-item run results
//	results := []runner.Result{...}
//	formatter.FormatResults(os.Stdout, results)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and disabled for pipes
// and redirects or with WithNoColor(true). Items render cyan, successes
// green, failures red bold, durations blue.
package output
