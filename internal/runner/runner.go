// Package runner executes a shell command once per input item through the
// throng engine. It is the CLI's unit of work: a thin external collaborator
// that only ever calls the public facade.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/nkamat/throng"
)

// Placeholder is replaced with the current item in the command template
const Placeholder = "{}"

// Options configures a runner invocation
type Options struct {
	// Limit is the concurrency limit (non-positive uses the configured default)
	Limit int

	// Timeout bounds each item's command (zero means no per-item timeout)
	Timeout time.Duration

	// Shell is the shell used to interpret the command (default "sh")
	Shell string
}

// Result is the outcome of running the command for one item
type Result struct {
	// Index is the item's position in the input
	Index int `json:"index" yaml:"index"`

	// Item is the input line the command ran against
	Item string `json:"item" yaml:"item"`

	// Output is the command's combined stdout/stderr, trimmed
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Err is the command failure, if any
	Err error `json:"-" yaml:"-"`

	// Duration is how long the command ran
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Run executes command once per item under the engine's concurrency limit.
//
// Per-item failures are captured in the corresponding Result rather than
// failing the whole run, so one bad item never hides the others' output.
// The returned slice is in input order.
func Run(ctx context.Context, items []string, command string, opts Options, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	shell := opts.Shell
	if shell == "" {
		shell = "sh"
	}

	logger.Debug("running command per item",
		"items", len(items),
		"limit", opts.Limit,
		"command", command)

	type job struct {
		index int
		item  string
	}
	jobs := make([]job, len(items))
	for i, item := range items {
		jobs[i] = job{index: i, item: item}
	}

	return throng.Map(ctx, throng.New(jobs, throng.WithLimit(opts.Limit), throng.WithLogger(logger)),
		func(ctx context.Context, j job) (Result, error) {
			res := execute(ctx, j.item, command, shell, opts.Timeout)
			res.Index = j.index
			if res.Err != nil {
				logger.Warn("item command failed", "item", j.item, "error", res.Err, "duration", res.Duration)
			} else {
				logger.Debug("item command succeeded", "item", j.item, "duration", res.Duration)
			}
			return res, nil
		})
}

// Filter returns, in input order, the items whose command exits
// successfully. The command runs concurrently for all items; the combine
// step is sequential.
func Filter(ctx context.Context, items []string, command string, opts Options, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	shell := opts.Shell
	if shell == "" {
		shell = "sh"
	}

	it := throng.New(items, throng.WithLimit(opts.Limit), throng.WithLogger(logger))
	return it.Select(ctx, func(ctx context.Context, item string) (bool, error) {
		res := execute(ctx, item, command, shell, opts.Timeout)
		return res.Err == nil, nil
	})
}

// Find returns the first item whose command exits successfully, in
// completion order: whichever match finishes fastest wins and the
// remaining commands are cancelled.
func Find(ctx context.Context, items []string, command string, opts Options, logger *slog.Logger) (string, bool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	shell := opts.Shell
	if shell == "" {
		shell = "sh"
	}

	it := throng.New(items, throng.WithLimit(opts.Limit), throng.WithLogger(logger))
	return it.Find(ctx, func(ctx context.Context, item string) (bool, error) {
		res := execute(ctx, item, command, shell, opts.Timeout)
		return res.Err == nil, nil
	})
}

// execute runs the templated command for a single item
func execute(ctx context.Context, item, command, shell string, timeout time.Duration) Result {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, shell, "-c", Expand(command, item))
	out, err := cmd.CombinedOutput()

	return Result{
		Item:     item,
		Output:   strings.TrimRight(string(out), "\n"),
		Err:      err,
		Duration: time.Since(start),
	}
}

// Expand substitutes the item into the command template. A template
// without the placeholder gets the item appended as a final argument.
func Expand(command, item string) string {
	if strings.Contains(command, Placeholder) {
		return strings.ReplaceAll(command, Placeholder, item)
	}
	return fmt.Sprintf("%s %s", command, item)
}

// ReadItems reads newline-separated items from r, dropping blank lines.
func ReadItems(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return items, nil
}
