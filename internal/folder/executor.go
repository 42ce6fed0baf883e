package folder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/averycrespi/foldtodef/pkg/types"
)

// Output formats for WriterExecutor
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	_ types.Executor = &WriterExecutor{}
	_ types.Executor = &Recorder{}
)

// WriterExecutor writes fold commands to an io.Writer, one per line
type WriterExecutor struct {
	w      io.Writer
	format string
	mu     sync.Mutex
}

// command is the JSON form of a single fold command
type command struct {
	Command string `json:"command"`
	URI     string `json:"uri"`
	Lines   []int  `json:"lines,omitempty"`
}

// NewWriterExecutor creates an executor writing in the given format
func NewWriterExecutor(w io.Writer, format string) (*WriterExecutor, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &WriterExecutor{w: w, format: format}, nil
}

func (e *WriterExecutor) UnfoldAll(ctx context.Context, uri string) error {
	return e.write(command{Command: "unfold-all", URI: uri})
}

func (e *WriterExecutor) Fold(ctx context.Context, uri string, lines []int) error {
	return e.write(command{Command: "fold", URI: uri, Lines: lines})
}

func (e *WriterExecutor) write(c command) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.format == FormatJSON {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to encode command: %w", err)
		}
		_, err = fmt.Fprintf(e.w, "%s\n", data)
		return err
	}

	line := c.Command + " " + c.URI
	if len(c.Lines) > 0 {
		parts := make([]string, len(c.Lines))
		for i, l := range c.Lines {
			parts[i] = strconv.Itoa(l)
		}
		line += " " + strings.Join(parts, ",")
	}
	_, err := fmt.Fprintln(e.w, line)
	return err
}

// Recorder remembers the last line set folded per document
type Recorder struct {
	mu      sync.RWMutex
	applied map[string][]int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{applied: make(map[string][]int)}
}

func (r *Recorder) UnfoldAll(ctx context.Context, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.applied, uri)
	return nil
}

func (r *Recorder) Fold(ctx context.Context, uri string, lines []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := append(slices.Clone(r.applied[uri]), lines...)
	slices.Sort(merged)
	r.applied[uri] = slices.Compact(merged)
	return nil
}

// Applied returns the folded lines for uri and whether any are recorded
func (r *Recorder) Applied(uri string) ([]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines, ok := r.applied[uri]
	if !ok {
		return nil, false
	}
	return slices.Clone(lines), true
}
