package gen

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/gqlapi"
)

// Writer renders the page in every configured format with parallel
// execution and atomic file replacement.
type Writer struct {
	graph   *Graph
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks generation performance
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     int64 // nanoseconds
	WriteTime      int64 // nanoseconds
}

// NewWriter creates a new writer for g.
func NewWriter(g *Graph) *Writer {
	return &Writer{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns a snapshot of the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

// fileTask represents a single file generation task.
type fileTask struct {
	name   string // output file path
	format Format
}

// WriteAll renders and writes every configured format in parallel.
// The first failure cancels the formats that have not started yet.
func (w *Writer) WriteAll(ctx context.Context) error {
	if err := os.MkdirAll(w.graph.Target, 0o755); err != nil {
		return NewGenerationError(PhaseWrite, w.graph.Target, "create output directory", err)
	}

	var files []fileTask
	for _, f := range w.graph.formats() {
		files = append(files, fileTask{name: w.graph.OutputPath(f), format: f})
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}

	return eg.Wait()
}

// writeFile renders one format and replaces its output file atomically.
func (w *Writer) writeFile(f fileTask) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := w.render(&buf, f.format); err != nil {
		if IsGenerationError(err) {
			return err
		}
		return gqlapi.NewRenderError(string(f.format), f.name, err)
	}
	rendered := time.Now()

	if err := renameio.WriteFile(f.name, buf.Bytes(), 0o644); err != nil {
		return NewGenerationError(PhaseWrite, f.name, "write file", err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(buf.Len())
	w.metrics.RenderTime += rendered.Sub(start).Nanoseconds()
	w.metrics.WriteTime += time.Since(rendered).Nanoseconds()
	w.mu.Unlock()

	return nil
}

func (w *Writer) render(buf *bytes.Buffer, f Format) error {
	if f == FormatJSON {
		return writeJSON(buf, w.graph)
	}
	tmpl, err := w.graph.loadTemplate(f)
	if err != nil {
		return err
	}
	return tmpl.Execute(buf, w.graph)
}
