// Package export turns a captured command buffer and a camera state into a
// written PDF file. Validation failures and generation errors come back as a
// structured Result instead of an error so UI callers can surface the message
// directly.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/observability"
	"github.com/plotkit/plotkit/pdf"
	"github.com/plotkit/plotkit/view"
)

// Options controls page geometry and stream encoding. Dimensions are points.
type Options struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Landscape  bool
	Compress   bool
}

// DefaultOptions is an A4 portrait page with a half-inch margin and a
// compressed content stream.
func DefaultOptions() Options {
	return Options{PageWidth: 595, PageHeight: 842, Margin: 36, Compress: true}
}

// pageSize resolves the landscape flag into effective dimensions.
func (o Options) pageSize() (float64, float64) {
	if o.Landscape && o.PageHeight > o.PageWidth {
		return o.PageHeight, o.PageWidth
	}
	return o.PageWidth, o.PageHeight
}

// Request is one export job. Buffer and View are moved in: the caller must
// not mutate them after handing the request over.
type Request struct {
	Buffer     *canvas.CommandBuffer
	Symbols    *canvas.SymbolSnapshot
	View       view.ViewState
	OutputPath string
	Options    Options
}

// Result reports export outcome with a user-facing message.
type Result struct {
	Success bool
	Message string
}

func fail(msg string) Result { return Result{Success: false, Message: msg} }

// Exporter synthesizes documents from requests. The zero value is usable;
// Log defaults to silence.
type Exporter struct {
	Log observability.Logger
}

// NewExporter returns an Exporter with silent diagnostics.
func NewExporter() *Exporter {
	return &Exporter{Log: observability.NopLogger{}}
}

func (e *Exporter) logger() observability.Logger {
	if e.Log == nil {
		return observability.NopLogger{}
	}
	return e.Log
}

// Export validates the request, synthesizes the document and writes it to
// the requested path. Validations run in a fixed order so the caller always
// sees the most fundamental problem first.
func (e *Exporter) Export(req Request) Result {
	log := e.logger()
	start := time.Now()

	if req.Buffer.Empty() {
		return fail("Nothing to export")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return fail("No output path specified")
	}
	if info, err := os.Stat(filepath.Dir(req.OutputPath)); err != nil || !info.IsDir() {
		return fail("Destination folder does not exist")
	}
	if !req.View.Valid() {
		return fail("Invalid viewport or zoom")
	}
	pageW, pageH := req.Options.pageSize()
	if pageW-2*req.Options.Margin <= 0 || pageH-2*req.Options.Margin <= 0 {
		return fail("Page size too small for margins")
	}
	mapping, err := view.BuildViewMapping(req.View, pageW, pageH, req.Options.Margin)
	if err != nil {
		return fail("Degenerate view bounds")
	}

	doc, genErr := e.generate(req, mapping, pageW, pageH)
	if genErr != nil {
		log.Error("document generation failed", observability.Error("err", genErr))
		return fail("Failed to generate document")
	}
	if err := os.WriteFile(req.OutputPath, doc, 0o644); err != nil {
		log.Error("write failed",
			observability.String("path", req.OutputPath), observability.Error("err", err))
		return fail("Failed to write output file")
	}

	log.Info("export complete",
		observability.String("path", req.OutputPath),
		observability.Int(observability.MetricCaptureCommands, req.Buffer.Len()),
		observability.Int(observability.MetricContentBytes, len(doc)),
		observability.Int64(observability.MetricExportTime, time.Since(start).Milliseconds()))
	return Result{Success: true}
}

// generate runs the content walk and document assembly under a recover so a
// malformed buffer cannot take the process down with it.
func (e *Exporter) generate(req Request, mapping view.RenderMapping, pageW, pageH float64) ([]byte, error) {
	return runGuarded(func() []byte {
		content := synthesize(req.Buffer, req.Symbols, mapping, e.logger())
		return pdf.AssemblePage(content, pageW, pageH, req.Options.Compress)
	})
}

// runGuarded runs one generation step, converting a panic into an error so
// nothing under the export boundary can terminate the process.
func runGuarded(fn func() []byte) (doc []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("panic during synthesis: %v", r)
		}
	}()
	return fn(), nil
}

// ExportAsync runs Export on its own goroutine and reports the result via
// done, which is invoked from that goroutine. The request's buffer must have
// been moved in; the capture side re-arms through a CaptureGate rather than
// waiting.
func (e *Exporter) ExportAsync(req Request, done func(Result)) {
	go func() {
		res := e.Export(req)
		if done != nil {
			done(res)
		}
	}()
}
