package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/observability"
	"github.com/plotkit/plotkit/pdf"
	"github.com/plotkit/plotkit/render"
	"github.com/plotkit/plotkit/view"
)

// Placement positions one captured buffer inside a page layout. The target
// rectangle is in page points; Margin applies inside it.
type Placement struct {
	Buffer  *canvas.CommandBuffer
	Symbols *canvas.SymbolSnapshot
	View    view.ViewState

	X, Y          float64
	Width, Height float64
	Margin        float64
}

// ExportLayout renders several captured buffers onto one page, each fitted
// to its placement rectangle, and writes the combined document. Unlike the
// single-buffer path this drives the renderer once per placement and
// concatenates the content stream fragments, each wrapped in its own
// graphics state.
func (e *Exporter) ExportLayout(placements []Placement, opts Options, outputPath string) Result {
	log := e.logger()

	populated := 0
	for _, p := range placements {
		if !p.Buffer.Empty() {
			populated++
		}
	}
	if populated == 0 {
		return fail("Nothing to export")
	}
	if strings.TrimSpace(outputPath) == "" {
		return fail("No output path specified")
	}
	if info, err := os.Stat(filepath.Dir(outputPath)); err != nil || !info.IsDir() {
		return fail("Destination folder does not exist")
	}
	pageW, pageH := opts.pageSize()
	if pageW <= 0 || pageH <= 0 {
		return fail("Invalid page size")
	}

	// Validate every placement and fix its page-space mapping before any
	// rendering starts, so a bad placement cannot leave partial output.
	planned := make([]placedMapping, 0, populated)
	for _, p := range placements {
		if p.Buffer.Empty() {
			continue
		}
		if !p.View.Valid() {
			return fail("Invalid viewport or zoom")
		}
		if p.Width-2*p.Margin <= 0 || p.Height-2*p.Margin <= 0 {
			return fail("Page size too small for margins")
		}
		mapping, err := view.BuildViewMapping(p.View, p.Width, p.Height, p.Margin)
		if err != nil {
			return fail("Degenerate view bounds")
		}
		// Shift the fitted mapping from placement-local to page coordinates.
		mapping.OffsetX += p.X
		mapping.OffsetY += p.Y
		planned = append(planned, placedMapping{placement: p, mapping: mapping})
	}

	doc, genErr := e.generateLayout(planned, pageW, pageH, opts.Compress)
	if genErr != nil {
		log.Error("document generation failed", observability.Error("err", genErr))
		return fail("Failed to generate document")
	}
	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		log.Error("write failed",
			observability.String("path", outputPath), observability.Error("err", err))
		return fail("Failed to write output file")
	}
	log.Info("layout export complete",
		observability.String("path", outputPath),
		observability.Int("placements", populated),
		observability.Int(observability.MetricContentBytes, len(doc)))
	return Result{Success: true}
}

type placedMapping struct {
	placement Placement
	mapping   view.RenderMapping
}

// generateLayout renders the planned placements and assembles the page under
// the same recover boundary as the single-buffer path.
func (e *Exporter) generateLayout(planned []placedMapping, pageW, pageH float64, compress bool) ([]byte, error) {
	return runGuarded(func() []byte {
		var content bytes.Buffer
		renderer := &render.Renderer{Log: e.logger(), MaxSymbolDepth: render.DefaultMaxSymbolDepth}
		for _, pm := range planned {
			backend := pdf.NewBackend()
			renderer.Render(pm.placement.Buffer, pm.placement.Symbols, pm.mapping, backend)
			content.WriteString("q\n")
			content.Write(backend.Content())
			content.WriteString("Q\n")
		}
		return pdf.AssemblePage(content.Bytes(), pageW, pageH, compress)
	})
}
