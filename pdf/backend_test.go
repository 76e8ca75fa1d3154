package pdf

import (
	"strings"
	"testing"

	"github.com/plotkit/plotkit/canvas"
	"github.com/plotkit/plotkit/render"
)

func TestBackendRegisteredAsPdf(t *testing.T) {
	b, err := render.New("pdf")
	if err != nil {
		t.Fatalf("New(pdf): %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("unexpected backend type %T", b)
	}
}

func TestBackendCombinedPaintUsesFillStroke(t *testing.T) {
	b := NewBackend()
	fill := canvas.Color{R: 1, A: 1}
	stroke := canvas.Stroke{Color: canvas.Color{A: 1}, Width: 2}
	b.DrawPolygon([]canvas.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, render.Paint{
		Stroke: &stroke,
		Fill:   &fill,
	})

	s := string(b.Content())
	if !strings.Contains(s, "h\nB\n") {
		t.Fatalf("expected closed path painted with B, got %q", s)
	}
	if strings.Contains(s, "\nf\n") || strings.Contains(s, "\nS\n") {
		t.Fatalf("combined paint should not paint twice: %q", s)
	}
	// Both color spaces set before the path.
	if !strings.Contains(s, " rg\n") || !strings.Contains(s, " RG\n") {
		t.Fatalf("missing color setup: %q", s)
	}
}

func TestBackendSingleAspectPaints(t *testing.T) {
	b := NewBackend()
	stroke := canvas.Stroke{Color: canvas.Color{A: 1}, Width: 1}
	b.DrawCircle(50, 50, 10, render.Paint{Stroke: &stroke})
	if !strings.Contains(string(b.Content()), "S\n") {
		t.Fatalf("stroke-only circle must stroke: %q", b.Content())
	}

	b = NewBackend()
	fill := canvas.Color{B: 1, A: 1}
	b.DrawCircle(50, 50, 10, render.Paint{Fill: &fill})
	if !strings.Contains(string(b.Content()), "f\n") {
		t.Fatalf("fill-only circle must fill: %q", b.Content())
	}

	b = NewBackend()
	b.DrawCircle(50, 50, 10, render.Paint{})
	if len(b.Content()) != 0 {
		t.Fatalf("empty paint should emit nothing, got %q", b.Content())
	}
}

func TestBackendTextAnchors(t *testing.T) {
	style := canvas.TextStyle{Size: 10, Color: canvas.Color{A: 1}}

	at := func(anchor canvas.TextAnchor) string {
		b := NewBackend()
		style.Anchor = anchor
		b.DrawText(100, 50, "AB", style)
		return string(b.Content())
	}

	// "AB" in Helvetica at size 10 advances 13.34pt.
	if s := at(canvas.AnchorStart); !strings.Contains(s, "100 50 Td") {
		t.Fatalf("start anchor moved the origin: %q", s)
	}
	if s := at(canvas.AnchorMiddle); !strings.Contains(s, "93.33 50 Td") {
		t.Fatalf("middle anchor should shift left by half the advance: %q", s)
	}
	if s := at(canvas.AnchorEnd); !strings.Contains(s, "86.66 50 Td") {
		t.Fatalf("end anchor should shift left by the advance: %q", s)
	}
}

func TestBackendSkipsDegenerateInput(t *testing.T) {
	b := NewBackend()
	stroke := canvas.Stroke{Width: 1}
	b.DrawPolyline([]canvas.Point{{X: 1, Y: 1}}, stroke)
	b.DrawPolygon([]canvas.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, render.Paint{Stroke: &stroke})
	b.DrawCircle(0, 0, -1, render.Paint{Stroke: &stroke})
	b.DrawText(0, 0, "", canvas.TextStyle{Size: 10})
	if len(b.Content()) != 0 {
		t.Fatalf("degenerate input should emit nothing, got %q", b.Content())
	}
}
