// Package pdf synthesizes single-page PDF documents from replayed command
// buffers: a content stream writer, a render backend emitting into it, and a
// document assembler producing the final byte stream.
package pdf

import (
	"bytes"
	"strconv"
	"strings"
)

// circleK is the cubic Bezier control distance approximating a quarter
// circle.
const circleK = 0.5522847498

// ContentWriter builds a page content stream operator by operator. All
// coordinates are page-space points with the origin at the bottom-left.
type ContentWriter struct {
	buf bytes.Buffer
}

// NewContentWriter returns an empty content stream.
func NewContentWriter() *ContentWriter {
	return &ContentWriter{}
}

// num formats an operand with at most three decimals, trailing zeros
// stripped.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (c *ContentWriter) op(operator string, operands ...float64) {
	for _, v := range operands {
		c.buf.WriteString(num(v))
		c.buf.WriteByte(' ')
	}
	c.buf.WriteString(operator)
	c.buf.WriteByte('\n')
}

// Save pushes the graphics state (q).
func (c *ContentWriter) Save() { c.op("q") }

// Restore pops the graphics state (Q).
func (c *ContentWriter) Restore() { c.op("Q") }

// Concat appends a transformation matrix (cm).
func (c *ContentWriter) Concat(a, b, cc, d, tx, ty float64) {
	c.op("cm", a, b, cc, d, tx, ty)
}

// SetLineWidth sets the stroke width (w).
func (c *ContentWriter) SetLineWidth(width float64) { c.op("w", width) }

// SetStrokeColor sets the stroking color in device RGB (RG).
func (c *ContentWriter) SetStrokeColor(r, g, b float64) { c.op("RG", r, g, b) }

// SetFillColor sets the non-stroking color in device RGB (rg).
func (c *ContentWriter) SetFillColor(r, g, b float64) { c.op("rg", r, g, b) }

func (c *ContentWriter) MoveTo(x, y float64) { c.op("m", x, y) }
func (c *ContentWriter) LineTo(x, y float64) { c.op("l", x, y) }

// CurveTo appends a cubic Bezier segment (c).
func (c *ContentWriter) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.op("c", x1, y1, x2, y2, x3, y3)
}

// ClosePath closes the current subpath (h).
func (c *ContentWriter) ClosePath() { c.op("h") }

// Stroke paints the current path (S).
func (c *ContentWriter) Stroke() { c.op("S") }

// Fill fills the current path with the nonzero winding rule (f).
func (c *ContentWriter) Fill() { c.op("f") }

// FillStroke fills then strokes the current path (B).
func (c *ContentWriter) FillStroke() { c.op("B") }

// Circle appends a full circle as four cubic Bezier quarter arcs.
func (c *ContentWriter) Circle(cx, cy, r float64) {
	k := circleK * r
	c.MoveTo(cx+r, cy)
	c.CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.CurveTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.CurveTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.CurveTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}

// BeginText starts a text object with the builtin font at the given size.
func (c *ContentWriter) BeginText(size float64) {
	c.op("BT")
	c.buf.WriteString("/F1 " + num(size) + " Tf\n")
}

// TextPosition moves the text origin (Td).
func (c *ContentWriter) TextPosition(x, y float64) { c.op("Td", x, y) }

// ShowText shows a string (Tj) with parentheses and backslashes escaped.
func (c *ContentWriter) ShowText(s string) {
	c.buf.WriteByte('(')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '(', ')', '\\':
			c.buf.WriteByte('\\')
			c.buf.WriteByte(b)
		default:
			c.buf.WriteByte(b)
		}
	}
	c.buf.WriteString(") Tj\n")
}

// EndText closes the text object (ET).
func (c *ContentWriter) EndText() { c.op("ET") }

// Bytes returns the accumulated content stream.
func (c *ContentWriter) Bytes() []byte { return c.buf.Bytes() }

// Len reports the accumulated stream length in bytes.
func (c *ContentWriter) Len() int { return c.buf.Len() }
