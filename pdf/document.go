package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// Document accumulates numbered indirect objects and serializes them with a
// cross-reference table and trailer. Object numbers are assigned in Add
// order, starting at 1.
type Document struct {
	objects [][]byte
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends an indirect object body and returns its object number.
func (d *Document) Add(body string) int {
	d.objects = append(d.objects, []byte(body))
	return len(d.objects)
}

// AddStream appends a stream object. extra holds dictionary entries beyond
// Length and Filter, e.g. "/Type /XObject". With compress set the payload is
// deflated; if compression fails the stream is written raw, so the output is
// always well formed.
func (d *Document) AddStream(extra string, payload []byte, compress bool) int {
	data := payload
	filter := ""
	if compress {
		if deflated, err := deflate(payload); err == nil {
			data = deflated
			filter = "/Filter /FlateDecode"
		}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<</Length %d", len(data))
	if filter != "" {
		buf.WriteString(filter)
	}
	buf.WriteString(extra)
	buf.WriteString(">>\nstream\n")
	buf.Write(data)
	buf.WriteString("\nendstream")
	d.objects = append(d.objects, buf.Bytes())
	return len(d.objects)
}

// ObjectCount reports the number of indirect objects added so far.
func (d *Document) ObjectCount() int { return len(d.objects) }

func deflate(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Bytes serializes the document: header, body objects with recorded offsets,
// cross-reference table, trailer pointing at root, startxref and the EOF
// marker.
func (d *Document) Bytes(root int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xE2\xE3\xCF\xD3\n")

	offsets := make([]int, len(d.objects))
	for i, body := range d.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		buf.Write(body)
		buf.WriteString("\nendobj\n")
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(d.objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&buf, "trailer\n<</Size %d /Root %d 0 R>>\n", len(d.objects)+1, root)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefOffset)
	return buf.Bytes()
}

// AssemblePage builds a complete single-page document around a content
// stream. Object layout is fixed: 1 font, 2 content, 3 page, 4 pages tree,
// 5 catalog.
func AssemblePage(content []byte, width, height float64, compress bool) []byte {
	d := NewDocument()
	d.Add("<</Type /Font /Subtype /Type1 /BaseFont /Helvetica>>")
	d.AddStream("", content, compress)
	d.Add(fmt.Sprintf(
		"<</Type /Page /Parent 4 0 R /MediaBox [0 0 %s %s] /Resources <</Font <</F1 1 0 R>>>> /Contents 2 0 R>>",
		num(width), num(height)))
	d.Add("<</Type /Pages /Kids [3 0 R] /Count 1>>")
	root := d.Add("<</Type /Catalog /Pages 4 0 R>>")
	return d.Bytes(root)
}
