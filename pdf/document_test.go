package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func testContent() []byte {
	cw := NewContentWriter()
	cw.SetLineWidth(1)
	cw.MoveTo(36, 36)
	cw.LineTo(559, 806)
	cw.Stroke()
	return cw.Bytes()
}

func TestAssemblePageStructure(t *testing.T) {
	doc := AssemblePage(testContent(), 595, 842, false)

	if !bytes.HasPrefix(doc, []byte("%PDF-1.4\n")) {
		t.Fatalf("missing header, got %q", doc[:16])
	}
	// Binary comment line keeps transfer tools treating the file as binary.
	if doc[9] != '%' || doc[10] < 0x80 {
		t.Fatal("missing binary comment after header")
	}
	if !bytes.HasSuffix(doc, []byte("%%EOF\n")) {
		t.Fatal("missing EOF marker")
	}

	s := string(doc)
	for _, want := range []string{
		"/Type /Font /Subtype /Type1 /BaseFont /Helvetica",
		"/Type /Page /Parent 4 0 R /MediaBox [0 0 595 842]",
		"/Font <</F1 1 0 R>>",
		"/Contents 2 0 R",
		"/Type /Pages /Kids [3 0 R] /Count 1",
		"/Type /Catalog /Pages 4 0 R",
		"trailer\n<</Size 6 /Root 5 0 R>>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestXrefOffsetsMatchObjectPositions(t *testing.T) {
	doc := AssemblePage(testContent(), 595, 842, true)
	s := string(doc)

	xrefPos := strings.LastIndex(s, "\nxref\n")
	if xrefPos < 0 {
		t.Fatal("no xref table")
	}
	xrefPos++ // skip the newline preceding the table keyword

	// startxref points at the table itself.
	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindStringSubmatch(s)
	if m == nil {
		t.Fatal("no startxref")
	}
	if got, _ := strconv.Atoi(m[1]); got != xrefPos {
		t.Fatalf("startxref %d, xref actually at %d", got, xrefPos)
	}

	// Entry i+1 must hold the byte offset of "i 0 obj".
	entries := regexp.MustCompile(`(\d{10}) 00000 n `).FindAllStringSubmatch(s[xrefPos:], -1)
	if len(entries) != 5 {
		t.Fatalf("expected 5 in-use entries, got %d", len(entries))
	}
	for i, e := range entries {
		off, _ := strconv.Atoi(e[1])
		marker := fmt.Sprintf("%d 0 obj\n", i+1)
		if !strings.HasPrefix(s[off:], marker) {
			t.Errorf("xref entry %d points at %d, found %q", i+1, off, s[off:off+12])
		}
	}

	if !strings.Contains(s[xrefPos:], "0000000000 65535 f \n") {
		t.Fatal("missing free-list head entry")
	}
}

func TestStreamLengthMatchesPayload(t *testing.T) {
	content := testContent()

	for _, compress := range []bool{false, true} {
		doc := AssemblePage(content, 595, 842, compress)
		s := string(doc)

		streamStart := strings.Index(s, "stream\n") + len("stream\n")
		streamEnd := strings.Index(s, "\nendstream")
		if streamStart < 0 || streamEnd < 0 || streamEnd < streamStart {
			t.Fatalf("compress=%v: stream not found", compress)
		}
		payload := doc[streamStart:streamEnd]

		m := regexp.MustCompile(`/Length (\d+)`).FindStringSubmatch(s)
		if m == nil {
			t.Fatalf("compress=%v: no Length", compress)
		}
		length, _ := strconv.Atoi(m[1])
		if length != len(payload) {
			t.Fatalf("compress=%v: /Length %d, payload %d bytes", compress, length, len(payload))
		}

		if compress {
			if !strings.Contains(s, "/Filter /FlateDecode") {
				t.Fatal("compressed stream missing filter")
			}
			r, err := zlib.NewReader(bytes.NewReader(payload))
			if err != nil {
				t.Fatalf("zlib open: %v", err)
			}
			decoded, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("zlib read: %v", err)
			}
			if !bytes.Equal(decoded, content) {
				t.Fatal("decompressed stream differs from content")
			}
		} else {
			if strings.Contains(s, "/Filter") {
				t.Fatal("uncompressed stream has a filter")
			}
			if !bytes.Equal(payload, content) {
				t.Fatal("raw stream differs from content")
			}
		}
	}
}

func TestDocumentObjectNumbering(t *testing.T) {
	d := NewDocument()
	if n := d.Add("<</Type /Font>>"); n != 1 {
		t.Fatalf("first object numbered %d", n)
	}
	if n := d.AddStream("", []byte("q Q"), false); n != 2 {
		t.Fatalf("second object numbered %d", n)
	}
	if d.ObjectCount() != 2 {
		t.Fatalf("ObjectCount = %d", d.ObjectCount())
	}

	doc := string(d.Bytes(1))
	if !strings.Contains(doc, "1 0 obj\n<</Type /Font>>\nendobj\n") {
		t.Fatalf("object body mangled: %q", doc)
	}
	if !strings.Contains(doc, "/Root 1 0 R") {
		t.Fatal("trailer root wrong")
	}
}
