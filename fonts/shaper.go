package fonts

import (
	"bytes"
	"unicode"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is a single positioned glyph produced by shaping.
type ShapedGlyph struct {
	ID       int
	Cluster  int
	XAdvance float64 // 1/1000 em
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// ShapeText shapes text with the embedded font program and returns the
// positioned glyphs. Shaping runs at 1000 units per em so advances come out
// in the same 1/1000 em scale as GlyphWidths.
func ShapeText(text string, f *Font) ([]ShapedGlyph, error) {
	if f == nil || len(f.Data) == 0 || text == "" {
		return nil, nil
	}

	face, err := gofont.ParseTTF(bytes.NewReader(f.Data))
	if err != nil {
		return nil, err
	}

	shaper := &shaping.HarfbuzzShaper{}
	runes := []rune(text)
	script := detectScript(runes)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: scriptDirection(script),
		Face:      face,
		Size:      fixed.Int26_6(1000 * 64),
		Script:    script,
		Language:  language.DefaultLanguage(),
	}
	output := shaper.Shape(input)

	var result []ShapedGlyph
	for _, g := range output.Glyphs {
		result = append(result, ShapedGlyph{
			ID:       int(g.GlyphID),
			Cluster:  int(g.ClusterIndex),
			XAdvance: float64(g.XAdvance) / 64.0,
			YAdvance: float64(g.YAdvance) / 64.0,
			XOffset:  float64(g.XOffset) / 64.0,
			YOffset:  float64(g.YOffset) / 64.0,
		})
	}
	return result, nil
}

// Measure returns the shaped advance width of text at the given size, in the
// same units as size.
func (f *Font) Measure(text string, size float64) (float64, error) {
	glyphs, err := ShapeText(text, f)
	if err != nil {
		return 0, err
	}
	var units float64
	for _, g := range glyphs {
		units += g.XAdvance
	}
	return units / 1000.0 * size, nil
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func detectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	bestScript := language.Latin

	for _, r := range runes {
		script := scriptFromRune(r)
		if script == language.Unknown {
			continue
		}
		counts[script]++
		if counts[script] > maxCount {
			maxCount = counts[script]
			bestScript = script
		}
	}
	return bestScript
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Han, r):
		return language.Han
	default:
		return language.Unknown
	}
}
