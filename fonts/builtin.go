// Package fonts provides text metrics for the document synthesizer: AFM
// widths for the builtin Helvetica face and loading plus shaping support for
// embedded TrueType faces.
package fonts

// helveticaWidths holds the Helvetica advance widths for the printable ASCII
// range, in 1/1000 em. Values are the standard Adobe AFM metrics, so label
// measurement matches what a conforming viewer renders for the builtin face.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, // space ! " # $ % & '
	333, 333, 389, 584, 278, 333, 278, 278, // ( ) * + , - . /
	556, 556, 556, 556, 556, 556, 556, 556, // 0-7
	556, 556, 278, 278, 584, 584, 584, 556, // 8 9 : ; < = > ?
	1015, 667, 667, 722, 722, 667, 611, 778, // @ A-G
	722, 278, 500, 667, 556, 833, 722, 778, // H-O
	667, 778, 722, 667, 611, 722, 667, 944, // P-W
	667, 667, 611, 278, 278, 278, 469, 556, // X Y Z [ \ ] ^ _
	333, 556, 556, 500, 556, 556, 278, 556, // ` a-g
	556, 222, 222, 500, 222, 833, 556, 556, // h-o
	556, 556, 333, 500, 278, 556, 500, 722, // p-w
	500, 500, 500, 334, 260, 334, 584, // x y z { | } ~
}

// helveticaDefaultWidth covers runes outside the AFM table.
const helveticaDefaultWidth = 556

// RuneWidthBuiltin returns the Helvetica advance of a single rune in
// 1/1000 em.
func RuneWidthBuiltin(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return helveticaWidths[r-0x20]
	}
	if r < 0x20 {
		return 0
	}
	return helveticaDefaultWidth
}

// MeasureBuiltin returns the advance width of text set in Helvetica at the
// given size, in the same units as size.
func MeasureBuiltin(text string, size float64) float64 {
	var units int
	for _, r := range text {
		units += RuneWidthBuiltin(r)
	}
	return float64(units) / 1000.0 * size
}
