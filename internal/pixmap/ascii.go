package pixmap

import (
	"bufio"
	"math"
	"os"

	"github.com/pkg/errors"
)

// asciiGlyphs is the 10-glyph ramp, darkest to lightest.
const asciiGlyphs = " .:-=+*#%@"

// WriteASCII renders p as ASCII art into w: height rows of width characters
// each, newline-terminated, drawn only from asciiGlyphs. Luma computation
// branches on channel count:
//
//   - 3-channel: Rec.709 luma on normalized RGB, idx = round(luma*10)-1.
//   - 4-channel: luma = a/255 + 0.193, idx = 10-(round(luma*10)-1) — the
//     inversion undoes ToGrayscale's alpha-encodes-darkness convention.
func (p *Pixmap) WriteASCII(w *bufio.Writer) error {
	if p.NChannels != 3 && p.NChannels != 4 {
		return errors.Errorf("pixmap: to_ascii needs 3 or 4 channels, got %d", p.NChannels)
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			px := p.at(x, y)
			var idx int
			if p.NChannels == 3 {
				luma := Luma709(px.R, px.G, px.B)
				idx = int(math.Round(luma*10)) - 1
			} else {
				luma := float64(px.A)/255 + 0.193
				idx = 10 - (int(math.Round(luma*10)) - 1)
			}
			if idx < 0 {
				idx = 0
			} else if idx > 9 {
				idx = 9
			}
			if err := w.WriteByte(asciiGlyphs[idx]); err != nil {
				return errors.Wrap(err, "pixmap: write ascii glyph")
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "pixmap: write ascii newline")
		}
	}
	return w.Flush()
}

// ToASCII writes p's ASCII-art rendering to filename.
func (p *Pixmap) ToASCII(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "pixmap: create ascii output")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	return p.WriteASCII(w)
}
