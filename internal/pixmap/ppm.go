package pixmap

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// WritePPM writes p as a binary PPM (P6): header "P6\n<width> <height>\n
// <maxval>\n" followed by width*height*3 raw RGB bytes, row-major.
// 4-channel sources are alpha-blended against bg; 3-channel sources are
// copied through unchanged.
func (p *Pixmap) WritePPM(w *bufio.Writer, bg [3]uint8) error {
	if p.NChannels != 3 && p.NChannels != 4 {
		return errors.Errorf("pixmap: to_ppm needs 3 or 4 channels, got %d", p.NChannels)
	}

	maxval := (1 << p.BitDepth) - 1
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", p.Width, p.Height, maxval); err != nil {
		return errors.Wrap(err, "pixmap: write ppm header")
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			px := p.at(x, y)
			var rgb [3]uint8
			if p.NChannels == 4 {
				rgb = BlendRgb(px, bg)
			} else {
				rgb = [3]uint8{px.R, px.G, px.B}
			}
			if _, err := w.Write(rgb[:]); err != nil {
				return errors.Wrap(err, "pixmap: write ppm body")
			}
		}
	}
	return w.Flush()
}

// ToPPM writes p's PPM rendering to filename.
func (p *Pixmap) ToPPM(filename string, bg [3]uint8) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "pixmap: create ppm output")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	return p.WritePPM(w, bg)
}
