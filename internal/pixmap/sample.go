package pixmap

import (
	"math"

	"imcpng.dev/internal/imclog"
)

// SampleNormalized samples p at normalized coordinates (x, y). x and y are
// clamped to [0,1] with a warning (rather than an error) on out-of-range
// input, then mapped to the nearest pixel.
//
// Clamping happens before rounding, so SampleNormalized(p, clamp(x,0,1),
// clamp(y,0,1)) == SampleNormalized(p, x, y) for any x, y: the clamp
// inside this function is idempotent with any clamp the caller already
// applied.
func (p *Pixmap) SampleNormalized(x, y float64) Rgba {
	cx := Clamp(x, 0, 1)
	cy := Clamp(y, 0, 1)
	if cx != x || cy != y {
		imclog.Default.Warn("pixmap: sample_normalized argument out of [0,1], clamped")
	}

	px := int(math.Round(cx * float64(p.Width)))
	py := int(math.Round(cy * float64(p.Height)))
	if px >= p.Width {
		px = p.Width - 1
	}
	if py >= p.Height {
		py = p.Height - 1
	}
	return p.at(px, py)
}

// SampleIndexed samples p at integer pixel coordinates, clamped into range
// with a warning on out-of-range input.
func (p *Pixmap) SampleIndexed(x, y int) Rgba {
	cx, cy := x, y
	if cx < 0 {
		cx = 0
	} else if cx >= p.Width {
		cx = p.Width - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= p.Height {
		cy = p.Height - 1
	}
	if cx != x || cy != y {
		imclog.Default.Warn("pixmap: sample_indexed argument out of range, clamped")
	}
	return p.at(cx, cy)
}
