package pixmap

import "github.com/pkg/errors"

// Method selects the resampling kernel for Scale.
type Method int

const (
	Nearest Method = iota
	Bilinear
	Bicubic
)

// ErrUnsupportedMethod marks a resampling method this core doesn't
// implement. Bilinear and bicubic aren't implemented; rather than silently
// falling back to nearest (which would be a correctness trap for a caller
// who asked for smoother output) this returns a clear error.
var ErrUnsupportedMethod = errors.New("pixmap: unsupported scale method")

// Scale resizes p to newWidth x newHeight independently on each axis, in
// both directions (reduction and enlargement): each output pixel (x, y)
// samples the source at the normalized coordinate (x/newWidth,
// y/newHeight).
func (p *Pixmap) Scale(newWidth, newHeight int, method Method) (*Pixmap, error) {
	if newWidth <= 0 || newHeight <= 0 {
		return nil, errors.Errorf("pixmap: invalid target size %dx%d", newWidth, newHeight)
	}
	if method != Nearest {
		return nil, errors.Wrapf(ErrUnsupportedMethod, "pixmap: method %d", method)
	}

	out, err := New(newWidth, newHeight, p.NChannels, p.BitDepth)
	if err != nil {
		return nil, err
	}

	for oy := 0; oy < newHeight; oy++ {
		ny := float64(oy) / float64(newHeight)
		for ox := 0; ox < newWidth; ox++ {
			nx := float64(ox) / float64(newWidth)
			out.setAt(ox, oy, p.SampleNormalized(nx, ny))
		}
	}
	return out, nil
}
