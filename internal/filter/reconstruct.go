package filter

import (
	"github.com/pkg/errors"
)

// Reconstruct reverses the filter on every scanline of inflated, which must
// be exactly (scanlineBytes+1)*height bytes: one filter-type byte followed
// by scanlineBytes of filtered data, per row. It returns a freshly allocated
// buffer of scanlineBytes*height unfiltered pixel bytes, row-major — ready
// to become a Pixmap's data.
//
// The "a"/"c" neighbor samples used by Sub/Average/Paeth always come from
// the already-reconstructed current/previous row, never the filtered
// input; that's enforced here by reconstructing directly into the output
// buffer row by row and handing ReverseScanline a view of the *previous
// output row* as prev, not a view into the still-filtered input.
func Reconstruct(inflated []byte, scanlineBytes, height, bpp int) ([]byte, error) {
	wantLen := (scanlineBytes + 1) * height
	if len(inflated) != wantLen {
		return nil, errors.Errorf("filter: inflated stream is %d bytes, want %d", len(inflated), wantLen)
	}

	out := make([]byte, scanlineBytes*height)
	prev := make([]byte, scanlineBytes) // zeros: row 0's "previous" row

	for y := 0; y < height; y++ {
		rowStart := y * (scanlineBytes + 1)
		ft := Type(inflated[rowStart])
		row := out[y*scanlineBytes : (y+1)*scanlineBytes]
		copy(row, inflated[rowStart+1:rowStart+1+scanlineBytes])

		if err := ReverseScanline(ft, row, prev, bpp); err != nil {
			return nil, errors.Wrapf(err, "filter: row %d", y)
		}
		prev = row
	}
	return out, nil
}
