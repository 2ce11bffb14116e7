package idat

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// ErrDecompressionFailed wraps any fatal return from the inflator: a bad
// zlib header, a corrupt deflate stream, or a stream that inflates to fewer
// bytes than expected. Output past the expected length is never read, so a
// stream that inflates to more bytes is not detected.
var ErrDecompressionFailed = errors.New("idat: decompression failed")

// Decompress drives zlib against the assembled IDAT stream, producing
// exactly wantLen bytes: (scanline_bytes+1)*height, the filtered scanline
// stream the filter package expects.
//
// The zlib reader is closed on every exit path, including error paths.
func Decompress(compressed []byte, wantLen int) ([]byte, error) {
	if len(compressed) == 0 {
		return nil, errors.Wrap(ErrDecompressionFailed, "idat: empty IDAT stream")
	}
	// Deflate method/info byte: low nibble must be 8 (deflate).
	if compressed[0]&0x0F != 0x08 {
		return nil, errors.Wrapf(ErrDecompressionFailed, "idat: not a deflate stream (CMF=%02x)", compressed[0])
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	defer zr.Close()

	out := make([]byte, wantLen)
	n, err := io.ReadFull(zr, out)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(ErrDecompressionFailed, err.Error())
	}
	if n != wantLen {
		return nil, errors.Wrapf(ErrDecompressionFailed, "idat: inflated %d bytes, want %d", n, wantLen)
	}
	return out, nil
}
