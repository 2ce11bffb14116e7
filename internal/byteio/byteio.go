// Package byteio provides the handful of big-endian reads the PNG wire
// format needs. PNG chunk lengths, CRCs, and IHDR's multi-byte fields are
// all network order; chunk type tags are raw ASCII and are never flipped.
package byteio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader wraps an io.Reader with the fixed-width big-endian reads used while
// walking a PNG byte stream. It carries no other state: the source (file or
// in-memory buffer) owns the cursor.
type Reader struct {
	r io.Reader
}

// NewReader wraps r. r is typically a *bytes.Reader over the Handle's
// in-memory copy of the file (see internal/decoder): the in-memory buffer
// is the authoritative byte source, never the underlying os.File.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// U32 reads a 4-byte big-endian unsigned integer.
func (br *Reader) U32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "byteio: read u32")
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// U16 reads a 2-byte big-endian unsigned integer. Unused by the core chunk
// path (PNG's own fields are u8/u32) but kept for ancillary-chunk code that
// wants it (e.g. pHYs-style 2-byte fields).
func (br *Reader) U16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "byteio: read u16")
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// Raw4 reads 4 raw bytes without any endian conversion — used for chunk type
// tags, which are ASCII and must be preserved byte-for-byte.
func (br *Reader) Raw4() ([4]byte, error) {
	var buf [4]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return buf, errors.Wrap(err, "byteio: read raw4")
	}
	return buf, nil
}

// Bytes reads exactly n bytes. n == 0 returns a nil slice, matching the
// Chunk invariant that data is non-nil iff length > 0.
func (br *Reader) Bytes(n uint32) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(br.r, buf); err != nil {
		return nil, errors.Wrap(err, "byteio: read bytes")
	}
	return buf, nil
}
