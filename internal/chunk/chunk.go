// Package chunk implements the PNG chunk framing layer: length-prefixed,
// type-tagged, CRC-suffixed records, plus the IHDR payload decode.
package chunk

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/snksoft/crc"

	"imcpng.dev/internal/byteio"
)

// ErrIEND signals that the chunk just read was the IEND marker. The
// orchestrator treats this as a normal, expected transition rather than a
// failure.
var ErrIEND = errors.New("chunk: IEND reached")

// ErrDoubleRelease is a warning-level condition: Release was called twice on
// the same Chunk. Callers log it and proceed rather than treating it as
// fatal.
var ErrDoubleRelease = errors.New("chunk: double release")

// Chunk is a transient record for exactly one PNG chunk.
type Chunk struct {
	Length uint32
	Type   Type
	Data   []byte // nil iff Length == 0
	Crc    uint32

	released bool
}

// Type is a 4-byte ASCII chunk type tag, preserved raw — never endian
// flipped, since it's text, not a number.
type Type [4]byte

func (t Type) String() string { return string(t[:]) }

var (
	TypeIHDR = Type{'I', 'H', 'D', 'R'}
	TypePLTE = Type{'P', 'L', 'T', 'E'}
	TypeIDAT = Type{'I', 'D', 'A', 'T'}
	TypeIEND = Type{'I', 'E', 'N', 'D'}
)

// IsCritical reports whether t names a critical chunk (first letter
// uppercase), per the PNG chunk-naming convention.
func (t Type) IsCritical() bool {
	return t[0] >= 'A' && t[0] <= 'Z'
}

// Reader reads chunks off a byte stream in order. Unless SkipCRC is set, it
// checks each chunk's trailing CRC against a CRC-32 (the polynomial PNG
// specifies, IEEE 802.3) computed over that chunk's type and data.
type Reader struct {
	br *byteio.Reader

	// SkipCRC disables CRC verification for callers that want the laxer,
	// unchecked baseline behavior. Left false, Read verifies every
	// chunk's trailing CRC against its type and data.
	SkipCRC bool
}

// NewReader wraps r, which must yield chunk bytes starting immediately after
// the 8-byte PNG signature.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: byteio.NewReader(r)}
}

// Read reads one chunk. It returns ErrIEND (with a zero-value Chunk, which
// the orchestrator discards) when the IEND marker is seen.
func (cr *Reader) Read() (Chunk, error) {
	length, err := cr.br.U32()
	if err != nil {
		return Chunk{}, errors.Wrap(err, "chunk: read length")
	}

	rawType, err := cr.br.Raw4()
	if err != nil {
		return Chunk{}, errors.Wrap(err, "chunk: read type")
	}
	ctype := Type(rawType)

	if ctype == TypeIEND {
		return Chunk{}, ErrIEND
	}

	data, err := cr.br.Bytes(length)
	if err != nil {
		return Chunk{}, errors.Wrapf(err, "chunk: read %d bytes of %s data", length, ctype)
	}

	crcVal, err := cr.br.U32()
	if err != nil {
		return Chunk{}, errors.Wrap(err, "chunk: read crc")
	}

	c := Chunk{Length: length, Type: ctype, Data: data, Crc: crcVal}
	if !cr.SkipCRC {
		if err := verifyCRC(c); err != nil {
			return Chunk{}, err
		}
	}
	return c, nil
}

func verifyCRC(c Chunk) error {
	preceding := make([]byte, 0, 4+len(c.Data))
	preceding = append(preceding, c.Type[:]...)
	preceding = append(preceding, c.Data...)
	got := uint32(crc.CalculateCRC(crc.CRC32, preceding))
	if got != c.Crc {
		return errors.Errorf("chunk: %s crc mismatch: stored %08x, computed %08x", c.Type, c.Crc, got)
	}
	return nil
}

// Release frees the chunk's data. Idempotent: a second call reports
// ErrDoubleRelease but the caller may log it as a warning and continue.
func (c *Chunk) Release() error {
	if c.released {
		return ErrDoubleRelease
	}
	c.Data = nil
	c.released = true
	return nil
}

// AsFmt renders a chunk for diagnostic logging.
func (c Chunk) AsFmt() string {
	return fmt.Sprintf("%s len=%d crc=%08x", c.Type, c.Length, c.Crc)
}
