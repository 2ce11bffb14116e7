// Package idat assembles consecutive IDAT chunk payloads into one
// compressed stream and drives the deflate decompressor against it.
package idat

import (
	"bytes"

	"github.com/pkg/errors"

	"imcpng.dev/internal/chunk"
)

// Assembler grows a single buffer by appending IDAT chunk payloads in file
// order. It has no notion of chunk boundaries once appended — that's the
// point: it hands the zlib reader one continuous compressed stream.
type Assembler struct {
	buf bytes.Buffer
}

// Append copies c's data onto the end of the assembled stream. No
// allocation failure is modeled explicitly: bytes.Buffer panics on
// out-of-memory, which is an acceptable abort path for this core.
func (a *Assembler) Append(c chunk.Chunk) {
	a.buf.Write(c.Data)
}

// Bytes returns the assembled compressed stream.
func (a *Assembler) Bytes() []byte {
	return a.buf.Bytes()
}

// Len reports how many bytes have been assembled so far.
func (a *Assembler) Len() int {
	return a.buf.Len()
}

// ErrNonConsecutiveIDAT marks a malformed chunk stream: an IDAT chunk
// appeared after the IDAT run had already been closed out by a non-IDAT
// chunk.
var ErrNonConsecutiveIDAT = errors.New("idat: IDAT chunks are not consecutive")
