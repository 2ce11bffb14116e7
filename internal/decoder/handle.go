// Package decoder owns the PngHandle lifecycle and the chunk-stream
// orchestrator that drives chunk parsing through decompression and filter
// reversal into a finished Pixmap.
package decoder

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"imcpng.dev/internal/imclog"
)

// pngSignature is the 8-byte magic every PNG stream starts with.
var pngSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ErrNotAPNG marks an input whose first 8 bytes don't match the PNG
// signature.
var ErrNotAPNG = errors.New("decoder: not a PNG file")

// ErrDoubleClose marks Close being called twice on the same Handle. This
// warns and proceeds rather than aborting.
var ErrDoubleClose = errors.New("decoder: handle already closed")

// Handle owns an open file and a full in-memory copy of its bytes. Decode
// returns the decoded Pixmap to the caller; the Handle does not keep it.
// The in-memory byte buffer is the
// single source of truth for parsing; the *os.File is retained only so
// Close can release the descriptor, and is never read from again after
// Open.
type Handle struct {
	file   *os.File
	Bytes  []byte
	log    *imclog.Logger
	closed bool
}

// Open reads path fully into memory and validates the PNG signature. The
// returned Handle owns the open file descriptor until Close. Any failure
// returns a nil Handle with the specific cause logged at error level.
func Open(path string) (*Handle, error) {
	return OpenWithLogger(path, imclog.Default)
}

// OpenWithLogger is Open with an explicit diagnostic sink, for callers
// (such as tests) that want their own Logger instead of the package
// default.
func OpenWithLogger(path string, log *imclog.Logger) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Error("decoder: open failed: " + err.Error())
		return nil, errors.Wrap(err, "decoder: open")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		log.Error("decoder: stat failed: " + err.Error())
		return nil, errors.Wrap(err, "decoder: stat")
	}

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		f.Close()
		log.Error("decoder: read failed: " + err.Error())
		return nil, errors.Wrap(err, "decoder: read")
	}

	if len(buf) < 8 || [8]byte(buf[:8]) != pngSignature {
		f.Close()
		log.Error("decoder: signature mismatch, not a PNG")
		return nil, ErrNotAPNG
	}

	return &Handle{file: f, Bytes: buf, log: log}, nil
}

// Close releases the handle's file descriptor and byte buffer. Idempotent:
// a second call returns ErrDoubleClose (logged as a warning) rather than
// panicking on a nil/closed file.
func (h *Handle) Close() error {
	if h.closed {
		h.log.Warn("decoder: double close")
		return ErrDoubleClose
	}
	h.closed = true
	h.Bytes = nil
	return h.file.Close()
}
