package decoder

import (
	"bytes"

	"github.com/pkg/errors"

	"imcpng.dev/internal/chunk"
	"imcpng.dev/internal/filter"
	"imcpng.dev/internal/idat"
	"imcpng.dev/internal/pixmap"
)

// stage is the orchestrator's position in the chunk-stream state machine:
// expect IHDR first, skip ancillary chunks, collect the run of consecutive
// IDAT chunks, then finish once IEND closes the stream.
type stage int

const (
	stageExpectIHDR stage = iota
	stageAncillary
	stageIdatRun
	stageDone
)

// ErrMissingIHDR marks a malformed chunk stream: the first chunk after the
// signature wasn't IHDR.
var ErrMissingIHDR = errors.New("decoder: missing IHDR")

// ErrUnexpectedEOF marks a malformed chunk stream: IEND arrived before any
// IDAT chunk was seen.
var ErrUnexpectedEOF = errors.New("decoder: chunk stream ended before any IDAT")

// Decode runs the full pipeline over h.Bytes: parse IHDR, skip ancillary
// chunks, concatenate the IDAT run, decompress, reverse filters, and
// return a Pixmap. It consumes the byte stream once, left to right.
func (h *Handle) Decode() (*pixmap.Pixmap, error) {
	cr := chunk.NewReader(bytes.NewReader(h.Bytes[8:]))

	var ihdr chunk.Ihdr
	var asm idat.Assembler
	st := stageExpectIHDR
	idatRunClosed := false

	for st != stageDone {
		c, err := cr.Read()
		if err != nil {
			if errors.Is(err, chunk.ErrIEND) {
				if st == stageIdatRun {
					st = stageDone
					break
				}
				return nil, errors.Wrap(ErrUnexpectedEOF, "decoder: IEND before any IDAT")
			}
			return nil, errors.Wrap(err, "decoder: read chunk")
		}

		switch st {
		case stageExpectIHDR:
			if c.Type != chunk.TypeIHDR {
				return nil, errors.Wrapf(ErrMissingIHDR, "decoder: first chunk was %s", c.Type)
			}
			ihdr, err = chunk.DecodeIhdr(c.Data)
			if err != nil {
				return nil, errors.Wrap(err, "decoder: decode IHDR")
			}
			h.log.Info("decoder: IHDR " + c.AsFmt())
			st = stageAncillary

		case stageAncillary:
			if c.Type == chunk.TypeIDAT {
				asm.Append(c)
				st = stageIdatRun
			} else {
				h.log.Debug("decoder: skipping ancillary chunk " + c.AsFmt())
				c.Release()
			}

		case stageIdatRun:
			if c.Type == chunk.TypeIDAT {
				if idatRunClosed {
					return nil, errors.Wrap(idat.ErrNonConsecutiveIDAT, "decoder: IDAT seen after run closed")
				}
				asm.Append(c)
			} else {
				idatRunClosed = true
				h.log.Debug("decoder: closing IDAT run at " + c.AsFmt())
				c.Release()
			}
		}
	}

	scanlineBytes := ihdr.ScanlineBytes()
	wantInflated := (scanlineBytes + 1) * int(ihdr.Height)
	inflated, err := idat.Decompress(asm.Bytes(), wantInflated)
	if err != nil {
		return nil, errors.Wrap(err, "decoder: decompress IDAT stream")
	}

	reconstructed, err := filter.Reconstruct(inflated, scanlineBytes, int(ihdr.Height), ihdr.BytesPerPixel())
	if err != nil {
		return nil, errors.Wrap(err, "decoder: reverse filters")
	}

	pm, err := pixmap.FromBytes(int(ihdr.Width), int(ihdr.Height), ihdr.NChannels, ihdr.BitDepth, reconstructed)
	if err != nil {
		return nil, errors.Wrap(err, "decoder: build pixmap")
	}

	h.log.Info("decoder: decoded pixmap")
	return pm, nil
}
