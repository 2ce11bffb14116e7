package pixmap

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

// Every byte WriteASCII emits is either a newline or a member of the
// glyph ramp.
func TestWriteASCIIGlyphSet(t *testing.T) {
	p, _ := New(3, 2, 3, 8)
	vals := []uint8{0, 60, 120, 180, 210, 255}
	n := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			v := vals[n]
			p.setAt(x, y, Rgba{v, v, v, 0})
			n++
		}
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WriteASCII(w); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}

	allowed := asciiGlyphs + "\n"
	for _, b := range buf.Bytes() {
		if !strings.ContainsRune(allowed, rune(b)) {
			t.Fatalf("byte %q not in glyph set %q", b, allowed)
		}
	}
}

func TestWriteASCIIDimensions(t *testing.T) {
	p, _ := New(4, 2, 3, 8)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WriteASCII(w); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if len(line) != 4 {
			t.Errorf("line %q has len %d, want 4", line, len(line))
		}
	}
}

func TestWriteASCIIBlackAndWhite(t *testing.T) {
	p, _ := New(2, 1, 3, 8)
	p.setAt(0, 0, Rgba{0, 0, 0, 0})
	p.setAt(1, 0, Rgba{255, 255, 255, 0})

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WriteASCII(w); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}
	row := buf.String()
	if row[0] != ' ' {
		t.Errorf("black pixel glyph = %q, want darkest glyph ' '", row[0])
	}
	if row[1] != '@' {
		t.Errorf("white pixel glyph = %q, want lightest glyph '@'", row[1])
	}
}

func TestWriteASCIIRejectsWrongChannels(t *testing.T) {
	p, _ := New(1, 1, 1, 8)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WriteASCII(w); err == nil {
		t.Fatal("expected error for 1-channel source")
	}
}
