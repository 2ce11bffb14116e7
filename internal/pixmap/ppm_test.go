package pixmap

import (
	"bufio"
	"bytes"
	"fmt"
	"testing"
)

// WritePPM of a 1x2 RGBA pixmap alpha-blends each pixel against a white
// background.
func TestWritePPMAlphaBlend(t *testing.T) {
	p, _ := New(1, 2, 4, 8)
	p.setAt(0, 0, Rgba{100, 150, 200, 128})
	p.setAt(0, 1, Rgba{50, 50, 50, 255})

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WritePPM(w, [3]uint8{255, 255, 255}); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	out := buf.Bytes()
	header := fmt.Sprintf("P6\n%d %d\n%d\n", 1, 2, 255)
	if string(out[:len(header)]) != header {
		t.Fatalf("header = %q, want %q", out[:len(header)], header)
	}

	body := out[len(header):]
	wantPixel0 := [3]byte{
		byte(Blend(100, 255, 128)),
		byte(Blend(150, 255, 128)),
		byte(Blend(200, 255, 128)),
	}
	for i, want := range wantPixel0 {
		if body[i] != want {
			t.Errorf("pixel0[%d] = %d, want %d", i, body[i], want)
		}
	}
	wantPixel1 := [3]byte{50, 50, 50}
	for i, want := range wantPixel1 {
		if body[3+i] != want {
			t.Errorf("pixel1[%d] = %d, want %d", i, body[3+i], want)
		}
	}
}

// PPM round trip for a 3-channel pixmap is exact: the body bytes match the
// pixmap's data verbatim.
func TestWritePPMRoundTrip3Channel(t *testing.T) {
	p, _ := New(2, 1, 3, 8)
	p.setAt(0, 0, Rgba{1, 2, 3, 0})
	p.setAt(1, 0, Rgba{4, 5, 6, 0})

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := p.WritePPM(w, [3]uint8{0, 0, 0}); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	header := fmt.Sprintf("P6\n%d %d\n%d\n", 2, 1, 255)
	body := buf.Bytes()[len(header):]
	if !bytes.Equal(body, p.Data) {
		t.Errorf("round-trip body = %v, want %v", body, p.Data)
	}
}

// Blend at alpha 0 returns the background; at alpha 255 it returns the
// foreground.
func TestBlendEndpoints(t *testing.T) {
	if got := Blend(200, 10, 0); got != 10 {
		t.Errorf("Blend(fg,bg,0) = %d, want bg=10", got)
	}
	if got := Blend(200, 10, 255); got != 200 {
		t.Errorf("Blend(fg,bg,255) = %d, want fg=200", got)
	}
}
