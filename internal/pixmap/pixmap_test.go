package pixmap

import "testing"

func TestNewSizeInvariant(t *testing.T) {
	p, err := New(3, 2, 3, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := p.ScanlineBytes() * p.Height
	if len(p.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(p.Data), want)
	}
}

func TestFromBytesRejectsWrongSize(t *testing.T) {
	_, err := FromBytes(2, 2, 3, 8, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestSetAtAndAt(t *testing.T) {
	p, _ := New(2, 2, 4, 8)
	p.setAt(1, 0, Rgba{10, 20, 30, 40})
	got := p.at(1, 0)
	want := Rgba{10, 20, 30, 40}
	if got != want {
		t.Errorf("at(1,0) = %+v, want %+v", got, want)
	}
}

func Test3ChannelAlphaIsOpaque(t *testing.T) {
	p, _ := New(1, 1, 3, 8)
	p.setAt(0, 0, Rgba{1, 2, 3, 0})
	got := p.at(0, 0)
	if got.A != 255 {
		t.Errorf("A = %d, want 255 for 3-channel source", got.A)
	}
}
