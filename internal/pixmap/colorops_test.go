package pixmap

import "testing"

func TestClampBounds(t *testing.T) {
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10,20,0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10,20,1) = %v, want 20", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10,20,0.5) = %v, want 15", got)
	}
}

func TestLuma709White(t *testing.T) {
	if got := Luma709(255, 255, 255); got < 0.999 || got > 1.001 {
		t.Errorf("Luma709(white) = %v, want ~1.0", got)
	}
	if got := Luma709(0, 0, 0); got != 0 {
		t.Errorf("Luma709(black) = %v, want 0", got)
	}
}

func TestLuma601Black(t *testing.T) {
	if got := Luma601(0, 0, 0); got != 0 {
		t.Errorf("Luma601(black) = %v, want 0", got)
	}
	if got := Luma601(255, 255, 255); got < 254.9 || got > 255.1 {
		t.Errorf("Luma601(white) = %v, want ~255", got)
	}
}
