package pixmap

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t ∈ [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Luma709 is the Rec. 709 luma weighting used by to_ascii's 3-channel
// branch: 0.2126 R + 0.7152 G + 0.0722 B, over normalized [0,1] samples.
func Luma709(r, g, b uint8) float64 {
	return 0.2126*(float64(r)/255) + 0.7152*(float64(g)/255) + 0.0722*(float64(b)/255)
}

// Luma601 is the ITU-R 601 luma weighting used by to_grayscale: 0.30 R +
// 0.59 G + 0.11 B, over raw [0,255] samples.
func Luma601(r, g, b uint8) float64 {
	return 0.30*float64(r) + 0.59*float64(g) + 0.11*float64(b)
}

// Blend alpha-composites fg over bg using straight alpha a ∈ [0,255]:
// out = (1-α)*bg + α*fg. Satisfies the endpoint properties blend(fg,bg,0) ==
// bg and blend(fg,bg,255) == fg exactly (integer endpoints round trip).
func Blend(fg, bg uint8, a uint8) uint8 {
	alpha := float64(a) / 255
	out := Lerp(float64(bg), float64(fg), alpha)
	return uint8(math.Round(out))
}

// BlendRgb alpha-composites an RGBA pixel's RGB over an opaque background
// color, the compositing rule PPM export uses for 4-channel sources.
func BlendRgb(fg Rgba, bg [3]uint8) [3]uint8 {
	return [3]uint8{
		Blend(fg.R, bg[0], fg.A),
		Blend(fg.G, bg[1], fg.A),
		Blend(fg.B, bg[2], fg.A),
	}
}
