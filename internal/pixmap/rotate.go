package pixmap

// RotateCW rotates p 90° clockwise. The output has dimensions (height,
// width); source pixel (x, y) lands at (height-1-y, x).
//
// The destination index is computed in ordinary signed int and is, by
// construction, always in range: for x ∈ [0,width), y ∈ [0,height),
// height-1-y ∈ [0,height) and x ∈ [0,width), which are exactly the output
// pixmap's bounds. The mapping is therefore a total bijection with no
// dropped pixels.
func (p *Pixmap) RotateCW() (*Pixmap, error) {
	out, err := New(p.Height, p.Width, p.NChannels, p.BitDepth)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			out.setAt(p.Height-1-y, x, p.at(x, y))
		}
	}
	return out, nil
}

// RotateCCW rotates p 90° counterclockwise: source pixel (x, y) lands at
// (y, width-1-x).
func (p *Pixmap) RotateCCW() (*Pixmap, error) {
	out, err := New(p.Height, p.Width, p.NChannels, p.BitDepth)
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			out.setAt(y, p.Width-1-x, p.at(x, y))
		}
	}
	return out, nil
}
