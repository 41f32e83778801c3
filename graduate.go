package bezier

// Graduater describes curves that can have their offset profile graduated,
// such as the pieces of a poly-curve approximating an offset curve.
type Graduater interface {
	// Length returns the arc length of the curve. [Graduate] logs negative
	// lengths and then treats them as 0, so such a piece gets an empty
	// interval.
	Length() float64
	// Graduate sets the curve's offset profile to thickness, scaled from
	// start at the beginning of the curve to end at its end.
	Graduate(thickness, start, end float64)
}

// Graduate distributes the interval [start, end] over pieces in proportion to
// their arc lengths, and graduates each piece with its share. A piece that
// begins at cumulative length slen of the total length L is graduated from
// start + (slen/L)*(end-start).
//
// Pieces reporting a negative length are logged and treated as having zero
// length. If the total length is zero, the interval is split evenly.
func Graduate(pieces []Graduater, thickness, start, end float64) {
	lengths := make([]float64, len(pieces))
	var total float64
	for i, p := range pieces {
		l := p.Length()
		if l < 0 {
			log().Warn("curve piece has negative length", "piece", i, "length", l)
			l = 0
		}
		lengths[i] = l
		total += l
	}

	span := end - start
	if total == 0 {
		n := float64(len(pieces))
		for i, p := range pieces {
			p.Graduate(thickness, start+float64(i)/n*span, start+float64(i+1)/n*span)
		}
		return
	}
	var slen float64
	for i, p := range pieces {
		s := start + slen/total*span
		slen += lengths[i]
		e := start + slen/total*span
		p.Graduate(thickness, s, e)
	}
}
