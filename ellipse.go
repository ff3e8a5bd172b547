package mipmap

// span is a half row of a filled ellipse in doubled coordinates:
// the row sits y half-pixels away from the center and reaches x half-pixels
// to either side of it.
type span struct {
	x, y int
}

// quarter walks one quarter of an ellipse with axes a and b (the bounding
// box width and height, which are the semi-axes in doubled coordinates).
// The walk starts on the horizontal axis and ends on the vertical one,
// moving by one pixel at a time to whichever neighbour lies closest
// to the curve b²x² + a²y² = a²b².
type quarter struct {
	a2, b2, a2b2 int64
	x, y         int
	ex, ey       int
	finished     bool
}

func newQuarter(a, b int) *quarter {
	q := &quarter{
		x:  a,
		y:  b % 2,
		ex: a % 2,
		ey: b,
	}
	q.a2 = int64(a) * int64(a)
	q.b2 = int64(b) * int64(b)
	q.a2b2 = q.a2 * q.b2
	return q
}

// delta returns how far the point (x, y) deviates from the curve.
func (q *quarter) delta(x, y int) int64 {
	d := q.a2*int64(y)*int64(y) + q.b2*int64(x)*int64(x) - q.a2b2
	if d < 0 {
		return -d
	}
	return d
}

// next returns the current point and advances the walk.
// The boolean result is false once the walk has ended.
func (q *quarter) next() (x, y int, ok bool) {
	if q.finished {
		return 0, 0, false
	}
	x, y = q.x, q.y

	switch {
	case q.x == q.ex && q.y == q.ey:
		q.finished = true
	case q.x == q.ex:
		q.y += 2
	case q.y == q.ey:
		q.x -= 2
	default:
		dxy := q.delta(q.x-2, q.y+2)
		dx := q.delta(q.x-2, q.y)
		dy := q.delta(q.x, q.y+2)
		switch {
		case dxy <= dx && dxy <= dy:
			q.x -= 2
			q.y += 2
		case dx < dy:
			q.x -= 2
		default:
			q.y += 2
		}
	}
	return x, y, true
}

// ellipseSpans returns the widest extent of every row of the filled ellipse
// inscribed in an a×b box, ordered from the center row outwards.
func ellipseSpans(a, b int) []span {
	var spans []span

	q := newQuarter(a, b)
	for {
		x, y, ok := q.next()
		if !ok {
			break
		}
		// The walk moves inwards, so the first point of a row is its widest.
		if n := len(spans); n > 0 && spans[n-1].y == y {
			continue
		}
		spans = append(spans, span{x: x, y: y})
	}
	return spans
}
