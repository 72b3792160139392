package field

// Trail is a fixed-capacity FIFO of recent positions, oldest first.
type Trail struct {
	buf   []Vec2
	start int
	n     int
}

func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{buf: make([]Vec2, capacity)}
}

// Push appends p, evicting the oldest entry once the trail is full.
func (t *Trail) Push(p Vec2) {
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.buf) }

// Points appends the trail to dst in order, oldest first.
func (t *Trail) Points(dst []Vec2) []Vec2 {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.buf[(t.start+i)%len(t.buf)])
	}
	return dst
}

// Newest returns the most recent entry; ok is false for an empty trail.
func (t *Trail) Newest() (p Vec2, ok bool) {
	if t.n == 0 {
		return Vec2{}, false
	}
	return t.buf[(t.start+t.n-1)%len(t.buf)], true
}
