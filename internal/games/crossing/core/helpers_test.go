package core_test

// scriptedRand replays fixed values, then falls back to the defaults.
type scriptedRand struct {
	floats     []float64
	ints       []int
	floatAfter float64
	intAfter   int
}

// neverSpawn returns a source whose spawn trials always fail and whose
// placement draws always pick the first candidate.
func neverSpawn() *scriptedRand {
	return &scriptedRand{floatAfter: 1}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.floatAfter
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	v := r.intAfter
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}
