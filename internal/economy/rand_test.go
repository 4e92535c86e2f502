package economy

// seqRand replays fixed values. ints are returned as-is by Intn (they must be below n)
type seqRand struct {
	ints   []int
	floats []float64
}

func (s *seqRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("seqRand: value out of range")
	}
	return v
}

func (s *seqRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
