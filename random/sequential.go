package random

const gamma = 0x9e3779b97f4a7c15

// Sequential is a splitmix64 generator: the seed advances by a fixed odd
// constant and each step is scrambled by a finalizer. Output is fully
// determined by the seed. Not safe for concurrent use.
type Sequential struct {
	seed uint64
}

var _ Source = (*Sequential)(nil)

func NewSequential(seed uint64) *Sequential {
	return &Sequential{seed: seed}
}

func (s *Sequential) Uint64() uint64 {
	s.seed += gamma
	return mix64(s.seed)
}

// Read never fails. Bytes come from successive words, low byte first; a
// trailing partial word consumes a whole step.
func (s *Sequential) Read(p []byte) (int, error) {
	fill(p, s.Uint64)
	return len(p), nil
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
