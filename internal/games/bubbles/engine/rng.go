package engine

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed uint64 = 88172645463325252

// rng is a deterministic xorshift64 generator.
// Its whole state is one word so it can live inside a State value.
type rng struct {
	state uint64
}

func newRNG(seed uint64) rng {
	if seed == 0 {
		seed = defaultSeed
	}
	return rng{state: seed}
}

// next returns the next random uint64.
func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a random float64 in [0, 1).
func (r *rng) float() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// intn returns a random int in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n)) //#nosec G115 -- n is positive
}

// color picks a color uniformly from the first n palette entries.
func (r *rng) color(n int) Color {
	return Color(r.intn(n)) //#nosec G115 -- n never exceeds PaletteSize
}
