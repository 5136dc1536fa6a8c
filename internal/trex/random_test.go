package trex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedRandom replays fixed decisions. When a queue runs dry Uniform
// returns lo and Choice returns 0.
type scriptedRandom struct {
	uniforms []float64
	choices  []int
}

func (r *scriptedRandom) Uniform(lo, _ float64) float64 {
	if len(r.uniforms) == 0 {
		return lo
	}
	v := r.uniforms[0]
	r.uniforms = r.uniforms[1:]
	return v
}

func (r *scriptedRandom) Choice(_ int) int {
	if len(r.choices) == 0 {
		return 0
	}
	v := r.choices[0]
	r.choices = r.choices[1:]
	return v
}

func TestSeededRandomRanges(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(1, 3)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 3.0)

		c := r.Choice(2)
		assert.Contains(t, []int{0, 1}, c)
	}
}

func TestSeededRandomDegenerate(t *testing.T) {
	r := NewRandom(1)
	assert.Equal(t, 2.0, r.Uniform(2, 2))
	assert.Equal(t, 0, r.Choice(1))
	assert.Equal(t, 0, r.Choice(0))
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Uniform(0, 10), b.Uniform(0, 10))
		assert.Equal(t, a.Choice(3), b.Choice(3))
	}
}
