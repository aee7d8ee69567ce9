package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConst(t *testing.T) {
	t.Run("True", func(t *testing.T) {
		assert := assert.New(t)
		s := Const(true)
		assert.True(s.Decide(0, "op"))
		assert.True(s.Decide(math.MaxUint64, ""))
	})

	t.Run("False", func(t *testing.T) {
		assert := assert.New(t)
		s := Const(false)
		assert.False(s.Decide(0, "op"))
		assert.False(s.Decide(math.MaxUint64, ""))
	})
}

func TestProbabilistic(t *testing.T) {
	t.Run("ClampLow", func(t *testing.T) {
		assert := assert.New(t)
		s := Probabilistic(-0.5)
		assert.False(s.Decide(0, "op"))
		assert.False(s.Decide(1, "op"))
	})

	t.Run("ClampHigh", func(t *testing.T) {
		assert := assert.New(t)
		s := Probabilistic(1.5)
		assert.True(s.Decide(0, "op"))
		assert.True(s.Decide(math.MaxUint64, "op"))
	})

	t.Run("Boundary", func(t *testing.T) {
		assert := assert.New(t)
		s := Probabilistic(0.5)

		// decisions are a deterministic function of the trace identifier
		assert.True(s.Decide(0, "op"))
		assert.False(s.Decide(math.MaxUint64, "op"))

		first := s.Decide(math.MaxUint64/3, "op")
		for i := 0; i < 10; i++ {
			assert.Equal(first, s.Decide(math.MaxUint64/3, "op"))
		}
	})
}
