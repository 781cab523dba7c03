package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walleye-engine/walleye/pkg/eval"
)

func TestMateDistance(t *testing.T) {
	t.Run("terminal mate has distance zero", func(t *testing.T) {
		d, ok := eval.Mate().MateDistance()
		assert.True(t, ok)
		assert.Equal(t, eval.Score(0), d)
	})

	t.Run("increment discounts by one ply per unwind", func(t *testing.T) {
		s := eval.IncrementMateDistance(eval.Mate().Negate())
		d, ok := s.MateDistance()
		assert.True(t, ok)
		assert.Equal(t, eval.Score(1), d)
	})

	t.Run("non-mate scores unaffected", func(t *testing.T) {
		assert.Equal(t, eval.Score(42), eval.IncrementMateDistance(42))
		_, ok := eval.Score(42).MateDistance()
		assert.False(t, ok)
	})

	t.Run("invalid score survives negate and increment", func(t *testing.T) {
		assert.Equal(t, eval.InvalidScore, eval.InvalidScore.Negate())
		assert.Equal(t, eval.InvalidScore, eval.IncrementMateDistance(eval.InvalidScore))
	})
}

func TestCrop(t *testing.T) {
	assert.Equal(t, eval.InfScore, eval.Crop(eval.InfScore+100))
	assert.Equal(t, eval.NegInfScore, eval.Crop(eval.NegInfScore-100))
	assert.Equal(t, eval.Score(7), eval.Crop(7))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, eval.Score(5), eval.Max(5, 3))
	assert.Equal(t, eval.Score(3), eval.Min(5, 3))
}
