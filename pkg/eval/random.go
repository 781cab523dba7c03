package eval

import (
	"context"
	"math/rand"
)

// Random adds a small amount of noise to evaluations, in centipawns, in the range
// [-limit/2; limit/2]. The zero value always returns zero, i.e., it is deterministic.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
