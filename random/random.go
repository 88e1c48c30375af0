package random

import (
	"math/rand"
	"time"
)

/// Random is a source of random bytes.
///
type Random struct {
	seed int64
	rng  *rand.Rand
}

/// NewRandom is the preferred method of initialisation for the Random type. A
/// seed of zero means the seed is taken from the current time.
///
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

/// Seed returns the seed the generator was created with.
///
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

/// Reset restarts the sequence from the beginning.
///
func (rnd *Random) Reset() {
	rnd.rng = rand.New(rand.NewSource(rnd.seed))
}

/// Byte returns the next value in the sequence.
///
func (rnd *Random) Byte() byte {
	return byte(rnd.rng.Intn(256))
}
