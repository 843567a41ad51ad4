package services

import (
	"hash/fnv"
	"io"
	"math/rand"
)

// seededRand creates a deterministic random stream from a string seed. The
// same seed always yields the same stream, which is what makes a simulation
// reproducible. Sub-streams are derived by suffixing the seed (e.g.
// "<seed>-mismatch-count") so the draws of one concern never shift those of
// another.
func seededRand(seed string) *rand.Rand {
	h := fnv.New64a()
	_, _ = io.WriteString(h, seed)
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
