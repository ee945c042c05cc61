// Package entropy provides reproducible per-individual random streams.
// Each individual draws from its own generator so its draws do not depend
// on population size or on the order individuals are visited in.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	randv2 "math/rand/v2"
)

// Streams holds one generator per individual, all derived from a base seed.
type Streams struct {
	seed int64
	rngs []*randv2.Rand
}

// NewStreams creates n independent generators derived from seed.
func NewStreams(seed int64, n int) *Streams {
	s := &Streams{
		seed: seed,
		rngs: make([]*randv2.Rand, n),
	}
	for i := range s.rngs {
		s.rngs[i] = randv2.New(randv2.NewPCG(Mix(uint64(seed)), Mix(uint64(seed)^(uint64(i)+1)*0x9e3779b97f4a7c15)))
	}
	return s
}

// Seed returns the base seed the streams were derived from.
func (s *Streams) Seed() int64 {
	return s.seed
}

// Len returns the number of streams.
func (s *Streams) Len() int {
	return len(s.rngs)
}

// At returns the generator owned by individual i.
func (s *Streams) At(i int) *randv2.Rand {
	return s.rngs[i]
}

// Mix is the splitmix64 finalizer. It spreads nearby seeds far apart so that
// individual i and i+1 do not start from adjacent generator states.
func Mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// ResolveSeed returns seed unchanged when non-zero, otherwise a fresh
// non-zero seed from crypto/rand.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	for {
		if s := cryptoSeed(); s != 0 {
			return s
		}
	}
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen; fall back to a fixed seed rather than fail.
		slog.Warn("crypto/rand unavailable, using fallback seed", "error", err)
		return 42
	}
	// Keep it positive so it round-trips through flags and config files.
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}
