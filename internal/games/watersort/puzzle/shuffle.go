package puzzle

import (
	"math/rand"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a seeded shuffler. A zero seed uses the current time.
func NewShuffler(seed int64) Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ShuffleTokens permutes tokens in place and returns them.
// A nil shuffler leaves the order unchanged.
func ShuffleTokens(tokens []Color, s Shuffler) []Color {
	if s == nil {
		return tokens
	}
	s.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})
	return tokens
}

// BuildTokens returns capacity copies of the first numColors palette entries,
// grouped by color.
func BuildTokens(palette []Color, numColors, capacity int) []Color {
	tokens := make([]Color, 0, numColors*capacity)
	for i := 0; i < numColors; i++ {
		for j := 0; j < capacity; j++ {
			tokens = append(tokens, palette[i])
		}
	}
	return tokens
}
