package gameid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tilehilo/internal/randutil"
)

type randAdapter struct{ rng interface{ IntN(int) int } }

func (r randAdapter) Intn(n int) int { return r.rng.IntN(n) }

func TestGenerateIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Generate()
		require.NoError(t, Validate(id), "id %q", id)
		assert.Len(t, id, 26)
	}
}

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestGenerateSortsByTime(t *testing.T) {
	// UUIDv7's leading timestamp makes ids lexically ordered across
	// millisecond boundaries; same-millisecond ids just need to differ.
	a := Generate()
	b := Generate()
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, a[:8], b[:8])
}

func TestGeneratorWithRandSource(t *testing.T) {
	gen := NewGenerator(randAdapter{randutil.New(42)})
	id := gen.Generate()
	require.NoError(t, Validate(id))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"valid", Generate(), true},
		{"too short", "abc", false},
		{"too long", Generate() + "0", false},
		{"first char too large", "8" + Generate()[1:], false},
		{"invalid character", Generate()[:25] + "u", false},
		{"uppercase rejected", Generate()[:25] + "A", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate(test.id)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
