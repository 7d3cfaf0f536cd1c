package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase62AlphabetHas62UniqueChars(t *testing.T) {
	assert.Len(t, Base62Alphabet, 62)

	seen := make(map[rune]bool, 62)
	for _, c := range Base62Alphabet {
		assert.False(t, seen[c], "duplicate alphabet character %q", c)
		seen[c] = true
	}
}

func TestBase62AlphabetOrdering(t *testing.T) {
	assert.Equal(t, byte('0'), Base62Alphabet[0])
	assert.Equal(t, byte('z'), Base62Alphabet[61])
}
