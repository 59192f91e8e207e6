package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"lowercases", "Apple", "apple", true},
		{"trims", "  sun  ", "sun", true},
		{"rejects digits", "abc123", "", false},
		{"rejects punctuation", "don't", "", false},
		{"rejects empty", "   ", "", false},
		{"accepts non-latin letters", "りんご", "りんご", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	got := Parse("Sun, moon  star\n42, sky")
	assert.Equal(t, List{"sun", "moon", "star", "sky"}, got)
}

func TestParseKeepsRepeats(t *testing.T) {
	got := Parse("cat cat dog")
	assert.Equal(t, List{"cat", "cat", "dog"}, got)
}

func TestRemoveAt(t *testing.T) {
	l := List{"a", "b", "c"}
	assert.Equal(t, List{"a", "c"}, l.RemoveAt(1))
	assert.Equal(t, l, l.RemoveAt(5))
	assert.Equal(t, l, l.RemoveAt(-1))
}

func TestSortedLeavesOriginal(t *testing.T) {
	l := List{"b", "a"}
	assert.Equal(t, []string{"a", "b"}, l.Sorted())
	assert.Equal(t, List{"b", "a"}, l)
}
