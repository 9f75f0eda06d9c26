package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPermutationOf(t *testing.T) {
	ref := Ordering{"A", "B", "C"}

	assert.True(t, Ordering{"C", "A", "B"}.IsPermutationOf(ref))
	assert.True(t, Ordering{}.IsPermutationOf(Ordering{}))
	assert.False(t, Ordering{"A", "B"}.IsPermutationOf(ref))
	assert.False(t, Ordering{"A", "A", "B"}.IsPermutationOf(ref))
	assert.False(t, Ordering{"A", "B", "D"}.IsPermutationOf(ref))
}

func TestIndexOf(t *testing.T) {
	o := Ordering{"A", "B", "C"}
	assert.Equal(t, 1, o.IndexOf("B"))
	assert.Equal(t, -1, o.IndexOf("Z"))
	assert.True(t, o.Contains("C"))
}

func TestParseOrdering(t *testing.T) {
	q := Default()

	o, err := ParseOrdering(q, "seinfeld, Star Trek,the simpsons,Friends,The Office (US),Breaking Bad,Game of Thrones,Squid Games")
	require.NoError(t, err)
	assert.Equal(t, Item("Seinfeld"), o[0])
	assert.Equal(t, Item("Star Trek"), o[1])
	assert.Equal(t, Item("The Simpsons"), o[2])
}

func TestParseOrderingErrors(t *testing.T) {
	q := Default()

	_, err := ParseOrdering(q, "Star Trek,Seinfeld")
	assert.ErrorIs(t, err, ErrNotPermutation)

	_, err = ParseOrdering(q, "Star Trek,Lost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Lost")
}
