package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	perms := slices.Collect(Permutations([]int64{0, 1, 2, 3, 4}))
	assert.Equal(120, len(perms))
	assert.Equal([]int64{0, 1, 2, 3, 4}, perms[0])
	assert.Equal([]int64{0, 1, 2, 4, 3}, perms[1])
	assert.Equal([]int64{4, 3, 2, 1, 0}, perms[119])

	seen := map[[5]int64]bool{}
	for _, perm := range perms {
		seen[[5]int64(perm)] = true
	}
	assert.Equal(120, len(seen))
}

func TestPermutations_Small(t *testing.T) {
	assert := assert.New(t)

	perms := slices.Collect(Permutations([]string{"a", "b", "c"}))
	assert.Equal([][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}, perms)

	perms = slices.Collect(Permutations([]string{}))
	assert.Len(perms, 1)
	assert.Empty(perms[0])
}

func TestPermutations_Stop(t *testing.T) {
	assert := assert.New(t)

	var count int
	for perm := range Permutations([]int64{5, 6, 7, 8, 9}) {
		count++
		perm[0] = -1 // Copies are private to the caller.
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

func TestRange(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int64{5, 6, 7, 8, 9}, Range(5, 9))
	assert.Equal([]int64{0}, Range(0, 0))
	assert.Nil(Range(3, 2))
}
