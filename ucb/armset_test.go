package ucb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArmSet_RemoveShrinksLen(t *testing.T) {
	s := newArmSet(5)
	assert.Equal(t, 5, s.len())

	s.remove(2)
	assert.Equal(t, 4, s.len())
	assert.Equal(t, []int{0, 1, 3, 4}, s.slice())
}

func TestArmSet_EachVisitsAscending(t *testing.T) {
	s := newArmSet(4)
	s.remove(1)

	var visited []int
	s.each(func(i int) { visited = append(visited, i) })
	assert.Equal(t, []int{0, 2, 3}, visited)
}
