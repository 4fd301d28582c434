package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 10}}, chunks(10, 3))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, chunks(2, 4))
	assert.Empty(t, chunks(0, 4))
	assert.Equal(t, [][2]int{{0, 5}}, chunks(5, 1))
}
