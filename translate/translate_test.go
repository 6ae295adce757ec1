package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halted", From("halted"))
	assert.Equal("address -3 out of range", From("address %v out of range", -3))
	assert.Equal("opcode 42", From("opcode %d", 42))
}
