package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr  string
		vars  map[string]int64
		value int64
	}){
		{"12", nil, 12},
		{"-3", nil, -3},
		{"100 * noun + verb", map[string]int64{"noun": 12, "verb": 2}, 1202},
		{"0x10 | 1", nil, 17},
		{"x // 2", map[string]int64{"x": 9}, 4},
		{"1 << 40", nil, 1 << 40},
	}

	for _, entry := range table {
		value, err := Eval(entry.expr, entry.vars)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Eval("'text'", nil)
	assert.ErrorIs(err, ErrNotInteger)

	_, err = Eval("1 << 80", nil)
	assert.ErrorIs(err, ErrNotInteger)

	_, err = Eval("1.5", nil)
	assert.ErrorIs(err, ErrNotInteger)

	_, err = Eval("noun +", nil)
	assert.Error(err)

	_, err = Eval("missing", nil)
	assert.Error(err)

	var eerr *ErrExpression
	assert.ErrorAs(err, &eerr)
	assert.Equal("missing", eerr.Expr)
}
