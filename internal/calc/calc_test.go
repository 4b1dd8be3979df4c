package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))
	assert.Equal(t, 0, Add(-1, 1))
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 2, Subtract(5, 3))
	assert.Equal(t, -5, Subtract(0, 5))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 18, Multiply(6, 3))
	assert.Equal(t, 0, Multiply(0, 100))
	assert.Equal(t, -8, Multiply(-2, 4))
}

func TestDivide(t *testing.T) {
	q, err := Divide(8, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, q)

	q, err = Divide(1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, 0, q, "guarded division returns zero on error")
}

func TestMod(t *testing.T) {
	m, err := Mod(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, m)

	m, err = Mod(7, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, 0, m)
}
