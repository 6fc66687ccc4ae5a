package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimplifies(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, New(1, 2, 0, 0).Terms)
	assert.Equal(t, []float64{0}, New().Terms)
	assert.Equal(t, []float64{0}, New(0, 0).Terms)
	assert.True(t, New(0, 0).IsZero())
	assert.True(t, Formula{}.IsZero())
	assert.Equal(t, 2, New(1, 0, 3).Degree())
}

func TestArithmetic(t *testing.T) {
	f := New(1, 2)     // 2x + 1
	g := New(-1, 0, 1) // x^2 - 1

	assert.Equal(t, []float64{0, 2, 1}, f.Add(g).Terms)
	assert.Equal(t, []float64{2, 2, -1}, f.Sub(g).Terms)
	assert.Equal(t, []float64{-1, -2, 1, 2}, f.Mul(g).Terms)
	assert.True(t, f.Sub(f).IsZero())
}

func TestDivRem(t *testing.T) {
	q, r, err := New(-1, 0, 1).DivRem(New(-1, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, q.Terms)
	assert.True(t, r.IsZero())

	q, r, err = New(1, 0, 1).DivRem(New(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, q.Terms)
	assert.Equal(t, []float64{1}, r.Terms)

	q, r, err = New(3).DivRem(New(0, 1))
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, []float64{3}, r.Terms)

	_, _, err = New(1, 1).DivRem(New())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	assert.True(t, New(-1, 0, 1).HasFactor(New(1, 1)))
	assert.False(t, New(1, 0, 1).HasFactor(New(1, 1)))
}

func TestEvaluate(t *testing.T) {
	f := New(1, -3, 2) // 2x^2 - 3x + 1
	assert.Equal(t, 1.0, f.Evaluate(0))
	assert.Equal(t, 3.0, f.Evaluate(2))
	assert.Equal(t, 5.0, f.EvaluateDerivative(2))
	assert.Equal(t, -3.0, f.EvaluateDerivative(0))
}

func TestRoots(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want []float64
	}{
		{"constant", New(4), nil},
		{"linear", New(-4, 2), []float64{2}},
		{"two roots", New(1, -3, 2), []float64{0.5, 1}},
		{"double root", New(1, 2, 1), []float64{-1}},
		{"no real roots", New(1, 0, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Roots()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := New().Roots()
	assert.ErrorIs(t, err, ErrZeroFormula)
	_, err = New(0, 0, 0, 1).Roots()
	assert.ErrorIs(t, err, ErrDegreeTooHigh)
}

func TestStrings(t *testing.T) {
	f := New(1, -3, 2)
	assert.Equal(t, "2x^2 + -3x + 1", f.Expression("x"))
	assert.Equal(t, "f(t) = 2t^2 + -3t + 1", f.Equation("t"))
	assert.Equal(t, "Formula(1,-3,2)", f.String())
}
