// Package formula implements single variable polynomials.
package formula

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDegreeTooHigh is returned by Roots for polynomials above degree two.
	ErrDegreeTooHigh = errors.New("formula: cannot find roots of formulas past degree two")

	// ErrZeroFormula is returned by Roots for the zero polynomial, whose
	// roots are every number.
	ErrZeroFormula = errors.New("formula: cannot find roots of formula y = 0")

	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("formula: division by zero formula")
)

// Formula is a polynomial. Terms[i] is the coefficient of x^i. Formulas are
// kept simplified: the highest term is non-zero unless the formula is the
// constant 0, which has exactly one term.
type Formula struct {
	Terms []float64
}

// New creates a simplified formula from coefficients in ascending power
// order. New() is the zero formula.
func New(terms ...float64) Formula {
	f := Formula{Terms: append([]float64(nil), terms...)}
	return f.simplify()
}

func (f Formula) simplify() Formula {
	n := len(f.Terms)
	for n > 1 && f.Terms[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Formula{Terms: []float64{0}}
	}
	f.Terms = f.Terms[:n]
	return f
}

func (f Formula) term(i int) float64 {
	if i < len(f.Terms) {
		return f.Terms[i]
	}
	return 0
}

func (f Formula) Add(g Formula) Formula {
	out := make([]float64, max(len(f.Terms), len(g.Terms)))
	for i := range out {
		out[i] = f.term(i) + g.term(i)
	}
	return Formula{Terms: out}.simplify()
}

func (f Formula) Sub(g Formula) Formula {
	out := make([]float64, max(len(f.Terms), len(g.Terms)))
	for i := range out {
		out[i] = f.term(i) - g.term(i)
	}
	return Formula{Terms: out}.simplify()
}

func (f Formula) Mul(g Formula) Formula {
	if len(f.Terms) == 0 || len(g.Terms) == 0 {
		return New()
	}
	out := make([]float64, len(f.Terms)+len(g.Terms)-1)
	for i, a := range g.Terms {
		for j, b := range f.Terms {
			out[i+j] += a * b
		}
	}
	return Formula{Terms: out}.simplify()
}

// DivRem performs polynomial long division of f by divisor.
func (f Formula) DivRem(divisor Formula) (quotient, remainder Formula, err error) {
	divisor = divisor.simplify()
	if divisor.IsZero() {
		return Formula{}, Formula{}, ErrDivisionByZero
	}
	rem := append([]float64(nil), f.simplify().Terms...)
	dn := len(divisor.Terms)
	lead := divisor.Terms[dn-1]
	if len(rem) < dn {
		return New(), Formula{Terms: rem}, nil
	}

	quot := make([]float64, len(rem)-dn+1)
	for i := len(rem) - 1; i >= dn-1; i-- {
		q := rem[i] / lead
		quot[i-dn+1] = q
		for j := dn - 1; j >= 0; j-- {
			rem[i-dn+1+j] -= divisor.Terms[j] * q
		}
		rem = rem[:i]
	}
	return Formula{Terms: quot}.simplify(), Formula{Terms: rem}.simplify(), nil
}

func (f Formula) Div(divisor Formula) (Formula, error) {
	q, _, err := f.DivRem(divisor)
	return q, err
}

func (f Formula) Rem(divisor Formula) (Formula, error) {
	_, r, err := f.DivRem(divisor)
	return r, err
}

// HasFactor reports whether factor divides f with no remainder.
func (f Formula) HasFactor(factor Formula) bool {
	r, err := f.Rem(factor)
	return err == nil && r.IsZero()
}

// Evaluate returns f(x).
func (f Formula) Evaluate(x float64) float64 {
	sum := 0.0
	for i := len(f.Terms) - 1; i >= 0; i-- {
		sum = sum*x + f.Terms[i]
	}
	return sum
}

// EvaluateDerivative returns f'(x).
func (f Formula) EvaluateDerivative(x float64) float64 {
	sum := 0.0
	for i := len(f.Terms) - 1; i >= 1; i-- {
		sum = sum*x + float64(i)*f.Terms[i]
	}
	return sum
}

func (f Formula) Degree() int {
	return len(f.simplify().Terms) - 1
}

func (f Formula) IsZero() bool {
	s := f.simplify()
	return len(s.Terms) == 1 && s.Terms[0] == 0
}

// Roots returns the distinct real roots of f in ascending order.
func (f Formula) Roots() ([]float64, error) {
	f = f.simplify()
	if f.IsZero() {
		return nil, ErrZeroFormula
	}
	switch len(f.Terms) {
	case 1:
		return nil, nil
	case 2:
		return []float64{-f.Terms[0] / f.Terms[1]}, nil
	case 3:
		c, b, a := f.Terms[0], f.Terms[1], f.Terms[2]
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return nil, nil
		case disc == 0:
			return []float64{-b / 2 / a}, nil
		}
		sq := math.Sqrt(disc)
		r1, r2 := (-b+sq)/2/a, (-b-sq)/2/a
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		return []float64{r1, r2}, nil
	}
	return nil, ErrDegreeTooHigh
}

// Expression renders f as a sum of terms, highest power first, using
// variable as the name of the unknown.
func (f Formula) Expression(variable string) string {
	parts := make([]string, 0, len(f.Terms))
	for i := len(f.Terms) - 1; i >= 0; i-- {
		c := strconv.FormatFloat(f.Terms[i], 'g', -1, 64)
		switch {
		case i > 1:
			parts = append(parts, c+variable+"^"+strconv.Itoa(i))
		case i == 1:
			parts = append(parts, c+variable)
		default:
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " + ")
}

// Equation renders f as "f(x) = ...".
func (f Formula) Equation(variable string) string {
	return "f(" + variable + ") = " + f.Expression(variable)
}

func (f Formula) String() string {
	terms := make([]string, len(f.Terms))
	for i, t := range f.Terms {
		terms[i] = strconv.FormatFloat(t, 'g', -1, 64)
	}
	return "Formula(" + strings.Join(terms, ",") + ")"
}
