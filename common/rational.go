package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidFormat  = errors.New("invalid rational format")
)

var bigOne = big.NewInt(1)

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0.
type Rational struct {
	x big.Int
	y big.Int
}

type RationalRange struct {
	Start Rational
	End   Rational
}

func greatestCommonDivisor(a, b *big.Int) *big.Int {
	a, b = new(big.Int).Set(a), new(big.Int).Set(b)
	for b.Sign() != 0 {
		a, b = b, a.Mod(a, b)
	}
	return a
}

// NewRational reduces numerator/denominator to canonical form. The sign of
// the result is negative iff exactly one of the inputs is negative.
func NewRational(numerator, denominator *big.Int) (v Rational, err error) {
	if denominator.Sign() == 0 {
		return v, ErrDivisionByZero
	}
	if numerator.Sign() == 0 {
		v.y.Set(bigOne)
		return v, nil
	}

	var p, q big.Int
	p.Abs(numerator)
	q.Abs(denominator)
	gcd := greatestCommonDivisor(&p, &q)
	v.x.Quo(&p, gcd)
	v.y.Quo(&q, gcd)
	if numerator.Sign() != denominator.Sign() {
		v.x.Neg(&v.x)
	}
	return v, nil
}

func DivBy(numerator, denominator int64) Rational {
	return DivByBig(big.NewInt(numerator), big.NewInt(denominator))
}

func DivByBig(numerator, denominator *big.Int) Rational {
	v, err := NewRational(numerator, denominator)
	if err != nil {
		panic(fmt.Errorf("DivBy: %s/%s %w", numerator, denominator, err))
	}
	return v
}

func NewRationalFromString(s string) Rational {
	v, err := ParseRational(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseRational accepts INTEGER or INTEGER/INTEGER, each part with at most
// one leading minus sign.
func ParseRational(s string) (Rational, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		parts = append(parts, "1")
	case 2:
	default:
		return Rational{}, fmt.Errorf("%w: %q has %d separators", ErrInvalidFormat, s, len(parts)-1)
	}

	var negative bool
	values := make([]*big.Int, 2)
	for i, part := range parts {
		if strings.HasPrefix(part, "-") {
			negative = !negative
			part = part[1:]
		}
		if part == "" || part[0] == '-' || part[0] == '+' {
			return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		n, ok := new(big.Int).SetString(part, 10)
		if !ok {
			return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		values[i] = n
	}
	if negative {
		values[0].Neg(values[0])
	}
	return NewRational(values[0], values[1])
}

func (r Rational) denominator() *big.Int {
	if r.y.Sign() == 0 {
		return bigOne
	}
	return &r.y
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(&r.x)
}

// Denom returns a copy of the denominator, always positive.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.denominator())
}

func (r Rational) Sign() int {
	return r.x.Sign()
}

func (r Rational) IsInt() bool {
	return r.denominator().Cmp(bigOne) == 0
}

func (r Rational) Neg() (v Rational) {
	v.x.Neg(&r.x)
	v.y.Set(r.denominator())
	return
}

func (r Rational) Abs() (v Rational) {
	v.x.Abs(&r.x)
	v.y.Set(r.denominator())
	return
}

func (r Rational) Add(x Rational) Rational {
	var n, m big.Int
	n.Mul(&r.x, x.denominator())
	m.Mul(&x.x, r.denominator())
	n.Add(&n, &m)
	m.Mul(r.denominator(), x.denominator())
	return reduce(&n, &m)
}

func (r Rational) Sub(x Rational) Rational {
	var n, m big.Int
	n.Mul(&r.x, x.denominator())
	m.Mul(&x.x, r.denominator())
	n.Sub(&n, &m)
	m.Mul(r.denominator(), x.denominator())
	return reduce(&n, &m)
}

func (r Rational) Mul(x Rational) Rational {
	var n, m big.Int
	n.Mul(&r.x, &x.x)
	m.Mul(r.denominator(), x.denominator())
	return reduce(&n, &m)
}

func (r Rational) Div(x Rational) (Rational, error) {
	if x.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	var n, m big.Int
	n.Mul(&r.x, x.denominator())
	m.Mul(r.denominator(), &x.x)
	return NewRational(&n, &m)
}

func (r Rational) Inv() (Rational, error) {
	if r.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return NewRational(r.denominator(), &r.x)
}

// reduce is only reached with a product of two positive denominators.
func reduce(n, m *big.Int) Rational {
	v, err := NewRational(n, m)
	if err != nil {
		panic(fmt.Errorf("reduce: %s/%s %w", n, m, err))
	}
	return v
}

func (r Rational) Cmp(x Rational) int {
	var a, b big.Int
	a.Mul(&r.x, x.denominator())
	b.Mul(&x.x, r.denominator())
	return a.Cmp(&b)
}

func (r Rational) Equal(x Rational) bool {
	return r.Cmp(x) == 0
}

func (r Rational) RangeTo(end Rational) RationalRange {
	return RationalRange{Start: r, End: end}
}

func (rr RationalRange) Contains(v Rational) bool {
	return v.Cmp(rr.Start) >= 0 && v.Cmp(rr.End) <= 0
}

func (rr RationalRange) String() string {
	return rr.Start.String() + ".." + rr.End.String()
}

// Rat converts r to a freshly allocated *big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(&r.x, r.denominator())
}

func (r Rational) String() string {
	if r.IsInt() {
		return r.x.String()
	}
	return r.x.String() + "/" + r.y.String()
}
