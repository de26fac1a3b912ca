package common

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// NewRationalFromDecimal converts a decimal literal such as "-0.125" or
// "1.5e3" into its exact fraction.
func NewRationalFromDecimal(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %s", ErrInvalidFormat, err.Error())
	}
	exp := d.Exponent()
	if exp >= 0 {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		return NewRational(p.Mul(p, d.Coefficient()), bigOne)
	}
	q := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	return NewRational(d.Coefficient(), q)
}

// Decimal renders r rounded half away from zero to the given places.
func (r Rational) Decimal(places int32) string {
	n := decimal.NewFromBigInt(&r.x, 0)
	d := decimal.NewFromBigInt(r.denominator(), 0)
	return n.DivRound(d, places).StringFixed(places)
}

func (r Rational) MarshalMsgpack() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	v, err := ParseRational(string(data))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := ParseRational(unquoted)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
