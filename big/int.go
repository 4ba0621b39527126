// Package big contains a mostly API-compatible "math/big".Int that marshals to
// and from base 10 text (JSON, XML) and big-endian bytes (CBOR).
//
// Group parameters and proof values are exchanged with other implementations
// as decimal numbers, so the text form is always base 10.
package big

import (
	cryptorand "crypto/rand"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/go-errors/errors"
)

// Int is an API-compatible "math/big".Int with decimal text marshaling.
// Only supports non-negative integers on the wire.
type Int big.Int

var errNegative = errors.New("marshaling negative integers is not supported")

func (i *Int) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if i.Sign() == -1 {
		return errNegative
	}
	return e.EncodeElement(i.String(), start)
}

// UnmarshalXML implements xml.Unmarshaler, attempting to parse the text of the specified element
// as a base 10 integer.
func (i *Int) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	tmp := struct {
		Str string `xml:",chardata"`
	}{}
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	return i.UnmarshalText([]byte(tmp.Str))
}

// MarshalText implements encoding.TextMarshaler, returning the base 10 digits of i.
func (i *Int) MarshalText() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errNegative
	}
	return i.Go().Append(nil, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for base 10 input.
func (i *Int) UnmarshalText(text []byte) error {
	if _, ok := i.Go().SetString(string(text), 10); !ok {
		return errors.Errorf("not a base 10 integer: %q", text)
	}
	if i.Sign() == -1 {
		return errNegative
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted decimal strings and
// bare JSON numbers are accepted.
func (i *Int) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return i.UnmarshalText([]byte(s))
	}
	return i.UnmarshalText(b)
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the big-endian
// bytes of i. It is picked up by the CBOR encoder.
func (i *Int) MarshalBinary() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errNegative
	}
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Int) UnmarshalBinary(data []byte) error {
	i.SetBytes(data)
	return nil
}

// RandInt wraps "crypto/rand".Int:
// returns a uniform random value in [0, max). It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	i, err := cryptorand.Int(rnd, max.Go())
	return Convert(i), err
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Go converts to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API, as far as it is used in this module.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune)  { i.Go().Format(s, ch) }
func (i *Int) Bytes() []byte                { return i.Go().Bytes() }
func (i *Int) BitLen() int                  { return i.Go().BitLen() }
func (i *Int) Bit(n int) uint               { return i.Go().Bit(n) }
func (i *Int) Bits() []big.Word             { return i.Go().Bits() }
func (i *Int) Int64() int64                 { return i.Go().Int64() }
func (i *Int) IsInt64() bool                { return i.Go().IsInt64() }
func (i *Int) Sign() int                    { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int               { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool     { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string               { return i.Go().String() }
func (i *Int) Text(base int) string         { return i.Go().Text(base) }
func (i *Int) SetInt64(x int64) *Int        { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int      { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int              { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Neg(x *Int) *Int              { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Add(x, y *Int) *Int           { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int           { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int           { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int           { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int     { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int      { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int      { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) And(x, y *Int) *Int           { return Convert(i.Go().And(x.Go(), y.Go())) }
func (i *Int) Exp(x, y, m *Int) *Int        { return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go())) }
func (i *Int) GCD(x, y, a, b *Int) *Int     { return Convert(i.Go().GCD(x.Go(), y.Go(), a.Go(), b.Go())) }
func (i *Int) ModInverse(g, n *Int) *Int    { return Convert(i.Go().ModInverse(g.Go(), n.Go())) }
func (i *Int) Rand(rnd *rand.Rand, n *Int) *Int {
	return Convert(i.Go().Rand(rnd, n.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
