// Package cbor provides helper functions for encoding and decoding CBOR
// by wrapping functions provided by github.com/fxamacker/cbor.
//
//  1. CBOR is encoded using Core Deterministic Encoding defined in
//     RFC 8949, so that equal proofs always encode to equal bytes.
//  2. CBOR decoder detects and rejects duplicate map keys, which is
//     an important requirement in security sensitive applications.
//  3. Big integers are carried as plain byte strings (see big.Int.MarshalBinary),
//     so tags are not used at all.
//
// For more info, see:
//   - https://github.com/fxamacker/cbor
//   - https://tools.ietf.org/html/rfc8949
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

// MaxArrayElements bounds the number of response values a decoded proof may contain.
const MaxArrayElements = 1024 * 64

// MaxMapPairs bounds the number of pairs in a decoded map. A proof uses two.
const MaxMapPairs = 64

var (
	encOptions = cbor.EncOptions{
		// See https://datatracker.ietf.org/doc/html/rfc8949#section-4.2.1
		IndefLength: cbor.IndefLengthForbidden,
		Sort:        cbor.SortCoreDeterministic,
		TagsMd:      cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,

		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,

		TagsMd:  cbor.TagsForbidden,
		TimeTag: cbor.DecTagIgnored,

		// Unknown fields are tolerated for forward compatibility
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}
