// Package keyutil converts between a key pair's private scalar and its
// canonical 32-byte big-endian encoding.
package keyutil

import (
	"math/big"

	"github.com/smallyu/go-keyutil/pkg/ecpair"
)

// PrivateKeyLength is the length in bytes of a private key buffer.
const PrivateKeyLength = 32

// PrivateScalarer is anything that can hand out a private curve scalar.
// *ecpair.KeyPair implements it.
type PrivateScalarer interface {
	PrivateScalar() *big.Int
}

// PrivateKeyBufferFromECPair encodes the private scalar of kp as exactly
// PrivateKeyLength big-endian bytes, left-padded with zeros.
//
// A scalar whose minimal encoding is longer than PrivateKeyLength is rejected
// with ErrOutOfRange rather than truncated. Only the byte length is checked.
func PrivateKeyBufferFromECPair(kp PrivateScalarer) ([]byte, error) {
	if kp == nil {
		return nil, malformed(MsgInvalidKeyPair)
	}
	d := kp.PrivateScalar()
	if d == nil || d.Sign() < 0 {
		return nil, malformed(MsgInvalidKeyPair)
	}
	raw := d.Bytes()
	if len(raw) > PrivateKeyLength {
		return nil, outOfRange(MsgExceedsOrder)
	}
	return leftPad(raw), nil
}

// PrivateKeyBufferToECPair decodes a PrivateKeyLength-byte big-endian buffer
// into a key pair. buf is neither modified nor retained.
//
// A buffer of any other length fails with ErrMalformedInput. A value that is
// zero or not below the curve order fails with ErrOutOfRange.
func PrivateKeyBufferToECPair(buf []byte, opts ...ecpair.Option) (*ecpair.KeyPair, error) {
	if err := checkWidth(buf); err != nil {
		return nil, err
	}
	n, err := ecpair.CurveOrder(opts...)
	if err != nil {
		return nil, err
	}
	d := new(big.Int).SetBytes(buf)
	if d.Sign() == 0 || d.Cmp(n) >= 0 {
		return nil, outOfRange(MsgOutOfRange)
	}
	// The curve already resolved above, so any failure here means the curve
	// rejected S as a scalar.
	kp, err := ecpair.FromScalar(d, opts...)
	if err != nil {
		return nil, outOfRange(MsgOutOfRange)
	}
	return kp, nil
}

// PrivateKeyValueToECPair is PrivateKeyBufferToECPair for values of unknown
// type, such as those crossing a JS or JSON boundary. Only []byte, [32]byte
// and *[32]byte are buffers; anything else fails with ErrMalformedInput.
func PrivateKeyValueToECPair(v interface{}, opts ...ecpair.Option) (*ecpair.KeyPair, error) {
	switch b := v.(type) {
	case []byte:
		return PrivateKeyBufferToECPair(b, opts...)
	case [PrivateKeyLength]byte:
		return PrivateKeyBufferToECPair(b[:], opts...)
	case *[PrivateKeyLength]byte:
		if b == nil {
			return nil, malformed(MsgInvalidBuffer)
		}
		return PrivateKeyBufferToECPair(b[:], opts...)
	default:
		return nil, malformed(MsgInvalidBuffer)
	}
}

// checkWidth enforces the fixed buffer width.
func checkWidth(buf []byte) error {
	if len(buf) != PrivateKeyLength {
		return malformed(MsgInvalidBuffer)
	}
	return nil
}

// leftPad returns raw right-aligned in a fresh PrivateKeyLength-byte slice.
// len(raw) must not exceed PrivateKeyLength.
func leftPad(raw []byte) []byte {
	out := make([]byte, PrivateKeyLength)
	copy(out[PrivateKeyLength-len(raw):], raw)
	return out
}
