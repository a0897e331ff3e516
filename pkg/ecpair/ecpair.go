// Package ecpair holds an elliptic-curve key pair: a private scalar in
// [1, N) and the public point derived from it.
package ecpair

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-keyutil/internal/crypto/curves"
)

// DefaultCurve is used when no WithCurve option is given.
const DefaultCurve = "secp256k1"

var (
	ErrOutOfRange              = errors.New("private key out of range")
	ErrUnknownCurve            = curves.ErrUnknownCurve
	ErrUncompressedUnsupported = errors.New("ecpair: uncompressed public keys are only defined for secp256k1")
)

// KeyPair owns a validated private scalar and its public point.
// Construct with FromScalar or Generate. All methods accept a nil receiver.
type KeyPair struct {
	curve      curves.Curve
	d          *big.Int
	pub        curves.Point
	compressed bool
}

type options struct {
	curve        string
	uncompressed bool
}

// Option configures key pair construction.
type Option func(*options)

// WithCurve selects the curve by name ("secp256k1" or "ed25519").
func WithCurve(name string) Option {
	return func(o *options) { o.curve = name }
}

// WithUncompressed makes PublicKey return the 65-byte SEC1 encoding.
// Only valid for secp256k1.
func WithUncompressed() Option {
	return func(o *options) { o.uncompressed = true }
}

func resolve(opts []Option) (curves.Curve, *options, error) {
	o := &options{curve: DefaultCurve}
	for _, opt := range opts {
		opt(o)
	}
	curve, err := curves.ByName(o.curve)
	if err != nil {
		return nil, nil, err
	}
	if o.uncompressed && curve.Name() != "secp256k1" {
		return nil, nil, ErrUncompressedUnsupported
	}
	return curve, o, nil
}

// CurveOrder returns the order N of the curve the options select.
func CurveOrder(opts ...Option) (*big.Int, error) {
	curve, _, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return curve.Order(), nil
}

// FromScalar builds a key pair from d, which must satisfy 1 <= d < N.
// d is copied; later changes to it do not affect the key pair.
func FromScalar(d *big.Int, opts ...Option) (*KeyPair, error) {
	curve, o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !curves.InRange(d, curve.Order()) {
		return nil, ErrOutOfRange
	}
	d = new(big.Int).Set(d)
	pub, err := curve.ScalarBaseMult(d)
	if err != nil {
		return nil, fmt.Errorf("ecpair: derive public key: %w", err)
	}
	return &KeyPair{
		curve:      curve,
		d:          d,
		pub:        pub,
		compressed: !o.uncompressed,
	}, nil
}

// Generate creates a key pair from a uniformly random scalar.
func Generate(opts ...Option) (*KeyPair, error) {
	curve, _, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	d, err := curve.NewScalar()
	if err != nil {
		return nil, fmt.Errorf("ecpair: generate scalar: %w", err)
	}
	return FromScalar(d, opts...)
}

// PrivateScalar returns a copy of the private scalar, or nil for a nil key pair.
func (k *KeyPair) PrivateScalar() *big.Int {
	if k == nil || k.d == nil {
		return nil
	}
	return new(big.Int).Set(k.d)
}

// PublicKey returns the serialized public point, or nil for a nil key pair.
func (k *KeyPair) PublicKey() []byte {
	if k == nil || k.pub == nil {
		return nil
	}
	if !k.compressed {
		if p, ok := k.pub.(interface{ UncompressedBytes() []byte }); ok {
			return p.UncompressedBytes()
		}
	}
	return k.pub.Bytes()
}

func (k *KeyPair) Compressed() bool {
	return k != nil && k.compressed
}

// CurveName returns "" for a nil key pair.
func (k *KeyPair) CurveName() string {
	if k == nil || k.curve == nil {
		return ""
	}
	return k.curve.Name()
}

// Order returns a copy of the curve order of the key pair's curve, or nil
// for a nil key pair.
func (k *KeyPair) Order() *big.Int {
	if k == nil || k.curve == nil {
		return nil
	}
	return k.curve.Order()
}

// Equal reports whether both key pairs hold the same scalar on the same curve.
func (k *KeyPair) Equal(other *KeyPair) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.curve == nil || other.curve == nil || k.d == nil || other.d == nil {
		return false
	}
	return k.curve.Name() == other.curve.Name() && k.d.Cmp(other.d) == 0
}
