package curves

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrUnknownCurve is returned by ByName for unsupported curve names.
var ErrUnknownCurve = errors.New("curves: unknown curve")

// ErrInvalidScalar is returned when a scalar is outside [1, N).
var ErrInvalidScalar = errors.New("curves: scalar out of range")

// Point represents a point on an elliptic curve.
type Point interface {
	// Bytes returns the compressed serialization of the point.
	Bytes() []byte
}

// Curve defines the curve parameters and the base point multiplication a key
// pair needs to derive its public point.
type Curve interface {
	// Name returns the canonical name of the curve (e.g. "secp256k1").
	Name() string

	// Order returns a copy of the order of the base point (group order).
	Order() *big.Int

	// NewScalar generates a random scalar in [1, N).
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G. k must lie in [1, N).
	ScalarBaseMult(k *big.Int) (Point, error)
}

// ByName returns the curve registered under name. Lookup is case-insensitive.
func ByName(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case "secp256k1":
		return NewSecp256k1(), nil
	case "ed25519":
		return NewEd25519(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// InRange reports whether 1 <= k < order.
func InRange(k, order *big.Int) bool {
	return k != nil && k.Sign() > 0 && k.Cmp(order) < 0
}

// randScalar generates a random integer in [1, order).
func randScalar(order *big.Int) (*big.Int, error) {
	max := new(big.Int).Sub(order, big.NewInt(1))
	k, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}
