package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1Order is N for secp256k1. It is never handed out directly.
var secp256k1Order = new(big.Int).Set(secp256k1.S256().Params().N)

type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1Order)
}

func (c *Secp256k1) NewScalar() (*big.Int, error) {
	return randScalar(secp256k1Order)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (Point, error) {
	if !InRange(k, secp256k1Order) {
		return nil, ErrInvalidScalar
	}
	var s secp256k1.ModNScalar
	s.SetByteSlice(k.Bytes())
	priv := secp256k1.NewPrivateKey(&s)
	defer priv.Zero()
	return &Secp256k1Point{pub: priv.PubKey()}, nil
}

// Secp256k1Point implements Point
type Secp256k1Point struct {
	pub *secp256k1.PublicKey
}

// Bytes returns the 33-byte compressed SEC1 encoding.
func (p *Secp256k1Point) Bytes() []byte {
	return p.pub.SerializeCompressed()
}

// UncompressedBytes returns the 65-byte uncompressed SEC1 encoding.
func (p *Secp256k1Point) UncompressedBytes() []byte {
	return p.pub.SerializeUncompressed()
}

// PublicKey exposes the underlying decred public key.
func (p *Secp256k1Point) PublicKey() *secp256k1.PublicKey {
	return p.pub
}
