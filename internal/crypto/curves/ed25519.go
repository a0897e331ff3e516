package curves

import (
	"math/big"

	"filippo.io/edwards25519"
)

// l = 2^252 + 27742317777372353535851937790883648493
var ed25519Order = func() *big.Int {
	tail, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	l := new(big.Int).Lsh(big.NewInt(1), 252)
	return l.Add(l, tail)
}()

type Ed25519Curve struct{}

// NewEd25519 returns the Ed25519 curve wrapper.
func NewEd25519() Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ed25519Curve) NewScalar() (*big.Int, error) {
	return randScalar(ed25519Order)
}

func (c *Ed25519Curve) ScalarBaseMult(k *big.Int) (Point, error) {
	if !InRange(k, ed25519Order) {
		return nil, ErrInvalidScalar
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(littleEndian32(k))
	if err != nil {
		return nil, err
	}
	return &Ed25519Point{p: edwards25519.NewIdentityPoint().ScalarBaseMult(s)}, nil
}

// littleEndian32 converts k (big-endian, at most 32 bytes) into the 32-byte
// little-endian form edwards25519 expects.
func littleEndian32(k *big.Int) []byte {
	var buf [32]byte
	k.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}

// Ed25519Point implements Point
type Ed25519Point struct {
	p *edwards25519.Point
}

func (p *Ed25519Point) Bytes() []byte {
	return p.p.Bytes()
}
