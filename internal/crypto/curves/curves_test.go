package curves

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1Order(t *testing.T) {
	curve := NewSecp256k1()
	ord, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	assert.Equal(t, 0, ord.Cmp(curve.Order()))
	assert.Equal(t, "secp256k1", curve.Name())
}

func TestOrderIsCopied(t *testing.T) {
	for _, curve := range []Curve{NewSecp256k1(), NewEd25519()} {
		n := curve.Order()
		n.SetInt64(7)
		assert.NotEqual(t, 0, curve.Order().Cmp(big.NewInt(7)), curve.Name())
	}
}

func TestSecp256k1ScalarBaseMult(t *testing.T) {
	curve := NewSecp256k1()

	p, err := curve.ScalarBaseMult(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(p.Bytes()))

	sp, ok := p.(*Secp256k1Point)
	require.True(t, ok)
	assert.Len(t, sp.UncompressedBytes(), 65)
	assert.Equal(t, byte(0x04), sp.UncompressedBytes()[0])

	_, err = curve.ScalarBaseMult(big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidScalar)
	_, err = curve.ScalarBaseMult(curve.Order())
	assert.ErrorIs(t, err, ErrInvalidScalar)
	_, err = curve.ScalarBaseMult(nil)
	assert.ErrorIs(t, err, ErrInvalidScalar)
}

func TestNewScalarInRange(t *testing.T) {
	for _, curve := range []Curve{NewSecp256k1(), NewEd25519()} {
		for i := 0; i < 100; i++ {
			k, err := curve.NewScalar()
			require.NoError(t, err)
			assert.True(t, InRange(k, curve.Order()), curve.Name())
		}
	}
}

func TestByName(t *testing.T) {
	c, err := ByName("secp256k1")
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", c.Name())

	c, err = ByName("Ed25519")
	require.NoError(t, err)
	assert.Equal(t, "ed25519", c.Name())

	_, err = ByName("p256")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestInRange(t *testing.T) {
	n := big.NewInt(10)
	assert.False(t, InRange(nil, n))
	assert.False(t, InRange(big.NewInt(0), n))
	assert.False(t, InRange(big.NewInt(-1), n))
	assert.True(t, InRange(big.NewInt(1), n))
	assert.True(t, InRange(big.NewInt(9), n))
	assert.False(t, InRange(big.NewInt(10), n))
}
