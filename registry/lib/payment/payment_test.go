package payment

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(
	t *testing.T,
) {
	seller, royalty := Split(big.NewInt(100), 10)
	assert.Equal(t, "90", seller.String())
	assert.Equal(t, "10", royalty.String())

	// The royalty rounds down; the remainder accrues to the seller.
	seller, royalty = Split(big.NewInt(101), 33)
	assert.Equal(t, "68", seller.String())
	assert.Equal(t, "33", royalty.String())

	seller, royalty = Split(big.NewInt(1), 50)
	assert.Equal(t, "1", seller.String())
	assert.Equal(t, "0", royalty.String())
}

func TestSplitBounds(
	t *testing.T,
) {
	seller, royalty := Split(big.NewInt(100), 0)
	assert.Equal(t, "100", seller.String())
	assert.Equal(t, "0", royalty.String())

	seller, royalty = Split(big.NewInt(100), 100)
	assert.Equal(t, "0", seller.String())
	assert.Equal(t, "100", royalty.String())

	seller, royalty = Split(big.NewInt(0), 10)
	assert.Equal(t, "0", seller.String())
	assert.Equal(t, "0", royalty.String())
}

func TestSplitSumInvariant(
	t *testing.T,
) {
	amounts := []int64{0, 1, 7, 99, 100, 101, 123456789}
	for _, a := range amounts {
		for pct := int8(0); pct <= 100; pct += 7 {
			seller, royalty := Split(big.NewInt(a), pct)
			sum := new(big.Int).Add(seller, royalty)
			assert.Equal(t, big.NewInt(a).String(), sum.String())
			assert.True(t, royalty.Sign() >= 0)
			assert.True(t, seller.Sign() >= 0)
		}
	}
}
