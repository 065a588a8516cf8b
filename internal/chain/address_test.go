package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	// USDT contract addresses on TRON and BSC, both well-formed.
	assert.NoError(t, ValidateAddress("TRC20", "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"))
	assert.NoError(t, ValidateAddress("BEP20", "0x55d398326f99059fF775485246999027B3197955"))

	assert.Error(t, ValidateAddress("TRC20", "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6u")) // bad checksum
	assert.Error(t, ValidateAddress("TRC20", "not-base58-0OIl"))
	assert.Error(t, ValidateAddress("TRC20", "0x55d398326f99059fF775485246999027B3197955"))
	assert.Error(t, ValidateAddress("BEP20", "0x55d398"))
	assert.Error(t, ValidateAddress("ERC20", "0x55d398326f99059fF775485246999027B3197955"))
}

func TestValidTxHash(t *testing.T) {
	assert.True(t, ValidTxHash("0x"+hex64))
	assert.True(t, ValidTxHash(hex64))
	assert.False(t, ValidTxHash("abc123"))
	assert.False(t, ValidTxHash(hex64+"00"))
	assert.False(t, ValidTxHash("g"+hex64[1:]))
}

const hex64 = "b5bb9d8014a0f9b1d61e21e796d78dccdf1352f23cd32812f4850b878ae4944c"
