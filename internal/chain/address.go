package chain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

var ErrInvalidAddress = errors.New("invalid wallet address")

// ValidateAddress checks that address is well-formed for the given network.
// TRC20 addresses are base58check with a 0x41 version byte, BEP20 addresses
// are 20-byte hex addresses.
func ValidateAddress(network, address string) error {
	switch network {
	case "TRC20":
		return validateTronAddress(address)
	case "BEP20":
		if !common.IsHexAddress(address) {
			return ErrInvalidAddress
		}
		return nil
	default:
		return fmt.Errorf("unsupported network %q", network)
	}
}

// validateTronAddress decodes the base58 payload and verifies the TRON
// double-SHA256 checksum.
func validateTronAddress(address string) error {
	raw, err := base58.Decode(address)
	if err != nil {
		return ErrInvalidAddress
	}
	if len(raw) != 25 || raw[0] != 0x41 {
		return ErrInvalidAddress
	}

	body := raw[:21]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:4], raw[21:]) {
		return ErrInvalidAddress
	}
	return nil
}

// ValidTxHash reports whether hash looks like a 32-byte transaction hash.
// TRON hashes are bare hex, BSC hashes carry a 0x prefix. The hash is a
// user claim and is never verified on chain.
func ValidTxHash(hash string) bool {
	h := strings.TrimPrefix(hash, "0x")
	if len(h) != 64 {
		return false
	}
	_, err := hex.DecodeString(h)
	return err == nil
}
