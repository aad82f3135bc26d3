package chain

import (
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// displayPrefix is how much of an address transfer listings show.
const displayPrefix = 25

// RandomAddress draws an EVM address from r and returns it lower-cased.
func RandomAddress(r io.Reader) (string, error) {
	var b [common.AddressLength]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", err
	}
	return strings.ToLower(common.BytesToAddress(b[:]).Hex()), nil
}

// Truncate shortens an address for list display, e.g. "0x1f9840a85d5af5bf1d1762f92...".
func Truncate(addr string) string {
	if len(addr) <= displayPrefix {
		return addr
	}
	return addr[:displayPrefix] + "..."
}

// Checksum returns the EIP-55 form of a hex address. Strings that are not
// addresses are returned unchanged.
func Checksum(addr string) string {
	if !common.IsHexAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}
