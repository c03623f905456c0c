package crypto

import (
	"fmt"
	"math/big"
	"strings"
)

// Hex returns the lower-case hex form of x without a prefix; nil encodes as "".
func Hex(x *big.Int) string {
	if x == nil {
		return ""
	}
	return x.Text(16)
}

// ParseHex parses a hex integer, accepting an optional 0x prefix; "" decodes to nil.
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, nil
	}
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return x, nil
}
