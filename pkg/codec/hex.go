package codec

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const hexPrefix = "0x"

// EncodeHex renders v as "0x" followed by uppercase hex digits without
// padding: 4 → "0x4", 74 → "0x4A".
func EncodeHex(v *big.Int) string {
	return hexPrefix + strings.ToUpper(v.Text(16))
}

// DecodeHex parses a value produced by EncodeHex. The prefix is mandatory;
// digits may be of either case.
func DecodeHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return nil, errors.WithMessagef(ErrMalformedHex, "%q lacks the 0x prefix", s)
	}
	digits := s[len(hexPrefix):]
	if digits == "" {
		return nil, errors.WithMessagef(ErrMalformedHex, "%q has no digits", s)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return nil, errors.WithMessagef(ErrMalformedHex, "%q contains %q", s, r)
		}
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, errors.WithMessagef(ErrMalformedHex, "%q", s)
	}
	return v, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
