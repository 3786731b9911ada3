// Package netutil implements the URL and numeric helper filters:
// netloc extraction, power-of-two rounding, and stable string hashing.
package netutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Netloc returns the host[:port] component of a URL. Unparsable input
// surfaces as a filter-level error.
func Netloc(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to return the netloc of: %q", err.Error())).
			WithCause(err)
	}
	return parsed.Host, nil
}

// NetlocNoPort returns the host component of a URL without a port.
func NetlocNoPort(rawURL string) (string, error) {
	netloc, err := Netloc(rawURL)
	if err != nil {
		return "", err
	}
	return strings.SplitN(netloc, ":", 2)[0], nil
}

// NetOrigin returns the scheme://host[:port] origin of a URL.
func NetOrigin(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to return the netorigin of: %q", err.Error())).
			WithCause(err)
	}
	return fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host), nil
}

// BitLengthPowerOf2 returns the smallest power of two greater than or
// equal to value, computed from the bit length of value-1. Values
// below 1 round up to 1 (2^0).
func BitLengthPowerOf2(value int) int {
	if value <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(value-1))
}

// stringToIntModulus bounds the slot/port offset derived from a name.
const stringToIntModulus = 10240

// StringToInt derives a stable integer below 10240 from an arbitrary
// string: the sha256 hex digest is read as a base-36 integer and
// reduced modulo 10240. Deterministic for identical input.
func StringToInt(value string) int {
	digest := sha256.Sum256([]byte(value))
	hashed := new(big.Int)
	// The hex digest contains only 0-9a-f, so it always parses in base 36.
	hashed.SetString(hex.EncodeToString(digest[:]), 36)
	mod := new(big.Int).Mod(hashed, big.NewInt(stringToIntModulus))
	return int(mod.Int64())
}
