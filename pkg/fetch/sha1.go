package fetch

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Sum returns the lowercase hex SHA-1 of b. The upstream
// distribution protocol names and checks every object by SHA-1;
// this is interop, not a security boundary.
func Sum(b []byte) string {
	h := sha1.Sum(b)
	return hex.EncodeToString(h[:])
}

func Verify(b []byte, hexDigest string) bool {
	return Sum(b) == strings.ToLower(hexDigest)
}
