package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New generates a new token with the provided prefix. Tokens are used as
// globally unique identifiers for stored objects:
// ```
//	token.New("balance") // balance_3b2f1d9c6a8e4f07
// ```
func New(
	prefix string,
) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b))
}
