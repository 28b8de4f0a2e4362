// Package gravatar derives avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Gravatar protocol parameters: 200px, PG rated, "mystery man" fallback.
const (
	size    = "200"
	rating  = "pg"
	defImg  = "mm"
	baseURL = "https://www.gravatar.com/avatar"
)

// URL returns the gravatar URL for an email address. It is a pure function of
// the email: the protocol hashes the trimmed, lowercased address with MD5
// (identity, not security).
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%s?s=%s&r=%s&d=%s",
		baseURL, hex.EncodeToString(sum[:]), size, rating, defImg)
}
