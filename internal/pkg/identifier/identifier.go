// Package identifier generates the human-facing identifiers handed out at
// registration time: the uppercase initials of the institution name followed
// by six random alphanumeric characters, e.g. "MIT4kZ91q" for "Madras
// Institute of Technology". Identifiers are immutable once assigned.
package identifier

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"
)

const randomChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const suffixLength = 6

// New generates an identifier derived from the given institution name.
func New(institution string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(institution) {
		r := []rune(word)[0]
		sb.WriteRune(unicode.ToUpper(r))
	}
	for i := 0; i < suffixLength; i++ {
		sb.WriteByte(randomChars[randomIndex(len(randomChars))])
	}
	return sb.String()
}

func randomIndex(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}
	return int(n.Int64())
}
