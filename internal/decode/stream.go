package decode

import (
	"strings"

	"github.com/animebay/animebay-scraper/internal/errs"
)

// Stream reverses the `_m`/`_a` scheme: encoded is xor-ed with the base64
// decoded key, repeating the key, and the result is base64 decoded again.
func Stream(encoded, key string) (string, error) {
	txt, err := Base64(key)
	if err != nil {
		return "", err
	}

	k := []rune(txt)
	if len(k) == 0 || encoded == "" {
		return "", errs.ErrBadData
	}

	return Base64(xor(encoded, k))
}

// EncodeStream is the inverse of Stream. key is the plain key, the page
// carries it base64 encoded.
func EncodeStream(link, key string) string {
	k := []rune(key)
	if len(k) == 0 {
		return ""
	}

	return xor(base64Encode(link), k)
}

func xor(input string, key []rune) string {
	var b strings.Builder
	for i, r := range []rune(input) {
		b.WriteRune(r ^ key[i%len(key)])
	}
	return b.String()
}
