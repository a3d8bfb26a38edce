// Package decode reverses the obfuscation schemes witanime uses to hide its server links.
package decode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/animebay/animebay-scraper/internal/errs"
)

// Base64 decodes s to text. Whitespace is ignored and padding is optional.
func Base64(s string) (string, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return "", errs.ErrNoData
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return string(data), nil
	}

	raw := strings.TrimRight(s, "=")
	if data, err = base64.RawStdEncoding.DecodeString(raw); err == nil {
		return string(data), nil
	}
	if data, err = base64.RawURLEncoding.DecodeString(raw); err == nil {
		return string(data), nil
	}

	return "", fmt.Errorf("%w: base64: %v", errs.ErrBadData, err)
}

// Registry decodes the comma separated resource registry.
func Registry(s string) ([]string, error) {
	txt, err := Base64(s)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, v := range strings.Split(txt, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}

	return result, nil
}
