package decode

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/internal/errs"
)

// Config is one `_zH` record: d is the payload, x a second mask and only the
// first character of the base64 decoded k is used, 0 when k is empty. A record
// without k is rejected. v is a
// marker the page never reads back, it may be a string or a number.
type Config struct {
	D []int           `json:"d"`
	K string          `json:"k"`
	V json.RawMessage `json:"v"`
	X []int           `json:"x"`
}

// Configs decodes the `_zH` payload. A malformed record only fails its own
// entry.
func Configs(s string) ([]mo.Result[Config], error) {
	txt, err := Base64(s)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err = json.Unmarshal([]byte(txt), &raw); err != nil {
		return nil, fmt.Errorf("%w: config registry: %v", errs.ErrBadData, err)
	}

	return lo.Map(raw, func(v json.RawMessage, i int) mo.Result[Config] {
		var c Config
		if err := json.Unmarshal(v, &c); err != nil {
			return mo.Err[Config](fmt.Errorf("%w: config %d: %v", errs.ErrBadData, i, err))
		}
		if !hasKey(v) {
			return mo.Err[Config](fmt.Errorf("%w: config %d: no key", errs.ErrBadData, i))
		}
		if len(c.D) == 0 || len(c.X) == 0 {
			return mo.Err[Config](fmt.Errorf("%w: config %d: missing fields", errs.ErrBadData, i))
		}
		return mo.Ok(c)
	}), nil
}

// hasKey reports whether the record carries k as a string, empty included.
func hasKey(record json.RawMessage) bool {
	var fields struct {
		K *string `json:"k"`
	}
	return json.Unmarshal(record, &fields) == nil && fields.K != nil
}

// Complex decodes one config record against the registry. Only characters
// with an index inside d, x and the registry are produced, and the result
// must look like a link.
func Complex(registry []string, c Config) mo.Option[string] {
	key, err := Base64(c.K)
	if err != nil && !errors.Is(err, errs.ErrNoData) {
		return mo.None[string]()
	}

	var mask rune
	if k := []rune(key); len(k) > 0 {
		mask = k[0]
	}

	var (
		b strings.Builder
		n = min(len(c.D), len(c.X), len(registry))
	)
	for i := 0; i < n; i++ {
		b.WriteRune(rune(c.D[i]) ^ rune(c.X[i]) ^ mask)
	}

	link := b.String()
	if link == "" || !strings.HasPrefix(link, "http") {
		return mo.None[string]()
	}

	return mo.Some(link)
}

// ComplexAll runs Complex over every record and keeps the links.
func ComplexAll(registry []string, configs []Config) []string {
	return lo.FilterMap(configs, func(c Config, _ int) (string, bool) {
		return Complex(registry, c).Get()
	})
}

// EncodeComplex builds the record Complex turns back into link. mask is
// repeated when shorter than link.
func EncodeComplex(link, key string, mask []int) Config {
	var k rune
	if r := []rune(key); len(r) > 0 {
		k = r[0]
	}
	if len(mask) == 0 {
		mask = []int{0}
	}

	runes := []rune(link)
	c := Config{
		D: make([]int, len(runes)),
		K: base64Encode(key),
		V: json.RawMessage(`"1"`),
		X: make([]int, len(runes)),
	}
	for i, r := range runes {
		c.X[i] = mask[i%len(mask)]
		c.D[i] = int(r ^ rune(c.X[i]) ^ k)
	}

	return c
}

func base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
