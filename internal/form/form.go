// Package form encodes application/x-www-form-urlencoded request bodies the
// way the Robot webservice expects them: repeated list keys use the bracket
// form ("server[]=1&server[]=2"), nested structures use indexed bracket
// paths ("rules[input][0][name]=..."), brackets stay literal in keys, and
// spaces encode as "+".
package form

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
)

// Encode form-encodes a struct via its `url` tags.
func Encode(v interface{}) (string, error) {
	values, err := query.Values(v)
	if err != nil {
		return "", fmt.Errorf("encoding form values: %w", err)
	}

	return EncodeValues(values), nil
}

// EncodeValues encodes url.Values with sorted keys, preserving the order of
// repeated values per key.
func EncodeValues(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var buf strings.Builder

	for _, key := range keys {
		for _, value := range values[key] {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}

			buf.WriteString(escapeKey(key))
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}

	return buf.String()
}

// escapeKey percent-encodes a key but keeps the bracket notation literal.
func escapeKey(key string) string {
	escaped := url.QueryEscape(key)
	escaped = strings.ReplaceAll(escaped, "%5B", "[")
	escaped = strings.ReplaceAll(escaped, "%5D", "]")

	return escaped
}

type pair struct {
	key   string
	value string
}

// Builder accumulates key/value pairs in insertion order and encodes them as
// a form body. Child scopes keys under a bracket prefix for nested
// structures.
type Builder struct {
	prefix string
	pairs  *[]pair
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	pairs := make([]pair, 0, 8)

	return &Builder{pairs: &pairs}
}

// Set appends a key/value pair. The value is formatted with fmt.Sprint, so
// bools become "true"/"false" and numbers their decimal form.
func (b *Builder) Set(key string, value interface{}) {
	*b.pairs = append(*b.pairs, pair{key: b.scoped(key), value: fmt.Sprint(value)})
}

// Child returns a Builder whose keys are nested under the given key, e.g.
// Child("rules").Child("input") scopes "name" to "rules[input][name]".
func (b *Builder) Child(key string) *Builder {
	return &Builder{prefix: b.scoped(key), pairs: b.pairs}
}

func (b *Builder) scoped(key string) string {
	if b.prefix == "" {
		return key
	}

	return b.prefix + "[" + key + "]"
}

// Encode produces the form body in insertion order.
func (b *Builder) Encode() string {
	var buf strings.Builder

	for _, p := range *b.pairs {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}

		buf.WriteString(escapeKey(p.key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(p.value))
	}

	return buf.String()
}
