package canonical

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// SignatureField never takes part in the canonical string.
const SignatureField = "signature"

// String returns the canonical form of fields.
func String(fields map[string]any) (string, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == SignatureField {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		v, err := Value(fields[name])
		if err != nil {
			return "", errors.Wrapf(err, "field %q", name)
		}
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(v)
	}
	return b.String(), nil
}

// Value renders a single field value. Scalars use their plain string form,
// everything else is rendered with JSON.
func Value(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		return x.String(), nil
	case json.RawMessage:
		if len(bytes.TrimSpace(x)) == 0 {
			return "", nil
		}
		out, err := Compact(x)
		if err != nil {
			return "", err
		}
		if string(out) == "null" {
			return "", nil
		}
		return string(out), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", nil
		}
		return Value(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return "", nil
		}
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}

	// Floats, structs, maps and slices all go through JSON; for floats that
	// yields the shortest round-trip form (100, 10.5, 1e+21).
	out, err := JSON(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// JSON marshals v to compact JSON without HTML escaping or a trailing newline.
func JSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, domain.NewError(domain.ErrEncoding, "canonical json", errors.WithStack(err))
	}
	return rawLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// rawLineSeparators turns the encoder's \u2028 and \u2029 escapes back into
// raw UTF-8 so signed text matches what JSON.stringify produces. Escaped
// backslashes are copied as pairs, so a literal `\u2028` in a value survives.
func rawLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && b[i+1] == 'u' && string(b[i+2:i+5]) == "202" {
			switch b[i+5] {
			case '8':
				out = append(out, "\u2028"...)
				i += 5
				continue
			case '9':
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i])
		if i+1 < len(b) {
			i++
			out = append(out, b[i])
		}
	}
	return out
}

// Compact strips insignificant whitespace from already-encoded JSON.
func Compact(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, domain.NewError(domain.ErrEncoding, "canonical json", errors.WithStack(err))
	}
	return buf.Bytes(), nil
}
