package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// stringify re-serializes a JSON document with the rules of JavaScript's
// JSON.stringify(value, null, indent): shortest round-trip numbers, decoded
// string escapes, and duplicate keys collapsed to their first position with
// the last value. An empty indent gives compact output.
func stringify(doc []byte, indent string) string {
	var b strings.Builder
	writeValue(&b, gjson.ParseBytes(doc), indent, "")
	return b.String()
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	var b strings.Builder
	writeString(&b, s)
	return b.String()
}

func writeValue(b *strings.Builder, v gjson.Result, indent, prefix string) {
	switch v.Type {
	case gjson.String:
		writeString(b, v.String())
	case gjson.Number:
		b.WriteString(formatNumber(v.Num))
	case gjson.True:
		b.WriteString("true")
	case gjson.False:
		b.WriteString("false")
	case gjson.JSON:
		if v.IsArray() {
			writeArray(b, v, indent, prefix)
		} else {
			writeObject(b, v, indent, prefix)
		}
	default:
		b.WriteString("null")
	}
}

func writeArray(b *strings.Builder, v gjson.Result, indent, prefix string) {
	items := v.Array()
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}

	inner := prefix + indent
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, inner)
		writeValue(b, item, indent, inner)
	}
	newline(b, indent, prefix)
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, v gjson.Result, indent, prefix string) {
	var keys []string
	values := make(map[string]gjson.Result)
	v.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, seen := values[name]; !seen {
			keys = append(keys, name)
		}
		values[name] = value
		return true
	})
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}

	sep := ":"
	if indent != "" {
		sep = ": "
	}

	inner := prefix + indent
	b.WriteByte('{')
	for i, name := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, indent, inner)
		writeString(b, name)
		b.WriteString(sep)
		writeValue(b, values[name], indent, inner)
	}
	newline(b, indent, prefix)
	b.WriteByte('}')
}

func newline(b *strings.Builder, indent, prefix string) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	b.WriteString(prefix)
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// formatNumber prints n like JavaScript's Number#toString: plain decimal
// between 1e-6 and 1e21, exponent form outside it.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n), math.IsInf(n, 0):
		return "null"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
