package snekvm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

func formatFloatBare(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	exp := 0
	if f != 0 {
		exp = int(math.Floor(math.Log10(math.Abs(f))))
	}
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloat(f float64) string {
	s := formatFloatBare(f)
	if strings.ContainsAny(s, ".eni") {
		return s
	}
	return s + ".0"
}

func formatComplex(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 && !math.Signbit(re) {
		return formatFloatBare(im) + "j"
	}
	sign := "+"
	if im < 0 || math.Signbit(im) && !math.IsNaN(im) {
		sign = "-"
		im = -im
	}
	return "(" + formatFloatBare(re) + sign + formatFloatBare(im) + "j)"
}

func quoteStr(s string) string {
	quote := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		quote = '"'
	}
	b := new(strings.Builder)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(b, `\u%04x`, r)
		default:
			fmt.Fprintf(b, `\U%08x`, r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func quoteBytes(bs []byte) string {
	quote := byte('\'')
	if strings.IndexByte(string(bs), '\'') >= 0 && strings.IndexByte(string(bs), '"') < 0 {
		quote = '"'
	}
	b := new(strings.Builder)
	b.WriteString("b")
	b.WriteByte(quote)
	for _, c := range bs {
		switch {
		case c == quote || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(b, `\x%02x`, c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// joinRepr renders elems separated by ", ".
func (rt *Runtime) joinRepr(elems []*Handle) (string, error) {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		s, err := rt.ReprOf(elem)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// enterRepr guards container reprs against self reference.
func (rt *Runtime) enterRepr(h *Handle) bool {
	if rt.repring == nil {
		rt.repring = make(map[*Handle]bool)
	}
	if rt.repring[h] {
		return false
	}
	rt.repring[h] = true
	return true
}

func (rt *Runtime) leaveRepr(h *Handle) {
	delete(rt.repring, h)
}
