package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber converts a NUMBER token's raw lexeme (or a numeral
// string passed to `tonumber`) into an int64 or float64, per
// SPEC_FULL.md §3's evaluator-resolves-the-literal clarification: the
// parser only classifies a lexeme as LitInt/LitFloat from its surface
// form; the actual value conversion happens here, at evaluation time.
//
// Decimal integers that overflow int64, and any literal containing a
// '.' or an exponent marker, resolve to float64 — matching real Lua's
// "a numeral with no fractional part and no exponent is an integer
// unless it overflows, in which case it becomes a float" rule. Hex
// integers wrap around on overflow instead of promoting to float,
// because hex literals are bit patterns in Lua, not arithmetic values.
func ParseNumber(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty numeral")
	}
	neg := false
	body := raw
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return parseHex(body[2:], neg)
	}
	if strings.ContainsAny(body, ".eE") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number near %q", raw)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil, fmt.Errorf("malformed number near %q", raw)
		}
		return f, nil
	}
	return i, nil
}

// parseHex parses the digits following "0x"/"0X" (sign already
// stripped into neg). A '.' or 'p'/'P' binary exponent marker makes it
// a hex float; otherwise it is a hex integer, accumulated with wrapping
// uint64 arithmetic so overflow wraps modulo 2^64 rather than erroring
// or promoting to float, matching Lua's hex-literal semantics.
func parseHex(digits string, neg bool) (Value, error) {
	if digits == "" {
		return nil, fmt.Errorf("malformed number: empty hex literal")
	}
	if !strings.ContainsAny(digits, ".pP") {
		var acc uint64
		for i := 0; i < len(digits); i++ {
			d, ok := hexDigit(digits[i])
			if !ok {
				return nil, fmt.Errorf("malformed number near %q", digits)
			}
			acc = acc*16 + uint64(d)
		}
		n := int64(acc)
		if neg {
			n = -n
		}
		return n, nil
	}
	return parseHexFloat(digits, neg)
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// parseHexFloat parses a hex float mantissa with an optional binary
// exponent (`1.8p3` style, Go's strconv requires the exponent to be
// present and this dialect's lexer permits it to be omitted, so this
// is hand-rolled rather than delegated to strconv.ParseFloat).
func parseHexFloat(digits string, neg bool) (Value, error) {
	mantissa := digits
	exp := 0
	if i := strings.IndexAny(digits, "pP"); i >= 0 {
		mantissa = digits[:i]
		e, err := strconv.Atoi(digits[i+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed hex float exponent near %q", digits)
		}
		exp = e
	}
	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
	}
	var value float64
	for i := 0; i < len(intPart); i++ {
		d, ok := hexDigit(intPart[i])
		if !ok {
			return nil, fmt.Errorf("malformed number near %q", digits)
		}
		value = value*16 + float64(d)
	}
	scale := 1.0 / 16.0
	for i := 0; i < len(fracPart); i++ {
		d, ok := hexDigit(fracPart[i])
		if !ok {
			return nil, fmt.Errorf("malformed number near %q", digits)
		}
		value += float64(d) * scale
		scale /= 16
	}
	value *= pow2(exp)
	if neg {
		value = -value
	}
	return value, nil
}

func pow2(exp int) float64 {
	result := 1.0
	neg := exp < 0
	if neg {
		exp = -exp
	}
	for i := 0; i < exp; i++ {
		result *= 2
	}
	if neg {
		return 1 / result
	}
	return result
}
