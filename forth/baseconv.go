package forth

import "strings"

const baseChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// isBaseChar reports whether c is a digit of the given base, optionally
// yielding its value. Lower-case letters count.
func isBaseChar(c rune, base int, value *int) bool {
	if base < 2 || base > len(baseChars) {
		return false
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	pos := strings.IndexRune(baseChars, c)
	if pos < 0 || pos >= base {
		return false
	}
	if value != nil {
		*value = pos
	}
	return true
}

// toBaseInteger parses str as an unsigned run of base-N digits. Each
// accumulation round is checked by reversing it, and the final value must
// fit a signed 32-bit integer.
func toBaseInteger(str string, base int) (int64, error) {
	if base < 2 || base > len(baseChars) {
		return 0, errInvalidBase
	}

	var acc int64
	for _, c := range str {
		var value int
		if !isBaseChar(c, base, &value) {
			return 0, errInvalidChar
		}
		next := int64(base)*acc + int64(value)
		if (next-int64(value))/int64(base) != acc {
			return 0, errOverflow
		}
		acc = next
	}

	// 1<<31 itself is allowed through so a leading minus sign can still
	// produce MinInt32; the signed range check happens at the literal.
	if acc > 1<<31 {
		return 0, errOverflow
	}
	return acc, nil
}

// toBaseString renders an integer in the given base with digits 0-9A-Z.
func toBaseString(base int, integer int32) string {
	if base < 2 || base > len(baseChars) {
		return ""
	}

	var sb strings.Builder
	u := int64(integer)
	if u < 0 {
		sb.WriteByte('-')
		u = -u
	}

	var digits []byte
	for u >= int64(base) {
		digits = append(digits, baseChars[u%int64(base)])
		u /= int64(base)
	}
	digits = append(digits, baseChars[u])

	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}
