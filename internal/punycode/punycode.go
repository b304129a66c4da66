// Package punycode implements the RFC 3492 bootstring encoding used by
// IDNA to represent Unicode domain labels in ASCII, prefixed "xn--".
package punycode

import (
	"errors"
	"strings"
)

const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 0x80

	// maxInputLength bounds the number of scalars so the delta
	// arithmetic below (which uses uint32) cannot overflow.
	maxInputLength = 3854
)

// Error kinds, matching the taxonomy in the codec's spec.
var (
	ErrOverflow        = errors.New("punycode: overflow")
	ErrInvalidDigit    = errors.New("punycode: invalid digit")
	ErrInvalidCodePoint = errors.New("punycode: invalid code point")
	ErrMissingPrefix   = errors.New("punycode: missing xn-- prefix")
	ErrBasicInTail     = errors.New("punycode: non-ASCII code point in basic section")
	ErrInputTooLong    = errors.New("punycode: input too long")
)

const prefix = "xn--"

// Encode converts a Unicode label to its Punycode (bootstring) form,
// without the "xn--" ACE prefix. A label of only basic (< 0x80) code
// points is passed through unchanged by EncodeLabel, not by this
// function; this function always performs the bootstring transform
// assuming non-ASCII content is present.
func Encode(label string) (string, error) {
	runes := []rune(label)
	if len(runes) > maxInputLength {
		return "", ErrInputTooLong
	}

	var basic []rune
	for _, r := range runes {
		if r < initialN {
			basic = append(basic, r)
		}
	}

	var out strings.Builder
	out.WriteString(string(basic))
	h := len(basic)
	b := h
	if b > 0 {
		out.WriteByte('-')
	}

	n := uint32(initialN)
	delta := uint32(0)
	bias := initialBias

	for h < len(runes) {
		minCP := uint32(0x10FFFF + 1)
		for _, r := range runes {
			cp := uint32(r)
			if cp >= n && cp < minCP {
				minCP = cp
			}
		}
		if minCP-n > (0xFFFFFFFF-delta)/uint32(h+1) {
			return "", ErrOverflow
		}
		delta += (minCP - n) * uint32(h+1)
		n = minCP

		for _, r := range runes {
			cp := uint32(r)
			if cp < n {
				delta++
				if delta == 0 {
					return "", ErrOverflow
				}
			}
			if cp == n {
				q := delta
				for k := base; ; k += base {
					t := threshold(k, bias)
					if q < uint32(t) {
						out.WriteByte(digitToBasic(int(q)))
						break
					}
					out.WriteByte(digitToBasic(t + int((q-uint32(t))%uint32(base-t))))
					q = (q - uint32(t)) / uint32(base-t)
				}
				bias = adapt(delta, h+1, h == b)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}

	return out.String(), nil
}

// Decode converts the bootstring tail of a Punycode label (without the
// "xn--" prefix) back to Unicode.
func Decode(input string) (string, error) {
	n := uint32(initialN)
	i := uint32(0)
	bias := initialBias

	basicEnd := strings.LastIndexByte(input, '-')
	var output []rune
	if basicEnd >= 0 {
		for _, b := range []byte(input[:basicEnd]) {
			if b >= 0x80 {
				return "", ErrBasicInTail
			}
			output = append(output, rune(b))
		}
	}

	rest := input
	if basicEnd >= 0 {
		rest = input[basicEnd+1:]
	}

	pos := 0
	for pos < len(rest) {
		oldi := i
		w := uint32(1)
		for k := base; ; k += base {
			if pos >= len(rest) {
				return "", ErrInvalidDigit
			}
			digit, ok := basicToDigit(rest[pos])
			pos++
			if !ok {
				return "", ErrInvalidDigit
			}
			if uint32(digit) > (0xFFFFFFFF-i)/w {
				return "", ErrOverflow
			}
			i += uint32(digit) * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > 0xFFFFFFFF/uint32(base-t) {
				return "", ErrOverflow
			}
			w *= uint32(base - t)
		}
		outLen := len(output) + 1
		bias = adapt(i-oldi, outLen, oldi == 0)
		if i/uint32(outLen) > 0x10FFFF-n {
			return "", ErrOverflow
		}
		n += i / uint32(outLen)
		i %= uint32(outLen)
		if n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
			return "", ErrInvalidCodePoint
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}

	return string(output), nil
}

// EncodeLabel is the full label-level entry point: it adds the "xn--"
// prefix for non-ASCII labels and passes ASCII-only labels through
// unchanged.
func EncodeLabel(label string) (string, error) {
	for _, r := range label {
		if r >= initialN {
			enc, err := Encode(label)
			if err != nil {
				return "", err
			}
			return prefix + enc, nil
		}
	}
	return label, nil
}

// DecodeLabel reverses EncodeLabel; it requires the "xn--" ACE prefix.
func DecodeLabel(label string) (string, error) {
	lower := strings.ToLower(label)
	if !strings.HasPrefix(lower, prefix) {
		return "", ErrMissingPrefix
	}
	return Decode(label[len(prefix):])
}

func threshold(k, bias int) int {
	switch {
	case k <= bias:
		return tmin
	case k >= bias+tmax:
		return tmax
	default:
		return k - bias
	}
}

func adapt(delta uint32, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / uint32(numPoints)
	k := 0
	for delta > uint32((base-tmin)*tmax)/2 {
		delta /= uint32(base - tmin)
		k += base
	}
	return k + int((uint32(base-tmin+1)*delta)/(delta+skew))
}

func digitToBasic(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('0' + d - 26)
}

func basicToDigit(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= '0' && c <= '9':
		return int(c-'0') + 26, true
	default:
		return 0, false
	}
}
