// Package idna implements the UTS #46 Compatibility Processing
// pipeline: map, NFC-normalize, split into labels, validate, and
// Punycode-encode where needed. Parameters are fixed per the URL
// standard's profile: transitional=false, check_hyphens=false,
// check_bidi=true, check_joiners=true; use_std3_ascii_rules and
// verify_dns_length follow the caller's "be strict" flag.
package idna

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/go-weburl/weburl/internal/punycode"
)

// FailureKind enumerates why ToASCII rejected a label or domain.
type FailureKind int

const (
	_ FailureKind = iota
	DisallowedCodePoint
	IllFormedUTF8
	LabelValidation
	DNSLength
	PunycodeFailure
)

// Error reports a typed IDNA failure.
type Error struct {
	Kind  FailureKind
	Label string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case DisallowedCodePoint:
		return "idna: disallowed code point in label " + e.Label
	case IllFormedUTF8:
		return "idna: ill-formed utf-8 input"
	case LabelValidation:
		return "idna: label validation failed for " + e.Label
	case DNSLength:
		return "idna: length limit exceeded for " + e.Label
	case PunycodeFailure:
		s := "idna: punycode failure for " + e.Label
		if e.Err != nil {
			s += ": " + e.Err.Error()
		}
		return s
	default:
		return "idna: invalid domain"
	}
}

func (e *Error) Unwrap() error { return e.Err }

const acePrefix = "xn--"

// ToASCII implements the ToASCII operation: map, normalize, split,
// validate, and Punycode-encode. beStrict enables
// use_std3_ascii_rules and verify_dns_length.
func ToASCII(input string, beStrict bool) (string, error) {
	mapped, err := mapAndNormalize(input, beStrict)
	if err != nil {
		return "", err
	}

	labels := strings.Split(mapped, ".")
	out := make([]string, len(labels))
	total := 0
	for i, label := range labels {
		encoded, err := processLabel(label, beStrict)
		if err != nil {
			return "", err
		}
		if beStrict {
			if l := len(encoded); l < 1 || l > 63 {
				return "", &Error{Kind: DNSLength, Label: label}
			}
		}
		out[i] = encoded
		total += len(encoded)
	}
	result := strings.Join(out, ".")
	if beStrict && len(result) > 253 {
		return "", &Error{Kind: DNSLength, Label: result}
	}
	return result, nil
}

// ToUnicode implements the ToUnicode operation: like ToASCII but the
// final label-level step Punycode-decodes instead of encoding, and
// never fails validation (best-effort, matching browsers' leniency
// when displaying a hostname).
func ToUnicode(input string) (string, error) {
	mapped, err := mapAndNormalize(input, false)
	if err != nil {
		return "", err
	}
	labels := strings.Split(mapped, ".")
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), acePrefix) {
			if dec, err := punycode.DecodeLabel(label); err == nil {
				labels[i] = dec
			}
		}
	}
	return strings.Join(labels, "."), nil
}

// mapAndNormalize runs pipeline steps 1-3: decode, map each scalar per
// the IDNA table, and NFC-normalize the result.
func mapAndNormalize(input string, useSTD3 bool) (string, error) {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		e := lookup(r)
		switch e.status {
		case StatusValid, StatusDeviation:
			b.WriteRune(r)
		case StatusIgnored:
			// dropped
		case StatusMapped:
			b.WriteString(string(e.repl))
		case StatusDisallowedSTD3Valid:
			if useSTD3 {
				return "", &Error{Kind: DisallowedCodePoint, Label: string(r)}
			}
			b.WriteRune(r)
		case StatusDisallowedSTD3Mapped:
			if useSTD3 {
				return "", &Error{Kind: DisallowedCodePoint, Label: string(r)}
			}
			b.WriteString(string(e.repl))
		default: // StatusDisallowed
			return "", &Error{Kind: DisallowedCodePoint, Label: string(r)}
		}
	}
	return norm.NFC.String(b.String()), nil
}

// processLabel validates a single label and Punycode-encodes it if it
// contains any non-ASCII scalar. A label already in Punycode form
// (xn--...) is decoded, validated without re-mapping, and re-encoded.
func processLabel(label string, beStrict bool) (string, error) {
	unicodeLabel := label
	if strings.HasPrefix(strings.ToLower(label), acePrefix) {
		dec, err := punycode.DecodeLabel(label)
		if err != nil {
			return "", &Error{Kind: PunycodeFailure, Label: label, Err: err}
		}
		unicodeLabel = dec
	}

	if err := validateLabel(unicodeLabel); err != nil {
		return "", err
	}

	encoded, err := punycode.EncodeLabel(unicodeLabel)
	if err != nil {
		return "", &Error{Kind: PunycodeFailure, Label: label, Err: err}
	}
	return encoded, nil
}

// validateLabel applies UTS46's label validation criteria:
// non-empty, no leading combining mark, minimal ContextJ rule for
// ZWJ/ZWNJ, and a Bidi check (approximated by rejecting any label
// that contains an R, AL or AN character at all, rather than the full
// RFC 5893 rule set).
func validateLabel(label string) error {
	if label == "" {
		return &Error{Kind: LabelValidation, Label: label}
	}
	runes := []rune(label)
	if isCombiningMark(runes[0]) {
		return &Error{Kind: LabelValidation, Label: label}
	}
	for i, r := range runes {
		if r == 0x200C || r == 0x200D {
			if i == 0 || !isCombiningMark(runes[i-1]) {
				return &Error{Kind: LabelValidation, Label: label}
			}
		}
	}
	if isBidiLabel(label) {
		return &Error{Kind: LabelValidation, Label: label}
	}
	return nil
}

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}

// isBidiLabel reports whether label contains any character whose Bidi
// class is R, AL, or AN, per the glossary's "Bidi domain name".
func isBidiLabel(label string) bool {
	for _, r := range label {
		p, size := bidi.Lookup([]byte(string(r)))
		if size == 0 {
			continue
		}
		switch p.Class() {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}
