package bcd

import "strings"

// Decimal is a sign-and-scale tagged packed decimal number.
//
// Digits holds two decimal digits per byte, least significant pair
// first. Scale is the number of digits after the decimal point in the
// source text. A Decimal is read-only after construction and owns its
// digit bytes outright.
type Decimal struct {
	Scale  uint32
	Sign   Sign
	Digits []byte
}

// zero returns the canonical zero value.
func zero() *Decimal {
	return &Decimal{
		Scale:  0,
		Sign:   Zero,
		Digits: []byte{0x00},
	}
}

// Parse converts a decimal literal into its packed form. The second
// return value is false if the text is not a valid literal.
//
// An accepted literal whose first character is '0' collapses to the
// canonical zero value without packing.
func Parse(text string) (*Decimal, bool) {
	if !Valid(text) {
		return nil, false
	}

	if text[0] == '0' {
		return zero(), true
	}

	sign := Positive
	if text[0] == '-' {
		sign = Negative
	}

	return &Decimal{
		Scale:  scale(text),
		Sign:   sign,
		Digits: pack(text),
	}, true
}

// Valid returns true if the text is a decimal literal: an optional
// leading sign, ASCII digits, and at most one decimal point. The
// second and last characters must be digits, so a point may only
// appear from the third character onward and never at the end.
func Valid(text string) bool {
	if len(text) == 0 {
		return false
	}

	if first := text[0]; first != '+' && first != '-' && !isDigit(first) {
		return false
	}

	if len(text) >= 2 && !isDigit(text[1]) {
		return false
	}

	if !isDigit(text[len(text)-1]) {
		return false
	}

	points := 0

	for i := 2; i < len(text)-1; i++ {
		switch {
		case text[i] == '.':
			points++
		case !isDigit(text[i]):
			return false
		}
	}

	return points <= 1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scale returns the count of digits after the decimal point.
func scale(text string) uint32 {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		return uint32(len(text) - i - 1)
	}

	return 0
}

// pack strips the sign and point characters and packs the remaining
// digits two per byte, least significant pair first. The text must
// already be a valid non-zero literal.
func pack(text string) []byte {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case '+', '-', '.':
			return -1
		}

		return r
	}, text)

	// A leading zero digit keeps the pairing exact without changing
	// the value.
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	n := len(digits) / 2
	packed := make([]byte, 0, n)

	for i := 0; i < n; i++ {
		index := 2*(n-i) - 1

		low := digits[index] - '0'
		high := digits[index-1] - '0'

		if low > 9 || high > 9 {
			panic("bcd: non-digit reached the packer")
		}

		packed = append(packed, high<<4|low)
	}

	return packed
}
