package bcd

// Sign is the sign tag of a decimal value. Zero is a distinguished
// sign: it is assigned whenever the value is zero, never Positive or
// Negative.
type Sign struct {
	Tag  byte
	Abbr string
}

// Match returns true if this sign matches the given frame header.
func (s Sign) Match(b byte) bool {
	return b>>6 == s.Tag
}

type signs []Sign

func (ss signs) Match(b byte) (s Sign, ok bool) {
	for _, s := range ss {
		if s.Match(b) {
			return s, true
		}
	}

	return s, false
}

var (
	Zero     = Sign{0b_00, "z"}
	Positive = Sign{0b_01, "+"}
	Negative = Sign{0b_10, "-"}

	Signs = signs{
		Zero,
		Positive,
		Negative,
	}
)
