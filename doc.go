// Package bcd provides packed decimal values.
//
// A decimal literal like "-99084.566" is parsed into three parts: a
// sign tag, a scale (the count of digits after the decimal point), and
// a sequence of bytes packing two decimal digits per byte, one per
// nibble.
//
// Digits
//
// The digit bytes are ordered least significant pair first. Within a
// byte the high nibble holds the more significant digit of the pair. A
// literal with an odd number of digits gains a leading zero digit so
// that the pairing is exact. For example "+1234.56789" packs as
// "0123456789":
//
//  | byte | high | low |
//  |------|------|-----|
//  | 0    | 8    | 9   |
//  | 1    | 6    | 7   |
//  | 2    | 4    | 5   |
//  | 3    | 2    | 3   |
//  | 4    | 0    | 1   |
//
// Every nibble is in the range 0-9. The sign and the point are carried
// outside the digit bytes, so the bytes alone do not determine the
// value.
//
// Zero
//
// An accepted literal whose first character is '0' collapses to the
// canonical zero value: sign Zero, scale 0, digits [0x00].
//
// Frame
//
// A decimal is framed for a byte stream with a single header byte:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------|-------|---------------|
//  | sign  | scale | reserved (0)  |
//  |       | size  |               |
//
// The header is followed by the scale (scale size bytes, big endian,
// up to 3), the digit byte count (unsigned varint), and the digit
// bytes. The sign tags are:
//
//  | 0 . 0 | Zero     | Complete frame, nothing follows.
//  | 0 . 1 | Positive |
//  | 1 . 0 | Negative |
//
// A zero value is always the single byte 0b0000_0000.
package bcd
