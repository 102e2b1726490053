package bcd

import "encoding/binary"

// MarshalBinary implements encoding.BinaryMarshaler.
//
// A zero value marshals to the single byte zero frame. Any other value
// marshals to a header byte, the big endian scale, the digit byte
// count as an unsigned varint, and the digit bytes.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	if d.Sign == Zero {
		return []byte{Zero.Tag << 6}, nil
	}

	if d.Sign != Positive && d.Sign != Negative {
		return nil, Error.New("invalid sign: %+v", d.Sign)
	}

	var scale []byte

	switch {
	case d.Scale == 0:
	case d.Scale <= 0xff:
		scale = []byte{byte(d.Scale)}
	case d.Scale <= 0xffff:
		scale = []byte{byte(d.Scale >> 8), byte(d.Scale)}
	case d.Scale <= 0xffffff:
		scale = []byte{byte(d.Scale >> 16), byte(d.Scale >> 8), byte(d.Scale)}
	default:
		return nil, Error.New("scale too large: %d", d.Scale)
	}

	if len(d.Digits) == 0 {
		return nil, Error.New("empty digits")
	}

	for i, b := range d.Digits {
		if b>>4 > 9 || b&0x0f > 9 {
			return nil, Error.New("invalid nibble in byte %d: %02x", i, b)
		}
	}

	count := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(count, uint64(len(d.Digits)))

	data = make([]byte, 0, 1+len(scale)+n+len(d.Digits))
	data = append(data, d.Sign.Tag<<6|byte(len(scale))<<4)
	data = append(data, scale...)
	data = append(data, count[:n]...)
	data = append(data, d.Digits...)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must
// hold exactly one frame.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty frame")
	}

	sign, scaleSize, err := parseHeader(data[0])
	if err != nil {
		return err
	}

	if sign == Zero {
		if len(data) != 1 {
			return Error.New("trailing bytes after zero frame: %d", len(data)-1)
		}

		*d = *zero()

		return nil
	}

	rest := data[1:]

	if len(rest) < scaleSize {
		return Error.New("truncated scale: want %d bytes, have %d", scaleSize, len(rest))
	}

	var scale uint32
	for _, b := range rest[:scaleSize] {
		scale = scale<<8 | uint32(b)
	}

	rest = rest[scaleSize:]

	count, n := binary.Uvarint(rest)
	if n <= 0 {
		return Error.New("invalid digit count")
	}

	rest = rest[n:]

	if count == 0 {
		return Error.New("empty digits")
	}

	if uint64(len(rest)) != count {
		return Error.New("truncated digits: want %d bytes, have %d", count, len(rest))
	}

	digits := make([]byte, count)
	copy(digits, rest)

	for i, b := range digits {
		if b>>4 > 9 || b&0x0f > 9 {
			return Error.New("invalid nibble in byte %d: %02x", i, b)
		}
	}

	*d = Decimal{
		Scale:  scale,
		Sign:   sign,
		Digits: digits,
	}

	return nil
}
