package bcd

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
)

// parseHeader returns the sign and scale size encoded in a frame
// header byte.
func parseHeader(b byte) (sign Sign, scaleSize int, err error) {
	sign, ok := Signs.Match(b)
	if !ok {
		return sign, 0, Error.New("invalid sign tag: %08b", b)
	}

	if b&0b_0000_1111 != 0 {
		return sign, 0, Error.New("reserved header bits set: %08b", b)
	}

	scaleSize = int(b >> 4 & 0b_11)

	if sign == Zero && scaleSize != 0 {
		return sign, 0, Error.New("zero frame with scale: %08b", b)
	}

	return sign, scaleSize, nil
}

// Decoder reads packed decimal frames from a stream.
type Decoder struct {
	r io.Reader

	value [1]byte
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// ReadByte implements io.ByteReader.
func (d *Decoder) ReadByte() (b byte, err error) {
	_, err = io.ReadFull(d.r, d.value[:])
	if err != nil {
		return 0, err
	}

	return d.value[0], nil
}

// Decode reads a single frame into v. It returns io.EOF when the
// stream ends cleanly on a frame boundary.
func (d *Decoder) Decode(v *Decimal) (err error) {
	header, err := d.ReadByte()
	if err == io.EOF {
		return io.EOF
	} else if err != nil {
		return oops.Trace(err)
	}

	sign, scaleSize, err := parseHeader(header)
	if err != nil {
		return err
	}

	if sign == Zero {
		*v = *zero()

		return nil
	}

	var scale uint32

	if scaleSize > 0 {
		buf := make([]byte, scaleSize)

		_, err = io.ReadFull(d.r, buf)
		if err != nil {
			return oops.Trace(err)
		}

		for _, b := range buf {
			scale = scale<<8 | uint32(b)
		}
	}

	count, err := binary.ReadUvarint(d)
	if err != nil {
		return oops.Trace(err)
	}

	if count == 0 {
		return Error.New("empty digits")
	}

	digits := make([]byte, count)

	_, err = io.ReadFull(d.r, digits)
	if err != nil {
		return oops.Trace(err)
	}

	for i, b := range digits {
		if b>>4 > 9 || b&0x0f > 9 {
			return Error.New("invalid nibble in byte %d: %02x", i, b)
		}
	}

	*v = Decimal{
		Scale:  scale,
		Sign:   sign,
		Digits: digits,
	}

	return nil
}
