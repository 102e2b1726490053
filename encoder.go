package bcd

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes packed decimal frames to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a single frame.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
