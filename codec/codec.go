// Package codec implements the compact binary form shared by tasks and the
// containers that hold them: unsigned varints for integers and counts, raw
// bytes for everything else.  The storage fast paths (append without decode,
// length probe) splice these encodings at the byte level, so nothing here may
// emit per-value headers or padding.
package codec

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrUnexpectedEOF is returned when the input ends in the middle of a value.
	ErrUnexpectedEOF = errors.New("codec: unexpected end of input")

	// ErrOverflow is returned when a varint does not fit into 64 bits.
	ErrOverflow = errors.New("codec: varint overflows uint64")
)

// Encoder appends compact values to an in-memory buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Uvarint appends v in compact variable-width form.
func (e *Encoder) Uvarint(v uint64) {
	e.buf = binary.AppendUvarint(e.buf, v)
}

// Byte appends a single raw byte.
func (e *Encoder) Byte(b byte) {
	e.buf = append(e.buf, b)
}

// Bool appends v as one byte.
func (e *Encoder) Bool(v bool) {
	if v {
		e.Byte(1)
		return
	}
	e.Byte(0)
}

// Raw appends p verbatim, without any length prefix.
func (e *Encoder) Raw(p []byte) {
	e.buf = append(e.buf, p...)
}

// Data returns the accumulated encoding.
func (e *Encoder) Data() []byte {
	return e.buf
}

// Decoder consumes compact values from a byte slice.
type Decoder struct {
	data []byte
	off  int
}

// NewDecoder returns a decoder positioned at the start of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Uvarint consumes one compact unsigned integer.
func (d *Decoder) Uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.off:])
	switch {
	case n > 0:
		d.off += n
		return v, nil
	case n == 0:
		return 0, ErrUnexpectedEOF
	default:
		return 0, ErrOverflow
	}
}

// Byte consumes one raw byte.
func (d *Decoder) Byte() (byte, error) {
	if d.off >= len(d.data) {
		return 0, ErrUnexpectedEOF
	}
	b := d.data[d.off]
	d.off++
	return b, nil
}

// Bool consumes one byte and interprets any non-zero value as true.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.Byte()
	return b != 0, err
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.off
}
