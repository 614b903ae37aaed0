package wire

import (
	"fmt"
)

// FrameLen is the exact length of an encoded frame.
const FrameLen = 10

// Terminator is the line terminator of device replies.
const Terminator byte = '\n'

// Frame is one command frame before encoding.
type Frame struct {
	Code byte   // command family, 0x0..0xF
	Sub  byte   // sub field, usually a channel or a channel mask
	Ext  byte   // extension field, 0x0..0xF
	Data uint16 // data word
}

// FieldError reports a frame field out of its encodable range.
type FieldError struct {
	Field string
	Value int
	Max   int
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %d out of range 0..%d", e.Field, e.Value, e.Max)
}

// New creates a frame and validates field widths.
func New(code, sub, ext byte, data uint16) (Frame, error) {
	if code > 0xf {
		return Frame{}, &FieldError{Field: "code", Value: int(code), Max: 0xf}
	}
	if ext > 0xf {
		return Frame{}, &FieldError{Field: "ext", Value: int(ext), Max: 0xf}
	}
	return Frame{Code: code, Sub: sub, Ext: ext, Data: data}, nil
}

// String encodes the frame into its 10-character wire form.
//
// The frame must have been built with valid field widths (see New).
// An encoding not exactly 10 characters long indicates a codec bug and
// panics.
func (f Frame) String() string {
	s := fmt.Sprintf("*%X%02X%X%04X#", f.Code&0xf, f.Sub, f.Ext&0xf, f.Data)
	if len(s) != FrameLen {
		panic(fmt.Sprintf("wire: encoded frame %q is %d bytes, want %d", s, len(s), FrameLen))
	}
	return s
}

// Bytes returns the encoded frame as a byte slice for sending.
func (f Frame) Bytes() []byte {
	return []byte(f.String())
}
