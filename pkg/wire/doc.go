// Package wire encodes ADio command frames.
package wire

// Every command sent to the ADio device is a fixed 10-character ASCII
// frame:
//
//	* C HH E DDDD #
//
// where C is the command family (one hex digit), HH the sub field (two
// hex digits, usually a channel number or a channel mask), E the extension
// field (one hex digit) and DDDD the 16-bit data word (four hex digits).
// All hex digits are uppercase and zero padded. There is no framing beyond
// the fixed width, no checksum and no escaping.
//
// Replies are free-form ASCII lines terminated by a line feed. This
// package does not decode replies; reply text is interpreted per command
// by package adio.
