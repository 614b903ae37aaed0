// Package adio drives the ADio multi-function data acquisition device.
package adio

// The ADio device exposes 16 ADC channels, 9 DAC channels, 8 GPIO/PWM
// channels and 4 quadrature encoder channels behind a fixed-format ASCII
// command protocol (see package wire). This package encodes one operation
// per command family, sends it through a transport.Session and interprets
// the one-line reply where the command has one.
//
// Every operation is a synchronous request/response transaction. Commands
// expecting a reply wait up to the session timeout; a missing reply is
// reported through the returned Reply value, not as an error. The single
// exception is the ADC chunk stream request, which is fire-and-forget:
// its bulk data is drained separately (see ReadChunk).
//
// The package assumes sequential single-threaded use per device. Nothing
// here locks; interleaving two operations on one session corrupts the
// command/response pairing.
