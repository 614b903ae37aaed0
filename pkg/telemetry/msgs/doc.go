// Package msgs defines the wire messages published by the telemetry
// layer. Messages are hand-written protobuf structs wrapped in a Typed
// envelope carrying a type ID, so subscribers can decode without
// knowing the topic layout.
package msgs
