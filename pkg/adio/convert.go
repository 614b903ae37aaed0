package adio

import (
	"fmt"
)

// adcHalfRange is half the raw range of the 20-bit ADC value.
const adcHalfRange = 524288

// Voltage converts a raw ADC value to volts. The raw value is a 20-bit
// two's-complement-like quantity: values at or above the half range fold
// into the negative half. The result is referenced to ±5V and scaled by
// the caller-supplied gain factor (see Gain.Multiplier).
func Voltage(raw int, gain float64) float64 {
	if raw >= adcHalfRange {
		raw -= 2 * adcHalfRange
	}
	return float64(raw) / adcHalfRange * 5.0 * gain
}

// samplingRates is the ordered set of supported sampling rates in ksps.
// The wire encoding is the index in this set.
var samplingRates = []int{1, 2, 4, 8, 16, 32, 64, 128, 256}

// Sampling rate target groups.
const (
	// RateTargetLow selects ADC channels 0-7.
	RateTargetLow = 0
	// RateTargetHigh selects ADC channels 8-15.
	RateTargetHigh = 1
)

// SamplingCommand builds the sampling-rate command text for one of the
// fixed rates and a target channel group. This is not a 10-character
// frame: the body is eight hex digits, base 0x00000000 for channels 0-7
// and 0x00100000 for channels 8-15 plus the rate index.
func SamplingCommand(fsKsps, target int) (string, error) {
	index := -1
	for i, r := range samplingRates {
		if r == fsKsps {
			index = i
			break
		}
	}
	if index < 0 {
		return "", &ArgError{Name: "fsKsps", Value: fsKsps, Want: "one of 1,2,4,8,16,32,64,128,256"}
	}
	var base uint32
	switch target {
	case RateTargetLow:
		base = 0x00000000
	case RateTargetHigh:
		base = 0x00100000
	default:
		return "", &ArgError{Name: "target", Value: target, Want: "0 (CH0-7) or 1 (CH8-15)"}
	}
	return fmt.Sprintf("*%08X#", base+uint32(index)), nil
}
