// Package channels normalizes channel selectors into validated channel
// lists and bitmasks.
package channels

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Per-subsystem maximum channel indices.
const (
	MaxGPIO    = 7  // GPIO, PWM and direction commands
	MaxADC     = 15 // ADC channels, opamp gain, chunk commands
	MaxDAC     = 8  // DAC channels
	MaxEncoder = 3  // quadrature encoder channels
)

// RangeError reports a channel index outside the subsystem bound.
type RangeError struct {
	Value int
	Max   int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("channel %d out of range 0..%d", e.Value, e.Max)
}

type selectorKind int

const (
	kindAll selectorKind = iota
	kindSingle
	kindMany
)

// Selector selects device channels: all of them, a single index, or an
// explicit set.
type Selector struct {
	kind   selectorKind
	single int
	many   []int
}

// All selects every channel of the subsystem.
func All() Selector {
	return Selector{kind: kindAll}
}

// Single selects one channel.
func Single(ch int) Selector {
	return Selector{kind: kindSingle, single: ch}
}

// Many selects an explicit set of channels. Duplicates are allowed and
// removed during normalization.
func Many(chs ...int) Selector {
	many := make([]int, len(chs))
	copy(many, chs)
	return Selector{kind: kindMany, many: many}
}

// IsAll indicates the selector was built with All.
func (s Selector) IsAll() bool {
	return s.kind == kindAll
}

// ParseSelector parses a textual selector: "all" (case-insensitive), a
// single integer, or a comma-separated list of integers.
func ParseSelector(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "all") {
		return All(), nil
	}
	parts := strings.Split(text, ",")
	chs := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Selector{}, fmt.Errorf("invalid channel selector %q", text)
		}
		chs = append(chs, n)
	}
	if len(chs) == 1 {
		return Single(chs[0]), nil
	}
	return Many(chs...), nil
}

// Normalize resolves the selector against the subsystem bound maxCh and
// returns a strictly ascending list of unique channel indices.
func (s Selector) Normalize(maxCh int) ([]int, error) {
	switch s.kind {
	case kindAll:
		list := make([]int, maxCh+1)
		for i := range list {
			list[i] = i
		}
		return list, nil
	case kindSingle:
		if s.single < 0 || s.single > maxCh {
			return nil, &RangeError{Value: s.single, Max: maxCh}
		}
		return []int{s.single}, nil
	default:
		seen := make(map[int]bool, len(s.many))
		list := make([]int, 0, len(s.many))
		for _, ch := range s.many {
			if ch < 0 || ch > maxCh {
				return nil, &RangeError{Value: ch, Max: maxCh}
			}
			if !seen[ch] {
				seen[ch] = true
				list = append(list, ch)
			}
		}
		sort.Ints(list)
		return list, nil
	}
}

// Mask builds a bitmask with bit i set for each channel i in list.
// The list is assumed validated; no upper bound is enforced here.
func Mask(list []int) uint {
	var m uint
	for _, ch := range list {
		m |= 1 << uint(ch)
	}
	return m
}
