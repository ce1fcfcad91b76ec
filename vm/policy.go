package vm

import (
	"errors"
	"fmt"
	"strings"
)

// Policy identifies a page replacement policy.
type Policy int

// The supported replacement policies.
const (
	FIFO Policy = iota
	LRU
	LFU
)

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case LFU:
		return "LFU"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ErrUnknownPolicy is returned when a policy name does not match any
// supported replacement policy.
var ErrUnknownPolicy = errors.New("unknown replacement policy")

// ParsePolicy converts a policy name to a Policy. Names are matched
// case-insensitively. An unrecognized name is an error rather than a silent
// fallback, so that configuration typos surface immediately.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToUpper(name) {
	case "FIFO":
		return FIFO, nil
	case "LRU":
		return LRU, nil
	case "LFU":
		return LFU, nil
	}

	return FIFO, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
