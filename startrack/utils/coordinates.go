package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCoordinates marks a coordinate string that failed to parse, so
// callers can classify it as bad input rather than a storage failure.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is one galaxy:system:position triple.
type Coordinates struct {
	Galaxy   int64
	System   int64
	Position int64
}

// ParseCoordinates parses a "g:s:p" string. Scraped payloads routinely carry
// garbage here, so callers are expected to skip entries that fail to parse
// rather than abort the batch.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Coordinates{}, fmt.Errorf("%w %q: want g:s:p", ErrInvalidCoordinates, s)
	}

	var vals [3]int64
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Coordinates{}, fmt.Errorf("%w %q: %v", ErrInvalidCoordinates, s, err)
		}
		if v <= 0 {
			return Coordinates{}, fmt.Errorf("%w %q: components must be positive", ErrInvalidCoordinates, s)
		}
		vals[i] = v
	}
	return Coordinates{Galaxy: vals[0], System: vals[1], Position: vals[2]}, nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Galaxy, c.System, c.Position)
}

// Distance estimates the flight distance between two coordinates. It is a
// static figure for sorting targets, not the live game's randomized value.
func (c Coordinates) Distance(other Coordinates) int64 {
	switch {
	case c.Galaxy != other.Galaxy:
		return 20000 * abs(c.Galaxy-other.Galaxy)
	case c.System != other.System:
		return 2700 + 95*abs(c.System-other.System)
	case c.Position != other.Position:
		return 1000 + 5*abs(c.Position-other.Position)
	default:
		return 5
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
