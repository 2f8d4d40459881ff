package racetime

import (
	"fmt"
	"strconv"
	"strings"
)

// NoTime is the glyph the results site renders for a split that was
// never recorded.
const NoTime = "–"

// Duration is an elapsed time in whole seconds. The zero value, with
// Valid false, is the explicit "no time recorded" state and is distinct
// from a recorded zero.
type Duration struct {
	Seconds int64
	Valid   bool
}

func FromSeconds(s int64) Duration {
	return Duration{Seconds: s, Valid: true}
}

func (d Duration) String() string {
	if !d.Valid {
		return NoTime
	}
	return fmt.Sprintf(
		"%d:%02d:%02d",
		d.Seconds/3600,
		d.Seconds/60%60,
		d.Seconds%60,
	)
}

// FormatError reports clock text that is neither the no-time glyph nor
// a well-formed H:MM:SS string.
type FormatError struct {
	Text string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed clock time %q, want H:MM:SS", e.Text)
}

// Parse converts clock text of the form H:MM:SS or HH:MM:SS into
// seconds. Hours may be unpadded, minutes and seconds must be exactly
// two digits below 60. The no-time glyph yields the invalid Duration,
// not an error.
func Parse(text string) (Duration, error) {
	if text == NoTime {
		return Duration{}, nil
	}

	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return Duration{}, FormatError{Text: text}
	}
	if len(fields[0]) < 1 || len(fields[0]) > 2 ||
		len(fields[1]) != 2 || len(fields[2]) != 2 {
		return Duration{}, FormatError{Text: text}
	}

	var parts [3]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			return Duration{}, FormatError{Text: text}
		}
		parts[i] = n
	}
	if parts[1] > 59 || parts[2] > 59 {
		return Duration{}, FormatError{Text: text}
	}

	return FromSeconds(parts[0]*3600 + parts[1]*60 + parts[2]), nil
}

// ParseSeries converts a column of clock texts into a parallel column
// of Durations. Positions are preserved, including no-time entries, so
// the output can be zipped back onto the rows it came from.
func ParseSeries(texts []string) ([]Duration, error) {
	out := make([]Duration, len(texts))
	for i, t := range texts {
		d, err := Parse(t)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
