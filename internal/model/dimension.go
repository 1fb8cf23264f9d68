package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dimension string grammar: an optional feet part followed by an optional
// inches part with an optional dash fraction.
var (
	feetRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:feet|foot|ft\.?|')\s*`)
	inchRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:-\s*(\d+)\s*/\s*(\d+))?\s*(?:inches|inch|in\.?|")?$`)
	fracRe = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)\s*(?:inches|inch|in\.?|")?$`)
)

// ParseDimension converts a carpenter-style dimension string to inches.
// Accepted forms include `96`, `96"`, `8'`, `8' 6"`, `8ft 6in`, `6-1/2"`,
// `1/2"`, and `8' 6-1/2"`. Bare numbers are taken as inches.
func ParseDimension(s string) (float64, error) {
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty dimension: %w", ErrInvalidArgument)
	}

	var total float64
	if m := feetRe.FindStringSubmatch(s); m != nil {
		feet, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid feet in %q: %w", orig, ErrInvalidArgument)
		}
		total += feet * 12
		s = strings.TrimSpace(s[len(m[0]):])
		if s == "" {
			return total, nil
		}
	}

	if m := fracRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, fmt.Errorf("zero denominator in %q: %w", orig, ErrInvalidArgument)
		}
		return total + num/den, nil
	}

	m := inchRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("cannot parse dimension %q: %w", orig, ErrInvalidArgument)
	}
	inches, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid inches in %q: %w", orig, ErrInvalidArgument)
	}
	if m[2] != "" {
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, fmt.Errorf("zero denominator in %q: %w", orig, ErrInvalidArgument)
		}
		inches += num / den
	}
	return total + inches, nil
}

// ParsePitch converts a roof pitch string to rise and run. Accepted forms:
// `6/12`, `6:12`, `6-12`, or a bare rise like `6` (run defaults to 12).
func ParsePitch(s string) (rise, run float64, err error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty pitch: %w", ErrInvalidArgument)
	}

	for _, sep := range []string{"/", ":", "-"} {
		if strings.Contains(s, sep) {
			parts := strings.SplitN(s, sep, 2)
			rise, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			run, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err1 != nil || err2 != nil {
				return 0, 0, fmt.Errorf("cannot parse pitch %q: %w", orig, ErrInvalidArgument)
			}
			if run <= 0 {
				return 0, 0, fmt.Errorf("pitch run must be > 0 in %q: %w", orig, ErrInvalidArgument)
			}
			return rise, run, nil
		}
	}

	rise, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, 0, fmt.Errorf("cannot parse pitch %q: %w", orig, ErrInvalidArgument)
	}
	return rise, 12, nil
}
