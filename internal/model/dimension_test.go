package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"96", 96},
		{"96\"", 96},
		{"96 in", 96},
		{"96.5", 96.5},
		{"8'", 96},
		{"8 ft", 96},
		{"8 feet", 96},
		{"8' 6\"", 102},
		{"8ft 6in", 102},
		{"6-1/2\"", 6.5},
		{"1/2\"", 0.5},
		{"3/4", 0.75},
		{"8' 6-1/2\"", 102.5},
		{"  10' ", 120},
		{"2.5'", 30},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in)
		if err != nil {
			t.Errorf("ParseDimension(%q) returned error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseDimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDimensionErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "8' banana", "1/0\"", "6-1/0\""} {
		_, err := ParseDimension(in)
		if err == nil {
			t.Errorf("ParseDimension(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseDimension(%q): expected ErrInvalidArgument, got %v", in, err)
		}
	}
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in       string
		wantRise float64
		wantRun  float64
	}{
		{"6/12", 6, 12},
		{"6:12", 6, 12},
		{"6-12", 6, 12},
		{"6", 6, 12},
		{"4.5/12", 4.5, 12},
		{" 8 / 12 ", 8, 12},
		{"3/6", 3, 6},
	}
	for _, tt := range tests {
		rise, run, err := ParsePitch(tt.in)
		if err != nil {
			t.Errorf("ParsePitch(%q) returned error: %v", tt.in, err)
			continue
		}
		if rise != tt.wantRise || run != tt.wantRun {
			t.Errorf("ParsePitch(%q) = %v/%v, want %v/%v", tt.in, rise, run, tt.wantRise, tt.wantRun)
		}
	}
}

func TestParsePitchErrors(t *testing.T) {
	for _, in := range []string{"", "x/12", "6/0", "6/-12", "steep"} {
		_, _, err := ParsePitch(in)
		if err == nil {
			t.Errorf("ParsePitch(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParsePitch(%q): expected ErrInvalidArgument, got %v", in, err)
		}
	}
}
