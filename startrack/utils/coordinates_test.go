package utils

import (
	"errors"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinates
		wantErr bool
	}{
		{
			name:  "Valid",
			input: "1:203:7",
			want:  Coordinates{Galaxy: 1, System: 203, Position: 7},
		},
		{
			name:  "Whitespace",
			input: " 2 : 45 : 12 ",
			want:  Coordinates{Galaxy: 2, System: 45, Position: 12},
		},
		{
			name:    "TooFewParts",
			input:   "1:203",
			wantErr: true,
		},
		{
			name:    "NonNumeric",
			input:   "1:abc:7",
			wantErr: true,
		},
		{
			name:    "ZeroComponent",
			input:   "1:0:7",
			wantErr: true,
		},
		{
			name:    "Negative",
			input:   "1:-5:7",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCoordinates(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCoordinates) {
					t.Errorf("ParseCoordinates(%q) error = %v, want ErrInvalidCoordinates", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCoordinates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{Galaxy: 3, System: 42, Position: 9}
	if got := c.String(); got != "3:42:9" {
		t.Errorf("String() = %q, want %q", got, "3:42:9")
	}
}

func TestCoordinatesDistance(t *testing.T) {
	tests := []struct {
		name   string
		from   Coordinates
		to     Coordinates
		want   int64
	}{
		{
			name: "DifferentGalaxy",
			from: Coordinates{Galaxy: 1, System: 1, Position: 1},
			to:   Coordinates{Galaxy: 2, System: 300, Position: 15},
			want: 20000,
		},
		{
			name: "DifferentSystem",
			from: Coordinates{Galaxy: 1, System: 1, Position: 1},
			to:   Coordinates{Galaxy: 1, System: 4, Position: 15},
			want: 2700 + 95*3,
		},
		{
			name: "DifferentPosition",
			from: Coordinates{Galaxy: 1, System: 1, Position: 1},
			to:   Coordinates{Galaxy: 1, System: 1, Position: 5},
			want: 1000 + 5*4,
		},
		{
			name: "SamePlanet",
			from: Coordinates{Galaxy: 1, System: 1, Position: 1},
			to:   Coordinates{Galaxy: 1, System: 1, Position: 1},
			want: 5,
		},
		{
			name: "Symmetric",
			from: Coordinates{Galaxy: 4, System: 100, Position: 8},
			to:   Coordinates{Galaxy: 1, System: 1, Position: 1},
			want: 60000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Distance(tt.to); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
