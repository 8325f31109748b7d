package video

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Timestamp
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid timestamp",
			input: "01:30:45",
			want:  Timestamp{Hours: 1, Minutes: 30, Seconds: 45},
		},
		{
			name:  "all zeros",
			input: "00:00:00",
			want:  Timestamp{},
		},
		{
			name:  "max valid minutes/seconds",
			input: "23:59:59",
			want:  Timestamp{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:  "hours beyond 99",
			input: "123:04:05",
			want:  Timestamp{Hours: 123, Minutes: 4, Seconds: 5},
		},
		{
			name:  "largest hour field",
			input: "999999:59:59",
			want:  Timestamp{Hours: MaxHours, Minutes: 59, Seconds: 59},
		},
		{
			name:    "hours above bound",
			input:   "1000000:00:00",
			wantErr: true,
			errMsg:  "hours out of range",
		},
		{
			name:    "hours that would overflow seconds",
			input:   "9000000000000000:00:00",
			wantErr: true,
			errMsg:  "hours out of range",
		},
		{
			name:  "single digit fields",
			input: "1:2:3",
			want:  Timestamp{Hours: 1, Minutes: 2, Seconds: 3},
		},
		{
			name:    "wrong separator",
			input:   "01-30-45",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "too few fields",
			input:   "01:30",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "too many fields",
			input:   "00:01:30:00",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "non-numeric field",
			input:   "00:aa:10",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "fractional seconds",
			input:   "00:00:10.5",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "minutes too high",
			input:   "01:60:00",
			wantErr: true,
			errMsg:  "minutes must be 0-59",
		},
		{
			name:    "seconds too high",
			input:   "01:30:60",
			wantErr: true,
			errMsg:  "seconds must be 0-59",
		},
		{
			name:    "three digit minutes",
			input:   "00:005:00",
			wantErr: true,
			errMsg:  "minutes must be 0-59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) expected error, got nil", tt.input)
					return
				}
				if !errors.Is(err, ErrInvalidTimestamp) {
					t.Errorf("ParseTimestamp(%q) error = %v, want ErrInvalidTimestamp", tt.input, err)
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseTimestamp(%q) error = %v, want error containing %q", tt.input, err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp_String(t *testing.T) {
	tests := []struct {
		timestamp Timestamp
		want      string
	}{
		{Timestamp{0, 0, 0}, "00:00:00"},
		{Timestamp{1, 2, 3}, "01:02:03"},
		{Timestamp{12, 34, 56}, "12:34:56"},
		{Timestamp{100, 0, 1}, "100:00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.timestamp.String(); got != tt.want {
				t.Errorf("Timestamp.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestamp_TotalSeconds(t *testing.T) {
	tests := []struct {
		timestamp Timestamp
		want      int
	}{
		{Timestamp{0, 0, 0}, 0},
		{Timestamp{0, 0, 1}, 1},
		{Timestamp{0, 1, 0}, 60},
		{Timestamp{1, 0, 0}, 3600},
		{Timestamp{1, 30, 45}, 5445},
	}

	for _, tt := range tests {
		t.Run(tt.timestamp.String(), func(t *testing.T) {
			if got := tt.timestamp.TotalSeconds(); got != tt.want {
				t.Errorf("Timestamp.TotalSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromSeconds_RoundTrip(t *testing.T) {
	for h := 0; h <= 101; h += 101 {
		for m := 0; m < 60; m += 7 {
			for s := 0; s < 60; s += 11 {
				want := h*3600 + m*60 + s
				formatted := FromSeconds(want).String()

				parsed, err := ParseTimestamp(formatted)
				if err != nil {
					t.Fatalf("ParseTimestamp(%q) unexpected error: %v", formatted, err)
				}
				if got := parsed.TotalSeconds(); got != want {
					t.Errorf("round trip of %d via %q = %d", want, formatted, got)
				}
			}
		}
	}
}

func TestFromSeconds_Negative(t *testing.T) {
	if got := FromSeconds(-5); got != (Timestamp{}) {
		t.Errorf("FromSeconds(-5) = %v, want 00:00:00", got)
	}
}

func TestTimestamp_After(t *testing.T) {
	earlier := Timestamp{Hours: 0, Minutes: 30, Seconds: 0}
	later := Timestamp{Hours: 1, Minutes: 0, Seconds: 0}

	if earlier.After(later) {
		t.Error("expected earlier to not be after later")
	}
	if !later.After(earlier) {
		t.Error("expected later to be after earlier")
	}
	if later.After(later) {
		t.Error("expected timestamp to not be after itself")
	}
}
