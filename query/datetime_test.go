package query

import (
	"errors"
	"testing"
	"time"
)

func TestDatetimeParser(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    time.Time
	}{
		{
			name:    "date only at midnight",
			pattern: "%d/%m/%Y",
			value:   "07/04/1972",
			want:    time.Date(1972, time.April, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "full datetime",
			pattern: "%Y-%m-%d %H:%M:%S",
			value:   "2015-09-05 23:56:04",
			want:    time.Date(2015, time.September, 5, 23, 56, 4, 0, time.UTC),
		},
		{
			name:    "unpadded date",
			pattern: "%d/%m/%Y",
			value:   "7/4/1972",
			want:    time.Date(1972, time.April, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unpadded datetime",
			pattern: "%Y-%m-%d %H:%M",
			value:   "2020-1-5 7:5",
			want:    time.Date(2020, time.January, 5, 7, 5, 0, 0, time.UTC),
		},
		{
			name:    "time only on epoch date",
			pattern: "%H:%M",
			value:   "07:30",
			want:    time.Date(1970, time.January, 1, 7, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDatetimeParser(tt.pattern)
			if err != nil {
				t.Fatalf("NewDatetimeParser(%q) error = %v", tt.pattern, err)
			}
			got, err := p.Parse(tt.value)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDatetimeParser_Unparseable(t *testing.T) {
	p, err := NewDatetimeParser("%d/%m/%Y")
	if err != nil {
		t.Fatalf("NewDatetimeParser() error = %v", err)
	}

	for _, value := range []string{"", "1972-04-07", "32/01/2000", "noon"} {
		if _, err := p.Parse(value); !errors.Is(err, ErrUnparseableDatetime) {
			t.Errorf("Parse(%q) error = %v, want ErrUnparseableDatetime", value, err)
		}
	}
}

func TestNewDatetimeParser_InvalidPattern(t *testing.T) {
	for _, pattern := range []string{"%Q", "%d/%m/%Y 2024"} {
		if _, err := NewDatetimeParser(pattern); !errors.Is(err, ErrUnparseableDatetime) {
			t.Errorf("NewDatetimeParser(%q) error = %v, want ErrUnparseableDatetime", pattern, err)
		}
	}
}

func TestScanDirectives(t *testing.T) {
	tests := []struct {
		pattern  string
		wantDate bool
		wantTime bool
	}{
		{"%d/%m/%Y", true, false},
		{"%H:%M:%S", false, true},
		{"%Y-%m-%dT%H:%M", true, true},
		{"%F %T", true, true},
		{"100%%", false, false},
		{"%-d.%-m.%Y", true, false},
	}

	for _, tt := range tests {
		gotDate, gotTime := scanDirectives(tt.pattern)
		if gotDate != tt.wantDate || gotTime != tt.wantTime {
			t.Errorf("scanDirectives(%q) = %v, %v, want %v, %v", tt.pattern, gotDate, gotTime, tt.wantDate, tt.wantTime)
		}
	}
}
