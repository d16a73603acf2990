package field

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewPhone_Valid(t *testing.T) {
	// Given a 10-digit string
	p, err := NewPhone("1234567890")

	// Then construction succeeds and rendering equals the input
	if err != nil {
		t.Fatalf("NewPhone() error = %v", err)
	}
	if p.String() != "1234567890" {
		t.Errorf("String() = %q, want %q", p.String(), "1234567890")
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "123456789"},
		{name: "too long", input: "12345678901"},
		{name: "empty", input: ""},
		{name: "letters", input: "12345abcde"},
		{name: "spaces", input: "123 456 78"},
		{name: "dashes", input: "123-456-78"},
		{name: "unicode digits", input: "１２３４５６７８９０"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.input)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("NewPhone(%q) error = %v, want ValidationError", tt.input, err)
			}
			if ve.Reason != "Phone number must be 10 digits" {
				t.Errorf("Reason = %q, want %q", ve.Reason, "Phone number must be 10 digits")
			}
		})
	}
}

func TestNewBirthday_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{input: "12.05.1990", want: time.Date(1990, time.May, 12, 0, 0, 0, 0, time.UTC)},
		{input: "01.01.2000", want: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{input: "29.02.2020", want: time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{input: "31.12.1999", want: time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := NewBirthday(tt.input)
			if err != nil {
				t.Fatalf("NewBirthday(%q) error = %v", tt.input, err)
			}
			if !b.Date().Equal(tt.want) {
				t.Errorf("Date() = %v, want %v", b.Date(), tt.want)
			}
			// Re-rendering produces the identical string.
			if b.String() != tt.input {
				t.Errorf("String() = %q, want %q", b.String(), tt.input)
			}
		})
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong separator", input: "12/05/1990"},
		{name: "iso order", input: "1990.05.12"},
		{name: "two digit year", input: "12.05.90"},
		{name: "day out of range", input: "32.01.2020"},
		{name: "month out of range", input: "12.13.2020"},
		{name: "feb 30", input: "30.02.2020"},
		{name: "feb 29 non-leap", input: "29.02.1990"},
		{name: "empty", input: ""},
		{name: "garbage", input: "birthday"},
		{name: "trailing text", input: "12.05.1990 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBirthday(tt.input)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("NewBirthday(%q) error = %v, want ValidationError", tt.input, err)
			}
			if ve.Reason != "Invalid date format. Use DD.MM.YYYY" {
				t.Errorf("Reason = %q, want %q", ve.Reason, "Invalid date format. Use DD.MM.YYYY")
			}
		})
	}
}

func TestBirthday_JSONRoundTrip(t *testing.T) {
	// Given a birthday
	b, err := NewBirthday("29.02.2020")
	if err != nil {
		t.Fatal(err)
	}

	// When marshaled
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"29.02.2020"` {
		t.Errorf("Marshal() = %s, want %q", data, `"29.02.2020"`)
	}

	// Then unmarshaling restores the same date
	var got Birthday
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.Date().Equal(b.Date()) {
		t.Errorf("round-trip date = %v, want %v", got.Date(), b.Date())
	}
}

func TestBirthday_UnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad format", data: `"1990-05-12"`},
		{name: "not a string", data: `12051990`},
		{name: "invalid date", data: `"31.02.2020"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Birthday
			if err := json.Unmarshal([]byte(tt.data), &b); err == nil {
				t.Errorf("Unmarshal(%s) error = nil, want error", tt.data)
			}
		})
	}
}
