// Package field defines the validated value types stored in a contact record:
// Name, Phone, and Birthday. Validation happens at construction; a value that
// exists is a value that passed.
package field

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the single date format accepted and rendered for birthdays.
const DateLayout = "02.01.2006"

// ValidationError reports a value that failed construct-time validation.
// The reason is the user-facing message shown at the shell boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Name is a contact's display name and its key in the address book.
// Any string is accepted.
type Name string

func (n Name) String() string {
	return string(n)
}

// Phone is a phone number of exactly 10 ASCII digits.
type Phone string

// NewPhone validates and constructs a Phone.
func NewPhone(s string) (Phone, error) {
	if !isTenDigits(s) {
		return "", &ValidationError{Reason: "Phone number must be 10 digits"}
	}
	return Phone(s), nil
}

func (p Phone) String() string {
	return string(p)
}

// isTenDigits reports whether s is exactly 10 ASCII decimal digits.
func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date parsed from DD.MM.YYYY. It stores the parsed
// date, not the original string.
type Birthday struct {
	date time.Time
}

// NewBirthday validates and constructs a Birthday from a DD.MM.YYYY string.
func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Reason: "Invalid date format. Use DD.MM.YYYY"}
	}
	return Birthday{date: t}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the date back to DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}

// MarshalJSON encodes the birthday as its DD.MM.YYYY string so snapshots
// stay human-readable.
func (b Birthday) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a DD.MM.YYYY string, rejecting anything that would
// not have passed NewBirthday.
func (b *Birthday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("field: birthday: %w", err)
	}
	parsed, err := NewBirthday(s)
	if err != nil {
		return fmt.Errorf("field: birthday %q: %w", s, err)
	}
	*b = parsed
	return nil
}
