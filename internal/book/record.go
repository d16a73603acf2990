// Package book implements the contact data model: records keyed by name in an
// address book, with the upcoming-birthday scan used by the birthdays command.
package book

import (
	"fmt"
	"strings"

	"github.com/finchley/rolo/internal/field"
)

// NotFoundError reports a lookup that matched nothing: a missing contact or a
// phone number absent from a record. The message is shown at the shell boundary.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// NoBirthday is the display sentinel for a record without a birthday.
const NoBirthday = "No birthday set"

// Record is one contact: a name fixed at creation, phone numbers in insertion
// order (duplicates permitted), and an optional birthday.
type Record struct {
	Name     field.Name      `json:"name"`
	Phones   []field.Phone   `json:"phones"`
	Birthday *field.Birthday `json:"birthday,omitempty"`
}

// NewRecord creates a record with the given name and no phones or birthday.
func NewRecord(name string) *Record {
	return &Record{Name: field.Name(name)}
}

// AddPhone validates number and appends it. Identical numbers may coexist.
func (r *Record) AddPhone(number string) error {
	p, err := field.NewPhone(number)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes every phone equal to number. Removing a number that is
// not present is a no-op, not an error.
func (r *Record) RemovePhone(number string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.String() != number {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces every occurrence of old with new, keeping position.
// Returns NotFoundError when old is not present; new is validated before any
// change is made. old == new with old present leaves the record unchanged.
func (r *Record) EditPhone(old, new string) error {
	if !r.hasPhone(old) {
		return &NotFoundError{Msg: "Old number not found"}
	}
	p, err := field.NewPhone(new)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if r.Phones[i].String() == old {
			r.Phones[i] = p
		}
	}
	return nil
}

// SetBirthday validates value and sets the birthday, overwriting any prior one.
func (r *Record) SetBirthday(value string) error {
	b, err := field.NewBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// BirthdayDisplay returns the formatted birthday, or NoBirthday if unset.
func (r *Record) BirthdayDisplay() string {
	if r.Birthday == nil {
		return NoBirthday
	}
	return r.Birthday.String()
}

// String composes the one-line display form used by the all command.
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, Birthday: %s",
		r.Name, strings.Join(phones, "; "), r.BirthdayDisplay())
}

// hasPhone reports whether any phone equals number.
func (r *Record) hasPhone(number string) bool {
	for _, p := range r.Phones {
		if p.String() == number {
			return true
		}
	}
	return false
}
