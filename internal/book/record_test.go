package book

import (
	"errors"
	"testing"

	"github.com/finchley/rolo/internal/field"
)

func phoneStrings(r *Record) []string {
	out := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		out[i] = p.String()
	}
	return out
}

func TestRecord_AddPhone(t *testing.T) {
	// Given a fresh record
	rec := NewRecord("Alice")

	// When valid phones are added, including a duplicate
	for _, n := range []string{"1234567890", "0987654321", "1234567890"} {
		if err := rec.AddPhone(n); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", n, err)
		}
	}

	// Then all entries are kept in insertion order
	got := phoneStrings(rec)
	want := []string{"1234567890", "0987654321", "1234567890"}
	if len(got) != len(want) {
		t.Fatalf("phones = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phones[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	rec := NewRecord("Alice")

	err := rec.AddPhone("not-a-phone")

	var ve *field.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("AddPhone() error = %v, want ValidationError", err)
	}
	if len(rec.Phones) != 0 {
		t.Errorf("phones = %v, want empty after failed add", rec.Phones)
	}
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Run("removes all matching entries", func(t *testing.T) {
		rec := NewRecord("Alice")
		for _, n := range []string{"1111111111", "2222222222", "1111111111"} {
			if err := rec.AddPhone(n); err != nil {
				t.Fatal(err)
			}
		}

		rec.RemovePhone("1111111111")

		got := phoneStrings(rec)
		if len(got) != 1 || got[0] != "2222222222" {
			t.Errorf("phones = %v, want [2222222222]", got)
		}
	})

	t.Run("absent number is a no-op", func(t *testing.T) {
		rec := NewRecord("Alice")
		if err := rec.AddPhone("1111111111"); err != nil {
			t.Fatal(err)
		}

		rec.RemovePhone("9999999999")

		if len(rec.Phones) != 1 {
			t.Errorf("phones = %v, want 1 entry", rec.Phones)
		}
	})
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces old with new in place", func(t *testing.T) {
		rec := NewRecord("Alice")
		for _, n := range []string{"1111111111", "2222222222"} {
			if err := rec.AddPhone(n); err != nil {
				t.Fatal(err)
			}
		}

		if err := rec.EditPhone("1111111111", "3333333333"); err != nil {
			t.Fatalf("EditPhone() error = %v", err)
		}

		got := phoneStrings(rec)
		want := []string{"3333333333", "2222222222"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("phones[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("missing old number", func(t *testing.T) {
		rec := NewRecord("Alice")
		if err := rec.AddPhone("1111111111"); err != nil {
			t.Fatal(err)
		}

		err := rec.EditPhone("9999999999", "3333333333")

		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("EditPhone() error = %v, want NotFoundError", err)
		}
		if nf.Msg != "Old number not found" {
			t.Errorf("Msg = %q, want %q", nf.Msg, "Old number not found")
		}
	})

	t.Run("invalid new number leaves record unchanged", func(t *testing.T) {
		rec := NewRecord("Alice")
		if err := rec.AddPhone("1111111111"); err != nil {
			t.Fatal(err)
		}

		err := rec.EditPhone("1111111111", "bad")

		var ve *field.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("EditPhone() error = %v, want ValidationError", err)
		}
		if got := phoneStrings(rec); got[0] != "1111111111" {
			t.Errorf("phones = %v, want unchanged", got)
		}
	})

	t.Run("old equals new is a no-op", func(t *testing.T) {
		rec := NewRecord("Alice")
		if err := rec.AddPhone("1111111111"); err != nil {
			t.Fatal(err)
		}

		if err := rec.EditPhone("1111111111", "1111111111"); err != nil {
			t.Fatalf("EditPhone() error = %v", err)
		}

		got := phoneStrings(rec)
		if len(got) != 1 || got[0] != "1111111111" {
			t.Errorf("phones = %v, want [1111111111]", got)
		}
	})
}

func TestRecord_SetBirthday(t *testing.T) {
	rec := NewRecord("Alice")

	if rec.BirthdayDisplay() != NoBirthday {
		t.Errorf("BirthdayDisplay() = %q, want %q", rec.BirthdayDisplay(), NoBirthday)
	}

	if err := rec.SetBirthday("12.05.1990"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}
	if rec.BirthdayDisplay() != "12.05.1990" {
		t.Errorf("BirthdayDisplay() = %q, want %q", rec.BirthdayDisplay(), "12.05.1990")
	}

	// Overwrites any prior birthday.
	if err := rec.SetBirthday("01.01.2000"); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}
	if rec.BirthdayDisplay() != "01.01.2000" {
		t.Errorf("BirthdayDisplay() = %q, want %q", rec.BirthdayDisplay(), "01.01.2000")
	}
}

func TestRecord_SetBirthday_Invalid(t *testing.T) {
	rec := NewRecord("Alice")

	err := rec.SetBirthday("1990-05-12")

	var ve *field.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("SetBirthday() error = %v, want ValidationError", err)
	}
	if rec.Birthday != nil {
		t.Error("Birthday set after failed validation")
	}
}

func TestRecord_String(t *testing.T) {
	rec := NewRecord("Alice")
	for _, n := range []string{"1234567890", "0987654321"} {
		if err := rec.AddPhone(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.SetBirthday("12.05.1990"); err != nil {
		t.Fatal(err)
	}

	want := "Contact name: Alice, phones: 1234567890; 0987654321, Birthday: 12.05.1990"
	if rec.String() != want {
		t.Errorf("String() = %q, want %q", rec.String(), want)
	}
}
