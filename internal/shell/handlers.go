// Package shell implements the interactive command loop: a dispatch table
// mapping command words to handlers that operate on the shared address book.
package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/finchley/rolo/internal/book"
)

// ArgCountError reports a command invoked with too few arguments. It renders
// as the command's usage line.
type ArgCountError struct {
	Usage string
}

func (e *ArgCountError) Error() string {
	return "Not enough arguments. Usage: " + e.Usage
}

// Handler is the uniform command signature: arguments in, display string out.
type Handler func(args []string, bk *book.AddressBook) (string, error)

// Handlers binds runtime settings to the command handler set. The same
// handlers back both the interactive shell and the one-shot CLI commands, so
// the two surfaces cannot drift.
type Handlers struct {
	// WindowDays is the upcoming-birthday window size.
	WindowDays int
	// Now supplies the current time; tests pin it.
	Now func() time.Time
}

// NewHandlers creates a Handlers with the given birthday window.
func NewHandlers(windowDays int) *Handlers {
	return &Handlers{WindowDays: windowDays, Now: time.Now}
}

// Table returns the command dispatch table. close/exit are loop control and
// handled by the shell itself, not listed here.
func (h *Handlers) Table() map[string]Handler {
	return map[string]Handler{
		"hello":         h.Hello,
		"add":           h.AddContact,
		"change":        h.ChangePhone,
		"phone":         h.ShowPhones,
		"all":           h.ListAll,
		"add-birthday":  h.AddBirthday,
		"show-birthday": h.ShowBirthday,
		"birthdays":     h.Birthdays,
	}
}

// Hello prints the greeting.
func (h *Handlers) Hello(_ []string, _ *book.AddressBook) (string, error) {
	return "How can I help you?", nil
}

// AddContact adds or updates a contact: a new name creates a record holding
// the phone, an existing name gets the phone appended.
func (h *Handlers) AddContact(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", &ArgCountError{Usage: "add <name> <phone>"}
	}
	name, phone := args[0], args[1]

	if rec, ok := bk.Get(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	rec := book.NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	bk.Add(rec)
	return "Contact added.", nil
}

// ChangePhone replaces a contact's old phone number with a new one.
func (h *Handlers) ChangePhone(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 3 {
		return "", &ArgCountError{Usage: "change <name> <old_phone> <new_phone>"}
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, ok := bk.Get(name)
	if !ok {
		return "Contact not found.", nil
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

// ShowPhones lists a contact's phone numbers.
func (h *Handlers) ShowPhones(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", &ArgCountError{Usage: "phone <name>"}
	}
	name := args[0]

	rec, ok := bk.Get(name)
	if !ok {
		return "Contact not found.", nil
	}

	phones := make([]string, len(rec.Phones))
	for i, p := range rec.Phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Phones for %s: %s", name, strings.Join(phones, ", ")), nil
}

// ListAll renders every contact's display line in insertion order.
func (h *Handlers) ListAll(_ []string, bk *book.AddressBook) (string, error) {
	if bk.Len() == 0 {
		return "No contacts.", nil
	}

	lines := make([]string, 0, bk.Len())
	for _, rec := range bk.Records() {
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Name, rec))
	}
	return strings.Join(lines, "\n"), nil
}

// AddBirthday sets a contact's birthday.
func (h *Handlers) AddBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", &ArgCountError{Usage: "add-birthday <name> <birthday>"}
	}
	name, birthday := args[0], args[1]

	rec, ok := bk.Get(name)
	if !ok {
		return "Contact not found.", nil
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// ShowBirthday shows a contact's birthday, if set.
func (h *Handlers) ShowBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", &ArgCountError{Usage: "show-birthday <name>"}
	}
	name := args[0]

	rec, ok := bk.Get(name)
	if !ok {
		return "Contact not found.", nil
	}
	if rec.Birthday == nil {
		return "Birthday not set.", nil
	}
	return fmt.Sprintf("%s's birthday is on %s.", name, rec.BirthdayDisplay()), nil
}

// Birthdays lists contacts with birthdays in the configured upcoming window.
func (h *Handlers) Birthdays(_ []string, bk *book.AddressBook) (string, error) {
	upcoming := bk.UpcomingBirthdays(h.Now(), h.WindowDays)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}

	lines := make([]string, len(upcoming))
	for i, e := range upcoming {
		lines[i] = fmt.Sprintf("%s on %s", e.Name, e.Birthday)
	}
	return strings.Join(lines, "\n"), nil
}
