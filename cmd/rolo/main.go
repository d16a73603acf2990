package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/finchley/rolo/internal/book"
	"github.com/finchley/rolo/internal/config"
	"github.com/finchley/rolo/internal/field"
	"github.com/finchley/rolo/internal/shell"
	"github.com/finchley/rolo/internal/store"
	"github.com/finchley/rolo/internal/tui"
	"github.com/finchley/rolo/internal/vcard"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`

	Shell        ShellCmd        `cmd:"" default:"1" help:"Open the interactive shell."`
	Add          AddCmd          `cmd:"" help:"Add a contact or append a phone to an existing one."`
	Change       ChangeCmd       `cmd:"" help:"Replace a contact's phone number."`
	Phone        PhoneCmd        `cmd:"" help:"List a contact's phone numbers."`
	All          AllCmd          `cmd:"" help:"List every contact."`
	AddBirthday  AddBirthdayCmd  `cmd:"" help:"Set a contact's birthday (DD.MM.YYYY)."`
	ShowBirthday ShowBirthdayCmd `cmd:"" help:"Show a contact's birthday."`
	Birthdays    BirthdaysCmd    `cmd:"" help:"List birthdays in the upcoming window."`
	Browse       BrowseCmd       `cmd:"" help:"Open the interactive contacts browser TUI."`
	Export       ExportCmd       `cmd:"" help:"Export contacts as vCard 3.0."`
}

// bookStore abstracts snapshot persistence for testing.
type bookStore interface {
	Load() *book.AddressBook
	Save(b *book.AddressBook) error
}

// app bundles the shared dependencies every command needs.
type app struct {
	cfg      *config.Config
	store    bookStore
	handlers *shell.Handlers
}

// setup loads layered config with env overrides and builds the store and
// handler set.
func setup() (*app, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		store:    store.NewFileStore(cfg.Storage.Path),
		handlers: shell.NewHandlers(cfg.Birthdays.WindowDays),
	}, nil
}

// runMutating loads the book, applies one handler, prints its status, and
// persists the result. Handler errors propagate before any save happens.
func runMutating(w io.Writer, st bookStore, h shell.Handler, args []string) error {
	bk := st.Load()
	out, err := h(args, bk)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return st.Save(bk)
}

// runReadOnly loads the book, applies one handler, and prints its output.
func runReadOnly(w io.Writer, st bookStore, h shell.Handler, args []string) error {
	out, err := h(args, st.Load())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

// ShellCmd opens the interactive command loop.
type ShellCmd struct{}

// Run executes the shell command: load, loop, save on close/exit.
func (c *ShellCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	sh := shell.New(a.store.Load(), a.handlers, a.store, shell.Options{
		Prompt: a.cfg.Shell.Prompt,
	})
	return sh.Run()
}

// AddCmd adds a contact or appends a phone to an existing one.
type AddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"10-digit phone number."`
}

// Run executes the add command.
func (c *AddCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return runMutating(os.Stdout, a.store, a.handlers.AddContact, []string{c.Name, c.Phone})
}

// ChangeCmd replaces a contact's phone number.
type ChangeCmd struct {
	Name     string `arg:"" help:"Contact name."`
	OldPhone string `arg:"" help:"Phone number to replace."`
	NewPhone string `arg:"" help:"Replacement phone number."`
}

// Run executes the change command.
func (c *ChangeCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("change: %w", err)
	}
	return runMutating(os.Stdout, a.store, a.handlers.ChangePhone, []string{c.Name, c.OldPhone, c.NewPhone})
}

// PhoneCmd lists a contact's phone numbers.
type PhoneCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the phone command.
func (c *PhoneCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("phone: %w", err)
	}
	return runReadOnly(os.Stdout, a.store, a.handlers.ShowPhones, []string{c.Name})
}

// AllCmd lists every contact.
type AllCmd struct{}

// Run executes the all command.
func (c *AllCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("all: %w", err)
	}
	return runReadOnly(os.Stdout, a.store, a.handlers.ListAll, nil)
}

// AddBirthdayCmd sets a contact's birthday.
type AddBirthdayCmd struct {
	Name     string `arg:"" help:"Contact name."`
	Birthday string `arg:"" help:"Birthday as DD.MM.YYYY."`
}

// Run executes the add-birthday command.
func (c *AddBirthdayCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("add-birthday: %w", err)
	}
	return runMutating(os.Stdout, a.store, a.handlers.AddBirthday, []string{c.Name, c.Birthday})
}

// ShowBirthdayCmd shows a contact's birthday.
type ShowBirthdayCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the show-birthday command.
func (c *ShowBirthdayCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("show-birthday: %w", err)
	}
	return runReadOnly(os.Stdout, a.store, a.handlers.ShowBirthday, []string{c.Name})
}

// BirthdaysCmd lists birthdays in the upcoming window.
type BirthdaysCmd struct{}

// Run executes the birthdays command.
func (c *BirthdaysCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}
	return runReadOnly(os.Stdout, a.store, a.handlers.Birthdays, nil)
}

// BrowseCmd opens the interactive contacts browser TUI.
type BrowseCmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the browser model from the loaded book and launches the TUI.
func (c *BrowseCmd) Run() error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	a, err := setup()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	items := tui.ItemsFromBook(a.store.Load(), time.Now(), a.cfg.Birthdays.WindowDays)
	prog := tea.NewProgram(tui.NewModel(items), tea.WithAltScreen())
	return c.run(isTTY, prog)
}

// run executes the tea program, enabling testable wiring.
func (c *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// ExportCmd exports contacts as vCard 3.0.
type ExportCmd struct {
	Out string `help:"Output file path." default:"contacts.vcf"`
}

// Run executes the export command.
func (c *ExportCmd) Run() error {
	a, err := setup()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return c.run(os.Stdout, a.store)
}

// run performs the export with the given store, enabling testable wiring.
func (c *ExportCmd) run(w io.Writer, st bookStore) error {
	bk := st.Load()
	if err := vcard.Export(c.Out, bk); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(w, "Exported %d contacts to %s\n", bk.Len(), c.Out)
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitUser    = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code. Validation, lookup,
// and argument errors are user mistakes; everything else is a setup failure.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var (
		ve *field.ValidationError
		nf *book.NotFoundError
		ac *shell.ArgCountError
	)
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &ac) {
		return exitUser
	}
	if errors.Is(err, vcard.ErrEmptyBook) {
		return exitUser
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
