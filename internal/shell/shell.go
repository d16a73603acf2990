package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/finchley/rolo/internal/book"
)

// Saver persists the address book when the shell exits.
type Saver interface {
	Save(b *book.AddressBook) error
}

// Options configures shell creation.
type Options struct {
	In     io.Reader // Command input (default: os.Stdin).
	Out    io.Writer // Display output (default: os.Stdout).
	Prompt string    // Printed before each read.
}

// Shell reads commands line by line, dispatches them against the address
// book, and persists the book on exit. Malformed input never crashes the
// loop; every handler error is converted to a display string.
type Shell struct {
	book     *book.AddressBook
	saver    Saver
	commands map[string]Handler
	in       io.Reader
	out      io.Writer
	prompt   string
}

// New creates a Shell over the given book, handler set, and saver.
func New(bk *book.AddressBook, handlers *Handlers, saver Saver, opts Options) *Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Shell{
		book:     bk,
		saver:    saver,
		commands: handlers.Table(),
		in:       opts.In,
		out:      opts.Out,
		prompt:   opts.Prompt,
	}
}

// Run executes the read-dispatch-print loop until close/exit or EOF, then
// saves the book. Save failures propagate to the caller.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to rolo!")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			// EOF or read failure: persist what we have.
			fmt.Fprintln(s.out)
			break
		}

		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}

		if command == "close" || command == "exit" {
			break
		}

		fmt.Fprintln(s.out, s.Dispatch(command, args))
	}

	fmt.Fprintln(s.out, "Good bye!")
	if err := s.saver.Save(s.book); err != nil {
		return fmt.Errorf("shell: saving on exit: %w", err)
	}
	return scanner.Err()
}

// Dispatch runs one command against the book and returns its display string.
// Unknown commands and handler errors are reported as text, never raised.
func (s *Shell) Dispatch(command string, args []string) string {
	h, ok := s.commands[command]
	if !ok {
		return "Invalid command."
	}

	out, err := h(args, s.book)
	if err != nil {
		return RenderError(err)
	}
	return out
}

// RenderError converts a handler error to its display string. Usage errors
// show the usage line; everything else gets the generic error prefix.
func RenderError(err error) string {
	var ac *ArgCountError
	if errors.As(err, &ac) {
		return ac.Error()
	}
	return "An error occurred: " + err.Error()
}

// parseInput tokenizes a line into a command word and its arguments.
// An empty or blank line yields an empty command.
func parseInput(line string) (command string, args []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}
