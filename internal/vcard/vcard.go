// Package vcard exports the address book as vCard 3.0 entries.
package vcard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/finchley/rolo/internal/book"
)

// ErrEmptyBook indicates there is nothing to export.
var ErrEmptyBook = errors.New("vcard: address book is empty")

// Encode writes every record as a vCard 3.0 entry to w, in insertion order.
// Lines use CRLF endings per RFC 2426.
func Encode(w io.Writer, bk *book.AddressBook) error {
	for _, rec := range bk.Records() {
		if err := encodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the address book to a .vcf file at path, creating parent
// directories as needed. Exporting an empty book is an error, not an empty file.
func Export(path string, bk *book.AddressBook) error {
	if bk.Len() == 0 {
		return ErrEmptyBook
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("vcard: creating directory: %w", err)
		}
	}

	var b strings.Builder
	if err := Encode(&b, bk); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("vcard: writing %s: %w", path, err)
	}
	return nil
}

// encodeRecord writes one BEGIN:VCARD..END:VCARD block.
func encodeRecord(w io.Writer, rec *book.Record) error {
	name := rec.Name.String()

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escape(name),
		"N:" + escape(name) + ";;;;",
	}
	for _, p := range rec.Phones {
		lines = append(lines, "TEL;TYPE=VOICE:"+p.String())
	}
	if rec.Birthday != nil {
		// BDAY uses the ISO form mandated by the vCard spec, not DD.MM.YYYY.
		lines = append(lines, "BDAY:"+rec.Birthday.Date().Format("2006-01-02"))
	}
	lines = append(lines, "END:VCARD")

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\r\n"); err != nil {
			return fmt.Errorf("vcard: writing entry for %s: %w", name, err)
		}
	}
	return nil
}

// escape backslash-escapes the characters vCard text values reserve.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
