package book

import (
	"encoding/json"
	"fmt"
)

// AddressBook maps contact names to records. Insertion order is tracked so
// listing, persistence, and the birthday scan are deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts rec keyed by its name, overwriting any existing record with the
// same name. The add-vs-update distinction lives at the command boundary, not
// here. An overwritten record keeps its original position in the order.
func (b *AddressBook) Add(rec *Record) {
	name := rec.Name.String()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Get returns the record for name, or (nil, false) when absent.
func (b *AddressBook) Get(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// snapshot is the persisted JSON shape: an ordered list of records.
type snapshot struct {
	Contacts []*Record `json:"contacts"`
}

// MarshalJSON encodes the book as its ordered record list.
func (b *AddressBook) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{Contacts: b.Records()})
}

// UnmarshalJSON rebuilds the book from an ordered record list.
func (b *AddressBook) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("book: parsing snapshot: %w", err)
	}
	b.records = make(map[string]*Record, len(snap.Contacts))
	b.order = nil
	for i, rec := range snap.Contacts {
		if rec == nil {
			return fmt.Errorf("book: parsing snapshot: null contact at index %d", i)
		}
		b.Add(rec)
	}
	return nil
}
