package book

import "time"

// BirthdayEntry pairs a contact name with its formatted birthday for the
// upcoming-birthdays listing.
type BirthdayEntry struct {
	Name     string
	Birthday string
}

// UpcomingBirthdays returns, in insertion order, every contact whose birthday
// re-anchored onto today's year falls within [today, today+windowDays], both
// ends inclusive. Times of day are ignored; only the calendar date counts.
//
// A Feb 29 birthday re-anchored onto a non-leap year normalizes to Mar 1
// (time.Date semantics), so such contacts surface around Mar 1 in those years.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []BirthdayEntry {
	start := truncateToDay(today)
	end := start.AddDate(0, 0, windowDays)

	var upcoming []BirthdayEntry
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}
		bd := rec.Birthday.Date()
		anchored := time.Date(start.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, start.Location())
		if anchored.Before(start) || anchored.After(end) {
			continue
		}
		upcoming = append(upcoming, BirthdayEntry{
			Name:     rec.Name.String(),
			Birthday: rec.BirthdayDisplay(),
		})
	}
	return upcoming
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
