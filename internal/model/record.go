package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Record is the data of a single contact: a name, any number of phones in
// insertion order and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record without phones and without a birthday.
func NewRecord(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the record's phones.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	phone, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to raw and reports whether one
// was removed.
func (r *Record) RemovePhone(raw string) bool {
	return r.removePhone(raw) >= 0
}

// removePhone removes the first phone equal to raw and returns its former
// index, or -1.
func (r *Record) removePhone(raw string) int {
	for i, phone := range r.phones {
		if phone.value == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return i
		}
	}
	return -1
}

// EditPhone replaces oldRaw with newRaw at the same position. It reports
// false if oldRaw is not present. The old phone is removed before newRaw is
// validated, so an invalid newRaw leaves the record without either number.
func (r *Record) EditPhone(oldRaw string, newRaw string) (bool, error) {
	i := r.removePhone(oldRaw)
	if i < 0 {
		return false, nil
	}
	phone, err := ParsePhone(newRaw)
	if err != nil {
		return true, err
	}
	r.phones = slices.Insert(r.phones, i, phone)
	return true, nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, phone := range r.phones {
		if phone.value == raw {
			return phone, true
		}
	}
	return Phone{}, false
}

// AddBirthday validates raw and sets or replaces the birthday.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// DaysToNextBirthday returns the number of days from today until the next
// occurrence of the birthday, 0 if it is today. The second result is false if
// no birthday is set.
func (r *Record) DaysToNextBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	today = dateOf(today)
	next := r.birthday.In(today.Year())
	if next.Before(today) {
		next = r.birthday.In(today.Year() + 1)
	}
	return int(next.Sub(today).Hours() / 24), true
}

func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, phone := range r.phones {
		phones = append(phones, phone.String())
	}
	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: [%s], Birthday: %s",
		r.name, strings.Join(phones, ", "), birthday)
}
