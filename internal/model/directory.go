package model

import (
	"strings"
	"time"
)

// upcomingWindow is how far ahead UpcomingBirthdays looks, inclusive.
const upcomingWindow = 7

// Directory holds all records keyed by name. Iteration follows the order in
// which names were first added.
type Directory struct {
	records map[string]*Record
	names   []string
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{records: map[string]*Record{}}
}

// AddRecord stores the record under its name, replacing any record with the
// same name.
func (d *Directory) AddRecord(record *Record) {
	name := record.Name()
	if _, found := d.records[name]; !found {
		d.names = append(d.names, name)
	}
	d.records[name] = record
}

// Find returns the record with exactly the given name.
func (d *Directory) Find(name string) (*Record, bool) {
	record, found := d.records[name]
	return record, found
}

// Delete removes the record with the given name and reports whether it
// existed.
func (d *Directory) Delete(name string) bool {
	if _, found := d.records[name]; !found {
		return false
	}
	delete(d.records, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.names)
}

// Records returns all records in iteration order.
func (d *Directory) Records() []*Record {
	records := make([]*Record, 0, len(d.names))
	for _, name := range d.names {
		records = append(records, d.records[name])
	}
	return records
}

// UpcomingBirthdays returns the records whose birthday, projected onto the
// current year, lies between today and today plus seven days, both inclusive.
//
// Unlike Record.DaysToNextBirthday there is no rollover into the next year:
// on 28 December a birthday on 2 January is not reported.
func (d *Directory) UpcomingBirthdays(today time.Time) []*Record {
	today = dateOf(today)
	until := today.AddDate(0, 0, upcomingWindow)
	var upcoming []*Record
	for _, record := range d.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		projected := birthday.In(today.Year())
		if !projected.Before(today) && !projected.After(until) {
			upcoming = append(upcoming, record)
		}
	}
	return upcoming
}

func (d *Directory) String() string {
	lines := make([]string, 0, len(d.names))
	for _, record := range d.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}
