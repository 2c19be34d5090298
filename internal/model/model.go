package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// birthdayLayout is the only accepted date format, e.g. 15.08.1990.
const birthdayLayout = "02.01.2006"

// phonePattern matches exactly ten decimal digits.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// birthdayPattern guards the layout against signs and other input that
// time.Parse would otherwise tolerate.
var birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// ValidationError reports a value that failed format validation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Field is implemented by every validated value of a contact.
type Field interface {
	fmt.Stringer
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is the non-empty name of a contact.
type Name struct {
	value string
}

// ParseName returns a Name, or a ValidationError if the name is empty.
func ParseName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, &ValidationError{Reason: "Name must not be empty."}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number consisting of exactly ten digits. Separators,
// spaces and country codes are rejected, not normalized.
type Phone struct {
	value string
}

// ParsePhone returns a Phone, or a ValidationError if raw is not ten digits.
func ParsePhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, &ValidationError{Reason: "Phone number must contain exactly 10 digits."}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date given as DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// ParseBirthday returns a Birthday, or a ValidationError if raw does not match
// DD.MM.YYYY or does not denote a real calendar date (e.g. 30.02.2000).
func ParseBirthday(raw string) (Birthday, error) {
	invalid := &ValidationError{Reason: "Invalid date format. Use DD.MM.YYYY"}
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, invalid
	}
	date, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, invalid
	}
	return Birthday{date: date}, nil
}

func (b Birthday) String() string {
	return b.date.Format(birthdayLayout)
}

// Time returns the birthday as a UTC midnight timestamp.
func (b Birthday) Time() time.Time {
	return b.date
}

// In projects the birthday's month and day onto the given year. A 29 February
// birthday becomes 1 March in a non-leap year.
func (b Birthday) In(year int) time.Time {
	return time.Date(year, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
}

// dateOf strips the time of day, leaving the calendar date in UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
