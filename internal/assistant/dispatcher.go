// Package assistant turns console commands into operations on a contact directory and renders
// every outcome, including failures, as a reply for the user.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
)

// Command is one of the fixed set of command tokens the assistant understands.
type Command string

const (
	Hello        Command = "hello"
	Add          Command = "add"
	Change       Command = "change"
	Phone        Command = "phone"
	All          Command = "all"
	AddBirthday  Command = "add-birthday"
	ShowBirthday Command = "show-birthday"
	Birthdays    Command = "birthdays"
	Close        Command = "close"
	Exit         Command = "exit"
)

// Reply is the outcome of a single command. Quit is set by close and exit.
type Reply struct {
	Text string
	Quit bool
}

// handler runs one command. Exactly one of plain and guarded is set: plain handlers never fail,
// errors from guarded handlers are rendered as "Error: ..." by Dispatch.
type handler struct {
	plain   func(d *Dispatcher, args []string) string
	guarded func(d *Dispatcher, args []string) (string, error)
}

// handlers maps every known command except close and exit to its implementation.
var handlers = map[Command]handler{
	Hello:        {plain: hello},
	Add:          {guarded: addContact},
	Change:       {guarded: changeContact},
	Phone:        {guarded: showPhone},
	All:          {plain: showAll},
	AddBirthday:  {guarded: addBirthday},
	ShowBirthday: {guarded: showBirthday},
	Birthdays:    {guarded: birthdays},
}

// Dispatcher routes commands to their handlers. It is not safe for concurrent use.
type Dispatcher struct {
	directory *model.Directory
	now       func() time.Time
	log       *logger.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the source of "today" for the birthday commands.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(log *logger.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher returns a dispatcher operating on the given directory.
func NewDispatcher(directory *model.Directory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		directory: directory,
		now:       time.Now,
		log:       logger.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Directory returns the directory the dispatcher operates on.
func (d *Dispatcher) Directory() *model.Directory {
	return d.directory
}

// Execute parses a raw input line and dispatches it. A blank line yields an empty reply.
func (d *Dispatcher) Execute(line string) Reply {
	command, args, ok := ParseInput(line)
	if !ok {
		return Reply{}
	}
	return d.Dispatch(command, args)
}

// Dispatch runs the handler for command. Errors from guarded handlers are turned into replies
// of the form "Error: {message}", so no failure escapes this method.
func (d *Dispatcher) Dispatch(command string, args []string) Reply {
	cmd := Command(command)
	if cmd == Close || cmd == Exit {
		return Reply{Text: "Good bye!", Quit: true}
	}
	h, found := handlers[cmd]
	if !found {
		d.log.Debug("invalid command", "command", command)
		return Reply{Text: "Invalid command."}
	}
	d.log.Debug("dispatching command", "command", command, "args", len(args))
	if h.plain != nil {
		return Reply{Text: h.plain(d, args)}
	}
	text, err := h.guarded(d, args)
	if err != nil {
		d.log.Warn("command failed", "command", command, "error", err)
		return Reply{Text: "Error: " + err.Error()}
	}
	return Reply{Text: text}
}

// Today returns the current time of the dispatcher's clock in UTC.
func (d *Dispatcher) Today() time.Time {
	return d.now().UTC()
}

func hello(_ *Dispatcher, _ []string) string {
	return "How can I help you?"
}

// addContact adds a phone to a contact, creating the contact if needed. As with the interactive
// bot this grew out of, a new contact is kept even if the phone turns out to be invalid.
func addContact(d *Dispatcher, args []string) (string, error) {
	if len(args) < 2 {
		return "", &ArgumentCountError{Want: 2, Got: len(args), Message: "Please provide both name and phone number."}
	}
	if err := exactArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]
	message := "Contact updated."
	record, found := d.directory.Find(name)
	if !found {
		var err error
		record, err = model.NewRecord(name)
		if err != nil {
			return "", err
		}
		d.directory.AddRecord(record)
		message = "Contact added."
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

func changeContact(d *Dispatcher, args []string) (string, error) {
	if err := exactArgs(args, 3); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	record, found := d.directory.Find(name)
	if !found {
		return "Phone number not found.", nil
	}
	edited, err := record.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !edited {
		return "Phone number not found.", nil
	}
	return "Phone number updated.", nil
}

func showPhone(d *Dispatcher, args []string) (string, error) {
	if err := minArgs(args, 1); err != nil {
		return "", err
	}
	name := args[0]
	record, found := d.directory.Find(name)
	if !found {
		return "Contact not found.", nil
	}
	phones := make([]string, 0)
	for _, phone := range record.Phones() {
		phones = append(phones, phone.String())
	}
	return fmt.Sprintf("Phones for %s: %s", name, strings.Join(phones, ", ")), nil
}

func showAll(d *Dispatcher, _ []string) string {
	return d.directory.String()
}

func addBirthday(d *Dispatcher, args []string) (string, error) {
	if err := exactArgs(args, 2); err != nil {
		return "", err
	}
	name, birthday := args[0], args[1]
	record, found := d.directory.Find(name)
	if !found {
		return "Contact not found.", nil
	}
	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added.", name), nil
}

func showBirthday(d *Dispatcher, args []string) (string, error) {
	if err := minArgs(args, 1); err != nil {
		return "", err
	}
	name := args[0]
	record, found := d.directory.Find(name)
	if !found {
		return "Contact not found.", nil
	}
	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday is %s.", name, birthday), nil
}

func birthdays(d *Dispatcher, _ []string) (string, error) {
	upcoming := d.directory.UpcomingBirthdays(d.Today())
	if len(upcoming) == 0 {
		return "No birthdays in the upcoming week.", nil
	}
	lines := make([]string, 0, len(upcoming))
	for _, record := range upcoming {
		lines = append(lines, record.String())
	}
	return "Upcoming birthdays:\n" + strings.Join(lines, "\n"), nil
}
