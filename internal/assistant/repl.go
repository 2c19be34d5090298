package assistant

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseInput splits a raw line on whitespace into a command token and its arguments. The
// command token is matched case-sensitively. ok is false for a blank line.
func ParseInput(line string) (command string, args []string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// RunREPL greets the user, then reads commands line by line from in and writes each non-empty
// reply to out. It returns when a command asks to quit or the input is exhausted.
func (d *Dispatcher) RunREPL(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "Welcome to the assistant bot!"); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, "Enter a command: "); err != nil {
			return err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			// End of input without close or exit.
			_, err := fmt.Fprintln(out)
			return err
		}
		reply := d.Execute(scanner.Text())
		if reply.Text != "" {
			if _, err := fmt.Fprintln(out, reply.Text); err != nil {
				return err
			}
		}
		if reply.Quit {
			return nil
		}
	}
}
