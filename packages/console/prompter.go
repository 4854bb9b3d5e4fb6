package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInputClosed is returned by a Prompter once no more input can be read.
var ErrInputClosed = errors.New("input closed")

var errNotAnInteger = errors.New("not an integer")

// Prompter reads the decisions of the user.
type Prompter interface {
	// Action asks for the next menu entry.
	Action() (Action, error)

	// Int asks for an integer and repeats the question until one is given.
	Int(message string) (int, error)
}

// region PlainPrompter ////////////////////////////////////////////////////////////////////////////////////////////////

// PlainPrompter is a line based Prompter that works on any reader, e.g. piped input.
type PlainPrompter struct {
	scanner *bufio.Scanner
	printer *Printer
}

// NewPlainPrompter creates a PlainPrompter reading from input and printing its questions with the printer.
func NewPlainPrompter(input io.Reader, printer *Printer) *PlainPrompter {
	return &PlainPrompter{
		scanner: bufio.NewScanner(input),
		printer: printer,
	}
}

// Action prints the menu and reads the number of the chosen entry.
func (p *PlainPrompter) Action() (Action, error) {
	for {
		p.printer.Menu()

		choice, err := p.readInt("Enter your choice: ")
		if errors.Is(err, errNotAnInteger) {
			p.printer.InvalidInput()
			continue
		}
		if err != nil {
			return ActionInvalid, err
		}

		return ActionFromChoice(choice), nil
	}
}

// Int reads an integer.
func (p *PlainPrompter) Int(message string) (int, error) {
	for {
		value, err := p.readInt(message)
		if errors.Is(err, errNotAnInteger) {
			p.printer.InvalidInput()
			continue
		}

		return value, err
	}
}

func (p *PlainPrompter) readInt(message string) (int, error) {
	p.printer.Prompt(message)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "failed to read input")
		}

		return 0, ErrInputClosed
	}

	value, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
	if err != nil {
		return 0, errNotAnInteger
	}

	return value, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
