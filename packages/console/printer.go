package console

import (
	"fmt"
	"io"

	"github.com/iotaledger/sortedlist/packages/datastructure"
)

// region Printer //////////////////////////////////////////////////////////////////////////////////////////////////////

// Printer renders the console output.
type Printer struct {
	out       io.Writer
	separator string
}

// NewPrinter creates a Printer that writes to out and terminates every printed element with the separator.
func NewPrinter(out io.Writer, separator string) *Printer {
	return &Printer{
		out:       out,
		separator: separator,
	}
}

// Menu prints the numbered list of actions.
func (p *Printer) Menu() {
	p.Println("")
	p.Println("User Menu")
	for i, name := range actionNames {
		p.Println(fmt.Sprintf("%d. %s", i+1, name))
	}
}

// Prompt prints a message without line break.
func (p *Printer) Prompt(message string) {
	_, _ = fmt.Fprint(p.out, message)
}

// Println prints a single line.
func (p *Printer) Println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// InvalidInput tells the user that an integer was expected.
func (p *Printer) InvalidInput() {
	p.Println("Invalid input. Please enter an integer.")
}

// Forwards prints the list walking from its first to its last element.
func (p *Printer) Forwards(list *datastructure.SortedList[int]) error {
	p.Prompt("List (Forwards): ")

	for iterator := list.Begin(); !iterator.IsEmpty(); iterator.Next() {
		if err := p.element(&iterator); err != nil {
			return err
		}
	}
	p.Println("")

	return nil
}

// Backwards prints the list walking from its last to its first element.
func (p *Printer) Backwards(list *datastructure.SortedList[int]) error {
	p.Prompt("List (Backwards): ")

	for iterator := list.End(); !iterator.IsEmpty(); iterator.Prev() {
		if err := p.element(&iterator); err != nil {
			return err
		}
	}
	p.Println("")

	return nil
}

// Summary prints the statistics of a console session.
func (p *Printer) Summary(stats *Statistics, size int) {
	p.Println(fmt.Sprintf("Inserted: %d, Removed: %d, Not found: %d, Remaining: %d",
		stats.Inserted.Load(), stats.Removed.Load(), stats.NotFound.Load(), size))
}

func (p *Printer) element(iterator *datastructure.ListIterator[int]) error {
	value, err := iterator.Value()
	if err != nil {
		return err
	}
	p.Prompt(fmt.Sprintf("%d%s", value, p.separator))

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
