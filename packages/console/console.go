package console

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"go.uber.org/atomic"

	"github.com/iotaledger/sortedlist/packages/datastructure"
)

// Statistics counts the list operations of a console session.
type Statistics struct {
	Inserted *atomic.Uint64
	Removed  *atomic.Uint64
	NotFound *atomic.Uint64
}

func newStatistics() *Statistics {
	return &Statistics{
		Inserted: atomic.NewUint64(0),
		Removed:  atomic.NewUint64(0),
		NotFound: atomic.NewUint64(0),
	}
}

// region Console //////////////////////////////////////////////////////////////////////////////////////////////////////

// Console is the interactive menu that manipulates a SortedList.
type Console struct {
	Statistics *Statistics

	list     *datastructure.SortedList[int]
	prompter Prompter
	printer  *Printer
	log      *logger.Logger
}

// New creates a Console for the list.
func New(list *datastructure.SortedList[int], prompter Prompter, printer *Printer, log *logger.Logger) *Console {
	return &Console{
		Statistics: newStatistics(),
		list:       list,
		prompter:   prompter,
		printer:    printer,
		log:        log,
	}
}

// Run executes the menu loop until the user exits or the input is closed.
func (c *Console) Run() error {
	for {
		action, err := c.prompter.Action()
		if errors.Is(err, ErrInputClosed) {
			action = ActionExit
		} else if err != nil {
			return errors.Wrap(err, "failed to read menu choice")
		}

		c.log.Debugf("selected action %s", action)

		if action == ActionExit {
			c.printer.Println("Exiting... Goodbye!")
			c.printer.Summary(c.Statistics, c.list.Size())
			return nil
		}

		if err := c.execute(action); err != nil {
			if errors.Is(err, ErrInputClosed) {
				continue
			}

			return errors.Wrapf(err, "failed to execute %s", action)
		}
	}
}

func (c *Console) execute(action Action) error {
	switch action {
	case ActionInsert:
		return c.insert()
	case ActionRemove:
		if c.list.IsEmpty() {
			c.printer.Println("List is empty, cannot remove.")
			return nil
		}
		return c.remove()
	case ActionPrintForwards:
		if c.list.IsEmpty() {
			c.printer.Println("List is empty.")
			return nil
		}
		return c.printer.Forwards(c.list)
	case ActionPrintBackwards:
		if c.list.IsEmpty() {
			c.printer.Println("List is empty.")
			return nil
		}
		return c.printer.Backwards(c.list)
	default:
		c.printer.Println("Invalid choice. Please try again.")
		return nil
	}
}

func (c *Console) insert() error {
	item, err := c.prompter.Int("Enter item to insert: ")
	if err != nil {
		return err
	}

	c.list.Insert(item)
	c.Statistics.Inserted.Inc()
	c.log.Debugf("inserted %d, size %d", item, c.list.Size())
	c.printer.Println("Item inserted.")

	return nil
}

func (c *Console) remove() error {
	item, err := c.prompter.Int("Enter item to remove: ")
	if err != nil {
		return err
	}

	if !c.list.Remove(item) {
		c.Statistics.NotFound.Inc()
		c.log.Debugf("%d not found", item)
		c.printer.Println("Item not found. Cannot remove.")
		return nil
	}

	c.Statistics.Removed.Inc()
	c.log.Debugf("removed %d, size %d", item, c.list.Size())
	c.printer.Println("Item removed.")

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
