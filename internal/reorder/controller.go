package reorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/dragsort/internal/model"
	"github.com/idilsaglam/dragsort/internal/shared"
	"github.com/charmbracelet/log"
)

var (
	_ DataSource = (*Controller)(nil)
	_ DragSource = (*Controller)(nil)
)

// Controller owns the item list and serves it to a list host.
type Controller struct {
	items  *model.ItemList
	sink   io.Writer
	logger *log.Logger
}

// Options configures a [Controller]. Nil fields fall back to [io.Discard]
// and a discarding logger.
type Options struct {
	Items  []string
	Sink   io.Writer
	Logger *log.Logger
}

// New builds a controller seeded with opts.Items, or [model.DefaultItems] when empty.
func New(opts Options) *Controller {
	seed := opts.Items
	if len(seed) == 0 {
		seed = model.DefaultItems
	}
	sink := opts.Sink
	if sink == nil {
		sink = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	return &Controller{
		items:  model.NewItemList(seed),
		sink:   sink,
		logger: shared.WithLogger(logger, "component", "reorder"),
	}
}

func (c *Controller) NumberOfRows() int { return c.items.Len() }

func (c *Controller) CellForRow(row int) Cell {
	return Cell{Row: row, Text: c.items.At(row)}
}

// MoveRow moves the item at source to destination and writes the resulting
// list to the diagnostic sink. Equal indices leave the list and sink untouched.
func (c *Controller) MoveRow(source, destination int) {
	if !c.items.Move(source, destination) {
		return
	}
	order := c.items.Items()
	c.logger.Debug("row moved", "from", source, "to", destination, "order", order)
	if err := c.dump(order); err != nil {
		c.logger.Warn("diagnostic sink write failed", "err", err)
	}
}

func (c *Controller) ItemsForBeginning(row int) []DragItem {
	return []DragItem{{Kind: KindText, Text: c.items.At(row)}}
}

// Items returns a snapshot of the current order.
func (c *Controller) Items() []string { return c.items.Items() }

// CheckRow validates a row index supplied by an untrusted caller.
func (c *Controller) CheckRow(row int) error {
	if !c.items.InRange(row) {
		return fmt.Errorf("%w: row %d out of range [0,%d)", shared.ErrInvalidArgument, row, c.items.Len())
	}
	return nil
}

func (c *Controller) dump(order []string) error {
	var b strings.Builder
	for _, item := range order {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(c.sink, b.String())
	return err
}
