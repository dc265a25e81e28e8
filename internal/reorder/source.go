package reorder

// Cell is the rendered content of one row.
type Cell struct {
	Row  int
	Text string
}

// KindText marks a plain text drag payload.
const KindText = "text/plain"

// DragItem is a transferable payload placed on a drag session.
type DragItem struct {
	Kind string
	Text string
}

// DataSource supplies rows to a list host and applies reorder commands.
type DataSource interface {
	NumberOfRows() int
	CellForRow(row int) Cell
	MoveRow(source, destination int)
}

// DragSource supplies the payload for a drag beginning on row.
//
// An empty result does not stop the host from dragging; suppression belongs
// to the host's interaction switch.
type DragSource interface {
	ItemsForBeginning(row int) []DragItem
}
