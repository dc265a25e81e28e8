// Package tui is the terminal list host.
//
// [Model] implements Bubble Tea's Init/Update/View and plays the host
// framework for a [reorder.DataSource] and [reorder.DragSource]. It recognizes
// two drag gestures:
//  1. mouse: press on a row, move, release to drop
//  2. keyboard: space grabs the selected row, ↑/↓ move it, space or enter drops, esc cancels
//
// Rows are rendered only from the data source's answers. While a drag is in
// flight the view previews the order the drop would produce; the data source
// is mutated once, on drop, through MoveRow.
package tui
