// Package reorder implements the list reorder controller.
//
// A [Controller] owns an [model.ItemList] and answers the two narrow
// interfaces a list host calls: [DataSource] for row count, row content and
// the reorder command, and [DragSource] for the payload of a drag session.
// Hosts never mutate the list themselves and never call the controller from
// more than one goroutine.
package reorder
