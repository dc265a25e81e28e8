package model

import (
	"fmt"
	"slices"
)

// DefaultItems is the seed list used when no configuration overrides it.
var DefaultItems = []string{"one", "two", "three", "four", "five"}

// ItemList is the ordered sequence of display strings backing a list view.
// Elements have no identity beyond position and value.
type ItemList struct {
	items []string
}

// NewItemList copies seed into a new list.
func NewItemList(seed []string) *ItemList {
	return &ItemList{items: slices.Clone(seed)}
}

func (l *ItemList) Len() int { return len(l.items) }

// At returns the element at i. It panics when i is out of range.
func (l *ItemList) At(i int) string {
	l.mustIndex(i)
	return l.items[i]
}

// Items returns a copy of the current order.
func (l *ItemList) Items() []string { return slices.Clone(l.items) }

// Move relocates the element at from so that it ends at to, keeping the
// relative order of every other element. Moving an element onto itself is a
// no-op and reports false.
func (l *ItemList) Move(from, to int) bool {
	l.mustIndex(from)
	l.mustIndex(to)
	if from == to {
		return false
	}
	item := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, item)
	return true
}

// InRange reports whether i addresses an element.
func (l *ItemList) InRange(i int) bool { return i >= 0 && i < len(l.items) }

func (l *ItemList) mustIndex(i int) {
	if !l.InRange(i) {
		panic(fmt.Sprintf("model: index %d out of range [0,%d)", i, len(l.items)))
	}
}
