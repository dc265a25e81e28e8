package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrConfigExists  = fmt.Errorf("configuration already exists")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	ErrEmptyList = fmt.Errorf("list has no items")
	ErrClipboard = fmt.Errorf("clipboard unavailable")
)
