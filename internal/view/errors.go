package view

import "fmt"

// NavigationError reports a screen transition that could not be completed.
type NavigationError struct {
	View string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("switch to view %s: %v", e.View, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}
