package sequence

import "fmt"

// NilMotifError is returned when a motif list contains a nil entry.
type NilMotifError struct {
	Index int
}

func (e *NilMotifError) Error() string {
	return fmt.Sprintf("motif at index %d is nil", e.Index)
}
