package irtypes

import "fmt"

// OpaqueStructError reports an element read on a struct whose body has not
// been defined. It is a caller error, never a partial result.
type OpaqueStructError struct {
	Name string
}

func (e *OpaqueStructError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("cannot read elements of an opaque struct: %%%s", e.Name)
	}
	return "cannot read elements of an opaque struct"
}

func NewOpaqueStructError(name string) *OpaqueStructError {
	return &OpaqueStructError{Name: name}
}
