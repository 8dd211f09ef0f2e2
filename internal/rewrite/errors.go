package rewrite

import (
	"fmt"

	"github.com/crossbind/crossbind/internal/ir"
)

// PathError reports a type path that is neither absolute, covered by an
// allowed prefix, nor an exported type.
type PathError struct {
	Type    string
	Context string
	Loc     ir.Location
}

func (e *PathError) Error() string {
	return fmt.Sprintf(
		"type '%s' in %s is not valid for FFI: must be either absolute (starting with '::'), start with an allowed prefix, or be defined in exported types (at %s)",
		e.Type, e.Context, e.Loc)
}

// ShapeError reports a type shape the FFI boundary cannot carry, such as a
// tuple or an opaque construct.
type ShapeError struct {
	Type    string
	Context string
	Loc     ir.Location
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf(
		"unsupported type '%s' in %s: only path types, references, pointers, slices, arrays, and extern \"C\" function types are supported for FFI (at %s)",
		e.Type, e.Context, e.Loc)
}

// AbiError reports a bare function type that does not declare the C calling
// convention.
type AbiError struct {
	Type    string
	Context string
	Loc     ir.Location
}

func (e *AbiError) Error() string {
	return fmt.Sprintf(
		"function type '%s' in %s must declare extern \"C\" for FFI use (at %s)",
		e.Type, e.Context, e.Loc)
}
