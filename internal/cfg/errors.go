package cfg

import (
	"fmt"

	"github.com/crossbind/crossbind/internal/ir"
)

// UnmappedFeatureError reports a feature atom that the rules neither enable,
// disable, nor rename. Under strict rules this fails the run; the location is
// the declaration the guard was attached to.
type UnmappedFeatureError struct {
	Feature string
	Loc     ir.Location
}

func (e *UnmappedFeatureError) Error() string {
	return fmt.Sprintf("unmapped feature: %s (at %s)", e.Feature, e.Loc)
}
