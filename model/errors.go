package model

import "fmt"

// ConstructionError is a fatal geometry construction failure: a boolean
// with no valid contact between its inputs, a profile that does not close,
// or an element that cannot be verified against the solid it claims to lie
// on. A half built model cannot be meshed or loaded, so the whole build
// aborts; the pipeline is idempotent and may be re-run with fixed
// parameters.
type ConstructionError struct {
	Op     string // operation that failed, e.g. "merge", "attach"
	Detail string
	Err    error // wrapped cause, may be nil
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geometry: %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Detail)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// RegionError reports a probe that resolved no elements. For critical
// regions (base footprint, tie interfaces, outer skin) this is fatal: a
// missing region means a downstream load or boundary condition silently
// not applied.
type RegionError struct {
	Region string
	Body   string
}

func (e *RegionError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("region %q: probe returned no elements", e.Region)
	}
	return fmt.Sprintf("region %q: probe on body %q returned no elements", e.Region, e.Body)
}
