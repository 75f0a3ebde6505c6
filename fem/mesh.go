// Package fem holds the thin, typed contracts between the geometry core
// and its finite element collaborators: mesh generation, material and
// section assignment, boundary conditions, solver jobs and result
// post-processing. The collaborators themselves are host provided; this
// package only fixes what the core exposes to them and what it expects
// back.
package fem

import (
	"context"

	"github.com/MaxenceRichardCS/gbstower/model"
)

// ElemCode names the finite element formulation of a mesh region.
type ElemCode string

const (
	// C3D8R is the 8 node reduced integration brick, the workhorse for
	// swept meshes of simple revolved steel parts.
	C3D8R ElemCode = "C3D8R"
	// C3D4 is the linear tetrahedron. Roughly a third of the nodes of
	// its quadratic sibling for the same volume, which keeps the fused
	// foundation within node budgets.
	C3D4 ElemCode = "C3D4"
	// B31 is the 2 node linear beam element for 1D tower mode.
	B31 ElemCode = "B31"
)

// Shape is the element shape strategy of a region.
type Shape uint8

const (
	ShapeHex Shape = iota
	ShapeTet
	ShapeLine
)

func (s Shape) String() string {
	switch s {
	case ShapeTet:
		return "tet"
	case ShapeLine:
		return "line"
	}
	return "hex"
}

// Technique is the mesh generation technique of a region.
type Technique uint8

const (
	// TechSweep sweeps a section mesh along the revolution axis. Precise
	// and cheap, but only valid on simple revolved bodies.
	TechSweep Technique = iota
	// TechFree fills arbitrary volumes, the only option for the fused
	// composite.
	TechFree
	// TechLine seeds a 1D wire.
	TechLine
)

// Spec is the meshing request for one body.
type Spec struct {
	Body            model.BodyID
	Seed            float64 // target element size
	DeviationFactor float64
	MinSizeFactor   float64
	Shape           Shape
	Technique       Technique
	Code            ElemCode
}

// Stats is what a mesher reports back.
type Stats struct {
	Nodes, Elems int
}

// Mesher generates a mesh for one body according to a Spec.
type Mesher interface {
	Mesh(ctx context.Context, spec Spec) (Stats, error)
}

// PlanFor selects the element strategy from a body's classification: hex
// sweep for simple revolved solids, free tetrahedra for the fused
// composite, line elements for a beam body.
func PlanFor(b *model.Body, seed float64) Spec {
	spec := Spec{
		Body:          b.ID(),
		Seed:          seed,
		MinSizeFactor: 0.1,
	}
	switch b.Class() {
	case model.ClassFused:
		// Loosened deviation lets elements stray from non-critical
		// curved walls and keeps the element count down.
		spec.DeviationFactor = 0.4
		spec.Shape = ShapeTet
		spec.Technique = TechFree
		spec.Code = C3D4
	case model.ClassBeam:
		spec.DeviationFactor = 0.1
		spec.Shape = ShapeLine
		spec.Technique = TechLine
		spec.Code = B31
	default:
		spec.DeviationFactor = 0.1
		spec.Shape = ShapeHex
		spec.Technique = TechSweep
		spec.Code = C3D8R
	}
	return spec
}
