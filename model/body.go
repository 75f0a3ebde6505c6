package model

import (
	"github.com/MaxenceRichardCS/gbstower"
	"github.com/MaxenceRichardCS/gbstower/profile"
)

// BodyID is a typed handle to a body in a Context arena. Creation returns
// the handle directly; name lookup exists only to support idempotent
// delete-before-create semantics.
type BodyID int

// Class tells a meshing collaborator which element shape strategy fits the
// body.
type Class uint8

const (
	// ClassRevolved is a simple revolved solid, hollow or not. Meshable
	// with swept hexahedra.
	ClassRevolved Class = iota
	// ClassFused is a boolean merge of several revolved solids with
	// retained internal seams. Needs free tetrahedra.
	ClassFused
	// ClassBeam is a 1D centerline body meshed with line elements.
	ClassBeam
)

func (c Class) String() string {
	switch c {
	case ClassRevolved:
		return "revolved"
	case ClassFused:
		return "fused"
	case ClassBeam:
		return "beam"
	}
	return "class?"
}

// Body is one finalized solid with its resolvable element registry.
// Elements are attached after the solid stabilizes (after any boolean),
// each verified against the distance field so a stale analytic guess
// cannot silently register a feature that is not on the body.
type Body struct {
	id     BodyID
	name   string
	solid  gbstower.Solid
	class  Class
	hollow bool
	gen    uint32

	patches []Patch
	rings   []Ring
}

func (b *Body) Name() string          { return b.name }
func (b *Body) ID() BodyID            { return b.id }
func (b *Body) Solid() gbstower.Solid { return b.solid }
func (b *Body) Class() Class          { return b.class }
func (b *Body) Hollow() bool          { return b.hollow }

// SetHollow records whether the body carries an internal cavity. The flag
// feeds the meshing collaborator's element choice.
func (b *Body) SetHollow(h bool) { b.hollow = h }

// AttachPatch registers a surface patch on the body after verifying its
// probe point against the distance field: a skin patch must lie on the
// boundary, a retained internal seam must lie on the boundary of at least
// two constituents of a merge. The returned handle is bound to the current
// body generation.
func (b *Body) AttachPatch(f Patch, tol float64) (ElemID, error) {
	p := f.Probe()
	if f.Internal {
		n := 0
		for _, m := range gbstower.Members(b.solid) {
			if gbstower.OnBoundary(m, p, tol) {
				n++
			}
		}
		if n < 2 {
			return ElemID{}, &ConstructionError{
				Op:     "attach",
				Detail: "internal seam probe is not shared by two merged solids on body " + b.name,
			}
		}
	} else if !gbstower.OnBoundary(b.solid, p, tol) {
		return ElemID{}, &ConstructionError{
			Op:     "attach",
			Detail: "patch probe point is not on the boundary of body " + b.name,
		}
	}
	b.patches = append(b.patches, f)
	return ElemID{Body: b.id, Kind: KindPatch, Idx: len(b.patches) - 1, gen: b.gen}, nil
}

// AttachSegments registers one skin patch per non-axis segment of a
// profile, shifted vertically by dz into the body frame.
func (b *Body) AttachSegments(segs []profile.Segment, dz, tol float64) ([]ElemID, error) {
	var ids []ElemID
	for _, s := range segs {
		if s.OnAxis() {
			continue
		}
		s.A.Y += dz
		s.B.Y += dz
		id, err := b.AttachPatch(Patch{Seg: s}, tol)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AttachRing registers a ring element, verified on the boundary.
func (b *Body) AttachRing(e Ring, tol float64) (ElemID, error) {
	if !gbstower.OnBoundary(b.solid, e.Probe(), tol) {
		return ElemID{}, &ConstructionError{
			Op:     "attach",
			Detail: "ring probe point is not on the boundary of body " + b.name,
		}
	}
	b.rings = append(b.rings, e)
	return ElemID{Body: b.id, Kind: KindRing, Idx: len(b.rings) - 1, gen: b.gen}, nil
}

// elem resolves a handle against the current generation. ok is false for
// handles minted before the last partition of the body.
func (b *Body) elem(id ElemID) (Elem, bool) {
	if id.gen != b.gen {
		return nil, false
	}
	switch id.Kind {
	case KindPatch:
		if id.Idx < len(b.patches) {
			return b.patches[id.Idx], true
		}
	case KindRing:
		if id.Idx < len(b.rings) {
			return b.rings[id.Idx], true
		}
	}
	return nil, false
}
