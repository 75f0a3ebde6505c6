package model

import (
	"github.com/MaxenceRichardCS/gbstower"
)

// DefaultTol is the spatial probe tolerance, sized to absorb floating
// point and discretization slack at the scale of metres-sized structures.
const DefaultTol = 0.01

// Context is the one mutable model state every pipeline stage reads and
// extends. It owns bodies, assembly instances and named regions, with
// explicit creation, lookup and deletion, so the pipeline has no hidden
// document singleton and is testable in isolation.
//
// The Context is not safe for concurrent mutation. The build is a strict
// sequence of dependent stages, each consuming the previous stage's named
// output, and assumes exclusive ownership.
type Context struct {
	// Tol is the tolerance of all spatial probes issued through this
	// context.
	Tol float64

	bodies    []*Body // arena, index is BodyID; nil slot = deleted
	byName    map[string]BodyID
	instances []*Instance
	instName  map[string]int
	instBody  map[BodyID]int
	regions   map[string]*Region
}

// NewContext returns an empty model context with probe tolerance tol.
// Pass 0 for DefaultTol.
func NewContext(tol float64) *Context {
	if tol <= 0 {
		tol = DefaultTol
	}
	return &Context{
		Tol:      tol,
		byName:   make(map[string]BodyID),
		instName: make(map[string]int),
		instBody: make(map[BodyID]int),
		regions:  make(map[string]*Region),
	}
}

// NewBody creates a named body backed by a finalized solid. A pre-existing
// body under the same name is deleted first, along with its instances and
// regions, so rebuilding under a fixed name can never collide or leave
// stale leftovers.
func (c *Context) NewBody(name string, class Class, s gbstower.Solid) BodyID {
	if s == nil {
		panic("NewBody: nil solid")
	}
	if name == "" {
		panic("NewBody: empty name")
	}
	c.RemoveBody(name)
	b := &Body{
		id:    BodyID(len(c.bodies)),
		name:  name,
		solid: s,
		class: class,
	}
	c.bodies = append(c.bodies, b)
	c.byName[name] = b.id
	return b.id
}

// Body resolves a handle. It panics on a deleted or never-issued handle:
// holding one is a construction sequencing bug, not a runtime condition.
func (c *Context) Body(id BodyID) *Body {
	if int(id) >= len(c.bodies) || c.bodies[id] == nil {
		panic("stale body handle")
	}
	return c.bodies[id]
}

// BodyByName looks a body up by name.
func (c *Context) BodyByName(name string) (BodyID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Bodies returns the live bodies of the model.
func (c *Context) Bodies() []*Body {
	var out []*Body
	for _, b := range c.bodies {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// RemoveBody deletes a body and everything addressing it: its assembly
// instance and every region resolved on it. Removing an absent name is a
// no-op.
func (c *Context) RemoveBody(name string) {
	id, ok := c.byName[name]
	if !ok {
		return
	}
	c.dropInstanceOf(id)
	c.dropRegionsOf(id)
	c.bodies[id] = nil
	delete(c.byName, name)
}

// AllElems returns handles to every element of a body, for whole-body
// sets such as section assignment targets.
func (c *Context) AllElems(id BodyID) []ElemID {
	b := c.Body(id)
	out := make([]ElemID, 0, len(b.patches)+len(b.rings))
	for i := range b.patches {
		out = append(out, ElemID{Body: b.id, Kind: KindPatch, Idx: i, gen: b.gen})
	}
	for i := range b.rings {
		out = append(out, ElemID{Body: b.id, Kind: KindRing, Idx: i, gen: b.gen})
	}
	return out
}

// PartitionAt splits every patch of the body that straddles elevation z
// (body frame), inserting a ring at the cut. Partitioning re-identifies
// the body: its generation is bumped, outstanding element handles go
// stale, and regions resolved on the body are dropped so callers must
// re-derive them.
func (c *Context) PartitionAt(id BodyID, z float64) {
	b := c.Body(id)
	var patches []Patch
	var rings []Ring
	cut := false
	for _, f := range b.patches {
		lo, hi, ring, ok := f.SplitAt(z, c.Tol)
		if !ok {
			patches = append(patches, f)
			continue
		}
		cut = true
		patches = append(patches, lo, hi)
		rings = append(rings, ring)
	}
	if !cut {
		return
	}
	b.patches = patches
	b.rings = append(b.rings, rings...)
	b.gen++
	c.dropRegionsOf(id)
}
