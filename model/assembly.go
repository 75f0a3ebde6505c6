package model

import (
	"github.com/MaxenceRichardCS/gbstower/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Instance is a placed copy of a body in the shared world frame. Placement
// is a pure vertical translation: the stacking correctness is guaranteed
// by parameter validation, not discovered here.
type Instance struct {
	Name string
	Body BodyID
	Dz   float64 // world elevation of the body's local z = 0
}

// local maps a world point into the instance's body frame.
func (in *Instance) local(p r3.Vec) r3.Vec {
	p.Z -= in.Dz
	return p
}

// world maps a body-frame point into the world frame.
func (in *Instance) world(p r3.Vec) r3.Vec {
	p.Z += in.Dz
	return p
}

// Place creates the named instance of a body at base elevation dz. Exactly
// one instance per body exists in the assembly; re-placing under the same
// name or for the same body replaces the previous instance, so assembly
// rebuilds are idempotent.
func (c *Context) Place(name string, id BodyID, dz float64) *Instance {
	c.Body(id) // validate handle
	if i, ok := c.instName[name]; ok {
		c.dropInstanceOf(c.instances[i].Body)
	}
	c.dropInstanceOf(id)
	in := &Instance{Name: name, Body: id, Dz: dz}
	c.instances = append(c.instances, in)
	c.instName[name] = len(c.instances) - 1
	c.instBody[id] = len(c.instances) - 1
	return in
}

// InstanceByName looks an instance up by name.
func (c *Context) InstanceByName(name string) (*Instance, bool) {
	i, ok := c.instName[name]
	if !ok {
		return nil, false
	}
	return c.instances[i], true
}

// InstanceOf returns the instance placing a body, if any.
func (c *Context) InstanceOf(id BodyID) (*Instance, bool) {
	i, ok := c.instBody[id]
	if !ok {
		return nil, false
	}
	return c.instances[i], true
}

// Instances returns the live instances of the assembly.
func (c *Context) Instances() []*Instance {
	var out []*Instance
	for _, in := range c.instances {
		if in != nil {
			out = append(out, in)
		}
	}
	return out
}

func (c *Context) dropInstanceOf(id BodyID) {
	i, ok := c.instBody[id]
	if !ok {
		return
	}
	delete(c.instName, c.instances[i].Name)
	delete(c.instBody, id)
	c.instances[i] = nil
}

// PatchAt issues a point probe in world coordinates: the surface patch of
// the instanced body containing p within the context tolerance. The
// explicit ok result forces callers to decide what a miss means; an empty
// probe is never a silent skip.
func (c *Context) PatchAt(in *Instance, p r3.Vec) (ElemID, bool) {
	b := c.Body(in.Body)
	q := in.local(p)
	for i, f := range b.patches {
		if f.Contains(q, c.Tol) {
			return ElemID{Body: b.id, Kind: KindPatch, Idx: i, gen: b.gen}, true
		}
	}
	return ElemID{}, false
}

// ElemsInBox issues a bounding box probe in world coordinates: every
// element of the instanced body whose own bounding box lies within box.
// The box is enlarged by the context tolerance before the containment
// test. Internal seam patches are reported like any other element; callers
// doing skin algebra exclude them by intersecting with a known outer skin.
func (c *Context) ElemsInBox(in *Instance, box r3.Box) []ElemID {
	b := c.Body(in.Body)
	want := d3.Box(box).Enlarge(d3.Elem(2 * c.Tol)).Translate(r3.Vec{Z: -in.Dz})
	var out []ElemID
	for i, f := range b.patches {
		if want.ContainsBox(d3.Box(f.Bounds())) {
			out = append(out, ElemID{Body: b.id, Kind: KindPatch, Idx: i, gen: b.gen})
		}
	}
	for i, e := range b.rings {
		if want.ContainsBox(d3.Box(e.Bounds())) {
			out = append(out, ElemID{Body: b.id, Kind: KindRing, Idx: i, gen: b.gen})
		}
	}
	return out
}

// WorldElem resolves an element handle and returns it with its probe point
// mapped to the world frame. ok is false for stale handles.
func (c *Context) WorldElem(id ElemID) (e Elem, probe r3.Vec, ok bool) {
	b := c.Body(id.Body)
	e, ok = b.elem(id)
	if !ok {
		return nil, r3.Vec{}, false
	}
	probe = e.Probe()
	if in, has := c.InstanceOf(id.Body); has {
		probe = in.world(probe)
	}
	return e, probe, true
}
