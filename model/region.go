package model

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// RegionKind distinguishes load-bearing surfaces from plain element sets.
type RegionKind uint8

const (
	// KindSurface is a face region consumed by surface loads and ties.
	KindSurface RegionKind = iota
	// KindSet is a generic element set consumed by sections, boundary
	// conditions and monitors.
	KindSet
)

func (k RegionKind) String() string {
	if k == KindSet {
		return "set"
	}
	return "surface"
}

// Region is a lookup key bound to a subset of a body's elements. Regions
// are resolved, never cached through geometry changes: a partition or
// boolean on the owning body drops the region, and construction functions
// tolerate re-invocation by deleting any previous region under the same
// name.
type Region struct {
	Name  string
	Kind  RegionKind
	elems []ElemID
}

// Elems returns the resolved element handles of the region.
func (r *Region) Elems() []ElemID {
	out := make([]ElemID, len(r.elems))
	copy(out, r.elems)
	return out
}

// Len returns the number of elements in the region.
func (r *Region) Len() int { return len(r.elems) }

// DefineRegion binds name to a set of element handles. An empty element
// set is a RegionError: the caller decides whether the region was critical.
// Stale handles (minted before a partition of their body) are a
// ConstructionError, because accepting them would resurrect cached
// membership across a geometry change.
func (c *Context) DefineRegion(name string, kind RegionKind, elems []ElemID) (*Region, error) {
	if len(elems) == 0 {
		return nil, &RegionError{Region: name}
	}
	for _, id := range elems {
		b := c.Body(id.Body)
		if _, ok := b.elem(id); !ok {
			return nil, &ConstructionError{
				Op:     "region",
				Detail: "stale element handle for region " + name + " on body " + b.name,
			}
		}
	}
	delete(c.regions, name)
	r := &Region{Name: name, Kind: kind, elems: dedupe(elems)}
	c.regions[name] = r
	return r, nil
}

// Region looks a region up by name.
func (c *Context) Region(name string) (*Region, bool) {
	r, ok := c.regions[name]
	return r, ok
}

// DeleteRegion removes a named region. Deleting an absent name is a no-op.
func (c *Context) DeleteRegion(name string) {
	delete(c.regions, name)
}

// Regions returns the names of all defined regions.
func (c *Context) Regions() []string {
	out := make([]string, 0, len(c.regions))
	for name := range c.regions {
		out = append(out, name)
	}
	return out
}

// Contains reports whether world point p lies on one of the region's
// elements, honoring instance placement. This is the membership predicate
// the load collaborator applies to integration points.
func (c *Context) Contains(r *Region, p r3.Vec) bool {
	for _, id := range r.elems {
		b := c.Body(id.Body)
		e, ok := b.elem(id)
		if !ok {
			continue
		}
		q := p
		if in, has := c.InstanceOf(id.Body); has {
			q = in.local(p)
		}
		if e.Contains(q, c.Tol) {
			return true
		}
	}
	return false
}

func (c *Context) dropRegionsOf(id BodyID) {
	for name, r := range c.regions {
		for _, e := range r.elems {
			if e.Body == id {
				delete(c.regions, name)
				break
			}
		}
	}
}

// UnionElems merges element handle sets, dropping duplicates. Order of
// first appearance is preserved.
func UnionElems(sets ...[]ElemID) []ElemID {
	var all []ElemID
	for _, s := range sets {
		all = append(all, s...)
	}
	return dedupe(all)
}

// IntersectElems returns the handles present in both sets.
func IntersectElems(a, b []ElemID) []ElemID {
	in := make(map[ElemID]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	var out []ElemID
	for _, id := range a {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}

func dedupe(ids []ElemID) []ElemID {
	seen := make(map[ElemID]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
