package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/MaxenceRichardCS/gbstower"
	"github.com/MaxenceRichardCS/gbstower/model"
	"github.com/MaxenceRichardCS/gbstower/profile"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// revolvedBody creates a tapered body of base radius rBot, top radius
// rTop and height h with its full skin registered.
func revolvedBody(t *testing.T, c *model.Context, name string, rBot, rTop, h float64) (model.BodyID, []model.ElemID) {
	t.Helper()
	p, err := profile.Trapezoid(rBot, rTop, h)
	if err != nil {
		t.Fatal(err)
	}
	id := c.NewBody(name, model.ClassRevolved, gbstower.Revolve(p))
	ids, err := c.Body(id).AttachSegments(p.Segments(), 0, c.Tol)
	if err != nil {
		t.Fatal(err)
	}
	return id, ids
}

func TestPatchContainsAnyAzimuth(t *testing.T) {
	// Flank of a cone from (3,0) to (1,10).
	f := model.Patch{Seg: profile.Segment{A: r2.Vec{X: 3}, B: r2.Vec{X: 1, Y: 10}}}
	r := 2.0 // radius at z=5
	for _, az := range []float64{0, 1, math.Pi, 5} {
		p := r3.Vec{X: r * math.Cos(az), Y: r * math.Sin(az), Z: 5}
		if !f.Contains(p, 1e-9) {
			t.Errorf("azimuth %g: flank point not contained", az)
		}
	}
	if f.Contains(r3.Vec{X: 2.5, Z: 5}, 1e-9) {
		t.Error("off-flank point contained")
	}
}

func TestAttachRejectsOffBoundary(t *testing.T) {
	c := model.NewContext(0)
	p, err := profile.Rect(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	id := c.NewBody("part", model.ClassRevolved, gbstower.Revolve(p))
	b := c.Body(id)
	// A segment floating outside the solid must not register.
	_, err = b.AttachPatch(model.Patch{Seg: profile.Segment{
		A: r2.Vec{X: 5, Y: 0}, B: r2.Vec{X: 5, Y: 4},
	}}, c.Tol)
	var ce *model.ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v want ConstructionError", err)
	}
	// So must a patch on the revolution axis: the axis is interior to the
	// solid, not part of its skin.
	_, err = b.AttachPatch(model.Patch{Seg: profile.Segment{
		A: r2.Vec{Y: 1}, B: r2.Vec{Y: 3},
	}}, c.Tol)
	if !errors.As(err, &ce) {
		t.Fatalf("axis patch: got %v want ConstructionError", err)
	}
}

func TestInternalSeamAttach(t *testing.T) {
	c := model.NewContext(0)
	lo, err := profile.Rect(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := profile.Rect(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	fused := gbstower.Union(
		gbstower.Revolve(lo),
		gbstower.Translate(gbstower.Revolve(hi), r3.Vec{Z: 2}),
	)
	id := c.NewBody("fused", model.ClassFused, fused)
	b := c.Body(id)

	// The disc r in [0,1] at z=2 is shared by both constituents.
	seam := model.Patch{Seg: profile.Segment{
		A: r2.Vec{Y: 2}, B: r2.Vec{X: 1, Y: 2},
	}, Internal: true}
	if _, err := b.AttachPatch(seam, c.Tol); err != nil {
		t.Fatalf("seam attach: %v", err)
	}
	// The outer wall of the lower cylinder touches one constituent only.
	wall := model.Patch{Seg: profile.Segment{
		A: r2.Vec{X: 3}, B: r2.Vec{X: 3, Y: 2},
	}, Internal: true}
	if _, err := b.AttachPatch(wall, c.Tol); err == nil {
		t.Fatal("skin patch accepted as internal seam")
	}
}

func TestPatchAtWithPlacement(t *testing.T) {
	c := model.NewContext(0)
	id, _ := revolvedBody(t, c, "tower", 3, 1, 10)
	in := c.Place("tower-1", id, 100) // base raised to z=100

	// Flank midpoint in world coordinates: r=2, z=105.
	got, ok := c.PatchAt(in, r3.Vec{X: 2, Z: 105})
	if !ok {
		t.Fatal("flank probe missed")
	}
	e, probe, ok := c.WorldElem(got)
	if !ok {
		t.Fatal("resolved handle went stale immediately")
	}
	if _, isPatch := e.(model.Patch); !isPatch {
		t.Fatalf("probe resolved a %T", e)
	}
	if math.Abs(probe.Z-105) > 1e-9 {
		t.Errorf("world probe elevation got %g want 105", probe.Z)
	}
	if _, ok := c.PatchAt(in, r3.Vec{X: 2, Z: 5}); ok {
		t.Error("probe at the unplaced elevation resolved a patch")
	}
}

func TestElemsInBox(t *testing.T) {
	c := model.NewContext(0)
	id, _ := revolvedBody(t, c, "part", 2, 2, 10)
	b := c.Body(id)
	if _, err := b.AttachRing(model.Ring{R: 2, Z: 0}, c.Tol); err != nil {
		t.Fatal(err)
	}
	in := c.Place("part-1", id, 50)

	// A slab around the world base catches the bottom disc and the ring
	// but not the 10 m wall.
	slab := r3.Box{
		Min: r3.Vec{X: -3, Y: -3, Z: 49.9},
		Max: r3.Vec{X: 3, Y: 3, Z: 50.1},
	}
	got := c.ElemsInBox(in, slab)
	if len(got) != 2 {
		t.Fatalf("slab caught %d elements, want 2 (bottom disc and ring)", len(got))
	}
	for _, idh := range got {
		e, _, ok := c.WorldElem(idh)
		if !ok {
			t.Fatal("stale handle from box probe")
		}
		bb := e.Bounds()
		if bb.Max.Z > 0.1 {
			t.Errorf("element spanning to z=%g caught by base slab", bb.Max.Z)
		}
	}
}

func TestPartitionInvalidates(t *testing.T) {
	c := model.NewContext(0)
	id, ids := revolvedBody(t, c, "part", 2, 2, 10)
	before := len(c.AllElems(id))
	if _, err := c.DefineRegion("skin", model.KindSurface, ids); err != nil {
		t.Fatal(err)
	}

	c.PartitionAt(id, 4)

	if _, ok := c.Region("skin"); ok {
		t.Error("region survived a partition of its body")
	}
	if _, err := c.DefineRegion("skin", model.KindSurface, ids); err == nil {
		t.Error("stale handles accepted after partition")
	}
	after := len(c.AllElems(id))
	// The wall splits in two and a ring appears at the cut: net +2.
	if after != before+2 {
		t.Errorf("element count got %d want %d", after, before+2)
	}

	// Fresh handles work.
	if _, err := c.DefineRegion("skin", model.KindSurface, c.AllElems(id)); err != nil {
		t.Fatal(err)
	}

	// A cut outside every patch is a no-op and keeps handles valid.
	fresh := c.AllElems(id)
	c.PartitionAt(id, 40)
	if _, err := c.DefineRegion("skin2", model.KindSet, fresh); err != nil {
		t.Errorf("no-op partition invalidated handles: %v", err)
	}
}

func TestRegionLifecycle(t *testing.T) {
	c := model.NewContext(0)
	id, ids := revolvedBody(t, c, "part", 2, 2, 10)

	if _, err := c.DefineRegion("empty", model.KindSet, nil); err == nil {
		t.Fatal("empty region accepted")
	} else {
		var re *model.RegionError
		if !errors.As(err, &re) {
			t.Fatalf("empty region got %v want RegionError", err)
		}
	}

	ra, err := c.DefineRegion("skin", model.KindSurface, ids)
	if err != nil {
		t.Fatal(err)
	}
	// Re-creating under the same name supersedes, duplicates collapse.
	rb, err := c.DefineRegion("skin", model.KindSurface, append(ids, ids...))
	if err != nil {
		t.Fatal(err)
	}
	if rb.Len() != ra.Len() {
		t.Errorf("recreated region size got %d want %d", rb.Len(), ra.Len())
	}
	if len(c.Regions()) != 1 {
		t.Errorf("region count got %d want 1", len(c.Regions()))
	}

	c.DeleteRegion("skin")
	if _, ok := c.Region("skin"); ok {
		t.Error("deleted region still resolvable")
	}
	c.DeleteRegion("skin") // second delete is a no-op

	// Removing the body also removes regions addressing it.
	if _, err := c.DefineRegion("skin", model.KindSurface, c.AllElems(id)); err != nil {
		t.Fatal(err)
	}
	c.RemoveBody("part")
	if _, ok := c.Region("skin"); ok {
		t.Error("region survived removal of its body")
	}
}

func TestRegionContainsWorldFrame(t *testing.T) {
	c := model.NewContext(0)
	id, ids := revolvedBody(t, c, "part", 2, 2, 10)
	c.Place("part-1", id, 30)
	r, err := c.DefineRegion("skin", model.KindSurface, ids)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains(r, r3.Vec{X: 2, Z: 35}) {
		t.Error("wall point at world elevation not in region")
	}
	if c.Contains(r, r3.Vec{X: 2, Z: 5}) {
		t.Error("point at the body-frame elevation wrongly in region")
	}
	if c.Contains(r, r3.Vec{X: 1, Z: 35}) {
		t.Error("interior point in a skin region")
	}
}

func TestPlaceReplaces(t *testing.T) {
	c := model.NewContext(0)
	id, _ := revolvedBody(t, c, "part", 2, 2, 10)
	c.Place("part-1", id, 0)
	in := c.Place("part-1", id, 5)
	if n := len(c.Instances()); n != 1 {
		t.Fatalf("instance count got %d want 1", n)
	}
	if got, _ := c.InstanceByName("part-1"); got != in || got.Dz != 5 {
		t.Error("re-placement did not supersede the previous instance")
	}
	if got, _ := c.InstanceOf(id); got != in {
		t.Error("body reverse lookup out of date")
	}
}

func TestSetOps(t *testing.T) {
	c := model.NewContext(0)
	_, ids := revolvedBody(t, c, "part", 2, 2, 10)
	u := model.UnionElems(ids[:2], ids[1:])
	if len(u) != len(ids) {
		t.Errorf("union size got %d want %d", len(u), len(ids))
	}
	i := model.IntersectElems(ids[:2], ids[1:])
	if len(i) != 1 || i[0] != ids[1] {
		t.Errorf("intersection got %v want [%v]", i, ids[1])
	}
}
