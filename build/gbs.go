package build

import (
	"fmt"

	"github.com/MaxenceRichardCS/gbstower"
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/model"
	"github.com/MaxenceRichardCS/gbstower/profile"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// GBS creates the fused gravity base: a solid plateau, a hollow cone and a
// hollow cylinder, stacked by translation and merged into one body with
// the seams between the three constituents retained. Meshing benefits from
// nodes aligned at the stack boundaries even though the parts are one
// rigid continuum after the merge.
func GBS(c *model.Context, p *config.Params, names config.Names) (model.BodyID, error) {
	y1 := p.PlateauHeight
	y2 := y1 + p.ConeHeight
	y3 := y2 + p.CylHeight
	rP := p.PlateauRadius
	roB := p.ConeBottomOuterRadius
	roT := p.ConeTopOuterRadius
	riB := roB - p.ConeThickness
	riT := roT - p.ConeThickness

	// The merge needs valid contact between stacked primitives. The cone
	// and cylinder share the top radius by construction; the cone seat on
	// the plateau is a parameter combination and is checked here.
	if roB > rP {
		return 0, &model.ConstructionError{
			Op:     "merge",
			Detail: fmt.Sprintf("cone bottom radius %g extends beyond the plateau radius %g, no valid contact", roB, rP),
		}
	}

	plateau, err := profile.Rect(rP, p.PlateauHeight)
	if err != nil {
		return 0, &model.ConstructionError{Op: "gbs", Detail: "plateau profile", Err: err}
	}
	cone, err := profile.Ring(roB, roT, p.ConeThickness, p.ConeHeight)
	if err != nil {
		return 0, &model.ConstructionError{Op: "gbs", Detail: "cone profile", Err: err}
	}
	cyl, err := profile.RectRing(roT, p.ConeThickness, p.CylHeight)
	if err != nil {
		return 0, &model.ConstructionError{Op: "gbs", Detail: "cylinder profile", Err: err}
	}

	// Transient constituent bodies, stacked then consumed by the merge.
	pID := c.NewBody(names.Plateau, model.ClassRevolved, gbstower.Revolve(plateau))
	cID := c.NewBody(names.Cone, model.ClassRevolved, gbstower.Translate(gbstower.Revolve(cone), r3.Vec{Z: y1}))
	uID := c.NewBody(names.Cyl, model.ClassRevolved, gbstower.Translate(gbstower.Revolve(cyl), r3.Vec{Z: y2}))
	merged := gbstower.Union(c.Body(pID).Solid(), c.Body(cID).Solid(), c.Body(uID).Solid())
	c.RemoveBody(names.Plateau)
	c.RemoveBody(names.Cone)
	c.RemoveBody(names.Cyl)

	id := c.NewBody(names.GBS, model.ClassFused, merged)
	body := c.Body(id)
	body.SetHollow(true)

	// Boundary decomposition of the fused body, re-derived analytically
	// from the same parameters. The plateau top splits where the cone
	// seats on it; the cone top annulus and the cylinder bottom coincide
	// and are one retained internal seam.
	skin := []model.Patch{
		{Seg: seg(0, 0, rP, 0)},      // plateau bottom disc
		{Seg: seg(rP, 0, rP, y1)},    // plateau flank
		{Seg: seg(riB, y1, 0, y1)},   // plateau top, inside the cone hole
		{Seg: seg(roB, y1, roT, y2)}, // cone outer slant
		{Seg: seg(riT, y2, riB, y1)}, // cone inner slant
		{Seg: seg(roT, y2, roT, y3)}, // cylinder outer wall
		{Seg: seg(riT, y2, riT, y3)}, // cylinder inner wall
		{Seg: seg(riT, y3, roT, y3)}, // cylinder top annulus
	}
	if roB < rP-c.Tol {
		skin = append(skin, model.Patch{Seg: seg(rP, y1, roB, y1)}) // plateau top, outside the cone seat
	}
	seams := []model.Patch{
		{Seg: seg(roB, y1, riB, y1), Internal: true}, // cone seat on plateau
		{Seg: seg(roT, y2, riT, y2), Internal: true}, // cone top under cylinder
	}
	for _, f := range append(skin, seams...) {
		if _, err := body.AttachPatch(f, c.Tol); err != nil {
			return 0, err
		}
	}
	rings := []model.Ring{
		{R: rP, Z: 0}, {R: rP, Z: y1}, {R: roB, Z: y1}, {R: riB, Z: y1},
		{R: roT, Z: y2}, {R: riT, Z: y2}, {R: roT, Z: y3}, {R: riT, Z: y3},
	}
	for _, e := range rings {
		if _, err := body.AttachRing(e, c.Tol); err != nil {
			return 0, err
		}
	}

	log.WithFields(log.Fields{
		"part":   names.GBS,
		"height": y3,
	}).Info("fused GBS body created")
	return id, nil
}

func seg(r0, z0, r1, z1 float64) profile.Segment {
	return profile.Segment{A: r2.Vec{X: r0, Y: z0}, B: r2.Vec{X: r1, Y: z1}}
}
