package build

import (
	"github.com/MaxenceRichardCS/gbstower"
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/model"
	"github.com/MaxenceRichardCS/gbstower/profile"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tower creates the tower body. In beam mode the body is a centerline
// wire. In solid mode the outer envelope is revolved and, when the wall
// thickness leaves a positive inner radius, hollowed by a boolean cut of
// an inner revolution; otherwise the section degenerates gracefully to a
// plain solid and no cut is attempted.
//
// Calling Tower twice under the same names rebuilds the body from scratch:
// creation deletes any previous body under the target name first.
func Tower(c *model.Context, p *config.Params, names config.Names) (model.BodyID, error) {
	if p.Tower == config.TowerBeam {
		return beamTower(c, p, names)
	}
	outer, inner, hollow, err := profile.ShellPair(p.RDownTower, p.RUpTower, p.HTower, p.ThicknessTower)
	if err != nil {
		return 0, &model.ConstructionError{Op: "tower", Detail: "building shell profiles", Err: err}
	}

	var solid gbstower.Solid
	var skin *profile.P
	if !hollow {
		solid = gbstower.Revolve(outer)
		skin = outer
	} else {
		// Transient operands for the cut. They exist as bodies only so a
		// failed cut leaves nothing half registered, and are deleted as
		// soon as the result body owns the geometry.
		oID := c.NewBody(names.TowerOuter, model.ClassRevolved, gbstower.Revolve(outer))
		iID := c.NewBody(names.TowerInner, model.ClassRevolved, gbstower.Revolve(inner))
		solid = gbstower.Difference(c.Body(oID).Solid(), c.Body(iID).Solid())
		// The cut result's boundary is the annular section of the same
		// parameters; re-derive the skin from it rather than from the
		// consumed operands.
		skin, err = profile.Ring(p.RDownTower, p.RUpTower, p.ThicknessTower, p.HTower)
		if err != nil {
			return 0, &model.ConstructionError{Op: "tower", Detail: "deriving annular section", Err: err}
		}
		c.RemoveBody(names.TowerOuter)
		c.RemoveBody(names.TowerInner)
	}

	id := c.NewBody(names.Tower, model.ClassRevolved, solid)
	body := c.Body(id)
	body.SetHollow(hollow)
	if _, err := body.AttachSegments(skin.Segments(), 0, c.Tol); err != nil {
		return 0, err
	}
	if err := attachProfileRings(body, skin, 0, c.Tol); err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{
		"part":   names.Tower,
		"hollow": hollow,
	}).Info("tower body created")
	return id, nil
}

// beamTower builds the 1D tower: a wire from the base to the tip with
// point features at both ends.
func beamTower(c *model.Context, p *config.Params, names config.Names) (model.BodyID, error) {
	id := c.NewBody(names.Tower, model.ClassBeam, gbstower.Wire(0, p.HTower))
	body := c.Body(id)
	seg := profile.Segment{B: r2.Vec{Y: p.HTower}}
	if _, err := body.AttachPatch(model.Patch{Seg: seg}, c.Tol); err != nil {
		return 0, err
	}
	if _, err := body.AttachRing(model.Ring{R: 0, Z: 0}, c.Tol); err != nil {
		return 0, err
	}
	if _, err := body.AttachRing(model.Ring{R: 0, Z: p.HTower}, c.Tol); err != nil {
		return 0, err
	}
	log.WithField("part", names.Tower).Info("beam tower body created")
	return id, nil
}

// attachProfileRings registers a ring feature for every off-axis profile
// vertex, shifted by dz into the body frame.
func attachProfileRings(b *model.Body, pr *profile.P, dz, tol float64) error {
	for _, v := range pr.Vertices() {
		if v.X <= tol {
			continue
		}
		if _, err := b.AttachRing(model.Ring{R: v.X, Z: v.Y + dz}, tol); err != nil {
			return err
		}
	}
	return nil
}
