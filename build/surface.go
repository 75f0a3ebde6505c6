package build

import (
	"fmt"
	"math"

	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/load"
	"github.com/MaxenceRichardCS/gbstower/model"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
)

// flank is one linear outer flank of a revolved primitive, in world
// coordinates: radius interpolates linearly from r0 at z0 to r1 at z1.
type flank struct {
	r0, z0, r1, z1 float64
}

// probes returns one representative point per sub-span of the flank, the
// spans being the flank split at elevation cut when cut falls inside it.
// One probe per constituent flank re-identifies the skin after booleans;
// partitioned flanks contribute one probe per half.
func (f flank) probes(cut, tol float64) []r3.Vec {
	spans := [][2]float64{{f.z0, f.z1}}
	if cut > f.z0+tol && cut < f.z1-tol {
		spans = [][2]float64{{f.z0, cut}, {cut, f.z1}}
	}
	var pts []r3.Vec
	for _, s := range spans {
		zm := 0.5 * (s[0] + s[1])
		t := (zm - f.z0) / (f.z1 - f.z0)
		rm := f.r0 + t*(f.r1-f.r0)
		pts = append(pts, r3.Vec{X: rm, Z: zm})
	}
	return pts
}

// SkinRegions re-identifies the lateral skins of both bodies by point
// probes at analytically computed flank points, then unions them into the
// global outer surface. In beam mode the tower has no skin and the global
// surface is the GBS skin alone.
func SkinRegions(c *model.Context, p *config.Params, names config.Names, towerInst, gbsInst *model.Instance) error {
	cut := p.Cutoff
	var towerElems []model.ElemID
	if p.Tower != config.TowerBeam {
		gbsTop := p.GBSTopHeight()
		f := flank{r0: p.RDownTower, z0: gbsTop, r1: p.RUpTower, z1: gbsTop + p.HTower}
		elems, err := probeAll(c, towerInst, f.probes(cut, c.Tol))
		if err != nil {
			return err
		}
		towerElems = elems
		if _, err := c.DefineRegion(names.TowerLateralSurface, model.KindSurface, towerElems); err != nil {
			return err
		}
	}

	y1 := p.PlateauHeight
	y2 := y1 + p.ConeHeight
	y3 := y2 + p.CylHeight
	flanks := []flank{
		{r0: p.PlateauRadius, z0: 0, r1: p.PlateauRadius, z1: y1},
		{r0: p.ConeBottomOuterRadius, z0: y1, r1: p.ConeTopOuterRadius, z1: y2},
		{r0: p.ConeTopOuterRadius, z0: y2, r1: p.ConeTopOuterRadius, z1: y3},
	}
	var gbsElems []model.ElemID
	for _, f := range flanks {
		elems, err := probeAll(c, gbsInst, f.probes(cut, c.Tol))
		if err != nil {
			return err
		}
		gbsElems = append(gbsElems, elems...)
	}
	if _, err := c.DefineRegion(names.GBSOuterSurface, model.KindSurface, gbsElems); err != nil {
		return err
	}

	global := model.UnionElems(towerElems, gbsElems)
	if _, err := c.DefineRegion(names.GlobalOuterSurface, model.KindSurface, global); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"surface": names.GlobalOuterSurface,
		"faces":   len(global),
	}).Info("outer skin resolved")
	return nil
}

// probeAll issues the point probes and fails hard on any miss: a skin
// probe that finds nothing means the flank it was computed for does not
// exist on the finalized body.
func probeAll(c *model.Context, in *model.Instance, pts []r3.Vec) ([]model.ElemID, error) {
	var out []model.ElemID
	for _, p := range pts {
		id, ok := c.PatchAt(in, p)
		if !ok {
			return nil, &model.ConstructionError{
				Op:     "probe",
				Detail: fmt.Sprintf("no face at point (%.3g, %.3g, %.3g) on instance %s", p.X, p.Y, p.Z, in.Name),
			}
		}
		out = append(out, id)
	}
	return out, nil
}

// LoadSurface builds the height-masked load application surface:
// (tower band ∪ GBS band) ∩ global outer skin. The band probes are run on
// both bodies independently and the intersection with the analytically
// known skin excludes the interior and cavity faces a naive single box
// query above the cutoff would drag in.
func LoadSurface(c *model.Context, p *config.Params, names config.Names, side load.Side, towerInst, gbsInst *model.Instance) error {
	global, ok := c.Region(names.GlobalOuterSurface)
	if !ok {
		return &model.ConstructionError{Op: "surface", Detail: "global outer skin not defined, SkinRegions must run first"}
	}
	rMax := math.Max(p.PlateauRadius, p.RDownTower) + 1
	var band r3.Box
	if side == load.Above {
		band = r3.Box{
			Min: r3.Vec{X: -rMax, Y: -rMax, Z: p.Cutoff},
			Max: r3.Vec{X: rMax, Y: rMax, Z: p.TotalHeight() + 1},
		}
	} else {
		band = r3.Box{
			Min: r3.Vec{X: -rMax, Y: -rMax, Z: -1},
			Max: r3.Vec{X: rMax, Y: rMax, Z: p.Cutoff},
		}
	}
	banded := model.UnionElems(c.ElemsInBox(towerInst, band), c.ElemsInBox(gbsInst, band))
	elems := model.IntersectElems(banded, global.Elems())
	if _, err := c.DefineRegion(names.LoadSurface, model.KindSurface, elems); err != nil {
		return err
	}
	return nil
}
