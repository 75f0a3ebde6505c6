package build

import (
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/model"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
)

// bandBox returns a thin world-frame slab around elevation z, wide enough
// radially to capture any element within radius r.
func bandBox(z, r, halfHeight float64) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: -r, Y: -r, Z: z - halfHeight},
		Max: r3.Vec{X: r, Y: r, Z: z + halfHeight},
	}
}

// bandHalfHeight absorbs floating point and discretization slack when
// selecting features by elevation band.
const bandHalfHeight = 0.05

// Assemble places the GBS at the seabed and seats the tower base on the
// cumulative stack height. Placement is purely additive stacking; the
// parameter validator already guaranteed the interface fits.
func Assemble(c *model.Context, p *config.Params, names config.Names, towerID, gbsID model.BodyID) (towerInst, gbsInst *model.Instance) {
	gbsTop := p.GBSTopHeight()
	gbsInst = c.Place(names.GBSInst, gbsID, 0)
	towerInst = c.Place(names.TowerInst, towerID, gbsTop)
	log.WithFields(log.Fields{
		"instance":  names.TowerInst,
		"elevation": gbsTop,
	}).Info("tower seated on GBS")
	return towerInst, gbsInst
}

// TieRegions recovers the two faces bonded by the tie constraint: the
// tower base and the GBS top ring it seats on. Both are selected by an
// elevation band probe at the interface; an empty result is fatal, since
// a missing tie face means the structures would not be bonded.
func TieRegions(c *model.Context, p *config.Params, names config.Names, towerInst, gbsInst *model.Instance) error {
	gbsTop := p.GBSTopHeight()

	towerElems := c.ElemsInBox(towerInst, bandBox(gbsTop, p.RDownTower+1, bandHalfHeight))
	kind := model.KindSurface
	if p.Tower == config.TowerBeam {
		// The beam base is a point feature, not a face.
		kind = model.KindSet
	} else {
		towerElems = patchesOnly(towerElems)
	}
	if _, err := c.DefineRegion(names.TieTowerSurface, kind, towerElems); err != nil {
		return err
	}

	gbsElems := patchesOnly(c.ElemsInBox(gbsInst, bandBox(gbsTop, p.ConeTopOuterRadius+1, bandHalfHeight)))
	if _, err := c.DefineRegion(names.TieGBSSurface, model.KindSurface, gbsElems); err != nil {
		return err
	}
	return nil
}

// BaseRegion recovers the GBS footprint resting on the seabed, the anchor
// of the encastre boundary condition. Fatal if the band probe at z = 0
// comes back empty.
func BaseRegion(c *model.Context, p *config.Params, names config.Names, gbsInst *model.Instance) error {
	elems := c.ElemsInBox(gbsInst, bandBox(0, p.PlateauRadius+1, 0.1))
	if _, err := c.DefineRegion(names.BaseSet, model.KindSet, elems); err != nil {
		return err
	}
	return nil
}

// MonitorRegion tries to bind a displacement monitor at the tower tip.
// The monitor is instrumentation, not structure: failure to resolve it is
// reported through the ok flag so the caller can log and proceed without
// it, never an error.
func MonitorRegion(c *model.Context, p *config.Params, names config.Names, towerInst *model.Instance) bool {
	tip := p.TotalHeight()
	elems := ringsOnly(c.ElemsInBox(towerInst, bandBox(tip, p.RDownTower+1, bandHalfHeight)))
	if len(elems) == 0 {
		return false
	}
	if _, err := c.DefineRegion(names.MonitorSet, model.KindSet, elems); err != nil {
		return false
	}
	return true
}

func patchesOnly(ids []model.ElemID) []model.ElemID {
	var out []model.ElemID
	for _, id := range ids {
		if id.Kind == model.KindPatch {
			out = append(out, id)
		}
	}
	return out
}

func ringsOnly(ids []model.ElemID) []model.ElemID {
	var out []model.ElemID
	for _, id := range ids {
		if id.Kind == model.KindRing {
			out = append(out, id)
		}
	}
	return out
}
