// Package build assembles the full support structure model: tower and
// fused GBS bodies, their placement, and the named regions every
// downstream collaborator (mesh, material, boundary condition, load)
// resolves by name.
package build

import (
	"fmt"
	"runtime/debug"

	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/load"
	"github.com/MaxenceRichardCS/gbstower/model"
	log "github.com/sirupsen/logrus"
)

// Result carries the handles of a completed build.
type Result struct {
	Tower     model.BodyID
	GBS       model.BodyID
	TowerInst *model.Instance
	GBSInst   *model.Instance

	// MonitorOK records whether the tip displacement monitor resolved.
	// The build proceeds without it; callers decide whether to care.
	MonitorOK bool
}

// Build runs the whole geometry pipeline on a validated parameter set:
// profiles, revolutions, booleans, placement, partition at the load
// cutoff, feature re-identification and surface algebra. Every stage
// deletes its target names before creating, so Build is safe to call
// twice on one context: the second run supersedes the first with no
// duplicate or stale objects.
//
// Any error aborts the whole build. There is no partial recovery: a half
// built geometry cannot be safely meshed or loaded.
func Build(c *model.Context, p *config.Params, names config.Names) (res *Result, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &model.ConstructionError{
				Op:     "build",
				Detail: fmt.Sprintf("%v\n%s", a, debug.Stack()),
			}
		}
	}()
	if err := config.Validate(p); err != nil {
		return nil, err
	}

	towerID, err := Tower(c, p, names)
	if err != nil {
		return nil, err
	}
	gbsID, err := GBS(c, p, names)
	if err != nil {
		return nil, err
	}
	towerInst, gbsInst := Assemble(c, p, names, towerID, gbsID)

	// Force features at the load cutoff before any region is resolved:
	// partitioning invalidates regions, so it must precede them.
	gbsTop := p.GBSTopHeight()
	if p.Cutoff > 0 && p.Cutoff < gbsTop+p.HTower {
		c.PartitionAt(gbsID, p.Cutoff)
		c.PartitionAt(towerID, p.Cutoff-gbsTop)
	}

	if err := SkinRegions(c, p, names, towerInst, gbsInst); err != nil {
		return nil, err
	}
	if err := TieRegions(c, p, names, towerInst, gbsInst); err != nil {
		return nil, err
	}
	if err := BaseRegion(c, p, names, gbsInst); err != nil {
		return nil, err
	}
	if err := LoadSurface(c, p, names, load.Above, towerInst, gbsInst); err != nil {
		return nil, err
	}
	monitorOK := MonitorRegion(c, p, names, towerInst)
	if !monitorOK {
		log.WithField("set", names.MonitorSet).Warn("tip monitor not resolved, proceeding without instrumentation")
	}

	log.WithFields(log.Fields{
		"bodies":  len(c.Bodies()),
		"regions": len(c.Regions()),
	}).Info("model build complete")
	return &Result{
		Tower:     towerID,
		GBS:       gbsID,
		TowerInst: towerInst,
		GBSInst:   gbsInst,
		MonitorOK: monitorOK,
	}, nil
}
