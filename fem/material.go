package fem

import (
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/model"
	log "github.com/sirupsen/logrus"
)

// Material binds a name to isotropic elastic properties.
type Material struct {
	Name  string
	Props config.MatProps
}

// Steel and Concrete lift the configured property sets into named
// materials.
func Steel(p *config.Params) Material {
	return Material{Name: "Steel_S355", Props: p.Steel}
}

func Concrete(p *config.Params) Material {
	return Material{Name: "Concrete_C50", Props: p.Concrete}
}

// Assignment records a section bound to a whole-body set, what the
// material collaborator consumes.
type Assignment struct {
	Body     model.BodyID
	Material Material
	Section  string
	Set      string
}

// AssignSolid creates the homogeneous solid section of a material over a
// whole body, registering the backing element set on the context. Safe to
// re-invoke: the set is recreated idempotently.
func AssignSolid(c *model.Context, id model.BodyID, mat Material) (Assignment, error) {
	b := c.Body(id)
	setName := "Set_Material_" + b.Name()
	if _, err := c.DefineRegion(setName, model.KindSet, c.AllElems(id)); err != nil {
		return Assignment{}, err
	}
	a := Assignment{
		Body:     id,
		Material: mat,
		Section:  "Section_" + mat.Name,
		Set:      setName,
	}
	log.WithFields(log.Fields{
		"material": mat.Name,
		"part":     b.Name(),
	}).Info("section assigned")
	return a, nil
}

// AssignBeam creates the beam section over a 1D tower body under the
// canonical beam set name. The tower radii give the circular profile the
// section needs.
func AssignBeam(c *model.Context, id model.BodyID, mat Material, names config.Names) (Assignment, error) {
	if _, err := c.DefineRegion(names.BeamSet, model.KindSet, c.AllElems(id)); err != nil {
		return Assignment{}, err
	}
	return Assignment{
		Body:     id,
		Material: mat,
		Section:  "Section_Beam_" + mat.Name,
		Set:      names.BeamSet,
	}, nil
}
