package fem

import (
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/model"
)

// DOF flags the degrees of freedom a boundary condition constrains.
// Rotations only apply to beam and shell elements.
type DOF struct {
	U1, U2, U3    bool
	UR1, UR2, UR3 bool
}

// FullyFixed constrains every degree of freedom.
func FullyFixed() DOF {
	return DOF{U1: true, U2: true, U3: true, UR1: true, UR2: true, UR3: true}
}

// BC is a displacement boundary condition bound to a named set.
type BC struct {
	Name string
	Set  string
	Fix  DOF
}

// Encastre clamps the foundation base set. The set must already exist on
// the context, which is the case after a successful build.
func Encastre(c *model.Context, names config.Names) (BC, error) {
	if _, ok := c.Region(names.BaseSet); !ok {
		return BC{}, &model.RegionError{Region: names.BaseSet}
	}
	return BC{Name: "BC_Encastre_Base", Set: names.BaseSet, Fix: FullyFixed()}, nil
}

// Tie couples the tower base to the foundation top. Surface pairs come
// from the revolved bodies; a beam tower is tied through its base point
// set instead, which the build step already records under the same names.
type Tie struct {
	Name      string
	Main      string
	Secondary string
}

// TowerTie returns the tower-to-foundation coupling over the interface
// regions. Both regions must exist.
func TowerTie(c *model.Context, names config.Names) (Tie, error) {
	for _, n := range []string{names.TieGBSSurface, names.TieTowerSurface} {
		if _, ok := c.Region(n); !ok {
			return Tie{}, &model.RegionError{Region: n}
		}
	}
	return Tie{
		Name:      "Tie_Tower_GBS",
		Main:      names.TieGBSSurface,
		Secondary: names.TieTowerSurface,
	}, nil
}
