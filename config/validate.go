package config

import "fmt"

// ParameterError identifies one rejected parameter and the range that
// would make it acceptable. Validation is fail fast: the first violated
// check aborts, there is no accumulate-and-report.
type ParameterError struct {
	Param string
	Value float64
	Hint  string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s = %g invalid: %s", e.Param, e.Value, e.Hint)
}

func positive(param string, v float64) error {
	if v <= 0 {
		return &ParameterError{Param: param, Value: v, Hint: "must be > 0"}
	}
	return nil
}

// Validate pre-flight checks the parameter set. It gates every downstream
// stage: geometry construction assumes these invariants and does not
// re-discover violations at placement time.
//
// Checks run in order: positivity of all lengths and thicknesses, cone
// wall feasibility, then the tower/GBS interface: the tower base must not
// fall through the GBS top aperture and must not overhang the GBS outer
// radius.
func Validate(p *Params) error {
	checks := []struct {
		param string
		v     float64
	}{
		{"r_up_tower", p.RUpTower},
		{"r_down_tower", p.RDownTower},
		{"h_tower", p.HTower},
		{"thickness_tower", p.ThicknessTower},
		{"plateau_radius", p.PlateauRadius},
		{"plateau_height", p.PlateauHeight},
		{"cone_height", p.ConeHeight},
		{"cone_top_outer_radius", p.ConeTopOuterRadius},
		{"cone_bottom_outer_radius", p.ConeBottomOuterRadius},
		{"cone_thickness", p.ConeThickness},
		{"cyl_height", p.CylHeight},
		{"mesh_size_tower", p.MeshSizeTower},
		{"mesh_size_gbs", p.MeshSizeGBS},
	}
	for _, c := range checks {
		if err := positive(c.param, c.v); err != nil {
			return err
		}
	}
	if p.ConeBottomOuterRadius <= p.ConeThickness {
		return &ParameterError{
			Param: "cone_bottom_outer_radius",
			Value: p.ConeBottomOuterRadius,
			Hint:  fmt.Sprintf("must exceed cone_thickness %g or the cone inner radius is negative", p.ConeThickness),
		}
	}
	if p.ConeTopOuterRadius <= p.ConeThickness {
		return &ParameterError{
			Param: "cone_top_outer_radius",
			Value: p.ConeTopOuterRadius,
			Hint:  fmt.Sprintf("must exceed cone_thickness %g or the cone inner radius is negative", p.ConeThickness),
		}
	}
	hole := p.GBSHoleRadius()
	if p.RDownTower <= hole {
		return &ParameterError{
			Param: "r_down_tower",
			Value: p.RDownTower,
			Hint: fmt.Sprintf("tower base falls into the GBS top hole: use a radius in (%g, %g]",
				hole, p.ConeTopOuterRadius),
		}
	}
	if p.RDownTower > p.ConeTopOuterRadius {
		return &ParameterError{
			Param: "r_down_tower",
			Value: p.RDownTower,
			Hint: fmt.Sprintf("tower base overhangs the GBS top: use a radius in (%g, %g]",
				hole, p.ConeTopOuterRadius),
		}
	}
	if p.RUpTower >= p.ConeTopOuterRadius {
		return &ParameterError{
			Param: "r_up_tower",
			Value: p.RUpTower,
			Hint:  fmt.Sprintf("must be smaller than the GBS top outer radius %g", p.ConeTopOuterRadius),
		}
	}
	return nil
}
