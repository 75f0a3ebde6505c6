// Package config holds the flat parameter set driving the model build, its
// pre-flight validator, and the name mapping that decouples internal
// object names from hardcoded literals.
package config

import "fmt"

// TowerKind selects the tower dimensionality.
type TowerKind uint8

const (
	// TowerSolid models the tower as a 3D revolved solid, hollow when
	// the wall thickness allows it.
	TowerSolid TowerKind = iota
	// TowerBeam models the tower as a 1D centerline meshed with beam
	// elements.
	TowerBeam
)

func (k TowerKind) String() string {
	if k == TowerBeam {
		return "1D"
	}
	return "3D"
}

// ParseTowerKind parses the dimensionality choice.
func ParseTowerKind(s string) (TowerKind, error) {
	switch s {
	case "3D", "3d", "solid":
		return TowerSolid, nil
	case "1D", "1d", "beam":
		return TowerBeam, nil
	}
	return TowerSolid, fmt.Errorf("config: unknown tower kind %q (want 1D or 3D)", s)
}

// MatProps are the isotropic elastic properties of one material.
type MatProps struct {
	Young   float64 // Young's modulus [Pa]
	Poisson float64
	Density float64 // [kg/m3]
}

// Params is the flat set of scalar quantities describing one model run.
// It is constructed once from user or file input, validated, then read
// only for the remainder of the run.
type Params struct {
	// Tower.
	RUpTower       float64
	RDownTower     float64
	HTower         float64
	ThicknessTower float64
	Tower          TowerKind

	// Plateau (solid).
	PlateauRadius float64
	PlateauHeight float64

	// GBS cone (hollow).
	ConeHeight            float64
	ConeTopOuterRadius    float64
	ConeBottomOuterRadius float64
	ConeThickness         float64

	// Cylinder above the cone. Radii and thickness follow the cone top.
	CylHeight float64

	// Target mesh seed sizes.
	MeshSizeTower float64
	MeshSizeGBS   float64

	// Materials.
	Steel    MatProps
	Concrete MatProps

	// Environmental loads. Cutoff is the water line elevation separating
	// current (below) from wind (above); MaskWidth the blending length of
	// the smooth height mask.
	WindPressure    float64
	CurrentPressure float64
	Cutoff          float64
	MaskWidth       float64

	// Implicit dynamics step.
	TimePeriod float64
	InitialInc float64
}

// Default returns the reference parameter set of the structure.
func Default() Params {
	return Params{
		RUpTower:       1.0,
		RDownTower:     3.5,
		HTower:         50.0,
		ThicknessTower: 0.5,
		Tower:          TowerSolid,

		PlateauRadius: 15.5,
		PlateauHeight: 1.7,

		ConeHeight:            25.34,
		ConeTopOuterRadius:    3.5,
		ConeBottomOuterRadius: 10.0,
		ConeThickness:         0.5,

		CylHeight: 18.0,

		MeshSizeTower: 1.0,
		MeshSizeGBS:   2.0,

		Steel:    MatProps{Young: 210e9, Poisson: 0.3, Density: 7850},
		Concrete: MatProps{Young: 30e9, Poisson: 0.2, Density: 2400},

		WindPressure:    1000.0,
		CurrentPressure: 800.0,
		Cutoff:          30.0,
		MaskWidth:       2.0,

		TimePeriod: 10.0,
		InitialInc: 0.005,
	}
}

// GBSTopHeight is the cumulative stack height the tower base lands on.
func (p *Params) GBSTopHeight() float64 {
	return p.PlateauHeight + p.ConeHeight + p.CylHeight
}

// GBSHoleRadius is the inner aperture radius of the GBS top.
func (p *Params) GBSHoleRadius() float64 {
	return p.ConeTopOuterRadius - p.ConeThickness
}

// TotalHeight is the world elevation of the tower tip.
func (p *Params) TotalHeight() float64 {
	return p.GBSTopHeight() + p.HTower
}

// Names maps every internal object name used by the pipeline. Using a
// mapping instead of literals lets several pipelines share one model
// without name collisions.
type Names struct {
	Tower      string
	GBS        string
	TowerInst  string
	GBSInst    string
	TowerOuter string // transient cut operand
	TowerInner string // transient cut operand
	Plateau    string // transient merge operand
	Cone       string // transient merge operand
	Cyl        string // transient merge operand

	TowerLateralSurface string
	GBSOuterSurface     string
	GlobalOuterSurface  string
	LoadSurface         string
	BaseSet             string
	TieTowerSurface     string
	TieGBSSurface       string
	MonitorSet          string
	BeamSet             string
}

// DefaultNames returns the canonical name mapping.
func DefaultNames() Names {
	return Names{
		Tower:      "Tower",
		GBS:        "GBS_Fused",
		TowerInst:  "Tower-1",
		GBSInst:    "GBS-1",
		TowerOuter: "Tower_Outer_Temp",
		TowerInner: "Tower_Inner_Temp",
		Plateau:    "Plateau",
		Cone:       "Cone_Shell",
		Cyl:        "Cyl_Top",

		TowerLateralSurface: "Tower_Lateral_Surface",
		GBSOuterSurface:     "GBS_Outer_Surface",
		GlobalOuterSurface:  "Global_Outer_Surface",
		LoadSurface:         "Load_Surface",
		BaseSet:             "Base_GBS_Set",
		TieTowerSurface:     "Tie_Tower_Base",
		TieGBSSurface:       "Tie_GBS_Top",
		MonitorSet:          "Monitor_Tip",
		BeamSet:             "Set_Beam_All",
	}
}
