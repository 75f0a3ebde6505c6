package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadFile reads a parameter set from an INI file. Missing keys fall back
// to the reference values, so a file only needs to list what it changes.
// The result is not validated; callers run Validate before building.
func LoadFile(path string) (Params, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Params{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return fromINI(file)
}

func fromINI(file *ini.File) (Params, error) {
	def := Default()
	p := Params{
		RUpTower:       file.Section("tower").Key("r_up").MustFloat64(def.RUpTower),
		RDownTower:     file.Section("tower").Key("r_down").MustFloat64(def.RDownTower),
		HTower:         file.Section("tower").Key("height").MustFloat64(def.HTower),
		ThicknessTower: file.Section("tower").Key("thickness").MustFloat64(def.ThicknessTower),

		PlateauRadius: file.Section("gbs").Key("plateau_radius").MustFloat64(def.PlateauRadius),
		PlateauHeight: file.Section("gbs").Key("plateau_height").MustFloat64(def.PlateauHeight),

		ConeHeight:            file.Section("gbs").Key("cone_height").MustFloat64(def.ConeHeight),
		ConeTopOuterRadius:    file.Section("gbs").Key("cone_top_outer_radius").MustFloat64(def.ConeTopOuterRadius),
		ConeBottomOuterRadius: file.Section("gbs").Key("cone_bottom_outer_radius").MustFloat64(def.ConeBottomOuterRadius),
		ConeThickness:         file.Section("gbs").Key("cone_thickness").MustFloat64(def.ConeThickness),

		CylHeight: file.Section("gbs").Key("cyl_height").MustFloat64(def.CylHeight),

		MeshSizeTower: file.Section("mesh").Key("size_tower").MustFloat64(def.MeshSizeTower),
		MeshSizeGBS:   file.Section("mesh").Key("size_gbs").MustFloat64(def.MeshSizeGBS),

		Steel: MatProps{
			Young:   file.Section("material.steel").Key("young").MustFloat64(def.Steel.Young),
			Poisson: file.Section("material.steel").Key("poisson").MustFloat64(def.Steel.Poisson),
			Density: file.Section("material.steel").Key("density").MustFloat64(def.Steel.Density),
		},
		Concrete: MatProps{
			Young:   file.Section("material.concrete").Key("young").MustFloat64(def.Concrete.Young),
			Poisson: file.Section("material.concrete").Key("poisson").MustFloat64(def.Concrete.Poisson),
			Density: file.Section("material.concrete").Key("density").MustFloat64(def.Concrete.Density),
		},

		WindPressure:    file.Section("load").Key("wind_pressure").MustFloat64(def.WindPressure),
		CurrentPressure: file.Section("load").Key("current_pressure").MustFloat64(def.CurrentPressure),
		Cutoff:          file.Section("load").Key("cutoff").MustFloat64(def.Cutoff),
		MaskWidth:       file.Section("load").Key("mask_width").MustFloat64(def.MaskWidth),

		TimePeriod: file.Section("step").Key("time_period").MustFloat64(def.TimePeriod),
		InitialInc: file.Section("step").Key("initial_inc").MustFloat64(def.InitialInc),
	}
	kind, err := ParseTowerKind(file.Section("tower").Key("kind").MustString(def.Tower.String()))
	if err != nil {
		return Params{}, err
	}
	p.Tower = kind
	return p, nil
}
