package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	const src = `
[tower]
kind = beam
r_down = 3.2
height = 60

[gbs]
cyl_height = 20

[load]
cutoff = 28.5
`
	path := filepath.Join(t.TempDir(), "site.ini")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Tower != TowerBeam {
		t.Errorf("tower kind got %v want beam", p.Tower)
	}
	if p.RDownTower != 3.2 || p.HTower != 60 || p.CylHeight != 20 || p.Cutoff != 28.5 {
		t.Errorf("overridden values not applied: %+v", p)
	}
	// Keys left out fall back to the reference design.
	def := Default()
	if p.RUpTower != def.RUpTower || p.Steel.Young != def.Steel.Young {
		t.Error("missing keys did not fall back to defaults")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestLoadFileBadKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("[tower]\nkind = shell\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("unknown tower kind accepted")
	}
}
