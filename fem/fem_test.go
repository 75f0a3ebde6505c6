package fem_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MaxenceRichardCS/gbstower/build"
	"github.com/MaxenceRichardCS/gbstower/config"
	"github.com/MaxenceRichardCS/gbstower/fem"
	"github.com/MaxenceRichardCS/gbstower/load"
	"github.com/MaxenceRichardCS/gbstower/model"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func builtModel(t *testing.T, mutate func(*config.Params)) (*model.Context, *config.Params, config.Names, *build.Result) {
	t.Helper()
	p := config.Default()
	if mutate != nil {
		mutate(&p)
	}
	names := config.DefaultNames()
	c := model.NewContext(0)
	res, err := build.Build(c, &p, names)
	if err != nil {
		t.Fatal(err)
	}
	return c, &p, names, res
}

func TestPlanFor(t *testing.T) {
	c, p, _, res := builtModel(t, nil)
	gbs := fem.PlanFor(c.Body(res.GBS), p.MeshSizeGBS)
	if gbs.Code != fem.C3D4 || gbs.Shape != fem.ShapeTet || gbs.Technique != fem.TechFree {
		t.Errorf("fused body plan got %s/%v/%v", gbs.Code, gbs.Shape, gbs.Technique)
	}
	if gbs.DeviationFactor != 0.4 {
		t.Errorf("fused deviation factor got %g want 0.4", gbs.DeviationFactor)
	}
	tower := fem.PlanFor(c.Body(res.Tower), p.MeshSizeTower)
	if tower.Code != fem.C3D8R || tower.Technique != fem.TechSweep {
		t.Errorf("revolved body plan got %s/%v", tower.Code, tower.Technique)
	}
	if tower.Seed != p.MeshSizeTower {
		t.Errorf("seed got %g want %g", tower.Seed, p.MeshSizeTower)
	}
}

func TestPlanForBeam(t *testing.T) {
	c, p, _, res := builtModel(t, func(p *config.Params) { p.Tower = config.TowerBeam })
	spec := fem.PlanFor(c.Body(res.Tower), p.MeshSizeTower)
	if spec.Code != fem.B31 || spec.Technique != fem.TechLine {
		t.Errorf("beam plan got %s/%v", spec.Code, spec.Technique)
	}
}

func TestAssignSolid(t *testing.T) {
	c, p, _, res := builtModel(t, nil)
	a, err := fem.AssignSolid(c, res.GBS, fem.Concrete(p))
	if err != nil {
		t.Fatal(err)
	}
	r, ok := c.Region(a.Set)
	if !ok {
		t.Fatalf("assignment set %s not registered", a.Set)
	}
	if r.Len() != len(c.AllElems(res.GBS)) {
		t.Errorf("assignment set covers %d of %d elements", r.Len(), len(c.AllElems(res.GBS)))
	}
	// Re-assignment supersedes, never duplicates.
	if _, err := fem.AssignSolid(c, res.GBS, fem.Steel(p)); err != nil {
		t.Fatal(err)
	}
}

func TestAssignBeam(t *testing.T) {
	c, p, names, res := builtModel(t, func(p *config.Params) { p.Tower = config.TowerBeam })
	a, err := fem.AssignBeam(c, res.Tower, fem.Steel(p), names)
	if err != nil {
		t.Fatal(err)
	}
	if a.Set != names.BeamSet {
		t.Errorf("beam set got %s want %s", a.Set, names.BeamSet)
	}
	if _, ok := c.Region(names.BeamSet); !ok {
		t.Error("beam set not registered")
	}
}

func TestEncastreAndTie(t *testing.T) {
	c, _, names, _ := builtModel(t, nil)
	bc, err := fem.Encastre(c, names)
	if err != nil {
		t.Fatal(err)
	}
	if bc.Set != names.BaseSet || !bc.Fix.U1 || !bc.Fix.UR3 {
		t.Errorf("encastre got %+v", bc)
	}
	tie, err := fem.TowerTie(c, names)
	if err != nil {
		t.Fatal(err)
	}
	if tie.Main != names.TieGBSSurface || tie.Secondary != names.TieTowerSurface {
		t.Errorf("tie pairing got %+v", tie)
	}

	// Both fail cleanly on a model missing the regions.
	empty := model.NewContext(0)
	var re *model.RegionError
	if _, err := fem.Encastre(empty, names); !errors.As(err, &re) {
		t.Errorf("encastre on empty model got %v", err)
	}
	if _, err := fem.TowerTie(empty, names); !errors.As(err, &re) {
		t.Errorf("tie on empty model got %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	hist := []load.Sample{{T: 0, V: 0}, {T: 0.5, V: 1.25}, {T: 1, V: -3}}
	if err := fem.WriteCSV(&b, "u1", hist); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count got %d want 4", len(lines))
	}
	if lines[0] != "time,u1" {
		t.Errorf("header got %q", lines[0])
	}
	if lines[2] != "0.5,1.25" {
		t.Errorf("row got %q", lines[2])
	}
}

func TestPlotHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tip.png")
	if err := fem.PlotHistory(path, "tip displacement", "u1 [m]", load.SinSeries(10, 51)); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("plot file not written: %v", err)
	}
	if err := fem.PlotHistory(path, "empty", "u1", nil); err == nil {
		t.Error("empty history plotted")
	}
}

type fakeHandle struct {
	left int32
	end  fem.Status
}

func (h *fakeHandle) Status() fem.Status {
	if atomic.AddInt32(&h.left, -1) > 0 {
		return fem.StatusRunning
	}
	return h.end
}

func TestWait(t *testing.T) {
	h := &fakeHandle{left: 3, end: fem.StatusCompleted}
	if err := fem.Wait(context.Background(), h, time.Millisecond); err != nil {
		t.Fatal(err)
	}
	h = &fakeHandle{left: 3, end: fem.StatusAborted}
	if err := fem.Wait(context.Background(), h, time.Millisecond); !errors.Is(err, fem.ErrAborted) {
		t.Errorf("aborted job got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h = &fakeHandle{left: 1 << 30, end: fem.StatusCompleted}
	if err := fem.Wait(ctx, h, time.Millisecond); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled wait got %v", err)
	}
}

func TestCleanScratch(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"run.lck", "run.msg", "run.odb", "other.lck"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := fem.CleanScratch(fem.Job{Name: "run", ScratchDir: dir}); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		file string
		keep bool
	}{
		{"run.lck", false},
		{"run.msg", false},
		{"run.odb", true},   // results database survives
		{"other.lck", true}, // other jobs untouched
	} {
		_, err := os.Stat(filepath.Join(dir, tc.file))
		if exists := err == nil; exists != tc.keep {
			t.Errorf("%s: exists %v want %v", tc.file, exists, tc.keep)
		}
	}
}

func TestSafeJobName(t *testing.T) {
	if got := fem.SafeJobName("gbs tower v2.1"); got != "gbs_tower_v2_1" {
		t.Errorf("got %q", got)
	}
	if got := fem.SafeJobName("Run_7-final"); got != "Run_7-final" {
		t.Errorf("clean name mangled to %q", got)
	}
}
