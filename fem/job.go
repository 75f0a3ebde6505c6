package fem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Job describes one analysis run handed to a solver.
type Job struct {
	Name        string
	Description string
	CPUs        int
	ScratchDir  string
}

// Status of a submitted job.
type Status int

const (
	StatusSubmitted Status = iota
	StatusRunning
	StatusCompleted
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusSubmitted:
		return "submitted"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	}
	return "unknown"
}

// ErrAborted reports a job that terminated without results.
var ErrAborted = errors.New("job aborted")

// JobHandle tracks a submitted job.
type JobHandle interface {
	// Status returns the last observed state without blocking.
	Status() Status
}

// Solver runs analysis jobs. Implementations wrap an external solver
// process; none ship with this module.
type Solver interface {
	Submit(ctx context.Context, j Job) (JobHandle, error)
}

// Wait polls a handle until the job leaves the submitted and running
// states or the context expires.
func Wait(ctx context.Context, h JobHandle, poll time.Duration) error {
	if poll <= 0 {
		poll = time.Second
	}
	t := time.NewTicker(poll)
	defer t.Stop()
	for {
		switch h.Status() {
		case StatusCompleted:
			return nil
		case StatusAborted:
			return ErrAborted
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// scratchExt lists the solver side files a finished run leaves next to
// the results database.
var scratchExt = []string{
	".lck", ".log", ".msg", ".prt", ".sta",
	".com", ".sim", ".ipm", ".dat", ".rec",
}

// CleanScratch removes solver side files of a job from its scratch
// directory, keeping the results database. Missing files are not an
// error.
func CleanScratch(j Job) error {
	dir := j.ScratchDir
	if dir == "" {
		dir = "."
	}
	var firstErr error
	for _, ext := range scratchExt {
		p := filepath.Join(dir, j.Name+ext)
		err := os.Remove(p)
		if err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err == nil {
			log.WithField("file", filepath.Base(p)).Debug("scratch file removed")
		}
	}
	return firstErr
}

// SafeJobName strips characters solvers reject in job identifiers.
func SafeJobName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
}
