// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

// Package sweep runs a batch precision-testing sweep over a set of AMQ
// index builds.
//
// For each configured build size, the runner samples candidate sequence
// files from <input>/<size>/additional, activates the index build under
// <output>/<size>, and captures the precision test's standard output in
// <output>/<size>/test_<size>.log. Sizes are processed one at a time in
// configured order; a failed size does not stop the sweep unless strict
// mode is set.
package sweep

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/amquery/amq-sweep/internal/linkset"
	"github.com/amquery/amq-sweep/internal/sample"
	"github.com/amquery/amq-sweep/pkg/amq"
	"github.com/pkg/errors"
)

// Stage identifies where in a per-size run a failure occurred.
type Stage string

const (
	// StageResolve covers directory resolution and candidate enumeration.
	StageResolve Stage = "resolve"
	// StageSample covers drawing the sample set.
	StageSample Stage = "sample"
	// StageSelect covers activating the working index.
	StageSelect Stage = "select"
	// StageTest covers the precision test and its log capture.
	StageTest Stage = "test"
)

// Outcome records the result of one build size.
type Outcome struct {
	Size       int
	Candidates int // resolvable links matching the pattern
	Skipped    int // links that failed to resolve
	Sampled    int
	LogPath    string
	Stage      Stage // stage of Err, empty on success
	Err        error
}

// Failed reports whether the size's run failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Runner executes the sweep against a Tools implementation.
type Runner struct {
	Config Config
	Tools  amq.Tools
	// Strict aborts the sweep at the first failed size instead of
	// continuing to the remaining ones.
	Strict bool
	// Warnf receives per-path diagnostics (skipped links). Defaults to
	// log.Printf.
	Warnf func(format string, args ...any)
	// Progress, if set, is called after each size completes.
	Progress func(Outcome)

	rng *rand.Rand
}

// NewRunner returns a Runner over the given toolchain.
func NewRunner(cfg Config, tools amq.Tools) *Runner {
	return &Runner{
		Config: cfg,
		Tools:  tools,
		Warnf:  log.Printf,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the sweep and returns one Outcome per configured size. The
// returned error is non-nil only for conditions that stop the sweep itself:
// an unusable input or output root, context cancellation, or a failed size
// under Strict. Per-size failures are reported through the Summary.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	if r.Warnf == nil {
		r.Warnf = log.Printf
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	inputDir, err := canonicalize(inputDir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving input dir")
	}
	outputDir, err = canonicalize(outputDir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving output dir")
	}
	var summary Summary
	for _, size := range r.Config.Sizes {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		o := r.runSize(ctx, inputDir, outputDir, size)
		summary = append(summary, o)
		if r.Progress != nil {
			r.Progress(o)
		}
		if o.Failed() && r.Strict {
			return summary, errors.Wrapf(o.Err, "size %d (%s)", size, o.Stage)
		}
	}
	return summary, nil
}

func (r *Runner) runSize(ctx context.Context, inputDir, outputDir string, size int) Outcome {
	o := Outcome{Size: size}
	fail := func(stage Stage, err error) Outcome {
		o.Stage, o.Err = stage, err
		return o
	}
	sizeIn, err := canonicalize(filepath.Join(inputDir, strconv.Itoa(size)))
	if err != nil {
		return fail(StageResolve, err)
	}
	sizeOut, err := canonicalize(filepath.Join(outputDir, strconv.Itoa(size)))
	if err != nil {
		return fail(StageResolve, err)
	}
	set, err := linkset.Resolve(filepath.Join(sizeIn, "additional"), r.Config.Pattern)
	if err != nil {
		return fail(StageResolve, err)
	}
	for _, s := range set.Skipped {
		r.Warnf("size %d: skipping unresolvable link %s: %v", size, s.Link, s.Err)
	}
	o.Candidates, o.Skipped = len(set.Resolved), len(set.Skipped)
	if o.Candidates == 0 {
		return fail(StageSample, errors.Errorf("no resolvable candidates matching %q", r.Config.Pattern))
	}
	// Fewer candidates than the cap is fine: the whole set is taken.
	picked := sample.Pick(r.rng, set.Resolved, r.Config.SampleSize)
	o.Sampled = len(picked)
	if err := r.Tools.SelectWorkingIndex(ctx, sizeOut); err != nil {
		return fail(StageSelect, err)
	}
	// The log name must derive from the size being processed.
	o.LogPath = filepath.Join(sizeOut, fmt.Sprintf("test_%d.log", size))
	f, err := os.Create(o.LogPath)
	if err != nil {
		return fail(StageTest, errors.Wrap(err, "creating log"))
	}
	testErr := r.Tools.PrecisionTest(ctx, f, picked)
	if closeErr := f.Close(); testErr == nil && closeErr != nil {
		testErr = errors.Wrap(closeErr, "closing log")
	}
	if testErr != nil {
		return fail(StageTest, testErr)
	}
	return o
}

// canonicalize resolves a path through symlinks to an absolute form,
// requiring it to exist.
func canonicalize(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
