package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/pkg/config"
)

type fakeGenerator struct {
	report *dto.GenerationReport
	params dto.GenerateParams
}

func (f *fakeGenerator) Run(ctx context.Context, params dto.GenerateParams) (*dto.GenerationReport, error) {
	f.params = params
	return f.report, nil
}

type fakePropagator struct {
	report *dto.PropagationReport
	params dto.PropagateParams
}

func (f *fakePropagator) Run(ctx context.Context, params dto.PropagateParams) (*dto.PropagationReport, error) {
	f.params = params
	return f.report, nil
}

func TestRunGenerateNoPatternsExitsNonZero(t *testing.T) {
	gen := &fakeGenerator{report: &dto.GenerationReport{Patterns: 0}}
	cfg := &config.Config{}
	cfg.FlightOps.WindowDays = 90

	code := runGenerate(context.Background(), gen, cfg, []string{"-start", "2025-10-01", "-days", "7"})
	assert.Equal(t, 1, code)
	assert.Equal(t, time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), gen.params.WindowEnd)
}

func TestRunPropagateNoPatternsExitsNonZero(t *testing.T) {
	prop := &fakePropagator{report: &dto.PropagationReport{Patterns: 0}}

	code := runPropagate(context.Background(), prop, []string{"-all"})
	assert.Equal(t, 1, code)
	assert.True(t, prop.params.All)
}

func TestRunPropagateSucceedsWithMatches(t *testing.T) {
	prop := &fakePropagator{report: &dto.PropagationReport{Patterns: 2, Updated: 3}}

	code := runPropagate(context.Background(), prop, []string{"-all", "-from", "2025-10-27"})
	assert.Equal(t, 0, code)
	assert.Equal(t, time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC), prop.params.FromDate)
}

func TestRunPropagateExplicitZeroBufferIsPassedThrough(t *testing.T) {
	prop := &fakePropagator{report: &dto.PropagationReport{Patterns: 1, Updated: 3}}

	code := runPropagate(context.Background(), prop, []string{"-schedule", "7", "-buffer", "0"})
	assert.Equal(t, 0, code)
	require.NotNil(t, prop.params.BufferHours)
	assert.Equal(t, 0, *prop.params.BufferHours)
}

func TestRunPropagateOmittedBufferStaysUnset(t *testing.T) {
	prop := &fakePropagator{report: &dto.PropagationReport{Patterns: 1}}

	code := runPropagate(context.Background(), prop, []string{"-schedule", "7"})
	assert.Equal(t, 0, code)
	assert.Nil(t, prop.params.BufferHours)
}
