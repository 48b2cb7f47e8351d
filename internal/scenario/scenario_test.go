package scenario

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/geomath/internal/core/observability/log"
	"github.com/zeusync/geomath/pkg/vector"
)

func newTestRunner(opts Options) *Runner {
	if opts.Tolerance == 0 {
		opts.Tolerance = 1e-9
	}
	return NewRunner(log.Nop(), opts)
}

func mustLoadYAML(t *testing.T, src string) *Scenario {
	t.Helper()
	sc, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)
	return sc
}

func TestAllOpsScenario(t *testing.T) {
	runner := newTestRunner(Options{})
	report, err := runner.RunFile(context.Background(), filepath.Join("testdata", "all_ops.yaml"))
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.True(t, res.Passed, res.String())
	}
	require.True(t, report.OK())
	require.Equal(t, len(report.Results), report.Passed)
	require.Equal(t, "all ops", report.Scenario)
}

func TestEveryBuiltinOpIsCovered(t *testing.T) {
	sc, err := LoadFile(filepath.Join("testdata", "all_ops.yaml"))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, step := range sc.Steps {
		seen[step.Op] = true
	}
	for _, name := range DefaultRegistry().Names() {
		assert.True(t, seen[name], "op %s has no step in all_ops.yaml", name)
	}
}

func TestRunJSONFile(t *testing.T) {
	report, err := newTestRunner(Options{}).RunFile(context.Background(), filepath.Join("testdata", "rotation.json"))
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Equal(t, 2, report.Passed)
	require.Equal(t, filepath.Join("testdata", "rotation.json"), report.Source)
}

func TestRunFilesKeepsOrder(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "rotation.json"),
		filepath.Join("testdata", "all_ops.yaml"),
	}
	reports, err := newTestRunner(Options{Workers: 2}).RunFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "rotation", reports[0].Scenario)
	require.Equal(t, "all ops", reports[1].Scenario)
	require.NotEqual(t, reports[0].ID, reports[1].ID)
}

func TestFailedExpectation(t *testing.T) {
	sc := mustLoadYAML(t, `
name: wrong
steps:
  - {op: add, a: [1, 1], b: [1, 1], expect: {vec: [3, 3]}}
  - {op: magnitude, a: [3, 4], expect: {scalar: 5}}
  - {op: magnitude, a: [3, 4]}
`)
	report, err := newTestRunner(Options{}).Run(context.Background(), sc)
	require.NoError(t, err)
	require.False(t, report.OK())
	require.Equal(t, 1, report.Failed)
	require.Equal(t, 1, report.Passed)
	require.Len(t, report.Results, 3)
	require.False(t, report.Results[2].Checked)

	var buf bytes.Buffer
	_, err = report.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "want vec2(3, 3)")
	assert.Contains(t, out, "passed 1, failed 1, 3 steps")
}

func TestFailFast(t *testing.T) {
	sc := mustLoadYAML(t, `
name: fail fast
steps:
  - {op: magnitude, a: [3, 4], expect: {scalar: 6}}
  - {op: magnitude, a: [3, 4], expect: {scalar: 5}}
`)
	report, err := newTestRunner(Options{FailFast: true}).Run(context.Background(), sc)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	require.Equal(t, 1, report.Failed)
}

func TestToleranceOverrides(t *testing.T) {
	sc := mustLoadYAML(t, `
name: loose
tolerance: 0.1
steps:
  - {op: magnitude, a: [3, 4], expect: {scalar: 5.05}}
  - {op: magnitude, a: [3, 4], expect: {scalar: 5.05}, tolerance: 0.01}
`)
	report, err := newTestRunner(Options{}).Run(context.Background(), sc)
	require.NoError(t, err)
	require.True(t, report.Results[0].Passed)
	require.False(t, report.Results[1].Passed)
}

func TestAngleExpectationIsModular(t *testing.T) {
	sc := mustLoadYAML(t, `
name: modular
steps:
  - {op: angle_add, angle: {deg: 300}, other: {deg: 70}, expect: {angle: {deg: 10}}}
  - {op: angle_add, angle: {rad: 0}, other: {deg: 360}, expect: {angle: {rad: 0}}}
`)
	report, err := newTestRunner(Options{}).Run(context.Background(), sc)
	require.NoError(t, err)
	require.True(t, report.OK())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown op", "steps: [{op: explode}]", ErrUnknownOp},
		{"missing operand", "steps: [{op: add, a: [1, 2]}]", ErrMissingOperand},
		{"missing t", "steps: [{op: lerp, a: [1, 2], b: [1, 2]}]", ErrMissingOperand},
		{"bad vector", "steps: [{op: neg, a: [1, 2, 3]}]", ErrInvalidVector},
		{"bad angle", "steps: [{op: sin, angle: {deg: 1, rad: 2}}]", ErrInvalidAngle},
		{"empty angle", "steps: [{op: sin, angle: {}}]", ErrInvalidAngle},
		{"bad expect", "steps: [{op: neg, a: [1, 2], expect: {scalar: 1, vec: [1, 2]}}]", ErrInvalidExpect},
		{"kind mismatch", "steps: [{op: neg, a: [1, 2], expect: {scalar: 1}}]", ErrExpectKind},
		{"no steps", "name: nothing", ErrEmptyScenario},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := mustLoadYAML(t, tt.src)
			_, err := newTestRunner(Options{}).Run(context.Background(), sc)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := mustLoadYAML(t, "steps: [{op: neg, a: [1, 2]}]")
	_, err := newTestRunner(Options{}).Run(ctx, sc)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadYAML(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyScenario)

	_, err = LoadYAML(strings.NewReader("steps: [{op: neg, c: [1, 2]}]"))
	require.Error(t, err)

	_, err = LoadJSON(strings.NewReader(`{"steps": [{"op": "neg", "bogus": 1}]}`))
	require.Error(t, err)

	_, err = LoadFile("scenario.txt")
	require.ErrorIs(t, err, ErrUnsupportedInput)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileNamesUnnamedScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spin.yml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [{op: neg, a: [1, 2]}]\n"), 0o600))
	sc, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "spin", sc.Name)
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()
	require.ErrorIs(t, reg.Register("add", nil), ErrDuplicateOp)

	require.NoError(t, reg.Register("swap", unaryVec(func(v vector.Vec2d) Value {
		return VecValue(vector.New(v.Y, v.X))
	})))

	sc := mustLoadYAML(t, "steps: [{op: swap, a: [1, 2], expect: {vec: [2, 1]}}]")
	report, err := NewRunnerWithRegistry(log.Nop(), Options{Tolerance: 1e-9}, reg).Run(context.Background(), sc)
	require.NoError(t, err)
	require.True(t, report.OK())

	_, err = DefaultRegistry().Lookup("swap")
	require.ErrorIs(t, err, ErrUnknownOp)
}
