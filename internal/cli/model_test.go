package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exprdag/propagate"
)

const sumModel = `
[vars]
x = [-2.0, 2.0]
y = [-3.0, 1.0]

[nodes.s]
op = "sum"
children = ["x", "y"]
coeffs = [2.0, -1.0]
constant = 0.5

[[constraints]]
node = "s"
bounds = [0.5, 1.5]
`

func TestParseModel_Sum(t *testing.T) {
	m, err := ParseModel([]byte(sumModel))
	require.NoError(t, err)

	require.Len(t, m.Vars, 2)
	require.Len(t, m.Nodes, 1)
	require.Len(t, m.Constraints, 1)

	s := m.Nodes["s"]
	require.NotNil(t, s)
	assert.Equal(t, "sum", s.Handler().Name())
	assert.Same(t, m.Vars["x"], s.Child(0), "children resolve to the shared leaves")
	assert.Same(t, s, m.Constraints[0].Root)
	assert.Equal(t, 0.5, m.Constraints[0].Side.Inf)
	assert.Equal(t, 1.5, m.Constraints[0].Side.Sup)
}

func TestParseModel_SharedSubexpression(t *testing.T) {
	// d is referenced by two parents and must resolve to one node.
	m, err := ParseModel([]byte(`
[vars]
x = [1.0, 2.0]
y = [0.0, 1.0]

[nodes.d]
op = "sum"
children = ["x", "y"]
coeffs = [1.0, -1.0]

[nodes.e]
op = "exp"
children = ["d"]

[nodes.l]
op = "log"
children = ["d"]

[nodes.top]
op = "sum"
children = ["e", "l"]
`))
	require.NoError(t, err)
	assert.Same(t, m.Nodes["d"], m.Nodes["e"].Child(0))
	assert.Same(t, m.Nodes["d"], m.Nodes["l"].Child(0))
}

func TestParseModel_DefaultsAndOps(t *testing.T) {
	m, err := ParseModel([]byte(`
[vars]
x = [0.0, 1.0]

[nodes.c]
op = "const"
value = 2.5

[nodes.p]
op = "product"
children = ["x", "c"]

[nodes.q]
op = "pow"
children = ["x"]
exponent = 3
`))
	require.NoError(t, err)
	assert.Equal(t, "const", m.Nodes["c"].Handler().Name())
	assert.Equal(t, 2.5, m.Nodes["c"].ConstValue())
	assert.Equal(t, "product", m.Nodes["p"].Handler().Name())
	assert.Equal(t, "pow", m.Nodes["q"].Handler().Name())
}

func TestParseModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			"unknown reference",
			`[nodes.s]
op = "sum"
children = ["ghost"]`,
			ErrUnknownName,
		},
		{
			"unknown operator",
			`[vars]
x = [0.0, 1.0]
[nodes.s]
op = "sin"
children = ["x"]`,
			ErrUnknownOp,
		},
		{
			"duplicate name",
			`[vars]
s = [0.0, 1.0]
[nodes.s]
op = "exp"
children = ["s"]`,
			ErrDuplicateName,
		},
		{
			"cyclic references",
			`[nodes.a]
op = "exp"
children = ["b"]
[nodes.b]
op = "log"
children = ["a"]`,
			ErrCyclicModel,
		},
		{
			"inverted bounds",
			`[vars]
x = [2.0, 1.0]`,
			ErrModelShape,
		},
		{
			"bad bounds arity",
			`[vars]
x = [1.0]`,
			ErrModelShape,
		},
		{
			"coeff count mismatch",
			`[vars]
x = [0.0, 1.0]
[nodes.s]
op = "sum"
children = ["x"]
coeffs = [1.0, 2.0]`,
			ErrModelShape,
		},
		{
			"pow child arity",
			`[vars]
x = [0.0, 1.0]
y = [0.0, 1.0]
[nodes.q]
op = "pow"
children = ["x", "y"]
exponent = 2`,
			ErrModelShape,
		},
		{
			"constraint on unknown name",
			`[vars]
x = [0.0, 1.0]
[[constraints]]
node = "ghost"
bounds = [0.0, 1.0]`,
			ErrUnknownName,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseModel([]byte(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseModel_ConstraintOnVariable(t *testing.T) {
	// Constraining a bare variable is allowed and just intersects its box.
	m, err := ParseModel([]byte(`
[vars]
x = [0.0, 10.0]

[[constraints]]
node = "x"
bounds = [2.0, 4.0]
`))
	require.NoError(t, err)
	require.Len(t, m.Constraints, 1)
	assert.Same(t, m.Vars["x"], m.Constraints[0].Root)
}

func TestRunTighten_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")
	require.NoError(t, os.WriteFile(path, []byte(sumModel), 0o644))

	c := New(os.Stderr, LogInfo)
	var out bytes.Buffer
	require.NoError(t, c.runTighten(&out, path, 0))

	assert.Equal(t, "x ∈ [-1.5,1]\ny ∈ [-3,1]\n", out.String())
}

func TestRunTighten_Infeasible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[vars]
x = [-1.0, 1.0]
y = [0.0, 3.0]

[nodes.p]
op = "product"
coef = 2.0
children = ["x", "y"]

[[constraints]]
node = "p"
bounds = [-7.0, -6.1]
`), 0o644))

	c := New(os.Stderr, LogInfo)
	var out bytes.Buffer
	require.NoError(t, c.runTighten(&out, path, 0))

	assert.Contains(t, out.String(), "infeasible")
}

func TestRunTighten_MissingFile(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	var out bytes.Buffer
	assert.Error(t, c.runTighten(&out, filepath.Join(t.TempDir(), "absent.toml"), 0))
}

func TestModel_PropagateDirectly(t *testing.T) {
	// The resolved model plugs straight into propagate.Run.
	m, err := ParseModel([]byte(sumModel))
	require.NoError(t, err)

	res, err := propagate.Run(m.Registry, m.Constraints)
	require.NoError(t, err)
	assert.False(t, res.Infeasible)
	assert.Equal(t, 1, res.Tightenings)
}
