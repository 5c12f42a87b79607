package cli

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/exprdag/core"
	"github.com/katalvlaran/exprdag/interval"
	"github.com/katalvlaran/exprdag/propagate"
)

// Model-file validation errors. All are wrapped with the offending name,
// so callers match with errors.Is.
var (
	// ErrModelShape is returned when a model entry is structurally
	// malformed (wrong bounds arity, missing children, and the like).
	ErrModelShape = errors.New("cli: malformed model")

	// ErrUnknownName is returned when a node or constraint references a
	// name that is neither a variable nor a node.
	ErrUnknownName = errors.New("cli: reference to unknown name")

	// ErrDuplicateName is returned when a name is defined both under
	// [vars] and under [nodes].
	ErrDuplicateName = errors.New("cli: name defined twice")

	// ErrUnknownOp is returned for an unrecognized node operator.
	ErrUnknownOp = errors.New("cli: unknown operator")

	// ErrCyclicModel is returned when node references form a cycle; the
	// expression graph must be a DAG.
	ErrCyclicModel = errors.New("cli: node references form a cycle")
)

// modelFile is the raw TOML shape of a model.
type modelFile struct {
	Vars        map[string][]float64 `toml:"vars"`
	Nodes       map[string]modelNode `toml:"nodes"`
	Constraints []modelConstraint    `toml:"constraints"`
}

// modelNode is one [nodes.<name>] entry. Which fields apply depends on
// op: sum takes coeffs and constant, product takes coef (default 1),
// pow takes exponent, const takes value, exp and log take only a child.
type modelNode struct {
	Op       string    `toml:"op"`
	Children []string  `toml:"children"`
	Coeffs   []float64 `toml:"coeffs"`
	Constant float64   `toml:"constant"`
	Coef     *float64  `toml:"coef"`
	Exponent int       `toml:"exponent"`
	Value    float64   `toml:"value"`
}

// modelConstraint is one [[constraints]] entry: side bounds imposed on a
// named expression.
type modelConstraint struct {
	Node   string    `toml:"node"`
	Bounds []float64 `toml:"bounds"`
}

// Model is a fully resolved expression model: the shared registry, every
// named node, and the constraints ready for propagation.
type Model struct {
	Registry    *core.Registry
	Vars        map[string]*core.Node
	Nodes       map[string]*core.Node
	Constraints []propagate.Constraint
}

// LoadModel reads and resolves a TOML model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}

	return ParseModel(data)
}

// ParseModel decodes TOML model data and builds the expression DAG.
func ParseModel(data []byte) (*Model, error) {
	var mf modelFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	b := &modelBuilder{
		file:  &mf,
		built: make(map[string]*core.Node, len(mf.Vars)+len(mf.Nodes)),
		path:  make(map[string]bool),
	}

	return b.build()
}

// modelBuilder resolves name references into core nodes, memoizing so a
// name referenced twice yields one shared node.
type modelBuilder struct {
	file  *modelFile
	built map[string]*core.Node
	path  map[string]bool // names on the current resolution path
}

func (b *modelBuilder) build() (*Model, error) {
	m := &Model{
		Registry: core.NewRegistry(),
		Vars:     make(map[string]*core.Node, len(b.file.Vars)),
		Nodes:    make(map[string]*core.Node, len(b.file.Nodes)),
	}

	// 1. Variables first: leaves with explicit bounds.
	for name, bounds := range b.file.Vars {
		if _, dup := b.file.Nodes[name]; dup {
			return nil, fmt.Errorf("%w: %q is both a variable and a node", ErrDuplicateName, name)
		}
		iv, err := boundsPair(bounds)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		n := core.NewVar(name, iv.Inf, iv.Sup)
		b.built[name] = n
		m.Vars[name] = n
	}

	// 2. Expression nodes, resolved depth-first with cycle detection.
	for name := range b.file.Nodes {
		n, err := b.resolve(name)
		if err != nil {
			return nil, err
		}
		m.Nodes[name] = n
	}

	// 3. Constraints over the resolved names.
	for k, mc := range b.file.Constraints {
		root, ok := b.built[mc.Node]
		if !ok {
			return nil, fmt.Errorf("constraint %d: %w: %q", k, ErrUnknownName, mc.Node)
		}
		iv, err := boundsPair(mc.Bounds)
		if err != nil {
			return nil, fmt.Errorf("constraint %d on %q: %w", k, mc.Node, err)
		}
		m.Constraints = append(m.Constraints, propagate.Constraint{Root: root, Side: iv})
	}

	return m, nil
}

// resolve returns the core node for name, building it (and everything
// below it) on first use.
func (b *modelBuilder) resolve(name string) (*core.Node, error) {
	if n, ok := b.built[name]; ok {
		return n, nil
	}
	mn, ok := b.file.Nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	if b.path[name] {
		return nil, fmt.Errorf("%w: via %q", ErrCyclicModel, name)
	}
	b.path[name] = true
	defer delete(b.path, name)

	child := make([]*core.Node, len(mn.Children))
	for i, cname := range mn.Children {
		c, err := b.resolve(cname)
		if err != nil {
			return nil, err
		}
		child[i] = c
	}

	n, err := makeNode(name, &mn, child)
	if err != nil {
		return nil, err
	}
	b.built[name] = n

	return n, nil
}

// makeNode maps one validated model entry onto a core constructor.
func makeNode(name string, mn *modelNode, child []*core.Node) (*core.Node, error) {
	switch mn.Op {
	case "const":
		if len(child) != 0 {
			return nil, fmt.Errorf("%w: const %q takes no children", ErrModelShape, name)
		}

		return core.NewConst(mn.Value), nil

	case "sum":
		if len(child) == 0 {
			return nil, fmt.Errorf("%w: sum %q needs children", ErrModelShape, name)
		}
		coeffs := mn.Coeffs
		if coeffs == nil {
			// Plain addition when no coefficients are given.
			coeffs = make([]float64, len(child))
			for i := range coeffs {
				coeffs[i] = 1
			}
		}
		if len(coeffs) != len(child) {
			return nil, fmt.Errorf("%w: sum %q has %d coeffs for %d children",
				ErrModelShape, name, len(coeffs), len(child))
		}

		return core.NewSum(mn.Constant, coeffs, child...), nil

	case "product":
		if len(child) == 0 {
			return nil, fmt.Errorf("%w: product %q needs children", ErrModelShape, name)
		}
		coef := 1.0
		if mn.Coef != nil {
			coef = *mn.Coef
		}

		return core.NewProduct(coef, child...), nil

	case "pow":
		if len(child) != 1 {
			return nil, fmt.Errorf("%w: pow %q needs exactly one child", ErrModelShape, name)
		}

		return core.NewPow(child[0], mn.Exponent), nil

	case "exp":
		if len(child) != 1 {
			return nil, fmt.Errorf("%w: exp %q needs exactly one child", ErrModelShape, name)
		}

		return core.NewExp(child[0]), nil

	case "log":
		if len(child) != 1 {
			return nil, fmt.Errorf("%w: log %q needs exactly one child", ErrModelShape, name)
		}

		return core.NewLog(child[0]), nil
	}

	return nil, fmt.Errorf("%w: %q on node %q", ErrUnknownOp, mn.Op, name)
}

// boundsPair validates a two-element [lb, ub] array.
func boundsPair(bounds []float64) (interval.Interval, error) {
	if len(bounds) != 2 {
		return interval.Empty(), fmt.Errorf("%w: bounds need exactly [lb, ub], got %d values",
			ErrModelShape, len(bounds))
	}
	if math.IsNaN(bounds[0]) || math.IsNaN(bounds[1]) {
		return interval.Empty(), fmt.Errorf("%w: bounds must not be NaN", ErrModelShape)
	}
	if bounds[0] > bounds[1] {
		return interval.Empty(), fmt.Errorf("%w: lower bound %g above upper bound %g",
			ErrModelShape, bounds[0], bounds[1])
	}

	return interval.New(bounds[0], bounds[1]), nil
}
