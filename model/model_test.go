package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/model"
)

type addOp struct{}

func (addOp) Eval(inputs []float64) float64 { return inputs[0] + inputs[1] }
func (addOp) Arity() int                    { return 2 }

func TestAddFunctionAndCompileEvaluates(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddFunction("x", model.ImplicitFunctionFunc[float64](func(x, y, z float64) float64 { return x })))

	plan, err := m.Compile("x")
	require.NoError(t, err)
	require.Equal(t, 1, plan.Len())

	scratch := make([]float64, plan.Len())
	require.Equal(t, 3.0, plan.EvalAt(3, 4, 5, scratch))
}

func TestAddOperationWithInputsWiresAndEvaluates(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 2))
	require.NoError(t, m.AddConstant("b", 3))
	require.NoError(t, m.AddOperationWithInputs("sum", addOp{}, []string{"a", "b"}))

	plan, err := m.Compile("sum")
	require.NoError(t, err)

	scratch := make([]float64, plan.Len())
	require.Equal(t, 5.0, plan.EvalAt(0, 0, 0, scratch))
}

func TestWireAndRemoveInput(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 1))
	require.NoError(t, m.AddConstant("b", 2))
	require.NoError(t, m.AddOperation("op", addOp{}))

	require.NoError(t, m.Wire("op", 0, "a"))
	require.NoError(t, m.Wire("op", 1, "b"))

	plan, err := m.Compile("op")
	require.NoError(t, err)
	scratch := make([]float64, plan.Len())
	require.Equal(t, 3.0, plan.EvalAt(0, 0, 0, scratch))

	require.NoError(t, m.RemoveInput("op", 1))
	_, err = m.Compile("op")
	var missingInput *model.MissingInputError
	require.ErrorAs(t, err, &missingInput)
}

func TestDuplicateTagError(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 1))
	err := m.AddConstant("a", 2)
	var dup *model.DuplicateTagError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "a", dup.Tag)
}

func TestMissingTagErrorOnCompile(t *testing.T) {
	m := model.New[float64]()
	_, err := m.Compile("nope")
	var missing *model.MissingTagError
	require.ErrorAs(t, err, &missing)
}

func TestMissingTagErrorOnWireSource(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddOperation("op", addOp{}))
	err := m.Wire("op", 0, "ghost")
	var missing *model.MissingTagError
	require.ErrorAs(t, err, &missing)
}

func TestAddOperationWithInputsMissingSourceTag(t *testing.T) {
	m := model.New[float64]()
	err := m.AddOperationWithInputs("op", addOp{}, []string{"ghost", "also-ghost"})
	var missing *model.MissingTagError
	require.ErrorAs(t, err, &missing)
}

func TestIncorrectInputCountError(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 1))
	err := m.AddOperationWithInputs("op", addOp{}, []string{"a"})
	var bad *model.IncorrectInputCountError
	require.ErrorAs(t, err, &bad)
}

func TestInputIndexOutOfRangeError(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 1))
	require.NoError(t, m.AddOperation("op", addOp{}))
	err := m.Wire("op", 5, "a")
	var bad *model.InputIndexOutOfRangeError
	require.ErrorAs(t, err, &bad)
}

func TestCyclicDependencyDetected(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddOperation("a", addOp{}))
	require.NoError(t, m.AddOperation("b", addOp{}))
	require.NoError(t, m.Wire("a", 0, "b"))
	require.NoError(t, m.Wire("a", 1, "a"))
	require.NoError(t, m.Wire("b", 0, "a"))
	require.NoError(t, m.Wire("b", 1, "a"))

	_, err := m.Compile("a")
	var cyc *model.CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
}

func TestCompileIsTopologicallyOrdered(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("leaf1", 1))
	require.NoError(t, m.AddConstant("leaf2", 2))
	require.NoError(t, m.AddOperationWithInputs("mid", addOp{}, []string{"leaf1", "leaf2"}))
	require.NoError(t, m.AddOperationWithInputs("top", addOp{}, []string{"mid", "leaf1"}))

	plan, err := m.Compile("top")
	require.NoError(t, err)
	require.Equal(t, "top", plan.Output)
	require.Equal(t, 4, plan.Len())

	scratch := make([]float64, plan.Len())
	require.Equal(t, 4.0, plan.EvalAt(0, 0, 0, scratch)) // (1+2)+1
}

func TestCompileIsDeterministicAcrossRuns(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("a", 1))
	require.NoError(t, m.AddConstant("b", 2))
	require.NoError(t, m.AddOperationWithInputs("sum", addOp{}, []string{"a", "b"}))

	plan1, err := m.Compile("sum")
	require.NoError(t, err)
	plan2, err := m.Compile("sum")
	require.NoError(t, err)

	scratch1 := make([]float64, plan1.Len())
	scratch2 := make([]float64, plan2.Len())
	require.Equal(t, plan1.EvalAt(1, 2, 3, scratch1), plan2.EvalAt(1, 2, 3, scratch2))
}

func TestTagsReturnsRegistrationOrder(t *testing.T) {
	m := model.New[float64]()
	require.NoError(t, m.AddConstant("first", 1))
	require.NoError(t, m.AddConstant("second", 2))
	require.NoError(t, m.AddConstant("third", 3))
	require.Equal(t, []string{"first", "second", "third"}, m.Tags())
}

func TestHasAndComponent(t *testing.T) {
	m := model.New[float64]()
	require.False(t, m.Has("x"))
	require.NoError(t, m.AddConstant("x", 42))
	require.True(t, m.Has("x"))

	c, ok := m.Component("x")
	require.True(t, ok)
	require.Equal(t, model.KindConstant, c.Kind())
	require.Equal(t, 42.0, c.Constant())
}
