package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digits(s State, seq string) State {
	for _, r := range seq {
		s = s.Digit(string(r))
	}
	return s
}

func TestDigitEntry(t *testing.T) {
	t.Run("concatenates", func(t *testing.T) {
		s := digits(NewState(false), "53")
		assert.Equal(t, "53", s.Display)
	})

	t.Run("suppresses leading zero", func(t *testing.T) {
		s := digits(NewState(false), "05")
		assert.Equal(t, "5", s.Display)
		s = digits(NewState(false), "000")
		assert.Equal(t, "0", s.Display)
	})

	t.Run("replaces display while awaiting", func(t *testing.T) {
		s := digits(NewState(false), "12").ApplyOperator(OpAdd)
		require.True(t, s.Awaiting)
		s = s.Digit("7")
		assert.Equal(t, "7", s.Display)
		assert.False(t, s.Awaiting)
	})
}

func TestDecimal(t *testing.T) {
	s := NewState(false).Digit("1").Decimal().Decimal()
	assert.Equal(t, "1.", s.Display)

	s = s.Digit("5").Decimal()
	assert.Equal(t, "1.5", s.Display)

	s = s.ApplyOperator(OpMultiply).Decimal()
	assert.Equal(t, "0.", s.Display)
	assert.False(t, s.Awaiting)

	s = NewState(false).Decimal().Digit("2")
	assert.Equal(t, "0.2", s.Display)
}

func TestDeleteLast(t *testing.T) {
	s := digits(NewState(false), "123")
	s = s.DeleteLast()
	assert.Equal(t, "12", s.Display)
	s = s.DeleteLast().DeleteLast()
	assert.Equal(t, "0", s.Display)
	s = s.DeleteLast()
	assert.Equal(t, "0", s.Display)

	pending := digits(NewState(false), "9").ApplyOperator(OpSubtract).Digit("4")
	pending = pending.DeleteLast()
	assert.Equal(t, "0", pending.Display)
	assert.True(t, pending.HasOperand)
	assert.Equal(t, OpSubtract, pending.Operator)
}

func TestClearAlwaysReturnsIdle(t *testing.T) {
	states := []State{
		NewState(false),
		digits(NewState(false), "42"),
		digits(NewState(false), "42").ApplyOperator(OpDivide),
		digits(NewState(true), "3").ApplyOperator(OpAdd).Digit("4").ApplyOperator(OpEquals),
		NewState(true).ApplyFunction(FnPi),
	}
	for _, s := range states {
		cleared := s.Clear()
		assert.Equal(t, "0", cleared.Display)
		assert.False(t, cleared.HasOperand)
		assert.Equal(t, OpNone, cleared.Operator)
		assert.False(t, cleared.Awaiting)
		assert.Equal(t, PhaseIdle, cleared.Phase())
		assert.Equal(t, s.Scientific, cleared.Scientific)
	}
}

func TestClearEntryKeepsPendingOperation(t *testing.T) {
	s := digits(NewState(false), "8").ApplyOperator(OpMultiply).Digit("3").ClearEntry()
	assert.Equal(t, "0", s.Display)
	assert.True(t, s.HasOperand)
	assert.Equal(t, 8.0, s.Operand)
	assert.Equal(t, OpMultiply, s.Operator)

	s = s.Digit("2").ApplyOperator(OpEquals)
	assert.Equal(t, "16", s.Display)
}

func TestToggleSign(t *testing.T) {
	assert.Equal(t, "0", NewState(false).ToggleSign().Display)

	for _, display := range []string{"5", "-5", "12.5", "0.", "Infinity"} {
		s := State{Display: display}
		assert.Equal(t, display, s.ToggleSign().ToggleSign().Display, display)
	}
	assert.Equal(t, "-7", State{Display: "7"}.ToggleSign().Display)
	assert.Equal(t, "7", State{Display: "-7"}.ToggleSign().Display)
}

func TestBinaryChain(t *testing.T) {
	s := NewState(false).Digit("2").ApplyOperator(OpAdd).Digit("3").ApplyOperator(OpEquals)
	assert.Equal(t, "5", s.Display)

	s = NewState(false).
		Digit("2").ApplyOperator(OpAdd).
		Digit("3").ApplyOperator(OpAdd).
		Digit("4").ApplyOperator(OpEquals)
	assert.Equal(t, "9", s.Display)
}

func TestOperatorPressSequence(t *testing.T) {
	s := NewState(false).Digit("6")
	require.Equal(t, PhaseIdle, s.Phase())

	s = s.ApplyOperator(OpSubtract)
	assert.True(t, s.HasOperand)
	assert.Equal(t, 6.0, s.Operand)
	assert.Equal(t, "6", s.Display)
	assert.Equal(t, PhaseAfterOperator, s.Phase())

	s = s.Digit("1")
	assert.Equal(t, PhaseOperandPending, s.Phase())

	s = s.ApplyOperator(OpMultiply)
	assert.Equal(t, "5", s.Display)
	assert.Equal(t, 5.0, s.Operand)
	assert.Equal(t, OpMultiply, s.Operator)

	// Switching operator without new input folds the display again.
	s = s.ApplyOperator(OpAdd)
	assert.Equal(t, "25", s.Display)
}

func TestRepeatedEqualsDoesNotRepeat(t *testing.T) {
	s := NewState(false).Digit("2").ApplyOperator(OpAdd).Digit("3").ApplyOperator(OpEquals)
	require.Equal(t, "5", s.Display)
	s = s.ApplyOperator(OpEquals).ApplyOperator(OpEquals)
	assert.Equal(t, "5", s.Display)
	assert.Equal(t, OpEquals, s.Operator)
}

func TestEqualsStartsFreshEntry(t *testing.T) {
	s := NewState(false).Digit("2").ApplyOperator(OpAdd).Digit("3").ApplyOperator(OpEquals)
	s = s.Digit("7").ApplyOperator(OpMultiply).Digit("2").ApplyOperator(OpEquals)
	assert.Equal(t, "14", s.Display)
}

func TestDivisionByZero(t *testing.T) {
	s := NewState(false).Digit("5").ApplyOperator(OpDivide).Digit("0").ApplyOperator(OpEquals)
	assert.Equal(t, "Infinity", s.Display)

	s = NewState(false).Digit("5").ToggleSign().ApplyOperator(OpDivide).Digit("0").ApplyOperator(OpEquals)
	assert.Equal(t, "-Infinity", s.Display)

	s = NewState(false).Digit("0").ApplyOperator(OpDivide).Digit("0").ApplyOperator(OpEquals)
	assert.Equal(t, "NaN", s.Display)
}

func TestNaNOperandCountsAsZero(t *testing.T) {
	s := NewState(false).Digit("0").ApplyOperator(OpDivide).Digit("0").ApplyOperator(OpAdd)
	require.Equal(t, "NaN", s.Display)
	s = s.Digit("4").ApplyOperator(OpEquals)
	assert.Equal(t, "4", s.Display)
}

func TestFunctionKeepsPendingOperation(t *testing.T) {
	s := NewState(true).Digit("2").ApplyOperator(OpAdd).Digit("9").ApplyFunction(FnSqrt)
	assert.Equal(t, "3", s.Display)
	assert.True(t, s.Awaiting)
	assert.Equal(t, OpAdd, s.Operator)
	assert.Equal(t, 2.0, s.Operand)

	s = s.ApplyOperator(OpEquals)
	assert.Equal(t, "5", s.Display)
}

func TestScientificScenarios(t *testing.T) {
	cases := []struct {
		name  string
		entry string
		fn    Function
		want  string
	}{
		{name: "sin zero", entry: "0", fn: FnSin, want: "0"},
		{name: "sqrt nine", entry: "9", fn: FnSqrt, want: "3"},
		{name: "factorial five", entry: "5", fn: FnFactorial, want: "120"},
		{name: "factorial negative", entry: "-1", fn: FnFactorial, want: "NaN"},
		{name: "reciprocal zero", entry: "0", fn: FnReciprocal, want: "Infinity"},
		{name: "log zero", entry: "0", fn: FnLog, want: "-Infinity"},
		{name: "square", entry: "12", fn: FnSquare, want: "144"},
		{name: "pow2", entry: "10", fn: FnPow2, want: "1024"},
		{name: "pi ignores entry", entry: "42", fn: FnPi, want: "3.141592653589793"},
		{name: "asin out of domain", entry: "2", fn: FnAsin, want: "NaN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(true)
			for _, r := range tc.entry {
				if r == '-' {
					continue
				}
				s = s.Digit(string(r))
			}
			if tc.entry[0] == '-' {
				s = s.ToggleSign()
			}
			s = s.ApplyFunction(tc.fn)
			assert.Equal(t, tc.want, s.Display)
			assert.True(t, s.Awaiting)
		})
	}
}

func TestToggleModeKeepsArithmetic(t *testing.T) {
	s := NewState(false).Digit("4").ApplyOperator(OpMultiply).Digit("6")
	toggled := s.ToggleMode()
	assert.True(t, toggled.Scientific)
	toggled.Scientific = false
	assert.Equal(t, s, toggled)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := NewState(false).Digit("3")
	_ = s.Digit("4")
	_ = s.ApplyOperator(OpAdd)
	_ = s.Clear()
	assert.Equal(t, "3", s.Display)
	assert.False(t, s.HasOperand)
}
