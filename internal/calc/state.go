package calc

import (
	"math"
	"strings"
)

// Operator is a pending binary operator. OpEquals stores a pass-through.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpEquals   Operator = "="
)

// Phase names the implicit controller state over the pending tuple.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOperandPending
	PhaseAfterOperator
)

func (p Phase) String() string {
	switch p {
	case PhaseOperandPending:
		return "operand-pending"
	case PhaseAfterOperator:
		return "after-operator"
	default:
		return "idle"
	}
}

const initialDisplay = "0"

// State is the calculator session. Every transition returns a new value and
// leaves the receiver untouched.
type State struct {
	Display    string
	Operand    float64
	HasOperand bool
	Operator   Operator
	Awaiting   bool
	Scientific bool
}

// NewState returns the idle state with the given panel mode.
func NewState(scientific bool) State {
	return State{Display: initialDisplay, Scientific: scientific}
}

// Phase reports where the session sits in the entry cycle.
func (s State) Phase() Phase {
	switch {
	case s.Awaiting && s.Operator != OpNone:
		return PhaseAfterOperator
	case s.HasOperand:
		return PhaseOperandPending
	default:
		return PhaseIdle
	}
}

// Value parses the display the same lenient way operator presses do.
func (s State) Value() float64 {
	return ParseNumber(s.Display)
}

// Digit appends d to the entry, replacing a lone zero or a finished value.
func (s State) Digit(d string) State {
	if s.Awaiting {
		s.Display = d
		s.Awaiting = false
		return s
	}
	if s.Display == initialDisplay {
		s.Display = d
	} else {
		s.Display += d
	}
	return s
}

// Decimal adds a decimal point unless the entry already has one.
func (s State) Decimal() State {
	if s.Awaiting {
		s.Display = "0."
		s.Awaiting = false
		return s
	}
	if !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
	return s
}

// DeleteLast drops one trailing byte; the display only ever holds ASCII.
func (s State) DeleteLast() State {
	if len(s.Display) > 1 {
		s.Display = s.Display[:len(s.Display)-1]
	} else {
		s.Display = initialDisplay
	}
	return s
}

// Clear resets the arithmetic state. The panel mode survives.
func (s State) Clear() State {
	return NewState(s.Scientific)
}

// ClearEntry resets the display and keeps the pending operation.
func (s State) ClearEntry() State {
	s.Display = initialDisplay
	return s
}

// ToggleSign flips the sign of a non-zero entry.
func (s State) ToggleSign() State {
	if s.Display == initialDisplay {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

// ApplyOperator folds the display into the pending computation and records op
// as the next pending operator.
func (s State) ApplyOperator(op Operator) State {
	input := s.Value()
	switch {
	case !s.HasOperand:
		s.Operand = input
		s.HasOperand = true
	case s.Operator != OpNone:
		left := s.Operand
		// A NaN left operand counts as zero.
		if math.IsNaN(left) {
			left = 0
		}
		result := Apply(left, input, s.Operator)
		s.Display = FormatNumber(result)
		s.Operand = result
	}
	s.Awaiting = true
	s.Operator = op
	return s
}

// ApplyFunction runs a unary function over the display. Pending binary state
// is left alone so a function can be chained mid-expression.
func (s State) ApplyFunction(fn Function) State {
	s.Display = FormatNumber(Unary(fn, s.Value()))
	s.Awaiting = true
	return s
}

// ToggleMode shows or hides the scientific panel.
func (s State) ToggleMode() State {
	s.Scientific = !s.Scientific
	return s
}
