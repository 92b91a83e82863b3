package calc

// Kind selects how a button press is dispatched.
type Kind string

const (
	KindNumber     Kind = "number"
	KindOperator   Kind = "operator"
	KindScientific Kind = "scientific"
	KindFunction   Kind = "function"
	KindEquals     Kind = "equals"
	KindClear      Kind = "clear"
	KindDelete     Kind = "delete"
)

// Tone is a presentation hint. It carries no behaviour.
type Tone string

const (
	TonePlain    Tone = ""
	ToneDanger   Tone = "danger"
	ToneSoftRed  Tone = "soft-danger"
	ToneWarning  Tone = "warning"
	ToneOperator Tone = "operator"
	ToneEquals   Tone = "equals"
	ToneTrig     Tone = "trig"
	ToneInverse  Tone = "inverse"
	ToneLog      Tone = "log"
	ToneLogSoft  Tone = "log-soft"
	TonePower    Tone = "power"
	TonePowSoft  Tone = "power-soft"
	ToneConstant Tone = "constant"
)

// Values carried by function buttons.
const (
	ValueEquals     = "="
	ValueClear      = "C"
	ValueClearEntry = "CE"
	ValueDelete     = "DEL"
	ValueDecimal    = "."
	ValueSign       = "±"
)

// Button is one cell of the keypad.
type Button struct {
	Label string
	Value string
	Kind  Kind
	Tone  Tone
}

var basicButtons = []Button{
	{Label: "C", Value: ValueClear, Kind: KindFunction, Tone: ToneDanger},
	{Label: "CE", Value: ValueClearEntry, Kind: KindFunction, Tone: ToneSoftRed},
	{Label: "DEL", Value: ValueDelete, Kind: KindFunction, Tone: ToneWarning},
	{Label: "÷", Value: string(OpDivide), Kind: KindOperator, Tone: ToneOperator},
	{Label: "7", Value: "7", Kind: KindNumber},
	{Label: "8", Value: "8", Kind: KindNumber},
	{Label: "9", Value: "9", Kind: KindNumber},
	{Label: "×", Value: string(OpMultiply), Kind: KindOperator, Tone: ToneOperator},
	{Label: "4", Value: "4", Kind: KindNumber},
	{Label: "5", Value: "5", Kind: KindNumber},
	{Label: "6", Value: "6", Kind: KindNumber},
	{Label: "−", Value: string(OpSubtract), Kind: KindOperator, Tone: ToneOperator},
	{Label: "1", Value: "1", Kind: KindNumber},
	{Label: "2", Value: "2", Kind: KindNumber},
	{Label: "3", Value: "3", Kind: KindNumber},
	{Label: "+", Value: string(OpAdd), Kind: KindOperator, Tone: ToneOperator},
	{Label: "±", Value: ValueSign, Kind: KindFunction},
	{Label: "0", Value: "0", Kind: KindNumber},
	{Label: ".", Value: ValueDecimal, Kind: KindFunction},
	{Label: "=", Value: ValueEquals, Kind: KindEquals, Tone: ToneEquals},
}

var scientificButtons = []Button{
	{Label: "sin", Value: string(FnSin), Kind: KindScientific, Tone: ToneTrig},
	{Label: "cos", Value: string(FnCos), Kind: KindScientific, Tone: ToneTrig},
	{Label: "tan", Value: string(FnTan), Kind: KindScientific, Tone: ToneTrig},
	{Label: "log", Value: string(FnLog), Kind: KindScientific, Tone: ToneLog},
	{Label: "asin", Value: string(FnAsin), Kind: KindScientific, Tone: ToneInverse},
	{Label: "acos", Value: string(FnAcos), Kind: KindScientific, Tone: ToneInverse},
	{Label: "atan", Value: string(FnAtan), Kind: KindScientific, Tone: ToneInverse},
	{Label: "ln", Value: string(FnLn), Kind: KindScientific, Tone: ToneLogSoft},
	{Label: "√", Value: string(FnSqrt), Kind: KindScientific, Tone: TonePower},
	{Label: "x²", Value: string(FnSquare), Kind: KindScientific, Tone: TonePower},
	{Label: "x³", Value: string(FnCube), Kind: KindScientific, Tone: TonePower},
	{Label: "eˣ", Value: string(FnExp), Kind: KindScientific, Tone: ToneLog},
	{Label: "10ˣ", Value: string(FnPow10), Kind: KindScientific, Tone: ToneLogSoft},
	{Label: "2ˣ", Value: string(FnPow2), Kind: KindScientific, Tone: ToneLogSoft},
	{Label: "1/x", Value: string(FnReciprocal), Kind: KindScientific, Tone: TonePowSoft},
	{Label: "x!", Value: string(FnFactorial), Kind: KindScientific, Tone: TonePowSoft},
	{Label: "π", Value: string(FnPi), Kind: KindScientific, Tone: ToneConstant},
	{Label: "e", Value: string(FnE), Kind: KindScientific, Tone: ToneConstant},
}

// BasicButtons returns a copy of the always-visible keypad.
func BasicButtons() []Button {
	return append([]Button(nil), basicButtons...)
}

// ScientificButtons returns a copy of the scientific panel.
func ScientificButtons() []Button {
	return append([]Button(nil), scientificButtons...)
}

// Visible lists the buttons in grid order: the scientific panel, when shown,
// flows ahead of the basic keypad.
func Visible(scientific bool) []Button {
	if !scientific {
		return BasicButtons()
	}
	out := make([]Button, 0, len(scientificButtons)+len(basicButtons))
	out = append(out, scientificButtons...)
	return append(out, basicButtons...)
}
