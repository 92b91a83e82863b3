package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findButton(t *testing.T, label string) Button {
	t.Helper()
	for _, b := range Visible(true) {
		if b.Label == label {
			return b
		}
	}
	t.Fatalf("no button labelled %q", label)
	return Button{}
}

func pressAll(t *testing.T, s State, labels ...string) State {
	t.Helper()
	for _, label := range labels {
		s = Press(s, findButton(t, label))
	}
	return s
}

func TestPressScenarios(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		want   string
	}{
		{name: "digits", labels: []string{"5", "3"}, want: "53"},
		{name: "leading zero", labels: []string{"0", "5"}, want: "5"},
		{name: "double decimal", labels: []string{"1", ".", "."}, want: "1."},
		{name: "sum", labels: []string{"2", "+", "3", "="}, want: "5"},
		{name: "chain", labels: []string{"2", "+", "3", "+", "4", "="}, want: "9"},
		{name: "multiply", labels: []string{"6", "×", "7", "="}, want: "42"},
		{name: "subtract", labels: []string{"2", "−", "9", "="}, want: "-7"},
		{name: "divide by zero", labels: []string{"5", "÷", "0", "="}, want: "Infinity"},
		{name: "sign", labels: []string{"8", "±"}, want: "-8"},
		{name: "sign twice", labels: []string{"8", "±", "±"}, want: "8"},
		{name: "sign on zero", labels: []string{"±"}, want: "0"},
		{name: "delete", labels: []string{"1", "2", "DEL"}, want: "1"},
		{name: "delete single", labels: []string{"7", "DEL"}, want: "0"},
		{name: "clear entry", labels: []string{"4", "+", "9", "CE", "1", "="}, want: "5"},
		{name: "clear", labels: []string{"4", "+", "9", "C"}, want: "0"},
		{name: "sin", labels: []string{"0", "sin"}, want: "0"},
		{name: "sqrt", labels: []string{"9", "√"}, want: "3"},
		{name: "factorial", labels: []string{"5", "x!"}, want: "120"},
		{name: "factorial negative", labels: []string{"1", "±", "x!"}, want: "NaN"},
		{name: "square then add", labels: []string{"3", "x²", "+", "1", "="}, want: "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := pressAll(t, NewState(true), tc.labels...)
			assert.Equal(t, tc.want, s.Display)
		})
	}
}

func TestPressClearResetsEverything(t *testing.T) {
	s := pressAll(t, NewState(true), "4", "+", "9", "C")
	assert.Equal(t, NewState(true), s)
}

func TestPressAlternateKinds(t *testing.T) {
	s := digits(NewState(false), "12")

	s = Press(s, Button{Label: "⌫", Kind: KindDelete})
	assert.Equal(t, "1", s.Display)

	s = Press(s, Button{Label: "+", Value: "+", Kind: KindOperator})
	s = Press(s, Button{Label: "2", Value: "2", Kind: KindNumber})
	s = Press(s, Button{Label: "=", Value: ValueEquals, Kind: KindFunction})
	assert.Equal(t, "3", s.Display)

	s = Press(s, Button{Label: "AC", Kind: KindClear})
	assert.Equal(t, NewState(false), s)
}

func TestPressUnknownIsNoop(t *testing.T) {
	s := digits(NewState(false), "42")
	assert.Equal(t, s, Press(s, Button{Label: "?", Value: "?", Kind: Kind("mystery")}))
	assert.Equal(t, s, Press(s, Button{Label: "?", Value: "?", Kind: KindFunction}))

	// An unknown function must not finish the entry the way a real one does.
	pending := NewState(true).Digit("1").Decimal().Digit("5").Digit("0")
	next := Press(pending, Button{Label: "sinh", Value: "sinh", Kind: KindScientific})
	assert.Equal(t, pending, next)
	assert.Equal(t, "1.50", next.Display)
	assert.False(t, next.Awaiting)
}

func TestButtonTables(t *testing.T) {
	basic := BasicButtons()
	sci := ScientificButtons()
	require.Len(t, basic, 20)
	require.Len(t, sci, 18)

	visible := Visible(true)
	require.Len(t, visible, 38)
	assert.Equal(t, "sin", visible[0].Label)
	assert.Equal(t, "C", visible[len(sci)].Label)
	assert.Equal(t, basic, Visible(false))

	basic[0].Label = "changed"
	assert.Equal(t, "C", BasicButtons()[0].Label)
}
