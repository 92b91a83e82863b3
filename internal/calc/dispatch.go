package calc

import "log"

// Press routes a button to its transition. Unknown kinds or values leave the
// state unchanged.
func Press(s State, b Button) State {
	next := dispatch(s, b)
	log.Printf("[calc] press %s (%s) display=%q phase=%s", b.Label, b.Kind, next.Display, next.Phase())
	return next
}

func dispatch(s State, b Button) State {
	switch b.Kind {
	case KindNumber:
		return s.Digit(b.Value)
	case KindOperator:
		return s.ApplyOperator(Operator(b.Value))
	case KindScientific:
		if !Known(Function(b.Value)) {
			return s
		}
		return s.ApplyFunction(Function(b.Value))
	case KindFunction:
		return pressFunction(s, b.Value)
	case KindEquals:
		return s.ApplyOperator(OpEquals)
	case KindClear:
		return s.Clear()
	case KindDelete:
		return s.DeleteLast()
	default:
		return s
	}
}

func pressFunction(s State, value string) State {
	switch value {
	case ValueEquals:
		return s.ApplyOperator(OpEquals)
	case ValueClear:
		return s.Clear()
	case ValueClearEntry:
		return s.ClearEntry()
	case ValueDelete:
		return s.DeleteLast()
	case ValueDecimal:
		return s.Decimal()
	case ValueSign:
		return s.ToggleSign()
	default:
		return s
	}
}
