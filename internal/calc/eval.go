package calc

import "math"

// Function names a unary scientific operation.
type Function string

const (
	FnSin        Function = "sin"
	FnCos        Function = "cos"
	FnTan        Function = "tan"
	FnAsin       Function = "asin"
	FnAcos       Function = "acos"
	FnAtan       Function = "atan"
	FnLog        Function = "log"
	FnLn         Function = "ln"
	FnSqrt       Function = "sqrt"
	FnSquare     Function = "square"
	FnCube       Function = "cube"
	FnExp        Function = "exp"
	FnPow10      Function = "pow10"
	FnPow2       Function = "pow2"
	FnPi         Function = "pi"
	FnE          Function = "e"
	FnReciprocal Function = "1/x"
	FnFactorial  Function = "x!"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

var functionTable = map[Function]func(float64) float64{
	FnSin:        func(v float64) float64 { return math.Sin(v * degToRad) },
	FnCos:        func(v float64) float64 { return math.Cos(v * degToRad) },
	FnTan:        func(v float64) float64 { return math.Tan(v * degToRad) },
	FnAsin:       func(v float64) float64 { return math.Asin(v) * radToDeg },
	FnAcos:       func(v float64) float64 { return math.Acos(v) * radToDeg },
	FnAtan:       func(v float64) float64 { return math.Atan(v) * radToDeg },
	FnLog:        math.Log10,
	FnLn:         math.Log,
	FnSqrt:       math.Sqrt,
	FnSquare:     func(v float64) float64 { return v * v },
	FnCube:       func(v float64) float64 { return v * v * v },
	FnExp:        math.Exp,
	FnPow10:      func(v float64) float64 { return math.Pow(10, v) },
	FnPow2:       func(v float64) float64 { return math.Pow(2, v) },
	FnPi:         func(float64) float64 { return math.Pi },
	FnE:          func(float64) float64 { return math.E },
	FnReciprocal: func(v float64) float64 { return 1 / v },
	FnFactorial:  Factorial,
}

// Known reports whether fn has an entry in the function table.
func Known(fn Function) bool {
	_, ok := functionTable[fn]
	return ok
}

// Apply evaluates a pending binary operation. OpEquals and unknown operators
// return b.
func Apply(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return b
	}
}

// Unary evaluates fn at v. Unknown functions return v unchanged. Domain
// errors surface as NaN or ±Inf, never as a panic.
func Unary(fn Function, v float64) float64 {
	f, ok := functionTable[fn]
	if !ok {
		return v
	}
	return f(v)
}

// Factorial is defined for non-negative integers only; everything else is NaN.
// Large n overflows to +Inf.
func Factorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 || n != math.Floor(n) {
		return math.NaN()
	}
	if n == 0 || n == 1 {
		return 1
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 1) {
			break
		}
	}
	return result
}
