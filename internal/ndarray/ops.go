package ndarray

import "math"

// Binary elementwise operations. All broadcast their operands per
// BroadcastShapes; mixed-kind operands promote per the lattice in Promote.

// Add performs elementwise addition with broadcasting.
func Add(a, b *NDArray) (*NDArray, error) {
	return applyBinary("add", a, b, -1, func(x, y float64) (float64, error) { return x + y, nil })
}

// Sub performs elementwise subtraction with broadcasting.
func Sub(a, b *NDArray) (*NDArray, error) {
	return applyBinary("subtract", a, b, -1, func(x, y float64) (float64, error) { return x - y, nil })
}

// Mul performs elementwise multiplication with broadcasting.
func Mul(a, b *NDArray) (*NDArray, error) {
	return applyBinary("multiply", a, b, -1, func(x, y float64) (float64, error) { return x * y, nil })
}

// Div performs elementwise division with broadcasting. Any zero divisor
// raises a MathematicalError rather than producing Infinity or NaN.
func Div(a, b *NDArray) (*NDArray, error) {
	return applyBinary("divide", a, b, -1, divKernel)
}

func divKernel(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &MathematicalError{Op: "divide", Operands: []float64{x, y}}
	}
	return x / y, nil
}

// Mod computes the elementwise floating-point remainder with broadcasting.
// A zero divisor raises a MathematicalError.
func Mod(a, b *NDArray) (*NDArray, error) {
	return applyBinary("modulo", a, b, -1, modKernel)
}

func modKernel(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &MathematicalError{Op: "modulo", Operands: []float64{x, y}}
	}
	return math.Mod(x, y), nil
}

// Pow raises a to the elementwise power b with broadcasting. Domain
// violations (zero to a negative power, negative base with fractional
// exponent) raise a MathematicalError.
func Pow(a, b *NDArray) (*NDArray, error) {
	return applyBinary("power", a, b, -1, powKernel)
}

func powKernel(x, y float64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, &MathematicalError{Op: "power", Operands: []float64{x, y}}
	}
	if x < 0 && y != math.Trunc(y) {
		return 0, &MathematicalError{Op: "power", Operands: []float64{x, y}}
	}
	return math.Pow(x, y), nil
}

// Minimum takes the elementwise minimum with broadcasting.
func Minimum(a, b *NDArray) (*NDArray, error) {
	return applyBinary("minimum", a, b, -1, func(x, y float64) (float64, error) { return math.Min(x, y), nil })
}

// Maximum takes the elementwise maximum with broadcasting.
func Maximum(a, b *NDArray) (*NDArray, error) {
	return applyBinary("maximum", a, b, -1, func(x, y float64) (float64, error) { return math.Max(x, y), nil })
}

// Comparisons broadcast like the arithmetic operations and produce Uint8
// truth arrays (1 where the relation holds, 0 elsewhere); the closed set of
// eight kinds has no boolean member.

// Greater compares a > b elementwise.
func Greater(a, b *NDArray) (*NDArray, error) {
	return applyBinary("greater", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x > y }))
}

// Less compares a < b elementwise.
func Less(a, b *NDArray) (*NDArray, error) {
	return applyBinary("less", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x < y }))
}

// GreaterEqual compares a >= b elementwise.
func GreaterEqual(a, b *NDArray) (*NDArray, error) {
	return applyBinary("greaterEqual", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x >= y }))
}

// LessEqual compares a <= b elementwise.
func LessEqual(a, b *NDArray) (*NDArray, error) {
	return applyBinary("lessEqual", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x <= y }))
}

// Equal compares a == b elementwise.
func Equal(a, b *NDArray) (*NDArray, error) {
	return applyBinary("equal", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x == y }))
}

// NotEqual compares a != b elementwise.
func NotEqual(a, b *NDArray) (*NDArray, error) {
	return applyBinary("notEqual", a, b, Uint8, cmpKernel(func(x, y float64) bool { return x != y }))
}

func cmpKernel(rel func(x, y float64) bool) func(x, y float64) (float64, error) {
	return func(x, y float64) (float64, error) {
		if rel(x, y) {
			return 1, nil
		}
		return 0, nil
	}
}

// Scalar forms. The scalar adopts the array operand's kind, so the result
// kind is preserved; a scalar outside the kind's range raises a
// NumericalOverflowError up front.

// AddScalar adds s to every element.
func AddScalar(a *NDArray, s float64) (*NDArray, error) {
	return scalarBinary("add", a, s, func(x, y float64) (float64, error) { return x + y, nil })
}

// SubScalar subtracts s from every element.
func SubScalar(a *NDArray, s float64) (*NDArray, error) {
	return scalarBinary("subtract", a, s, func(x, y float64) (float64, error) { return x - y, nil })
}

// MulScalar multiplies every element by s.
func MulScalar(a *NDArray, s float64) (*NDArray, error) {
	return scalarBinary("multiply", a, s, func(x, y float64) (float64, error) { return x * y, nil })
}

// DivScalar divides every element by s. A zero s raises a MathematicalError.
func DivScalar(a *NDArray, s float64) (*NDArray, error) {
	if s == 0 {
		return nil, &MathematicalError{Op: "divide", Operands: []float64{s}}
	}
	return scalarBinary("divide", a, s, divKernel)
}

// ModScalar computes the remainder of every element by s. A zero s raises a
// MathematicalError.
func ModScalar(a *NDArray, s float64) (*NDArray, error) {
	if s == 0 {
		return nil, &MathematicalError{Op: "modulo", Operands: []float64{s}}
	}
	return scalarBinary("modulo", a, s, modKernel)
}

// PowScalar raises every element to the power s.
func PowScalar(a *NDArray, s float64) (*NDArray, error) {
	return scalarBinary("power", a, s, powKernel)
}

func scalarBinary(op string, a *NDArray, s float64, f func(x, y float64) (float64, error)) (*NDArray, error) {
	b, err := scalarOperand(op, s, a.buf.dtype)
	if err != nil {
		return nil, err
	}
	return applyBinary(op, a, b, a.buf.dtype, f)
}

// Unary elementwise operations. Each preserves the operand's shape and kind;
// kernels with a restricted domain raise a MathematicalError instead of
// storing NaN.

// Neg negates every element.
func Neg(a *NDArray) (*NDArray, error) {
	return applyUnary("negate", a, func(x float64) (float64, error) { return -x, nil })
}

// Abs takes the absolute value of every element.
func Abs(a *NDArray) (*NDArray, error) {
	return applyUnary("abs", a, func(x float64) (float64, error) { return math.Abs(x), nil })
}

// Sqrt takes the square root of every element. Negative operands raise a
// MathematicalError.
func Sqrt(a *NDArray) (*NDArray, error) {
	return applyUnary("sqrt", a, func(x float64) (float64, error) {
		if x < 0 {
			return 0, &MathematicalError{Op: "sqrt", Operands: []float64{x}}
		}
		return math.Sqrt(x), nil
	})
}

// Exp exponentiates every element.
func Exp(a *NDArray) (*NDArray, error) {
	return applyUnary("exp", a, func(x float64) (float64, error) { return math.Exp(x), nil })
}

// Log takes the natural logarithm of every element. Non-positive operands
// raise a MathematicalError.
func Log(a *NDArray) (*NDArray, error) {
	return applyUnary("log", a, func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &MathematicalError{Op: "log", Operands: []float64{x}}
		}
		return math.Log(x), nil
	})
}

// Sin takes the sine of every element.
func Sin(a *NDArray) (*NDArray, error) {
	return applyUnary("sin", a, func(x float64) (float64, error) { return math.Sin(x), nil })
}

// Cos takes the cosine of every element.
func Cos(a *NDArray) (*NDArray, error) {
	return applyUnary("cos", a, func(x float64) (float64, error) { return math.Cos(x), nil })
}

// Tanh takes the hyperbolic tangent of every element.
func Tanh(a *NDArray) (*NDArray, error) {
	return applyUnary("tanh", a, func(x float64) (float64, error) { return math.Tanh(x), nil })
}

// Sigmoid applies the logistic function 1/(1+e^-x) elementwise.
func Sigmoid(a *NDArray) (*NDArray, error) {
	return applyUnary("sigmoid", a, func(x float64) (float64, error) { return 1 / (1 + math.Exp(-x)), nil })
}

// ReLU rectifies every element: max(x, 0).
func ReLU(a *NDArray) (*NDArray, error) {
	return applyUnary("relu", a, func(x float64) (float64, error) { return math.Max(x, 0), nil })
}

// LeakyReLU rectifies with slope alpha below zero.
func LeakyReLU(a *NDArray, alpha float64) (*NDArray, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, &InvalidParameterError{Param: "alpha", Expected: "finite number", Actual: alpha}
	}
	return applyUnary("leakyRelu", a, func(x float64) (float64, error) {
		if x < 0 {
			return alpha * x, nil
		}
		return x, nil
	})
}

// Softplus applies log(1+e^x) elementwise.
func Softplus(a *NDArray) (*NDArray, error) {
	return applyUnary("softplus", a, func(x float64) (float64, error) {
		// Large x would overflow Exp; the function is x there to machine
		// precision.
		if x > 36 {
			return x, nil
		}
		return math.Log1p(math.Exp(x)), nil
	})
}
