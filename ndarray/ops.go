// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/numgo-ml/numgo/internal/ndarray"
)

// Elementwise binary operations with broadcasting.

// Add performs elementwise addition.
func Add(a, b *NDArray) (*NDArray, error) { return ndarray.Add(a, b) }

// Sub performs elementwise subtraction.
func Sub(a, b *NDArray) (*NDArray, error) { return ndarray.Sub(a, b) }

// Mul performs elementwise multiplication.
func Mul(a, b *NDArray) (*NDArray, error) { return ndarray.Mul(a, b) }

// Div performs elementwise division; zero divisors raise a MathematicalError.
func Div(a, b *NDArray) (*NDArray, error) { return ndarray.Div(a, b) }

// Mod computes the elementwise remainder.
func Mod(a, b *NDArray) (*NDArray, error) { return ndarray.Mod(a, b) }

// Pow raises a to the elementwise power b.
func Pow(a, b *NDArray) (*NDArray, error) { return ndarray.Pow(a, b) }

// Minimum takes the elementwise minimum.
func Minimum(a, b *NDArray) (*NDArray, error) { return ndarray.Minimum(a, b) }

// Maximum takes the elementwise maximum.
func Maximum(a, b *NDArray) (*NDArray, error) { return ndarray.Maximum(a, b) }

// Greater compares a > b elementwise into a Uint8 truth array.
func Greater(a, b *NDArray) (*NDArray, error) { return ndarray.Greater(a, b) }

// Less compares a < b elementwise into a Uint8 truth array.
func Less(a, b *NDArray) (*NDArray, error) { return ndarray.Less(a, b) }

// GreaterEqual compares a >= b elementwise into a Uint8 truth array.
func GreaterEqual(a, b *NDArray) (*NDArray, error) { return ndarray.GreaterEqual(a, b) }

// LessEqual compares a <= b elementwise into a Uint8 truth array.
func LessEqual(a, b *NDArray) (*NDArray, error) { return ndarray.LessEqual(a, b) }

// Equal compares a == b elementwise into a Uint8 truth array.
func Equal(a, b *NDArray) (*NDArray, error) { return ndarray.Equal(a, b) }

// NotEqual compares a != b elementwise into a Uint8 truth array.
func NotEqual(a, b *NDArray) (*NDArray, error) { return ndarray.NotEqual(a, b) }

// Scalar forms.

// AddScalar adds s to every element.
func AddScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.AddScalar(a, s) }

// SubScalar subtracts s from every element.
func SubScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.SubScalar(a, s) }

// MulScalar multiplies every element by s.
func MulScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.MulScalar(a, s) }

// DivScalar divides every element by s; a zero s raises a MathematicalError.
func DivScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.DivScalar(a, s) }

// ModScalar computes the remainder of every element by s.
func ModScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.ModScalar(a, s) }

// PowScalar raises every element to the power s.
func PowScalar(a *NDArray, s float64) (*NDArray, error) { return ndarray.PowScalar(a, s) }

// Unary elementwise operations.

// Neg negates every element.
func Neg(a *NDArray) (*NDArray, error) { return ndarray.Neg(a) }

// Abs takes the absolute value of every element.
func Abs(a *NDArray) (*NDArray, error) { return ndarray.Abs(a) }

// Sqrt takes the square root; negative elements raise a MathematicalError.
func Sqrt(a *NDArray) (*NDArray, error) { return ndarray.Sqrt(a) }

// Exp exponentiates every element.
func Exp(a *NDArray) (*NDArray, error) { return ndarray.Exp(a) }

// Log takes the natural logarithm; non-positive elements raise a
// MathematicalError.
func Log(a *NDArray) (*NDArray, error) { return ndarray.Log(a) }

// Sin takes the sine of every element.
func Sin(a *NDArray) (*NDArray, error) { return ndarray.Sin(a) }

// Cos takes the cosine of every element.
func Cos(a *NDArray) (*NDArray, error) { return ndarray.Cos(a) }

// Tanh takes the hyperbolic tangent of every element.
func Tanh(a *NDArray) (*NDArray, error) { return ndarray.Tanh(a) }

// Sigmoid applies the logistic function elementwise.
func Sigmoid(a *NDArray) (*NDArray, error) { return ndarray.Sigmoid(a) }

// ReLU rectifies every element.
func ReLU(a *NDArray) (*NDArray, error) { return ndarray.ReLU(a) }

// LeakyReLU rectifies with slope alpha below zero.
func LeakyReLU(a *NDArray, alpha float64) (*NDArray, error) { return ndarray.LeakyReLU(a, alpha) }

// Softplus applies log(1+e^x) elementwise.
func Softplus(a *NDArray) (*NDArray, error) { return ndarray.Softplus(a) }

// Dot computes the inner, matrix-vector or matrix-matrix product.
func Dot(a, b *NDArray) (*NDArray, error) { return ndarray.Dot(a, b) }

// Reductions.

// Sum returns the sum of all elements.
func Sum(a *NDArray) (float64, error) { return ndarray.Sum(a) }

// Prod returns the product of all elements.
func Prod(a *NDArray) (float64, error) { return ndarray.Prod(a) }

// Min returns the smallest element.
func Min(a *NDArray) (float64, error) { return ndarray.Min(a) }

// Max returns the largest element.
func Max(a *NDArray) (float64, error) { return ndarray.Max(a) }

// Mean returns the arithmetic mean of all elements.
func Mean(a *NDArray) (float64, error) { return ndarray.Mean(a) }

// Std returns the population standard deviation of all elements.
func Std(a *NDArray) (float64, error) { return ndarray.Std(a) }

// ArgMin returns the row-major flat position of the smallest element.
func ArgMin(a *NDArray) (int, error) { return ndarray.ArgMin(a) }

// ArgMax returns the row-major flat position of the largest element.
func ArgMax(a *NDArray) (int, error) { return ndarray.ArgMax(a) }

// SumAxis sums along one axis.
func SumAxis(a *NDArray, axis int) (*NDArray, error) { return ndarray.SumAxis(a, axis) }

// MeanAxis averages along one axis.
func MeanAxis(a *NDArray, axis int) (*NDArray, error) { return ndarray.MeanAxis(a, axis) }
