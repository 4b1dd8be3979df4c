// Package calc provides the arithmetic subjects exercised by the example
// suites. The harness treats these as opaque callables; nothing here depends
// on the harness.
package calc

import "errors"

// ErrDivideByZero is returned by Divide and Mod when the divisor is zero.
var ErrDivideByZero = errors.New("divide by zero")

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Subtract returns a - b.
func Subtract(a, b int) int { return a - b }

// Multiply returns a * b.
func Multiply(a, b int) int { return a * b }

// Divide returns a / b, or (0, ErrDivideByZero) when b is zero.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Mod returns a % b, or (0, ErrDivideByZero) when b is zero.
func Mod(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a % b, nil
}
