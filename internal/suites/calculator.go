package suites

import (
	"github.com/grit-dev/grit/internal/calc"
	"github.com/grit-dev/grit/internal/harness"
)

func registerCalculator(r *harness.Registry) {
	r.Register("Calculator", "AddsNumbers", func(t *harness.T) {
		t.ExpectEqual(calc.Add(2, 3), 5, "calc.Add(2, 3)", "5")
		t.ExpectEqual(calc.Add(-1, 1), 0, "calc.Add(-1, 1)", "0")
	})

	r.Register("Calculator", "SubtractsNumbers", func(t *harness.T) {
		// Intentionally failing so downstream failure parsing stays exercised.
		t.ExpectEqual(calc.Subtract(5, 3), 1, "calc.Subtract(5, 3)", "1")
	})

	r.Register("Calculator", "MultipliesNumbers", func(t *harness.T) {
		t.ExpectEqual(calc.Multiply(6, 3), 18, "calc.Multiply(6, 3)", "18")
		t.ExpectEqual(calc.Multiply(-2, 4), -8, "calc.Multiply(-2, 4)", "-8")
	})

	r.Register("Calculator", "DividesSafely", func(t *harness.T) {
		q, err := calc.Divide(8, 4)
		t.ExpectEqual(q, 2, "q", "2")
		t.ExpectTrue(err == nil, "err == nil")

		q, err = calc.Divide(1, 0)
		t.ExpectEqual(q, 0, "q", "0")
		t.ExpectTrue(err != nil, "err != nil")
	})

	r.Register("Calculator", "ModHandlesZeroDivisor", func(t *harness.T) {
		m, err := calc.Mod(7, 3)
		t.ExpectEqual(m, 1, "m", "1")
		t.ExpectTrue(err == nil, "err == nil")

		m, err = calc.Mod(7, 0)
		t.ExpectEqual(m, 0, "m", "0")
		t.ExpectTrue(err != nil, "err != nil")
	})
}
