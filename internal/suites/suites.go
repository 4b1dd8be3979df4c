// Package suites is the startup manifest of example tests shipped with the
// runner. Registration is an explicit call chain invoked from bootstrap
// before the runner starts, so nothing depends on package initialization
// order.
package suites

import "github.com/grit-dev/grit/internal/harness"

// RegisterAll registers every built-in suite into the given registry.
func RegisterAll(r *harness.Registry) {
	registerCalculator(r)
	registerMinHeap(r)
}
