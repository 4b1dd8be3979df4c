package harness

// TestFunc is a test body. It receives the execution context for exactly one
// invocation and records failures through it.
type TestFunc func(t *T)

// Descriptor identifies a single registered test.
// Immutable after registration.
type Descriptor struct {
	// Suite is the declared grouping label (e.g., "Calculator").
	Suite string

	// Name identifies the test within its suite.
	Name string

	// Body is the zero-argument-beyond-context test function.
	Body TestFunc
}

// FullName returns the "Suite.Name" form used by the console protocol.
func (d Descriptor) FullName() string {
	return d.Suite + "." + d.Name
}

// Registry is the ordered collection of test descriptors for one run.
//
// Registration is append-only: duplicates of (suite, name) are neither
// rejected nor deduplicated - both are retained, both execute, and both are
// reported under the same label. The registry is populated before the runner
// starts and is read-only afterwards; the runner never mutates it.
type Registry struct {
	tests []Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a test descriptor. No validation is performed on the
// suite or name; any string is accepted.
func (r *Registry) Register(suite, name string, body TestFunc) {
	r.tests = append(r.tests, Descriptor{Suite: suite, Name: name, Body: body})
}

// All returns the descriptors in registration order.
// The returned slice is shared; callers must not modify it.
func (r *Registry) All() []Descriptor {
	return r.tests
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.tests)
}
