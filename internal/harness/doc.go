// Package harness implements the test execution core: an ordered registry
// of test descriptors, a per-test failure-recording context, gtest-compatible
// assertion checks, and a sequential runner that produces results and the
// console trace.
//
// # Execution model
//
// Tests are registered explicitly through Registry.Register before the runner
// starts; there is no init-order magic. The Runner executes descriptors
// strictly in registration order, one at a time. Each body receives a fresh
// *T, the explicit execution context all assertion calls record into.
//
// A fatal assertion aborts only the remainder of its own test body. The abort
// travels as a panic sentinel that the Runner recovers at the body-invocation
// boundary; it never crosses into the runner loop or a later test. Any other
// panic surfacing from a body is converted into a single fatal failure with a
// placeholder location and the run continues.
//
// # Known limitations
//
// There is no cancellation or timeout: a hung test body blocks the entire
// run. Duplicate (suite, name) registrations are retained and both execute.
package harness
