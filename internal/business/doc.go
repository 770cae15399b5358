// Package business holds the demo platform's business-domain services.
// Every method is a synchronous echo of its input: no state, no persistence,
// no external calls. The services exist to populate the task catalog that
// the dispatcher executes.
package business

// Payload is the loose JSON-ish argument and result shape the stubs echo.
type Payload = map[string]any
