// Package indicator implements streaming indicators that are wired together into a
// static graph at construction time.
//
// Every node is pushed one Sample at a time and recomputes incrementally. A node owns
// the nodes it forwards samples to; nodes that are only read are wrapped with View so
// that a shared operand is never updated twice for the same sample.
package indicator

// Node is the contract shared by every indicator in the graph.
type Node interface {
	Name() string

	// Update consumes the next sample and returns the new value. Samples must be fed
	// exactly once and in time order.
	Update(sample Sample) float64

	// IsReady reports whether enough samples were observed for Last to be meaningful.
	// Once true it stays true until Reset.
	IsReady() bool

	// Last returns the current value. An unready node returns its own default.
	Last() float64

	// Samples returns the number of samples consumed since construction or Reset.
	Samples() int

	Reset()
}
