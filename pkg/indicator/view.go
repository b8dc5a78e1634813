package indicator

// ReadOnlyNode exposes another node without letting the holder update it.
// Combinators that read a node owned by someone else hold it through a view, so the
// owner stays the only one feeding it samples.
type ReadOnlyNode struct {
	node Node
}

func View(node Node) *ReadOnlyNode {
	return &ReadOnlyNode{node: node}
}

func (v *ReadOnlyNode) Name() string  { return v.node.Name() }
func (v *ReadOnlyNode) Last() float64 { return v.node.Last() }
func (v *ReadOnlyNode) IsReady() bool { return v.node.IsReady() }
func (v *ReadOnlyNode) Samples() int  { return v.node.Samples() }

// Update does not forward the sample, it returns the value the owner computed.
func (v *ReadOnlyNode) Update(sample Sample) float64 {
	return v.node.Last()
}

func (v *ReadOnlyNode) Reset() {}

var _ Node = (*ReadOnlyNode)(nil)
