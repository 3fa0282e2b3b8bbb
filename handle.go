package sequencer

import "weak"

// Handle is a non-owning reference to a Node. Holding a Handle never keeps
// the node alive, and a Handle to a disposed node resolves to nil.
//
// Handles are comparable: two handles made from the same node are equal, so
// they can key maps.
type Handle struct {
	ptr weak.Pointer[Node]
}

// WeakHandle returns a handle to n. A nil node yields the zero Handle, which
// never resolves.
func WeakHandle(n *Node) Handle {
	if n == nil {
		return Handle{}
	}
	return Handle{ptr: weak.Make(n)}
}

// Resolve returns the live node, or nil if it was collected or disposed.
func (h Handle) Resolve() *Node {
	n := h.ptr.Value()
	if n == nil || n.disposed {
		return nil
	}
	return n
}

// IsValid reports whether the handle still refers to a live node.
func (h Handle) IsValid() bool {
	return h.Resolve() != nil
}
