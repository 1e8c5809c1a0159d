package transform

import (
	"errors"
	"fmt"
)

// NodeID indexes a node inside a Hierarchy arena.
type NodeID int

// NoParent marks a root node.
const NoParent NodeID = -1

// ErrNodeNotFound is returned when a NodeID does not refer to a node of the hierarchy.
var ErrNodeNotFound = errors.New("transform: node not found")

type node struct {
	parent NodeID
	local  Transform
}

// Hierarchy is a transform tree stored as a parent-indexed arena.
// Nodes are appended and never removed; a node can only be attached to a node that
// already exists, so every parent index is smaller than its child's index and the tree
// is acyclic by construction.
//
// Hierarchy is not safe for concurrent use.
type Hierarchy struct {
	nodes []node
}

// NewHierarchy creates an empty hierarchy.
//
// Parameters:
//   - capacity: expected node count, used to pre-size the arena
//
// Returns:
//   - *Hierarchy: the empty hierarchy
func NewHierarchy(capacity int) *Hierarchy {
	return &Hierarchy{nodes: make([]node, 0, capacity)}
}

// Add appends a node with the given local transform under parent.
// Pass NoParent to create a root.
//
// Parameters:
//   - parent: the parent node, or NoParent
//   - local: transform relative to the parent
//
// Returns:
//   - NodeID: the new node
//   - error: ErrNodeNotFound if parent does not exist
func (h *Hierarchy) Add(parent NodeID, local Transform) (NodeID, error) {
	if parent != NoParent && !h.valid(parent) {
		return NoParent, fmt.Errorf("add child of %d: %w", parent, ErrNodeNotFound)
	}
	h.nodes = append(h.nodes, node{parent: parent, local: local})
	return NodeID(len(h.nodes) - 1), nil
}

// Len returns the number of nodes.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Parent returns the parent of id, or NoParent for roots and unknown ids.
func (h *Hierarchy) Parent(id NodeID) NodeID {
	if !h.valid(id) {
		return NoParent
	}
	return h.nodes[id].parent
}

// Local returns the local transform of id.
//
// Parameters:
//   - id: the node to read
//
// Returns:
//   - Transform: the node's local transform
//   - bool: false if id is not part of the hierarchy
func (h *Hierarchy) Local(id NodeID) (Transform, bool) {
	if !h.valid(id) {
		return Transform{}, false
	}
	return h.nodes[id].local, true
}

// SetLocal replaces the local transform of id.
//
// Parameters:
//   - id: the node to write
//   - t: the new local transform
//
// Returns:
//   - error: ErrNodeNotFound if id is not part of the hierarchy
func (h *Hierarchy) SetLocal(id NodeID, t Transform) error {
	if !h.valid(id) {
		return fmt.Errorf("set local %d: %w", id, ErrNodeNotFound)
	}
	h.nodes[id].local = t
	return nil
}

// RotateY rotates the local transform of id about its parent's vertical axis.
// Unknown ids are ignored.
//
// Parameters:
//   - id: the node to rotate
//   - angle: rotation in radians
func (h *Hierarchy) RotateY(id NodeID, angle float32) {
	if !h.valid(id) {
		return
	}
	h.nodes[id].local = h.nodes[id].local.RotateY(angle)
}

// World resolves the world transform of id by composing local transforms from the root down.
//
// Parameters:
//   - id: the node to resolve
//
// Returns:
//   - Transform: the node's world transform
//   - bool: false if id is not part of the hierarchy
func (h *Hierarchy) World(id NodeID) (Transform, bool) {
	if !h.valid(id) {
		return Transform{}, false
	}
	world := h.nodes[id].local
	for p := h.nodes[id].parent; p != NoParent; p = h.nodes[p].parent {
		world = h.nodes[p].local.Compose(world)
	}
	return world, true
}

func (h *Hierarchy) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(h.nodes)
}
