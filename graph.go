package solarsystem

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NodeRole says how a node takes part in animation and picking. It is fixed at
// construction.
type NodeRole int

const (
	RolePlanet NodeRole = iota
	RoleSatelliteOrbitGroup
	RoleDecoration
	RoleGlowShell
	RoleLight
	RoleStarField
	// RoleOrbitPivot carries a body's orbital position without its spin.
	RoleOrbitPivot
)

func (r NodeRole) String() string {
	switch r {
	case RolePlanet:
		return "planet"
	case RoleSatelliteOrbitGroup:
		return "satellite-orbit-group"
	case RoleDecoration:
		return "decoration"
	case RoleGlowShell:
		return "glow-shell"
	case RoleLight:
		return "light"
	case RoleStarField:
		return "star-field"
	case RoleOrbitPivot:
		return "orbit-pivot"
	}
	return fmt.Sprintf("NodeRole(%d)", int(r))
}

// ShapeKind is the hit-test primitive of a node.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeSphere
	ShapeRing
)

// Shape is described in the node's local space. Rings lie in the local XZ plane.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	InnerRadius float64
}

// Node is one element of the scene graph.
type Node struct {
	ecs.BasicEntity

	Name string
	Role NodeRole
	// BodyID tags the node as the visible part of a body. Untagged nodes resolve to
	// their nearest tagged ancestor when hit.
	BodyID string

	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3

	Shape     Shape
	Material  *Material
	Intensity float64
	Points    []mgl64.Vec3

	parent   uint64
	children []uint64
}

// NewNode returns a node with unit scale and a fresh entity id.
func NewNode(name string, role NodeRole) *Node {
	return &Node{
		BasicEntity: ecs.NewBasic(),
		Name:        name,
		Role:        role,
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Parent returns the parent id, 0 for top level nodes.
func (n *Node) Parent() uint64 { return n.parent }

// Children returns the child ids in insertion order.
func (n *Node) Children() []uint64 { return n.children }

// LocalMatrix is T * Rx * Ry * Rz * S.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl64.HomogRotate3DX(n.Rotation[0]).
		Mul4(mgl64.HomogRotate3DY(n.Rotation[1])).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation[2]))
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// Graph is the retained scene. Traversal order is depth first in insertion order.
type Graph struct {
	nodes map[uint64]*Node
	roots []uint64
}

func NewGraph() *Graph {
	return &Graph{nodes: map[uint64]*Node{}}
}

// Add inserts n below parent, or at the top level when parent is 0.
func (g *Graph) Add(parent uint64, n *Node) error {
	if _, ok := g.nodes[n.ID()]; ok {
		return fmt.Errorf("node %d (%s) already in graph", n.ID(), n.Name)
	}
	if parent != 0 {
		p, ok := g.nodes[parent]
		if !ok {
			return fmt.Errorf("parent node %d not found", parent)
		}
		p.children = append(p.children, n.ID())
	} else {
		g.roots = append(g.roots, n.ID())
	}
	n.parent = parent
	g.nodes[n.ID()] = n
	return nil
}

// Remove deletes the node and its subtree.
func (g *Graph) Remove(id uint64) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, c := range append([]uint64(nil), n.children...) {
		g.Remove(c)
	}
	if n.parent != 0 {
		if p, ok := g.nodes[n.parent]; ok {
			p.children = without(p.children, id)
		}
	} else {
		g.roots = without(g.roots, id)
	}
	delete(g.nodes, id)
}

func without(ids []uint64, id uint64) []uint64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id uint64) *Node {
	return g.nodes[id]
}

// Len is the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Walk visits every node depth first. Returning false skips the node's subtree.
func (g *Graph) Walk(fn func(n *Node) bool) {
	var visit func(id uint64)
	visit = func(id uint64) {
		n := g.nodes[id]
		if n == nil || !fn(n) {
			return
		}
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, r := range g.roots {
		visit(r)
	}
}

// WorldMatrix composes the local matrices from the top level node down to id.
func (g *Graph) WorldMatrix(id uint64) mgl64.Mat4 {
	m := mgl64.Ident4()
	for n := g.nodes[id]; n != nil; n = g.nodes[n.parent] {
		m = n.LocalMatrix().Mul4(m)
		if n.parent == 0 {
			break
		}
	}
	return m
}

// WorldPosition is the node origin in world space.
func (g *Graph) WorldPosition(id uint64) mgl64.Vec3 {
	return g.WorldMatrix(id).Col(3).Vec3()
}

// Owner returns the body id of the node or of its nearest tagged ancestor.
func (g *Graph) Owner(id uint64) (string, bool) {
	for n := g.nodes[id]; n != nil; n = g.nodes[n.parent] {
		if n.BodyID != "" {
			return n.BodyID, true
		}
		if n.parent == 0 {
			break
		}
	}
	return "", false
}

// Tagged returns the node carrying the given body id.
func (g *Graph) Tagged(bodyID string) *Node {
	var found *Node
	g.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.BodyID == bodyID {
			found = n
			return false
		}
		return true
	})
	return found
}
