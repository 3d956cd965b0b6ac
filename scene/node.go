package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is a transform in a parent hierarchy.
//
// The zero value is not ready for use; call NewNode.
type Node struct {
	position    mgl32.Vec3
	orientation mgl32.Quat
	scale       mgl32.Vec3
	parent      *Node
}

// NewNode returns a node at the origin with identity rotation and scale.
func NewNode() *Node {
	n := &Node{}
	n.init()
	return n
}

func (n *Node) init() {
	n.orientation = mgl32.QuatIdent()
	n.scale = mgl32.Vec3{1, 1, 1}
}

// Position returns the local position.
func (n *Node) Position() mgl32.Vec3 { return n.position }

// SetPosition sets the local position.
func (n *Node) SetPosition(p mgl32.Vec3) { n.position = p }

// Translate moves the node by d in parent space.
func (n *Node) Translate(d mgl32.Vec3) { n.position = n.position.Add(d) }

// Orientation returns the local rotation.
func (n *Node) Orientation() mgl32.Quat { return n.orientation }

// SetOrientation sets the local rotation.
func (n *Node) SetOrientation(q mgl32.Quat) { n.orientation = q.Normalize() }

// Rotate applies q after the current rotation.
func (n *Node) Rotate(q mgl32.Quat) { n.orientation = q.Mul(n.orientation).Normalize() }

// Scale returns the local scale.
func (n *Node) Scale() mgl32.Vec3 { return n.scale }

// SetScale sets the local scale.
func (n *Node) SetScale(s mgl32.Vec3) { n.scale = s }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// SetParent attaches n under p. Attaching a node below itself is ignored.
func (n *Node) SetParent(p *Node) {
	for a := p; a != nil; a = a.parent {
		if a == n {
			return
		}
	}
	n.parent = p
}

// LocalMatrix returns translation × rotation × scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(n.position[0], n.position[1], n.position[2]).
		Mul4(n.orientation.Mat4()).
		Mul4(mgl32.Scale3D(n.scale[0], n.scale[1], n.scale[2]))
}

// WorldMatrix returns the node transform composed with its ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}
