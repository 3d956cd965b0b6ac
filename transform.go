package imdraw

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms post-multiply the top of the stack: each call applies in
// the frame left by the previous ones, so
//
//	ctx.Translate(5, 0, 0)
//	ctx.RotateZ(math.Pi / 2)
//
// rotates about the translated origin.

// ResetMatrix replaces the top of the stack with the identity.
func (c *Context) ResetMatrix() {
	c.stack.LoadIdent()
}

// ApplyMatrix sets top ← top × m.
func (c *Context) ApplyMatrix(m mgl32.Mat4) {
	c.stack.RightMul(m)
}

// ApplyMatrix3 applies m embedded in the upper-left block of a 4×4
// identity.
func (c *Context) ApplyMatrix3(m mgl32.Mat3) {
	c.stack.RightMul(m.Mat4())
}

// Rotate rotates about the Z axis by rad radians.
func (c *Context) Rotate(rad float32) {
	c.RotateZ(rad)
}

// RotateX rotates about the X axis by rad radians.
func (c *Context) RotateX(rad float32) {
	c.stack.RightMul(mgl32.HomogRotate3DX(rad))
}

// RotateY rotates about the Y axis by rad radians.
func (c *Context) RotateY(rad float32) {
	c.stack.RightMul(mgl32.HomogRotate3DY(rad))
}

// RotateZ rotates about the Z axis by rad radians.
func (c *Context) RotateZ(rad float32) {
	c.stack.RightMul(mgl32.HomogRotate3DZ(rad))
}

// Scale scales along each axis.
func (c *Context) Scale(x, y, z float32) {
	c.stack.RightMul(mgl32.Scale3D(x, y, z))
}

// ScaleUniform scales all axes by s.
func (c *Context) ScaleUniform(s float32) {
	c.Scale(s, s, s)
}

// Translate moves the origin by (x, y, z).
func (c *Context) Translate(x, y, z float32) {
	c.stack.RightMul(mgl32.Translate3D(x, y, z))
}

// Push saves a copy of the current transform.
func (c *Context) Push() {
	c.stack.Push()
}

// Pop restores the transform saved by the matching Push.
// Popping the root transform returns ErrStackUnderflow and has no effect.
func (c *Context) Pop() error {
	if c.Depth() == 1 {
		return c.warn("Pop", ErrStackUnderflow)
	}
	return c.stack.Pop()
}

// Depth returns the number of transforms on the stack; the root counts.
func (c *Context) Depth() int {
	return len(*c.stack)
}

// ProjectionMatrix returns the projection of the current camera.
func (c *Context) ProjectionMatrix() mgl32.Mat4 {
	return c.Camera().ProjectionMatrix()
}

// ViewMatrix returns the view of the current camera.
func (c *Context) ViewMatrix() mgl32.Mat4 {
	return c.Camera().ViewMatrix()
}

// WorldMatrix returns the top of the transform stack.
func (c *Context) WorldMatrix() mgl32.Mat4 {
	return c.stack.Peek()
}

// WorldMatrixPtr returns the live top of the transform stack for direct
// mutation. The pointer is invalid after the next Push or Pop.
func (c *Context) WorldMatrixPtr() *mgl32.Mat4 {
	s := *c.stack
	return &s[len(s)-1]
}

// ProjectionViewMatrix returns projection × view.
func (c *Context) ProjectionViewMatrix() mgl32.Mat4 {
	return c.Camera().ProjectionViewMatrix()
}

// ProjectionViewWorldMatrix returns projection × view × world,
// recomputed on every call.
func (c *Context) ProjectionViewWorldMatrix() mgl32.Mat4 {
	return c.ProjectionViewMatrix().Mul4(c.WorldMatrix())
}
