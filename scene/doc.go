// Package scene provides the objects a drawing context can bind as its
// current scene: transform nodes, models that pair a node with a mesh,
// and the Scene that groups models.
//
// A Scene is not a retained renderer. It is a container the caller fills
// and walks; the drawing context only holds a reference to it and adds
// models loaded through [Load].
//
// Model files are decoded by loaders registered per file extension,
// following the database/sql driver pattern:
//
//	func init() {
//	    scene.RegisterLoader(".ply", decodePLY)
//	}
package scene
