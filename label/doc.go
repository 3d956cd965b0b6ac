// Package label keeps text annotations anchored to points in a 3D scene
// or on the screen.
//
// Each frame, [Manager.Update] re-projects every label with the current
// projection-view-world matrix, decides whether it is visible, evaluates
// its content and computes its screen-space bounds. [Manager.At] then
// answers which label lies under a screen point without touching label
// content.
//
// Screen coordinates are in pixels with the origin at the top-left corner
// and y growing downward.
//
// A label's anchor is one of:
//
//   - a world point held by reference ([At]); the caller may move it
//   - a fixed screen point ([Screen])
//   - an object reporting its world position each frame ([Attach])
//
// Referenced points and objects are not owned by the label and must
// outlive it.
package label
