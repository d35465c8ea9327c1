// Package viz holds the terminal rendering primitives: small vector and
// rotation math, a perspective camera, and a braille canvas where every
// cell is a 2x4 grid of dots with its own colour.
//
// Scenes are described as a [Wireframe] of coloured edges and discs and
// drawn back to front by [Render3D].
package viz
