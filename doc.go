// Package wireframe is a small 3D wireframe pipeline: edge lists stored as
// homogeneous 4×N matrices, 4×4 affine transforms applied in place, and a
// raster screen that draws the result into an image.
//
// 🚀 What is in the box?
//
//	• matrix/    - growable dense float64 matrix, identity, scalar and in-place multiply
//	• transform/ - translation, scaling, X/Y/Z rotation factories and Compose
//	• edge/      - 4×N edge lists with a pair-append contract and in-place Apply
//	• render/    - 500×500 screen, clipped Bresenham lines, png/jpeg/gif/bmp/tiff output
//
// The command in cmd/wireframe reads a TOML scene, plays its transform steps
// and saves every drawn frame onto one picture:
//
//	wireframe render --scene cube.toml --output cube.png
//
// Without a scene it renders the built-in animation: a 40×40 square scaled by
// 0.75 and 1.55 fifty times, each step leaving a trace.
//
// Quick start:
//
//	l, _ := edge.New()
//	_ = l.AddBox(edge.Point{X: 250, Y: 250}, 100)
//	_ = l.Apply(transform.RotationY(30))
//	s, _ := render.NewScreen(render.DefaultWidth, render.DefaultHeight)
//	s.DrawLines(l, render.DefaultColor)
//	_ = s.Save("cube.png")
package wireframe
