// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "math"

// Polygon is a closed planar loop stored as flat x, y, z triples.
type Polygon []float64

// Vertices is the number of points in the loop.
func (p Polygon) Vertices() int { return len(p) / 3 }

// Vertex returns the coordinates of point i.
func (p Polygon) Vertex(i int) (x, y, z float64) {
	return p[3*i], p[3*i+1], p[3*i+2]
}

// Area uses Newell's method, so it holds for any planar polygon regardless
// of orientation.
func (p Polygon) Area() float64 {
	var nx, ny, nz float64
	n := p.Vertices()
	for i := 0; i < n; i++ {
		x1, y1, z1 := p.Vertex(i)
		x2, y2, z2 := p.Vertex((i + 1) % n)
		nx += (y1 - y2) * (z1 + z2)
		ny += (z1 - z2) * (x1 + x2)
		nz += (x1 - x2) * (y1 + y2)
	}
	return math.Sqrt(nx*nx+ny*ny+nz*nz) / 2
}
