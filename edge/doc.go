// Package edge implements the edge list of the wireframe pipeline: a 4×N
// matrix whose columns are homogeneous points (x, y, z, 1) and whose
// consecutive column pairs (2k, 2k+1) are the endpoints of segment k.
//
// Columns are only ever added in pairs (AddEdge and the helpers built on it),
// so the pairing holds by construction. Transforms are applied in place with
// Apply, which keeps the list's storage across frames; renderers may hold on
// to a *List while it is being transformed between draws.
package edge
