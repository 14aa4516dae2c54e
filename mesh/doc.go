// Package mesh models the polygonal map mesh shared by all generation
// stages.
//
// What:
//
//   - Cell couples immutable topology (ID, Centroid, Polygon, Neighbors)
//     with mutable per-pass state (Height, Land, FeatureID).
//   - Mesh stores cells in ascending-ID order behind an ID→index map,
//     giving O(1) lookups and a single deterministic iteration order.
//   - BuildGrid / BuildJitteredGrid produce regular and noisy quad
//     meshes that exactly tile the map rectangle.
//
// Why:
//
//   - Terrain synthesis, waterline classification, flood fill and
//     coastline extraction all walk the same structure; keeping state
//     on the cell avoids parallel bookkeeping arrays in every stage.
//   - Sorted neighbor lists and ID-ordered iteration make every
//     downstream algorithm reproducible without extra effort.
//
// Complexity:
//
//   - New:                O(n log n + Σ|neighbors|) time, O(n) memory.
//   - Cell / Index:       O(1).
//   - ResetState:         O(n).
//   - BuildJitteredGrid:  O(cols·rows).
//
// Errors:
//
//   - ErrBadDimensions: non-positive or non-finite map size.
//   - ErrDuplicateCell: repeated cell ID.
//   - ErrShortPolygon: polygon with fewer than 3 vertices.
//   - ErrUnknownNeighbor / ErrAsymmetricNeighbor: broken adjacency.
//   - ErrCellNotFound: lookup of an absent ID.
//   - ErrJitterRange / ErrBadGridSize: invalid builder parameters.
package mesh
