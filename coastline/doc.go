// Package coastline extracts and assembles boundary geometry from a
// classified mesh: which polygon edges separate land from water, and
// how they chain into feature outlines.
//
// What:
//
//   - ExtractEdges discovers boundary edges by unique-edge counting:
//     every land-cell polygon edge is keyed on a rounded vertex
//     lattice; keys counted once are the coastline, keys counted twice
//     are interior. Emitted edges keep the original float vertices and
//     carry provenance (land cell, water cell or BorderCell/UnknownCell,
//     feature).
//   - AssembleBoundaries deduplicates each feature's edges, decides
//     loop vs chain topology from the degree-1 endpoint count, and
//     walks a deterministic ordered outline (lowest vertex first,
//     lowest neighbor next).
//   - Simplify reduces an outline with Douglas-Peucker while keeping
//     closed loops closed.
//
// Why:
//
//   - Counting beats geometric tests: it needs no epsilon comparisons
//     along shared edges and survives mesh noise up to half a lattice
//     step. Noise beyond the tolerance splits keys and shows up as
//     spurious edges — tune WithPrecision to the mesh, don't hide it.
//   - Lakes own their shorelines: an island in a lake-dotted landmass
//     gets its ocean-facing outline, each lake a closed ring of its
//     own.
//
// Complexity:
//
//   - ExtractEdges:       O(Σ|polygon| + E·d) time, O(Σ|polygon|) memory.
//   - AssembleBoundaries: O(E log E) per feature.
//   - Simplify:           O(n log n) average.
//
// Options:
//
//   - WithPrecision: decimal places for vertex identity rounding
//     (default 2, i.e. a 0.01-unit lattice).
//
// Errors:
//
//   - ErrNilMesh: nil mesh pointer.
//   - ErrOptionViolation: invalid option value.
//
// Structural problems during assembly are not errors: outlines carry
// Warnings (WarnNoEdges, WarnDegree, WarnWalkBound, WarnIncomplete)
// and the walk stays best-effort.
package coastline
