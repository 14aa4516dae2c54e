// Package fwg4 is a deterministic core for procedural fantasy maps —
// from height-field synthesis over a polygonal mesh to classified
// oceans, lakes and islands with assembled coastline geometry.
//
// What is FWG4?
//
//	A seed-driven, pure-Go map generation pipeline that brings together:
//		• Mesh primitives: polygonal cells with neighbor topology and per-pass state
//		• Terrain: additive "blob" height synthesis with island & continental regimes
//		• Waterline: fixed or quantile-adaptive sea level, border-water carving
//		• Features: flood-fill classification into Ocean, Lake and Island regions
//		• Coastline: robust boundary-edge extraction and loop/chain assembly
//		• Rendering: minimal SVG output for quick visual inspection
//
// Why choose FWG4?
//
//   - Deterministic – same mesh, same seed, same parameters ⇒ identical maps
//   - Honest geometry – boundary edges are discovered by unique-edge counting,
//     never recomputed, so coastlines survive noisy polygon meshes
//   - Pure Go – no cgo, no global state, no time-based randomness in the library
//   - Composable – each stage is a plain function over the mesh; run the whole
//     pipeline with mapgen.Generate or stage-by-stage with the subpackages
//
// Under the hood, everything is organized under these subpackages:
//
//	mesh/        — Cell & Mesh types, validation, deterministic grid builders
//	heightfield/ — seeded blob synthesis, noise distortion, relief modulation
//	features/    — land/water classification, carving, region flood fill
//	coastline/   — boundary-edge extraction, outline assembly, simplification
//	mapgen/      — one-call pipeline orchestration with a single Config
//	render/      — SVG rendering of cells, lakes and coastlines
//	config/      — YAML configuration with zero-value defaulting
//
// Quick ASCII example:
//
//	~ ~ ~ ~ ~
//	~ # # ~ ~        # land cell
//	~ # # ~ ~        ~ water cell
//	~ ~ ~ L ~        L lake cell (enclosed water)
//	~ ~ ~ ~ ~
//
//	classified as one Ocean, one Island (4 cells) and one Lake (1 cell),
//	each non-ocean feature carrying its own closed or clipped outline.
//
// Dive into cmd/fwg4 for an end-to-end run that writes an SVG map.
//
//	go get github.com/ncuskey/FWG4
package fwg4
