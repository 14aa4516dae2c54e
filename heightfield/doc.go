// Package heightfield synthesizes seeded "blob" terrain over a mesh,
// the first stage of the generation pipeline.
//
// What:
//
//   - Synthesize places BlobCount radial height sources inside a safe
//     zone inset from the map border and writes the per-cell maximum
//     contribution into Cell.Height.
//   - Island regime (Falloff < 2.0): steep power decay falloff^(10·d),
//     compact landmasses with sharp coasts.
//   - Continental regime: doubled radii, exponential decay, simplex
//     noise distorting blob distances and low-frequency perlin relief
//     scaling the result.
//
// Why:
//
//   - Additive blobs give controllable, reproducible landmass layouts
//     without iterative erosion; downstream stages only need heights.
//   - Keeping the safe zone at synthesis time guarantees water at the
//     map border before any carving happens.
//
// Complexity:
//
//   - Synthesize: O(cells·blobs) time, O(blobs) memory.
//
// Options:
//
//   - Params.Seed: 0 selects a fixed default stream (reproducible
//     unseeded runs); substreams for blobs, coast distortion and
//     relief are derived independently.
//   - Params.BaseRadius: 0 derives min(width,height)/4.
//
// Errors:
//
//   - ErrNilMesh: nil mesh pointer.
//   - ErrInvalidParams: out-of-range Params field (named in the message).
//   - ErrNoInterior: WaterMargin leaves no interior band for centers.
package heightfield
