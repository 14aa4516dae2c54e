// Package features turns a height field into classified map regions:
// the waterline pass flags land vs water, the flood-fill pass groups
// cells into Ocean, Lake and Island features.
//
// What:
//
//   - ClassifyLandWater applies a fixed or quantile-adaptive sea level
//     and zeroes water heights.
//   - CarveBorderWater forces a border band to water after boundary
//     extraction, so map edges are always ocean.
//   - Classify flood-fills connected regions in a fixed discovery
//     order (ocean, lakes, islands) and stamps Cell.FeatureID.
//
// Why:
//
//   - Lakes need their own identity: an enclosed water component gets
//     its own shoreline rather than merging into the ocean.
//   - Stable feature IDs make downstream geometry, rendering and tests
//     reproducible run over run.
//
// Complexity:
//
//   - ClassifyLandWater: O(n log n) continental, O(n) fixed.
//   - CarveBorderWater:  O(n).
//   - Classify:          O(n + Σ|neighbors|), Memory: O(n).
//
// Options:
//
//   - WithBorderTolerance: centroid distance treated as "at the
//     border"; 0 derives the mean cell spacing √(width·height/n).
//
// Errors:
//
//   - ErrNilMesh: nil mesh pointer.
//   - ErrBadMargin: negative or NaN carve margin.
//   - ErrOptionViolation: invalid option value.
package features
