// Package mapgen orchestrates the full generation pipeline: terrain
// synthesis, waterline classification, feature flood fill, boundary
// extraction, border carving and outline assembly in one call.
//
// What:
//
//   - Generate(mesh, Config) runs every stage in the correct order and
//     returns a Result with heights, the waterline report, classified
//     features and walked outlines.
//   - Config is plain data: terrain params (with seed), sea level,
//     border tolerance, coastline precision, simplify tolerance.
//
// Why:
//
//   - Stage order is easy to get wrong: edges must be extracted before
//     border carving (or clipped coastlines vanish) and features must
//     be classified before assembly (or lakes lose their shorelines).
//     Generate encodes the order once.
//
// Errors:
//
//   - ErrNilMesh, plus wrapped stage errors ("mapgen: synthesize: …")
//     preserving the stage sentinels for errors.Is.
package mapgen
