// Package format validates the lexical and structural rules of a
// cross-section text, accumulating every violation instead of stopping at
// the first (the fail-fast counterpart is core.Parse; both consume the
// same core.Scan dispatch, so they can never disagree on line shapes).
//
// Checks, each independent so one pass reports every problem:
//
//  1. duplicate vertex ID declarations;
//  2. non-numeric x or z coordinates;
//  3. purely numeric polygon names (names must not collide lexically with
//     vertex IDs) and duplicate polygon names;
//  4. polygon vertex tokens that are not all-digit;
//  5. polygons declared before the vertex block is complete — flagged once
//     per offending contiguous polygon block;
//  6. zero vertices declared;
//  7. zero polygons declared;
//  8. vertex IDs referenced but never declared (one message per ID,
//     ascending);
//  9. declared vertex IDs never referenced by any polygon (one aggregate
//     message, ascending).
//
// Validate never fails structurally: malformed content produces
// diagnostics, not errors. The result's Valid flag is true iff the
// diagnostic list is empty.
package format
