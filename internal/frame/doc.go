// Package frame provides the cell grid an animation draws into and the
// differ that turns two grids into the minimal set of terminal writes.
//
//   - [Cell]: one glyph with its foreground colour
//   - [Buffer]: row-major Width x Height grid of cells
//   - [Diff]: changed cells between two equally shaped buffers
//
// # Clipping
//
// Writes outside the grid are dropped silently. Effects compute
// coordinates freely and rely on the buffer to clip them.
//
// # Thread Safety
//
// Buffers are NOT thread-safe. A buffer belongs to the goroutine running
// the animation that allocated it.
package frame
