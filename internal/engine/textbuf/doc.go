// Package textbuf provides the character buffer underlying a
// document: a flat sequence of Unicode code points with a derived,
// always-consistent line-start index and a transient iterator for
// offset/coordinate translation.
//
// All positions are absolute code-point offsets or zero-based
// (row, column) points; columns count code points, never rendered
// width. Navigation queries clamp out-of-range input instead of
// failing; mutations validate their arguments and return errors.
package textbuf
