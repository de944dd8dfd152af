// Package tifc is a terminal user-interface framework: rectangular panels
// composed on a double-buffered character grid, driven by mouse and
// keyboard events decoded from raw standard input.
//
// The pieces are wired as one single-threaded, cooperative loop: a
// readiness wait with a short timeout feeds raw bytes through a circular
// queue into the sequence decoder, decoded events route through the panel
// manager into panel interiors, and each tick renders only the cells that
// changed since the previous frame.
package tifc
