// Package tty is the terminal side of glint: screen geometry, the screens
// an animation is flushed to, and the key listeners that turn Ctrl-C into
// a cancellation.
//
// Two screens are provided:
//
//   - [ANSIScreen]: raw mode via golang.org/x/term, direct 24-bit SGR output,
//     one write per frame
//   - [TcellScreen]: the same contract on top of tcell, including its
//     simulation screen for tests
//
// Coordinates passed to Set are 0-based; the ANSI screen converts them to
// the 1-based cursor addressing terminals expect.
package tty
