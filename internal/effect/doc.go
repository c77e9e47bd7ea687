// Package effect implements the per-frame generators behind every glint
// animation style.
//
// An [Effect] only computes cells for one tick. Timing, cancellation and
// caption drawing belong to the driver in package anim; an effect declares
// how it wants to be flushed through [Strategy]:
//
//   - Differential: rendered into an off-screen buffer and diffed against
//     the previous tick, so only changed cells reach the terminal
//   - FullRedraw: rendered straight to the screen every tick
//
// # Styles
//
//	sweep                rainbow bands scrolling right to left
//	burst                ring of sparks expanding from the centre
//	wave                 blue interference pattern
//	wave-gradient        the same field coloured through HSV
//	fractal              Mandelbrot zoom that restarts at 50x
//	fractal-oscillating  Mandelbrot zoom bouncing between 0.2x and 2.5x
//	fractal-fast         float32 Mandelbrot with a sinusoidal zoom
package effect
