// Package anim drives an effect from start to stop.
//
// A [Driver] owns the loop every style shares: cancellation check,
// duration check, render, caption, flush, sleep. A [Session] carries the
// single cancellation flag that a key listener sets and the driver polls
// once per tick.
//
// # Example
//
//	sess := anim.NewSession()
//	stop := sess.Bind(ctx)
//	defer stop()
//	drv := anim.NewDriver(screen, geo, anim.WithLogger(log))
//	report, err := drv.Run(ctx, sess, effect.NewWave(), "hello", 5*time.Second)
//
// # Thread Safety
//
// Run must be called from one goroutine. Session.Cancel may be called
// from any goroutine.
package anim
