package anim_test

import (
	"bytes"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glint/internal/anim"
	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/palette"
	"github.com/san-kum/glint/internal/tty"
)

// fakeScreen records what the driver sends between flushes.
type fakeScreen struct {
	sets     []frame.Change
	perFlush [][]frame.Change
	clears   int
	flushes  int

	flushErr error
	onFlush  func(n int)
}

func (f *fakeScreen) Set(x, y int, c frame.Cell) {
	f.sets = append(f.sets, frame.Change{X: x, Y: y, Cell: c})
}

func (f *fakeScreen) Clear() { f.clears++ }

func (f *fakeScreen) Flush() error {
	if f.flushErr != nil {
		return f.flushErr
	}
	f.flushes++
	f.perFlush = append(f.perFlush, f.sets)
	f.sets = nil
	if f.onFlush != nil {
		f.onFlush(f.flushes)
	}
	return nil
}

var _ = Describe("Driver", func() {
	var (
		screen *fakeScreen
		sess   *anim.Session
		ctx    context.Context
	)

	BeforeEach(func() {
		screen = &fakeScreen{}
		sess = anim.NewSession()
		ctx = context.Background()
	})

	Context("when the session is already cancelled", func() {
		It("renders nothing and returns without blocking", func() {
			sess.Cancel()
			drv := anim.NewDriver(screen, tty.Geometry{Width: 10, Height: 4})

			done := make(chan anim.Report, 1)
			go func() {
				defer GinkgoRecover()
				rep, err := drv.Run(ctx, sess, effect.NewSweep(), "HI", 0)
				Expect(err).NotTo(HaveOccurred())
				done <- rep
			}()

			var rep anim.Report
			Eventually(done).WithTimeout(time.Second).Should(Receive(&rep))
			Expect(rep.Frames).To(BeZero())
			Expect(rep.Outcome).To(Equal(anim.StoppedByCancel))
			Expect(screen.flushes).To(BeZero())
			Expect(screen.sets).To(BeEmpty())
		})
	})

	Context("with a finite duration", func() {
		It("stops a 200ms burst after 3 to 5 frames on the wall clock", func() {
			drv := anim.NewDriver(screen, tty.Geometry{Width: 40, Height: 12})

			rep, err := drv.Run(ctx, sess, effect.NewBurst(nil), "boom", 200*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Outcome).To(Equal(anim.StoppedByDuration))
			Expect(rep.Frames).To(BeNumerically(">=", 3))
			Expect(rep.Frames).To(BeNumerically("<=", 5))
			Expect(screen.flushes).To(Equal(rep.Frames))
			Expect(rep.Elapsed).To(BeNumerically(">=", 200*time.Millisecond))
		})

		It("draws exactly duration/interval frames on a manual clock", func() {
			drv := anim.NewDriver(screen, tty.Geometry{Width: 40, Height: 12}, anim.WithClock(anim.NewManualClock()))

			rep, err := drv.Run(ctx, sess, effect.NewBurst(nil), "", 200*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Frames).To(Equal(4))
			Expect(rep.Elapsed).To(Equal(200 * time.Millisecond))
			Expect(screen.clears).To(Equal(4))
			Expect(rep.FrameCosts).To(HaveLen(4))
		})
	})

	Context("with duration zero", func() {
		It("runs until the session is cancelled", func() {
			screen.onFlush = func(n int) {
				if n == 25 {
					sess.Cancel()
				}
			}
			drv := anim.NewDriver(screen, tty.Geometry{Width: 8, Height: 3}, anim.WithClock(anim.NewManualClock()))

			rep, err := drv.Run(ctx, sess, effect.NewWave(), "x", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Outcome).To(Equal(anim.StoppedByCancel))
			Expect(rep.Frames).To(Equal(25))
		})

		It("stops when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			screen.onFlush = func(n int) {
				if n == 3 {
					cancel()
				}
			}
			drv := anim.NewDriver(screen, tty.Geometry{Width: 8, Height: 3}, anim.WithClock(anim.NewManualClock()))

			rep, err := drv.Run(cctx, sess, effect.NewFastFractal(), "", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Outcome).To(Equal(anim.StoppedByCancel))
			Expect(rep.Frames).To(Equal(3))
		})
	})

	Context("with a differential effect", func() {
		It("sends only changed cells after the first frame", func() {
			geo := tty.Geometry{Width: 10, Height: 4}
			drv := anim.NewDriver(screen, geo, anim.WithClock(anim.NewManualClock()))

			// 16ms ticks: frames 0..6 share the first 100ms band
			_, err := drv.Run(ctx, sess, effect.NewSweep(), "HI", 160*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			Expect(screen.perFlush).To(HaveLen(10))
			Expect(screen.perFlush[0]).To(HaveLen(geo.Width * geo.Height))
			for i := 1; i <= 6; i++ {
				Expect(screen.perFlush[i]).To(BeEmpty(), "frame %d", i)
			}
			// band change recolours every cell except the caption
			Expect(screen.perFlush[7]).To(HaveLen(geo.Width*geo.Height - 2))
		})

		It("keeps the caption on top", func() {
			geo := tty.Geometry{Width: 10, Height: 4}
			drv := anim.NewDriver(screen, geo, anim.WithClock(anim.NewManualClock()))
			_, err := drv.Run(ctx, sess, effect.NewSweep(), "HI", 16*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			Expect(screen.perFlush[0]).To(ContainElements(
				frame.Change{X: 3, Y: 1, Cell: frame.Cell{Glyph: 'H', Color: palette.White}},
				frame.Change{X: 4, Y: 1, Cell: frame.Cell{Glyph: 'I', Color: palette.White}},
			))
		})
	})

	Context("with a full-redraw effect", func() {
		It("draws the caption after the effect", func() {
			geo := tty.Geometry{Width: 20, Height: 5}
			drv := anim.NewDriver(screen, geo, anim.WithClock(anim.NewManualClock()))
			_, err := drv.Run(ctx, sess, effect.NewWave(), "abc", 32*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			sets := screen.perFlush[0]
			tail := sets[len(sets)-3:]
			Expect(tail[0].Cell.Glyph).To(Equal('a'))
			Expect(tail[1].Cell.Glyph).To(Equal('b'))
			Expect(tail[2].Cell.Glyph).To(Equal('c'))
			Expect(sets).To(HaveLen(geo.Width*geo.Height - 4 + 3))
		})
	})

	Context("on an ANSI screen narrower than the caption", func() {
		It("never moves the cursor past the right edge", func() {
			var out bytes.Buffer
			ansi := tty.NewANSIWriter(&out)
			geo := tty.Geometry{Width: 6, Height: 3}
			ansi.SetBounds(geo)

			drv := anim.NewDriver(ansi, geo, anim.WithClock(anim.NewManualClock()))
			_, err := drv.Run(ctx, sess, effect.NewWave(), "HELLOWORLD", 32*time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			Expect(out.String()).To(ContainSubstring("\x1b[2;6H"))
			Expect(out.String()).NotTo(ContainSubstring(";7H"))
			Expect(out.String()).NotTo(ContainSubstring(";8H"))
		})
	})

	Context("when the screen fails", func() {
		It("aborts with a write failure", func() {
			screen.flushErr = &tty.Error{Op: "flush", Err: tty.ErrWriteFailure}
			drv := anim.NewDriver(screen, tty.Geometry{Width: 4, Height: 2}, anim.WithClock(anim.NewManualClock()))

			rep, err := drv.Run(ctx, sess, effect.NewWave(), "", 0)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, tty.ErrWriteFailure)).To(BeTrue())
			Expect(rep.Frames).To(BeZero())
		})
	})

	Context("with an unusable geometry", func() {
		It("refuses to start", func() {
			drv := anim.NewDriver(screen, tty.Geometry{Width: 0, Height: 24})

			_, err := drv.Run(ctx, sess, effect.NewWave(), "", time.Second)
			Expect(err).To(MatchError(tty.ErrUnavailableTerminal))
			Expect(screen.flushes).To(BeZero())
		})

		It("rejects negative durations", func() {
			drv := anim.NewDriver(screen, tty.Geometry{Width: 4, Height: 4})
			_, err := drv.Run(ctx, sess, effect.NewWave(), "", -time.Second)
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Session", func() {
	It("stays cancelled", func() {
		s := anim.NewSession()
		Expect(s.Cancelled()).To(BeFalse())
		s.Cancel()
		s.Cancel()
		Expect(s.Cancelled()).To(BeTrue())
	})

	It("follows a bound context", func() {
		s := anim.NewSession()
		ctx, cancel := context.WithCancel(context.Background())
		stop := s.Bind(ctx)
		defer stop()

		cancel()
		Eventually(s.Cancelled).Should(BeTrue())
	})
})

var _ = Describe("Report", func() {
	It("summarises frame costs", func() {
		drv := anim.NewDriver(anim.DiscardScreen{}, tty.Geometry{Width: 30, Height: 10}, anim.WithClock(anim.NewManualClock()))
		rep, err := drv.Run(context.Background(), anim.NewSession(), effect.NewGradientWave(), "", 320*time.Millisecond)
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Frames).To(Equal(10))
		Expect(rep.CostMillis()).To(HaveLen(10))
		Expect(rep.MaxCost()).To(BeNumerically(">=", rep.MeanCost()))
		Expect(rep.Outcome.String()).To(Equal("duration elapsed"))
	})
})
