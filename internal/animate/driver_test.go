package animate_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavebeat/internal/animate"
	"github.com/san-kum/wavebeat/internal/quantum"
)

type recorder struct {
	frames []animate.Frame
	clears int
	failAt int
	onStep func(step int)
}

func (r *recorder) Render(_ context.Context, f animate.Frame) error {
	if r.failAt >= 0 && f.Step == r.failAt {
		return errBoom
	}
	r.frames = append(r.frames, f)
	if r.onStep != nil {
		r.onStep(f.Step)
	}
	return nil
}

func (r *recorder) Clear() error {
	r.clears++
	return nil
}

var errBoom = errors.New("display gone")

var _ = Describe("Driver", func() {
	var (
		params  quantum.Params
		sampler *quantum.Sampler
		grid    *quantum.Grid
		rec     *recorder
	)

	BeforeEach(func() {
		params = quantum.DefaultParams()
		sampler = quantum.NewSampler(params)
		var err error
		grid, err = quantum.NewGrid(params, 16, 2.5)
		Expect(err).NotTo(HaveOccurred())
		rec = &recorder{failAt: -1}
	})

	It("runs floor(tmax/dt) steps", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 1, Dt: 0.3})
		Expect(d.Steps()).To(Equal(3))

		Expect(d.Run(context.Background(), rec)).To(Succeed())
		Expect(rec.frames).To(HaveLen(3))
		for i, f := range rec.frames {
			Expect(f.Step).To(Equal(i))
		}
	})

	It("has no steps for a non-positive dt", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 1, Dt: 0})
		Expect(d.Steps()).To(BeZero())
		Expect(d.Run(context.Background(), rec)).To(Succeed())
		Expect(rec.frames).To(BeEmpty())
	})

	It("has no steps when tmax/dt does not fit in an int", func() {
		for _, opts := range []animate.Options{
			{TMax: 1e300, Dt: 1e-300},
			{TMax: 2 * animate.MaxSteps, Dt: 1},
			{TMax: -1, Dt: 1},
		} {
			Expect(animate.New(sampler, grid, opts).Steps()).To(BeZero())
		}
		Expect(animate.New(sampler, grid, animate.Options{TMax: animate.MaxSteps, Dt: 1}).Steps()).To(Equal(animate.MaxSteps))
	})

	It("passes the raw step index as time by default", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 0.5, Dt: 0.1})
		Expect(d.Run(context.Background(), rec)).To(Succeed())
		Expect(rec.frames).To(HaveLen(5))
		for i, f := range rec.frames {
			Expect(f.Time).To(Equal(float64(i)))
		}
	})

	It("scales time by dt in physical mode", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 0.5, Dt: 0.1, PhysicalTime: true})
		Expect(d.Run(context.Background(), rec)).To(Succeed())
		for i, f := range rec.frames {
			Expect(f.Time).To(BeNumerically("~", float64(i)*0.1, 1e-12))
		}
	})

	It("splits the sampled wavefunction into the frame", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 3, Dt: 1, Title: "beats"})
		f := d.Frame(2)

		re, im := quantum.Split(sampler.Psi(grid.Positions(), 2))
		Expect(f.X).To(Equal(grid.Positions()))
		Expect(f.Re).To(Equal(re))
		Expect(f.Im).To(Equal(im))
		Expect(f.Title).To(Equal("beats"))
		Expect(f.Bound).To(Equal(2.0))
	})

	It("clears the renderer after every frame", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 4, Dt: 1})
		Expect(d.Run(context.Background(), rec)).To(Succeed())
		Expect(rec.clears).To(Equal(4))
	})

	It("stops on the first renderer error", func() {
		rec.failAt = 2
		d := animate.New(sampler, grid, animate.Options{TMax: 10, Dt: 1})

		err := d.Run(context.Background(), rec)
		Expect(err).To(MatchError(errBoom))

		var fe *animate.FrameError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Step).To(Equal(2))
		Expect(rec.frames).To(HaveLen(2))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		rec.onStep = func(step int) {
			if step == 1 {
				cancel()
			}
		}

		d := animate.New(sampler, grid, animate.Options{TMax: 10, Dt: 1})
		Expect(d.Run(ctx, rec)).To(MatchError(context.Canceled))
		Expect(rec.frames).To(HaveLen(2))
	})

	It("stops while waiting for the next tick", func() {
		ctx, cancel := context.WithCancel(context.Background())
		rec.onStep = func(int) { cancel() }

		d := animate.New(sampler, grid, animate.Options{TMax: 10, Dt: 1, Interval: time.Hour})
		Expect(d.Run(ctx, rec)).To(MatchError(context.Canceled))
		Expect(rec.frames).To(HaveLen(1))
	})

	It("waits one interval per frame", func() {
		d := animate.New(sampler, grid, animate.Options{TMax: 3, Dt: 1, Interval: 5 * time.Millisecond})
		start := time.Now()
		Expect(d.Run(context.Background(), rec)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 10*time.Millisecond))
	})

	It("accepts plain functions as renderers", func() {
		var steps []int
		r := animate.RendererFunc(func(_ context.Context, f animate.Frame) error {
			steps = append(steps, f.Step)
			return nil
		})
		d := animate.New(sampler, grid, animate.Options{TMax: 2, Dt: 1})
		Expect(d.Run(context.Background(), r)).To(Succeed())
		Expect(steps).To(Equal([]int{0, 1}))
	})
})
