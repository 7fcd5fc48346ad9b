package fb

// Option configures a Framebuffer during creation.
// Use functional options to customize Framebuffer behavior.
//
// Example:
//
//	// Sequential fill, white pen
//	f, err := fb.NewFramebuffer(800, 600, fb.Black)
//
//	// Four band workers and a sky-blue pen
//	f, err := fb.NewFramebuffer(800, 600, fb.Black,
//	    fb.WithWorkers(4), fb.WithCurrentColor(fb.SkyBlue))
type Option func(*options)

// options holds optional configuration for Framebuffer creation.
type options struct {
	current Color
	workers int
}

// defaultOptions returns the default framebuffer options.
func defaultOptions() options {
	return options{
		current: White,
		workers: 0, // sequential
	}
}

// WithCurrentColor sets the initial drawing color. The default is White.
func WithCurrentColor(c Color) Option {
	return func(o *options) {
		o.current = c
	}
}

// WithWorkers fills each polygon with n goroutines, each owning a disjoint
// band of scanlines. The result is identical to the sequential fill.
// n <= 1 keeps the sequential path. Call Framebuffer.Close to stop the
// workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
