package accumulator

import "github.com/datatrails/go-datatrails-common/logger"

// Logger is the minimal logging surface options depends on; the package
// global logger.Sugar satisfies it, as does the scoped logger returned by
// logger.Sugar.WithServiceName(...). WithLogger lets callers - tests in
// particular - install one of the latter instead of relying on whatever
// the global logger.Sugar happens to be configured as.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// options collects the handful of knobs Build and the verifiers accept
// (the proof generators take none; they use what Build installed on the
// Tree). Following the teacher corpus's massifs.Option shape, individual
// With* constructors return a closure that mutates an *options value; this
// keeps the public surface open to new knobs without breaking callers.
type options struct {
	prefilter   Prefilter
	enableBloom bool
	log         Logger
}

// Option configures Build or a verifier.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// logger resolves the effective Logger for this call: the installed
// override, or the package-global logger.Sugar if none was supplied.
func (o *options) logger() Logger {
	if o.log != nil {
		return o.log
	}
	return logger.Sugar
}

// WithLogger overrides the package-global logger.Sugar for one call, e.g.
// with logger.Sugar.WithServiceName("...") to scope test output.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}

// WithPrefilter installs a caller-supplied membership prefilter (see
// Prefilter) that proof generation consults before walking the tree.
func WithPrefilter(p Prefilter) Option {
	return func(o *options) { o.prefilter = p }
}

// WithBloomPrefilter builds and installs the package's default bloom-backed
// prefilter (see bloomindex) sized for the tree being built. Mutually
// exclusive with WithPrefilter; an explicit WithPrefilter wins if both are
// supplied.
func WithBloomPrefilter() Option {
	return func(o *options) { o.enableBloom = true }
}
