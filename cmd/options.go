package cmd

// Options holds the shared command-line options for the gitgauge CLI.
type Options struct {
	Format    string
	Token     string
	Verbosity int
	Narrative bool

	// Section toggles. All false means run every section.
	Health  bool
	Quality bool
	PRs     bool
	Deps    bool
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithToken sets the GitHub token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithNarrative enables LLM narrative generation.
func WithNarrative(enabled bool) Option {
	return func(o *Options) {
		o.Narrative = enabled
	}
}

// sectionsRequested reports whether any individual section flag was set.
func (o *Options) sectionsRequested() bool {
	return o.Health || o.Quality || o.PRs || o.Deps
}
