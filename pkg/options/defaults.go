package options

const (
	// DefaultDataDir specifies the default base directory where ferret will
	// store its data files. If no other directory is specified during
	// initialization, this path will be used.
	DefaultDataDir = "/var/lib/ferret"

	// DefaultScorerK is the default saturation constant used by the
	// relevance scorer.
	DefaultScorerK = 1.2
)

// defaultOptions holds the default configuration settings for a ferret
// instance.
var defaultOptions = Options{
	DataDir: DefaultDataDir,
	ScorerK: DefaultScorerK,
}

// NewDefaultOptions returns a copy of the default configuration.
func NewDefaultOptions() Options {
	return defaultOptions
}
