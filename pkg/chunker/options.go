package chunker

// Options configures how text is split into chunks. Every option is
// enumerated explicitly; start from DefaultOptions and override fields rather
// than relying on zero values, since the boolean flags have no "unset" state.
type Options struct {
	// MaxChunkSize is the target upper bound on chunk content length in bytes.
	// Default: 1000.
	MaxChunkSize int

	// ChunkOverlap is how many trailing bytes of a finished chunk seed the
	// next one for context continuity. Default: 200. Set to 0 to disable.
	ChunkOverlap int

	// MinChunkSize is the minimum content length for a chunk to be emitted.
	// Default: 100. Trailing buffers below this are dropped by the paragraph
	// and sentence strategies (see their docs).
	MinChunkSize int

	// PreserveSentences selects sentence-boundary splitting when
	// PreserveParagraphs is off. Default: true.
	PreserveSentences bool

	// PreserveParagraphs selects paragraph-boundary splitting and takes
	// priority over PreserveSentences. Default: true.
	PreserveParagraphs bool

	// RespectWordBoundaries makes the character strategy snap a window's
	// right edge back to the last space instead of cutting words. Default: true.
	RespectWordBoundaries bool
}

// DefaultOptions returns the standard chunking configuration.
func DefaultOptions() Options {
	return Options{
		MaxChunkSize:          1000,
		ChunkOverlap:          200,
		MinChunkSize:          100,
		PreserveSentences:     true,
		PreserveParagraphs:    true,
		RespectWordBoundaries: true,
	}
}

// withDefaults fills in the numeric fields left at their zero value.
// Boolean flags are taken as-is.
func (o Options) withDefaults() Options {
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = 1000
	}
	if o.ChunkOverlap < 0 {
		o.ChunkOverlap = 200
	}
	if o.MinChunkSize <= 0 {
		o.MinChunkSize = 100
	}
	return o
}
