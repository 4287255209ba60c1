package block

const (
	// DefaultChunkSize is the read size for streaming checksums: 1 MiB,
	// a whole number of words for every checksum algorithm.
	DefaultChunkSize = 1 << 20

	// MinChunkSize keeps chunks word-aligned; 16 bytes is the largest
	// word group any algorithm consumes at once.
	MinChunkSize = 16
)

// DefaultOptions returns an Options struct with recommended defaults.
func DefaultOptions() *Options {
	return &Options{
		ChunkSize: DefaultChunkSize,
	}
}

func prepareDefaults(opts *Options) *Options {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	return opts
}
