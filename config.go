// Parser and document configuration.
package gedcom

import "log/slog"

// Config holds parsing options. The zero value is usable.
type Config struct {
	HashAlgorithm int          // 1=xxHash3, 2=FNV1a, 3=Blake2b (default xxHash3)
	ReadBuffer    int          // Initial scanner buffer size (default 64KB)
	MaxLineSize   int          // Maximum single line size (default 1MB)
	Strict        bool         // Fail on malformed lines instead of skipping them
	Logger        *slog.Logger // Receives skipped-line warnings (default discards)
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if !validAlg(c.HashAlgorithm) {
		c.HashAlgorithm = AlgXXHash3
	}
	if c.ReadBuffer <= 0 {
		c.ReadBuffer = 64 * 1024
	}
	if c.MaxLineSize <= 0 {
		c.MaxLineSize = 1024 * 1024
	}
	if c.ReadBuffer > c.MaxLineSize {
		c.ReadBuffer = c.MaxLineSize
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
