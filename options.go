package skiplist

import "log/slog"

// maxLevelLimit bounds WithMaxLevel; a 64-bit word yields at most 64 coin flips.
const maxLevelLimit = 64

type config struct {
	maxLevel int
	levels   LevelSource
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		maxLevel: MaxLevel,
		logger:   slog.Default(),
	}
}

// Option configures a SkipList.
type Option func(*config)

// WithMaxLevel caps the height of any node. Values outside [1, 64] are ignored.
func WithMaxLevel(level int) Option {
	return func(cfg *config) {
		if level > 0 && level <= maxLevelLimit {
			cfg.maxLevel = level
		}
	}
}

// WithSeed makes level promotion deterministic.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.levels = newRNGWithSeed(seed)
	}
}

// WithLevelSource replaces the coin-flip height generator.
func WithLevelSource(src LevelSource) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.levels = src
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
