package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"avbdata/utils"
)

// Loader loads MNIST according to an explicitly supplied configuration. It
// owns its random source, so sampling binarization is reproducible per Loader
// no matter what other code draws random numbers.
type Loader struct {
	cfg    *utils.Config
	source Source
	logger *slog.Logger
	rng    rand.Source
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithSource overrides the source used when the default data directory is
// absent. The default is an HTTPSource pointing at the configured mirror.
func WithSource(s Source) LoaderOption {
	return func(l *Loader) { l.source = s }
}

// WithLogger overrides the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithSeed overrides the random seed taken from the config.
func WithSeed(seed uint64) LoaderOption {
	return func(l *Loader) { l.rng = rand.NewSource(seed) }
}

// NewLoader validates cfg and builds a Loader.
func NewLoader(cfg *utils.Config, opts ...LoaderOption) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Loader{
		cfg:    cfg,
		logger: slog.Default(),
		rng:    rand.NewSource(uint64(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.source == nil {
		l.source = &HTTPSource{BaseURL: cfg.BaseURL()}
	}
	return l, nil
}

// MNISTOptions controls path resolution and preprocessing for a single load.
type MNISTOptions struct {
	// Dir is an explicit local directory holding the four MNIST blobs.
	// Empty means the configured default directory.
	Dir string

	// OneHot converts integer class labels to one-hot rows sized by the
	// number of distinct labels observed.
	OneHot bool

	// Binarize maps pixel intensities to {0,1} using Mode.
	Binarize bool

	// Mode selects the binarization mode; empty means ModeThreshold.
	Mode BinarizeMode

	// Threshold overrides DefaultThreshold for ModeThreshold. Zero means the
	// default.
	Threshold float64
}

// MNIST loads the combined train+test MNIST corpus as a Dataset with pixel
// rows in [0,1] (or {0,1} when binarized) and scalar or one-hot targets.
func (l *Loader) MNIST(opt MNISTOptions) (*Dataset, error) {
	stats := &utils.LoadStats{}
	start := time.Now()

	dir := opt.Dir
	if dir == "" {
		dir = l.cfg.MNISTDir()
		if _, err := os.Stat(dir); err != nil {
			l.logger.Info("local MNIST copy not found, fetching", "dir", dir)
			fetchStart := time.Now()
			if err := l.source.Fetch(dir); err != nil {
				return nil, fmt.Errorf("failed to fetch MNIST: %w", err)
			}
			stats.FetchTime = time.Since(fetchStart)
		}
	} else if _, err := os.Stat(dir); err != nil {
		l.logger.Error("path to locally stored MNIST does not exist", "dir", dir)
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, dir)
	}

	l.logger.Info("loading MNIST dataset", "dir", dir)
	parseStart := time.Now()
	images, labels, err := readIDXDir(dir)
	if err != nil {
		return nil, err
	}
	stats.ParseTime = time.Since(parseStart)

	prepStart := time.Now()
	if opt.OneHot {
		labels, err = OneHot(labels)
		if err != nil {
			return nil, err
		}
	}
	if opt.Binarize {
		mode := opt.Mode
		if mode == "" {
			mode = ModeThreshold
		}
		threshold := opt.Threshold
		if threshold == 0 {
			threshold = DefaultThreshold
		}
		images, err = Binarize(images, mode, threshold, l.rng)
		if err != nil {
			return nil, err
		}
	}
	stats.PreprocessTime = time.Since(prepStart)

	ds := &Dataset{Data: images, Target: labels}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	stats.TotalTime = time.Since(start)
	utils.PrintLoadStats(stats)
	return ds, nil
}
