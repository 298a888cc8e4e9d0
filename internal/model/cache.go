package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/spigell/career-mentor/internal/logger"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CacheDeps bundles the collaborators of a Cache.
type CacheDeps struct {
	Fs      afero.Fs
	Trainer Trainer
	Logger  *zap.Logger
}

// Cache persists the trained pipeline at a fixed path and trains it only when
// the artifact is absent. Concurrent cold starts share one training run and
// readers never observe a partially written file.
type Cache struct {
	path    string
	labels  []string
	dim     int
	fs      afero.Fs
	trainer Trainer
	logger  *zap.Logger

	group singleflight.Group

	mu     sync.RWMutex
	loaded *Pipeline
}

// NewCache creates a cache for the artifact at path. labels is the class order
// the stored pipeline must have and dim its feature count.
func NewCache(path string, labels []string, dim int, deps CacheDeps) (*Cache, error) {
	if path == "" {
		return nil, errors.New("artifact path is required")
	}
	if deps.Trainer == nil {
		return nil, errors.New("trainer is required")
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Cache{
		path:    filepath.Clean(path),
		labels:  slices.Clone(labels),
		dim:     dim,
		fs:      deps.Fs,
		trainer: deps.Trainer,
		logger:  logger.WithArtifact(deps.Logger, path),
	}, nil
}

// Path returns the artifact location.
func (c *Cache) Path() string { return c.path }

// EnsureTrained trains and persists the pipeline when no artifact exists. An
// existing artifact is left untouched, even if it is malformed.
func (c *Cache) EnsureTrained() error {
	exists, err := afero.Exists(c.fs, c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if exists {
		return nil
	}

	_, err, shared := c.group.Do(c.path, func() (any, error) {
		// Another caller may have finished between the check and the flight.
		exists, err := afero.Exists(c.fs, c.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		if exists {
			return nil, nil
		}

		c.logger.Info("model artifact not found, training")

		pipeline, err := c.trainer.Train()
		if err != nil {
			return nil, fmt.Errorf("train model: %w", err)
		}
		data, err := EncodeArtifact(pipeline)
		if err != nil {
			return nil, err
		}
		if err := c.write(data); err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.loaded = pipeline
		c.mu.Unlock()

		c.logger.Info("model artifact saved", zap.Int("bytes", len(data)))
		return nil, nil
	})
	if shared {
		c.logger.Debug("joined in-flight training")
	}

	return err
}

func (c *Cache) write(data []byte) error {
	dir := filepath.Dir(c.path)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStorageUnavailable, dir, err)
	}

	tmp, err := afero.TempFile(c.fs, dir, "."+filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = c.fs.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, tmpName, err)
	}

	if err := c.fs.Rename(tmpName, c.path); err != nil {
		_ = c.fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Load returns the persisted pipeline, training it first when absent. The
// decoded pipeline is kept in memory for later calls.
func (c *Cache) Load() (*Pipeline, error) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded != nil {
		return loaded, nil
	}

	if err := c.EnsureTrained(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded != nil {
		return c.loaded, nil
	}

	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	pipeline, err := DecodeArtifact(data, c.dim)
	if err != nil {
		return nil, err
	}
	if len(c.labels) > 0 && !slices.Equal(pipeline.Labels, c.labels) {
		return nil, fmt.Errorf("%w: labels %v do not match careers %v", ErrMalformedArtifact, pipeline.Labels, c.labels)
	}

	c.loaded = pipeline
	return pipeline, nil
}

// Remove deletes the artifact and forgets the memoized pipeline.
func (c *Cache) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = nil
	if err := c.fs.Remove(c.path); err != nil {
		exists, _ := afero.Exists(c.fs, c.path)
		if !exists {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	c.logger.Info("model artifact removed")
	return nil
}
