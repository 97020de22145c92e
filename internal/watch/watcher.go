// SPDX-License-Identifier: MIT

// Package watch implements the drop-folder ingest: EDL files appearing in a
// watched directory are parsed and their typed edit lists written out as JSON.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"edlkit/internal/config"
	"edlkit/internal/edl"
	"edlkit/internal/log"
	"edlkit/internal/metrics"
	"edlkit/internal/timecode"
)

// settleInterval is how long a file's size must stay stable before it is
// parsed, so half-copied files are not read.
const settleInterval = 200 * time.Millisecond

// Watcher ingests EDL files dropped into a directory.
type Watcher struct {
	cfg    config.Config
	rate   timecode.Rate
	proc   *edl.Processor
	logger zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New validates the configuration and builds a Watcher.
func New(cfg config.Config) (*Watcher, error) {
	if cfg.WatchDir == "" {
		return nil, fmt.Errorf("watch_dir is required")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output_dir is required")
	}
	rate, err := cfg.Rate()
	if err != nil {
		return nil, err
	}
	proc, err := edl.NewProcessor(cfg.ShotRegexp)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		cfg:      cfg,
		rate:     rate,
		proc:     proc,
		logger:   log.WithComponent("watch"),
		inflight: make(map[string]struct{}),
	}, nil
}

// Run watches until ctx is cancelled. Files already present in the watch
// directory are processed on startup. Per-file failures are logged and
// counted; they do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.cfg.OutputDir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()
	if err := fw.Add(w.cfg.WatchDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.WatchDir, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Workers)

	// Pick up files that were dropped while the watcher was down.
	entries, err := os.ReadDir(w.cfg.WatchDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.cfg.WatchDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && isEDL(entry.Name()) {
			w.schedule(gctx, g, filepath.Join(w.cfg.WatchDir, entry.Name()))
		}
	}

	w.logger.Info().Str(log.FieldPath, w.cfg.WatchDir).Msg("watching for EDL files")
	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return g.Wait()
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) {
				if isEDL(ev.Name) {
					w.schedule(gctx, g, ev.Name)
				}
			}
		case werr, ok := <-fw.Errors:
			if !ok {
				return g.Wait()
			}
			w.logger.Warn().Err(werr).Msg("watcher error")
		}
	}
}

func isEDL(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".edl")
}

// schedule hands the file to the worker pool unless an ingest for the same
// path is already running; write events arrive in bursts while a file is
// being copied in.
func (w *Watcher) schedule(ctx context.Context, g *errgroup.Group, path string) {
	w.mu.Lock()
	if _, busy := w.inflight[path]; busy {
		w.mu.Unlock()
		return
	}
	w.inflight[path] = struct{}{}
	w.mu.Unlock()

	g.Go(func() error {
		defer func() {
			w.mu.Lock()
			delete(w.inflight, path)
			w.mu.Unlock()
		}()
		w.waitSettle(ctx, path)
		if err := w.ProcessFile(ctx, path); err != nil {
			ctxLogger := log.WithContext(ctx, w.logger)
			ctxLogger.Error().Err(err).Str(log.FieldPath, path).Msg("ingest failed")
		}
		return nil
	})
}

// waitSettle blocks until the file size stops changing, or ctx is cancelled.
func (w *Watcher) waitSettle(ctx context.Context, path string) {
	var lastSize int64 = -1
	for {
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if info.Size() == lastSize {
			return
		}
		lastSize = info.Size()
		select {
		case <-ctx.Done():
			return
		case <-time.After(settleInterval):
		}
	}
}

// ProcessFile parses one EDL file and writes its JSON result atomically to
// the output directory under the same base name.
func (w *Watcher) ProcessFile(ctx context.Context, path string) error {
	ctx = log.ContextWithJobID(ctx, uuid.NewString())
	logger := log.WithContext(ctx, w.logger)

	start := time.Now()
	list, err := edl.ParseFile(ctx, path,
		edl.WithRate(w.rate),
		edl.WithVisitor(w.proc.Process),
	)
	if err != nil {
		metrics.ObserveParse(metrics.OutcomeFailure, 0, time.Since(start))
		metrics.WatchFile(metrics.OutcomeFailure)
		return err
	}
	metrics.ObserveParse(metrics.OutcomeSuccess, len(list.Edits), time.Since(start))

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		metrics.WatchFile(metrics.OutcomeFailure)
		return fmt.Errorf("encode result for %s: %w", path, err)
	}
	out := w.OutputPath(path)
	if err := renameio.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		metrics.WatchFile(metrics.OutcomeFailure)
		return fmt.Errorf("write result %s: %w", out, err)
	}

	metrics.WatchFile(metrics.OutcomeSuccess)
	logger.Info().
		Str(log.FieldPath, path).
		Str("result", out).
		Int("edits", len(list.Edits)).
		Dur("duration", time.Since(start)).
		Msg("ingested EDL")
	return nil
}

// OutputPath returns where the JSON result for the given EDL file lands.
func (w *Watcher) OutputPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(w.cfg.OutputDir, base+".json")
}
