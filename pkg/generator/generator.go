// Package generator is the Generator Driver (spec.md §4.6): it
// dedupes a candidate token stream across files, resolves each unseen
// token through a design.System, orders and groups the results, and
// serializes the final CSS artifact. A Watch mode wraps fsnotify for
// streaming rewrites (spec.md §6's Watcher contract).
package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/design"
	"github.com/dmoose/tailkit/pkg/order"
	"github.com/dmoose/tailkit/pkg/resolver"
)

// Source is one input file handed to the driver.
type Source struct {
	Path string
	Data []byte
	Kind FileKind
}

// Result is generate()'s return value.
type Result struct {
	CSS        string
	TokensSeen int
}

// Driver folds a token stream through a frozen design.System.
type Driver struct {
	System *design.System
	Strict bool
	Logger zerolog.Logger
}

// New builds a Driver. A zero-value Logger writes to io.Discard unless
// the caller supplies one via WithLogger.
func New(sys *design.System) *Driver {
	return &Driver{System: sys, Logger: zerolog.Nop()}
}

// WithLogger attaches a diagnostics logger (strict-mode rejections).
func (d *Driver) WithLogger(l zerolog.Logger) *Driver {
	d.Logger = l
	return d
}

// Generate implements spec.md §4.6: dedupe tokens from every source,
// resolve each unseen token, order+group the survivors, and render.
func (d *Driver) Generate(sources []Source) (Result, error) {
	seen := make(map[string]bool)
	var ordered []string
	for _, src := range sources {
		for _, tok := range Extract(src.Data, src.Kind) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			ordered = append(ordered, tok)
		}
	}
	return d.generateTokens(ordered)
}

func (d *Driver) generateTokens(tokens []string) (Result, error) {
	var resolved []*resolver.ResolvedRule
	for _, tok := range tokens {
		rr, reason := d.System.Resolve(tok)
		if rr == nil {
			if d.Strict {
				d.Logger.Warn().Str("raw_token", tok).Str("reason", reason).Msg("token rejected")
			}
			continue
		}
		resolved = append(resolved, rr)
	}

	sortedRules := order.Sort(resolved, d.System.Weights)
	body := order.Group(sortedRules)
	additional := order.DedupeAdditional(sortedRules)

	var out css.RuleList
	out = append(out, additional...)
	out = append(out, body...)

	return Result{CSS: css.Render(out, false), TokensSeen: len(tokens)}, nil
}

// Debug resolves a single token and returns its resolved rule, useful
// for a `debug TOKEN --print-ast` CLI surface.
func (d *Driver) Debug(token string) (*resolver.ResolvedRule, string) {
	return d.System.Resolve(token)
}

// LoadSources walks base, filtering paths through include/exclude
// doublestar patterns, and reads matching files (spec.md §6's glob
// config shape).
func LoadSources(glob GlobConfig) ([]Source, error) {
	base := glob.Base
	if base == "" {
		base = "."
	}

	var sources []Source
	err := filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		if !matchesGlob(rel, glob) {
			return nil
		}

		kind := KindForPath(path)
		if kind == KindUnknown {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("generator: reading %s: %w", path, err)
		}
		sources = append(sources, Source{Path: path, Data: data, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generator: walking %s: %w", base, err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}

func matchesGlob(rel string, glob GlobConfig) bool {
	rel = filepath.ToSlash(rel)

	included := len(glob.Include) == 0
	for _, pat := range glob.Include {
		if ok, _ := doublestar.Match(pat, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pat := range glob.Exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return false
		}
	}
	return true
}

// Watch watches every directory under glob.Base that exists when it is
// called, debounces change bursts, and on each settled batch reloads
// all sources through LoadSources (not only the changed paths),
// regenerates, and invokes sink with the result. It returns at once;
// watching runs in a goroutine until the returned stop func is called.
// Watcher, reload, generate and sink errors are logged to d.Logger and
// do not end the watch.
func (d *Driver) Watch(glob GlobConfig, debounce time.Duration, sink func(Result) error) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("generator: creating watcher: %w", err)
	}

	base := glob.Base
	if base == "" {
		base = "."
	}
	if walkErr := filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	}); walkErr != nil {
		watcher.Close()
		return nil, fmt.Errorf("generator: registering watch paths: %w", walkErr)
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		changed := make(map[string]bool)

		fire := func() {
			sources, err := LoadSources(glob)
			if err != nil {
				d.Logger.Error().Err(err).Msg("watch: reloading sources")
				return
			}
			res, err := d.Generate(sources)
			if err != nil {
				d.Logger.Error().Err(err).Msg("watch: generating")
				return
			}
			if err := sink(res); err != nil {
				d.Logger.Error().Err(err).Msg("watch: sink")
			}
			changed = make(map[string]bool)
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				changed[event.Name] = true
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, fire)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				d.Logger.Error().Err(werr).Msg("watch: fsnotify error")
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
