package translator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/localize/core/cachestore"
	"github.com/dmitrymomot/localize/core/catalog"
	"github.com/dmitrymomot/localize/core/cdnsync"
	"github.com/dmitrymomot/localize/core/logger"
)

// Service orchestrates the in-memory catalog, the cache store, and the sync
// engine. All mutable state lives in one owner goroutine; Translate reads an
// immutable snapshot and never blocks. Safe for concurrent use.
type Service struct {
	store    cachestore.Store
	engine   *cdnsync.Engine
	fallback Fallback
	client   *http.Client
	log      *slog.Logger

	snap atomic.Pointer[snapshot]

	commands chan func(*state)
	quit     chan struct{}
	stopOnce sync.Once

	mu          sync.Mutex
	initialized bool
	closed      bool
}

// snapshot is the immutable view served to Translate. Tables and entries are
// never mutated after publication; updates swap the whole pointer.
type snapshot struct {
	language string
	tables   map[string]catalog.Table
}

// state is confined to the owner goroutine.
type state struct {
	cfg       Config
	language  string
	tables    map[string]catalog.Table
	etags     map[string]string
	syncing   bool
	lastFetch time.Time
}

// Option configures the Service during construction.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log.With(logger.Component("translator"))
		}
	}
}

// WithFallback sets the bundle-lookup collaborator invoked on catalog miss.
func WithFallback(fallback Fallback) Option {
	return func(s *Service) {
		if fallback != nil {
			s.fallback = fallback
		}
	}
}

// WithHTTPClient sets the transport handed to the sync engine.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithEngine replaces the internally built sync engine.
func WithEngine(engine *cdnsync.Engine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// New creates a Service persisting through the given store.
func New(store cachestore.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	s := &Service{
		store:    store,
		fallback: keyFallback{},
		client:   http.DefaultClient,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
		commands: make(chan func(*state), 16),
		quit:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.engine == nil {
		engine, err := cdnsync.New(store,
			cdnsync.WithHTTPClient(s.client),
			cdnsync.WithLogger(s.log),
		)
		if err != nil {
			return nil, err
		}
		s.engine = engine
	}

	return s, nil
}

// Init performs the one-time transition into the running state: it clears the
// cache when the app-version signature changed, preloads every configured
// table from the cache store, publishes the catalog, starts the owner
// goroutine, and kicks off an asynchronous sync. Repeated calls are a no-op,
// logged as a warning. Malformed cached tables are logged and skipped; cache
// IO failures are never fatal.
func (s *Service) Init(ctx context.Context, cfg Config) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.initialized {
		s.mu.Unlock()
		s.log.Warn("translator already initialized, ignoring repeated Init")
		return nil
	}

	if cfg.Language == "" {
		cfg.Language = DefaultConfig().Language
	}

	if cfg.Endpoint != "" {
		s.ensureVersion(ctx, cfg, cfg.Language)
	}

	st := &state{
		cfg:      cfg,
		language: cfg.Language,
		tables:   make(map[string]catalog.Table),
		etags:    make(map[string]string),
	}
	if cfg.Endpoint != "" {
		st.tables, st.etags = s.preload(ctx, cfg, cfg.Language)
	}

	s.initialized = true
	s.publish(st)
	go s.run(st)
	s.mu.Unlock()

	s.log.Info("translator initialized",
		logger.Language(cfg.Language),
		logger.Endpoint(cfg.Endpoint),
		logger.Version(cfg.AppVersion),
		logger.Count("cached_tables", len(st.tables)),
	)

	s.Fetch(ctx)
	return nil
}

// Translate resolves a key against the current catalog snapshot. It never
// blocks and never fails: a miss falls through to the Fallback collaborator.
// An empty table addresses the base table; an empty locale uses the active
// language.
func (s *Service) Translate(key string, args []any, table, locale string) string {
	snap := s.snap.Load()
	if snap == nil {
		if locale == "" {
			locale = DefaultConfig().Language
		}
		return s.fallback.Lookup(key, table, locale)
	}

	if locale == "" {
		locale = snap.language
	}

	if entry, ok := snap.tables[table][key]; ok {
		return catalog.Format(entry, args, locale)
	}
	return s.fallback.Lookup(key, table, locale)
}

// Fetch triggers a catalog sync. It is idempotent while a sync is already in
// flight: the concurrent call is dropped, not queued. A no-op before Init and
// without a configured endpoint.
func (s *Service) Fetch(ctx context.Context) {
	if !s.isInitialized() {
		s.log.Warn("fetch requested before initialization")
		return
	}

	s.do(func(st *state) {
		if st.cfg.Endpoint == "" {
			s.log.Debug("fetch skipped, no endpoint configured")
			return
		}
		if st.syncing {
			s.log.Debug("fetch dropped, sync already in flight")
			return
		}

		st.syncing = true
		st.lastFetch = time.Now()

		req := cdnsync.Request{
			Endpoint:   st.cfg.Endpoint,
			Language:   st.language,
			AppVersion: st.cfg.AppVersion,
			Namespaces: st.cfg.Namespaces,
			Etags:      maps.Clone(st.etags),
			Current:    st.tables,
		}
		go s.runSync(ctx, req)
	})
}

// OnEnterForeground is the lifecycle collaborator hook: the application
// signals it became active, the service revalidates the catalog.
func (s *Service) OnEnterForeground() {
	s.Fetch(context.Background())
}

// SetLanguage switches the active language: the catalog is reloaded from the
// cache for the new language and a sync is triggered. Results of an in-flight
// sync for the previous language are discarded on merge.
func (s *Service) SetLanguage(ctx context.Context, lang string) error {
	if lang == "" {
		return ErrLanguageEmpty
	}
	if !s.isInitialized() {
		return ErrNotInitialized
	}

	s.do(func(st *state) {
		if st.language == lang {
			return
		}

		st.language = lang
		st.tables = make(map[string]catalog.Table)
		st.etags = make(map[string]string)
		if st.cfg.Endpoint != "" {
			s.ensureVersion(ctx, st.cfg, lang)
			st.tables, st.etags = s.preload(ctx, st.cfg, lang)
		}
		s.log.Info("language switched", logger.Language(lang))
	})

	s.Fetch(ctx)
	return nil
}

// LoadTranslations parses a raw catalog document and replaces the table with
// it. This is the explicit, caller-invoked parse path: a malformed document
// fails synchronously with catalog.ErrMalformedCatalog wrapped in the
// returned error, and the previous table content is kept.
func (s *Service) LoadTranslations(table string, raw []byte) error {
	if !s.isInitialized() {
		return ErrNotInitialized
	}

	parsed, err := catalog.ParseTable(raw)
	if err != nil {
		return err
	}

	s.do(func(st *state) {
		tables := maps.Clone(st.tables)
		tables[table] = parsed
		st.tables = tables
	})
	return nil
}

// Language returns the active catalog language.
func (s *Service) Language() string {
	if snap := s.snap.Load(); snap != nil {
		return snap.language
	}
	return ""
}

// Close stops the owner goroutine. An in-flight sync runs to completion but
// its result is discarded. Translate keeps serving the last snapshot.
func (s *Service) Close() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.quit)
	})
}

// run is the owner goroutine: the only writer of state, publishing a fresh
// snapshot after every mutation.
func (s *Service) run(st *state) {
	for {
		select {
		case cmd := <-s.commands:
			cmd(st)
			s.publish(st)
		case <-s.quit:
			return
		}
	}
}

// do delivers a mutation to the owner goroutine, dropping it when the
// service is closed.
func (s *Service) do(cmd func(*state)) {
	select {
	case s.commands <- cmd:
	case <-s.quit:
	}
}

func (s *Service) publish(st *state) {
	s.snap.Store(&snapshot{language: st.language, tables: st.tables})
}

func (s *Service) isInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized && !s.closed
}

// runSync performs one engine run off the owner goroutine and funnels the
// result back in for merging.
func (s *Service) runSync(ctx context.Context, req cdnsync.Request) {
	// Detach from the caller: a sync outlives the trigger's context.
	result, err := s.engine.Sync(context.WithoutCancel(ctx), req)

	s.do(func(st *state) {
		st.syncing = false

		if err != nil {
			s.log.Warn("catalog sync failed", logger.Error(err), logger.Language(req.Language))
			return
		}
		if st.language != req.Language {
			// Superseded by a language switch; the merge would resurrect
			// tables of the previous language. The switch's own fetch was
			// dropped while this sync held the flag, so start one now for
			// the active language.
			s.log.Info("stale sync result discarded",
				logger.Language(req.Language),
			)
			if st.cfg.Endpoint != "" {
				st.syncing = true
				st.lastFetch = time.Now()
				next := cdnsync.Request{
					Endpoint:   st.cfg.Endpoint,
					Language:   st.language,
					AppVersion: st.cfg.AppVersion,
					Namespaces: st.cfg.Namespaces,
					Etags:      maps.Clone(st.etags),
					Current:    st.tables,
				}
				go s.runSync(context.Background(), next)
			}
			return
		}
		if len(result.Tables) == 0 && len(result.Etags) == 0 {
			return
		}

		tables := maps.Clone(st.tables)
		for ns, table := range result.Tables {
			tables[ns] = table
		}
		st.tables = tables

		etags := maps.Clone(st.etags)
		maps.Copy(etags, result.Etags)
		st.etags = etags

		s.log.Debug("catalog sync merged",
			logger.Language(req.Language),
			logger.Count("updated_tables", len(result.Tables)),
		)
	})
}

// preload loads and parses every configured table from the cache store.
// Failures degrade per table: a missing file is a plain miss, malformed
// payloads and IO errors are logged and skipped.
func (s *Service) preload(ctx context.Context, cfg Config, lang string) (map[string]catalog.Table, map[string]string) {
	tables := make(map[string]catalog.Table)
	etags := make(map[string]string)

	namespaces := append([]string{""}, cfg.Namespaces...)
	for _, ns := range namespaces {
		raw, err := s.store.Load(ctx, cachestore.Descriptor{
			Language:   lang,
			Namespace:  ns,
			AppVersion: cfg.AppVersion,
			Endpoint:   cfg.Endpoint,
		})
		if errors.Is(err, cachestore.ErrNotFound) {
			continue
		}
		if err != nil {
			s.log.Warn("failed to read cached catalog", logger.Table(ns), logger.Error(err))
			continue
		}

		table, err := catalog.ParseTable(raw)
		if err != nil {
			s.log.Warn("malformed cached catalog skipped", logger.Table(ns), logger.Error(err))
			continue
		}
		tables[ns] = table

		etag, err := s.store.LoadEtag(ctx, cachestore.EtagDescriptor{
			Language:  lang,
			Namespace: ns,
			Endpoint:  cfg.Endpoint,
		})
		if err == nil && etag != "" {
			etags[ns] = etag
		}
	}

	return tables, etags
}

// ensureVersion enforces the app-upgrade invalidation boundary: when the
// stored version marker differs from the current signature, the whole
// endpoint cache is cleared before anything is loaded from it.
func (s *Service) ensureVersion(ctx context.Context, cfg Config, lang string) {
	stored, err := s.store.Version(ctx, cfg.Endpoint, lang)
	switch {
	case errors.Is(err, cachestore.ErrNotFound):
		// First run for this language.
	case err != nil:
		s.log.Warn("failed to read cache version marker", logger.Error(err))
		return
	case stored == cfg.AppVersion:
		return
	default:
		s.log.Info("app version changed, clearing catalog cache",
			logger.Version(cfg.AppVersion),
			logger.Language(lang),
		)
		if err := s.store.ClearAll(ctx, cfg.Endpoint); err != nil {
			s.log.Warn("failed to clear catalog cache", logger.Error(err))
			return
		}
	}

	if err := s.store.SetVersion(ctx, cfg.Endpoint, lang, cfg.AppVersion); err != nil {
		s.log.Warn("failed to write cache version marker", logger.Error(err))
	}
}
