package cdnsync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/localize/core/cachestore"
	"github.com/dmitrymomot/localize/core/catalog"
	"github.com/dmitrymomot/localize/core/logger"
	"github.com/dmitrymomot/localize/pkg/async"
)

// Engine fetches catalog files from a CDN source with conditional
// revalidation and persists fresh payloads to a cache store. Immutable after
// creation and safe for concurrent use; concurrent Sync calls are legal,
// serializing them is the orchestrator's job.
type Engine struct {
	client *http.Client
	store  cachestore.Store
	log    *slog.Logger
}

// Option configures the Engine during construction.
type Option func(*Engine)

// WithHTTPClient sets the transport used for catalog requests. The engine
// itself enforces no timeout; configure deadlines on the client.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) {
		if client != nil {
			e.client = client
		}
	}
}

// WithLogger sets the logger for absorbed per-file failures.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log.With(logger.Component("cdnsync"))
		}
	}
}

// New creates a sync engine persisting into the given store.
func New(store cachestore.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	e := &Engine{
		client: http.DefaultClient,
		store:  store,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Request describes one synchronization run.
type Request struct {
	// Endpoint is the CDN base URL serving "{language}.json" files.
	Endpoint string

	// Language selects which per-language files to fetch.
	Language string

	// AppVersion is the consuming build's signature, recorded with cached
	// payloads.
	AppVersion string

	// Namespaces lists the namespace tables to fetch besides the base table.
	Namespaces []string

	// Etags carries the last known validation token per table (key is the
	// namespace, empty string for the base table).
	Etags map[string]string

	// Current holds the in-memory tables; freshly parsed tables equal to the
	// current one are elided from the result.
	Current map[string]catalog.Table
}

// Result is the delta produced by one run. Tables and Etags are keyed by
// namespace (empty string = base table). A table absent from Tables was
// unchanged, unavailable, or malformed; the caller keeps its previous state.
type Result struct {
	Tables map[string]catalog.Table
	Etags  map[string]string
}

// fileResult is the fan-in message for one catalog file.
type fileResult struct {
	namespace string
	table     catalog.Table
	etag      string
	updated   bool // false: unchanged or absorbed failure
	etagOnly  bool // fresh token for content the caller already holds
}

// Sync fetches the base table and all namespace tables concurrently and
// returns once every file has resolved. It fails only when the request is
// unusable before any file can be evaluated; per-file failures are absorbed
// and logged.
func (e *Engine) Sync(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	if strings.TrimSpace(req.Language) == "" {
		return Result{}, ErrLanguageEmpty
	}
	base, err := url.Parse(strings.TrimSpace(req.Endpoint))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, req.Endpoint)
	}

	log := e.log.With(
		logger.SyncID(uuid.NewString()),
		logger.Language(req.Language),
		logger.Endpoint(req.Endpoint),
	)

	namespaces := make([]string, 0, len(req.Namespaces)+1)
	namespaces = append(namespaces, "") // base table first
	for _, ns := range req.Namespaces {
		if ns != "" {
			namespaces = append(namespaces, ns)
		}
	}

	results := make(chan fileResult, len(namespaces))
	for _, ns := range namespaces {
		go func(ns string) {
			results <- e.fetchFile(ctx, log, req, ns)
		}(ns)
	}

	// Fan-in: the result is assembled only once every file has resolved.
	out := Result{
		Tables: make(map[string]catalog.Table),
		Etags:  make(map[string]string),
	}
	for range namespaces {
		res := <-results
		if res.updated {
			out.Tables[res.namespace] = res.table
		}
		if res.updated || res.etagOnly {
			out.Etags[res.namespace] = res.etag
		}
	}

	log.Debug("sync finished",
		logger.Count("updated_tables", len(out.Tables)),
		logger.Elapsed(start),
	)
	return out, nil
}

// fetchFile issues one conditional request and classifies the outcome.
// All failure paths degrade to "unchanged"; nothing propagates.
func (e *Engine) fetchFile(ctx context.Context, log *slog.Logger, req Request, namespace string) fileResult {
	res := fileResult{namespace: namespace}
	log = log.With(logger.Table(namespace))

	fileURL := e.fileURL(req.Endpoint, req.Language, namespace)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		log.Warn("failed to build catalog request", logger.Error(err))
		return res
	}

	knownEtag := req.Etags[namespace]
	if knownEtag != "" {
		httpReq.Header.Set("If-None-Match", knownEtag)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		log.Warn("catalog request failed", logger.Error(err))
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		log.Debug("catalog unchanged", logger.Etag(knownEtag))
		return res
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Warn("catalog request rejected", logger.StatusCode(resp.StatusCode))
		return res
	}

	freshEtag := resp.Header.Get("ETag")
	if freshEtag != "" && freshEtag == knownEtag {
		// Served in full but the revision did not move.
		log.Debug("catalog revalidated", logger.Etag(freshEtag))
		return res
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read catalog body", logger.Error(err))
		return res
	}

	table, err := catalog.ParseTable(body)
	if err != nil {
		log.Warn("malformed catalog skipped", logger.Error(err))
		return res
	}

	res.etag = freshEtag
	if table.Equal(req.Current[namespace]) {
		// Same content under a new token; refresh the token, skip the bytes.
		res.etagOnly = freshEtag != ""
		if res.etagOnly {
			e.persistAsync(ctx, log, req, namespace, nil, freshEtag)
		}
		log.Debug("catalog content unchanged", logger.Etag(freshEtag))
		return res
	}

	res.table = table
	res.updated = true
	e.persistAsync(ctx, log, req, namespace, body, freshEtag)
	return res
}

// persistPayload carries one pending cache write.
type persistPayload struct {
	desc cachestore.Descriptor
	body []byte
	etag string
}

// persistAsync writes bytes and token to the cache store off the calling
// goroutine. Failures are logged and never retried; cache writes do not feed
// back into in-memory state.
func (e *Engine) persistAsync(ctx context.Context, log *slog.Logger, req Request, namespace string, body []byte, etag string) {
	payload := persistPayload{
		desc: cachestore.Descriptor{
			Language:   req.Language,
			Namespace:  namespace,
			AppVersion: req.AppVersion,
			Endpoint:   req.Endpoint,
		},
		body: body,
		etag: etag,
	}

	// The write must survive callers that cancel right after Sync returns.
	future := async.Exec(context.WithoutCancel(ctx), payload, e.persist)
	go func() {
		if err := future.Await(); err != nil {
			log.Warn("failed to persist catalog cache", logger.Error(err))
		}
	}()
}

func (e *Engine) persist(ctx context.Context, p persistPayload) error {
	if len(p.body) > 0 {
		if err := e.store.Save(ctx, p.desc, p.body); err != nil {
			return err
		}
	}
	if p.etag == "" {
		return nil
	}
	return e.store.SaveEtag(ctx, cachestore.EtagDescriptor{
		Language:  p.desc.Language,
		Namespace: p.desc.Namespace,
		Endpoint:  p.desc.Endpoint,
	}, p.etag)
}

// fileURL builds "{endpoint}/{language}.json" or
// "{endpoint}/{namespace}/{language}.json".
func (e *Engine) fileURL(endpoint, language, namespace string) string {
	base := strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if namespace == "" {
		return base + "/" + language + ".json"
	}
	return base + "/" + namespace + "/" + language + ".json"
}
