package altprofile

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"vocprez/internal/vocab/listcache"
	vmetrics "vocprez/internal/vocab/metrics"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
	"vocprez/pkg/platform/circuit"
	"vocprez/pkg/requestcontext"
)

// Snapshot is one consistent read of the registry.
type Snapshot struct {
	Descriptors map[string]Descriptor
	Ontologies  map[string]profiles.Ontology
}

// OntologyList returns the ontologies sorted by prefix.
func (s Snapshot) OntologyList() []profiles.Ontology {
	out := make([]profiles.Ontology, 0, len(s.Ontologies))
	for _, prefix := range slices.Sorted(maps.Keys(s.Ontologies)) {
		out = append(out, s.Ontologies[prefix])
	}
	return out
}

// Loader memoizes registry reads for a TTL. A failed read never surfaces as
// an error: the last good snapshot is served, or an empty one.
type Loader struct {
	fetcher    Fetcher
	logger     *slog.Logger
	metrics    *vmetrics.Metrics
	breaker    *circuit.Breaker
	ttl        time.Duration
	retryAfter time.Duration
	// fetchTimeout bounds one refresh, which runs detached from the caller.
	fetchTimeout time.Duration
	now          func() time.Time

	group     singleflight.Group
	mu        sync.RWMutex
	snapshot  Snapshot
	expiresAt time.Time
}

type LoaderOption func(*Loader)

func WithTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

func WithRetryAfter(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.retryAfter = d
		}
	}
}

func WithFetchTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.fetchTimeout = d
		}
	}
}

func WithMetrics(m *vmetrics.Metrics) LoaderOption {
	return func(l *Loader) {
		l.metrics = m
	}
}

func WithBreaker(b *circuit.Breaker) LoaderOption {
	return func(l *Loader) {
		if b != nil {
			l.breaker = b
		}
	}
}

// WithClock is for tests.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) {
		l.now = now
	}
}

func NewLoader(fetcher Fetcher, logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		fetcher:      fetcher,
		logger:       logger,
		breaker:      circuit.New("profile-registry", circuit.WithFailureThreshold(3), circuit.WithSuccessThreshold(1)),
		ttl:          5 * time.Minute,
		retryAfter:   10 * time.Second,
		fetchTimeout: 10 * time.Second,
		now:          time.Now,
		snapshot:     emptySnapshot(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func emptySnapshot() Snapshot {
	return Snapshot{Descriptors: map[string]Descriptor{}, Ontologies: map[string]profiles.Ontology{}}
}

// LoadAlternateProfiles returns the descriptors keyed by profile URL.
func (l *Loader) LoadAlternateProfiles(ctx context.Context) map[string]Descriptor {
	return l.Snapshot(ctx).Descriptors
}

// LoadOntologies returns the ontologies keyed by prefix.
func (l *Loader) LoadOntologies(ctx context.Context) map[string]profiles.Ontology {
	return l.Snapshot(ctx).Ontologies
}

// Snapshot returns the memoized registry contents, refreshing them when the
// TTL has passed. Callers must not modify the maps.
//
// A refresh outlives the caller that started it but is bounded by the fetch
// timeout. A caller whose context ends first gets the snapshot it saw.
func (l *Loader) Snapshot(ctx context.Context) Snapshot {
	if l.fetcher == nil {
		return emptySnapshot()
	}
	l.mu.RLock()
	snap, fresh := l.snapshot, l.now().Before(l.expiresAt)
	l.mu.RUnlock()
	if fresh {
		return snap
	}

	ch := l.group.DoChan("refresh", func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.fetchTimeout)
		defer cancel()
		return l.refresh(rctx), nil
	})
	select {
	case res := <-ch:
		return res.Val.(Snapshot)
	case <-ctx.Done():
		return snap
	}
}

// Invalidate forces the next read to go to the registry.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.expiresAt = time.Time{}
	l.mu.Unlock()
}

func (l *Loader) refresh(ctx context.Context) Snapshot {
	var (
		descs    map[string]Descriptor
		onts     map[string]profiles.Ontology
		descsErr error
		ontsErr  error
		g        errgroup.Group
	)
	g.Go(func() error {
		descs, descsErr = l.fetcher.AlternateProfiles(ctx)
		return descsErr
	})
	g.Go(func() error {
		onts, ontsErr = l.fetcher.Ontologies(ctx)
		return ontsErr
	})
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.snapshot
	next := Snapshot{Descriptors: prev.Descriptors, Ontologies: prev.Ontologies}

	if err != nil {
		useFallback, change := l.breaker.RecordFailure()
		l.logFailure(ctx, endpointAltProf, descsErr)
		l.logFailure(ctx, endpointOntology, ontsErr)
		if change.Opened {
			l.logger.WarnContext(ctx, "profile registry circuit opened", "breaker", l.breaker.Name())
		}
		// A partial answer is still used until the breaker says otherwise.
		if !useFallback {
			if descsErr == nil {
				next.Descriptors = descs
			}
			if ontsErr == nil {
				next.Ontologies = onts
			}
		}
		l.snapshot = next
		l.expiresAt = l.now().Add(l.retryAfter)
		l.metrics.SetRegistryProfiles(len(next.Descriptors))
		return next
	}

	if ok, change := l.breaker.RecordSuccess(); ok {
		next = Snapshot{Descriptors: descs, Ontologies: onts}
		if change.Closed {
			l.logger.InfoContext(ctx, "profile registry circuit closed", "breaker", l.breaker.Name())
		}
	}
	l.snapshot = next
	l.expiresAt = l.now().Add(l.ttl)
	l.metrics.SetRegistryProfiles(len(next.Descriptors))
	return next
}

func (l *Loader) logFailure(ctx context.Context, endpoint string, err error) {
	if err == nil {
		return
	}
	l.metrics.IncrementRegistryFailure(endpoint)
	l.logger.WarnContext(ctx, "profile registry unavailable, serving last known profiles",
		"request_id", requestcontext.RequestID(ctx),
		"endpoint", endpoint,
		"error", err,
	)
}

// ProfilesFor builds the alternate profiles an entry conforms to, with the
// media types registered profiles get for kind.
func (l *Loader) ProfilesFor(ctx context.Context, entry listcache.Entry, kind models.Kind) ([]profiles.Profile, Snapshot) {
	snap := l.Snapshot(ctx)
	mts, def := profiles.AlternateMediaTypes(kind)
	return BuildProfiles(entry, snap.Descriptors, snap.Ontologies, mts, def), snap
}

// BuildProfiles returns one profile per descriptor whose URL the entry's
// conforms_to lists, ordered by descriptor URL. Each profile keeps only the
// ontologies among its declared prefixes that the registry knows.
func BuildProfiles(entry listcache.Entry, descriptors map[string]Descriptor, ontologies map[string]profiles.Ontology, mediaTypes []string, defaultMediaType string) []profiles.Profile {
	if len(entry.ConformsTo) == 0 {
		return nil
	}
	var out []profiles.Profile
	for _, url := range slices.Sorted(maps.Keys(descriptors)) {
		if !conformsTo(entry.ConformsTo, url) {
			continue
		}
		d := descriptors[url]
		var onts []profiles.Ontology
		for _, prefix := range d.Prefixes() {
			if o, ok := ontologies[prefix]; ok {
				onts = append(onts, o)
			}
		}
		out = append(out, profiles.New(d.Token, d.URL, d.Name, d.Description, mediaTypes, defaultMediaType, onts...))
	}
	return out
}

func conformsTo(list []string, url string) bool {
	for _, c := range list {
		if strings.TrimSpace(c) == url {
			return true
		}
	}
	return false
}
