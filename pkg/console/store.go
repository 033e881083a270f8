// Package console holds the client-side core: the single authoritative
// state store synchronized against the remote gateway, and the tab
// navigation state machine the renderer consults.
package console

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	consoleerrors "github.com/eidora/mythos/pkg/errors"
	"github.com/eidora/mythos/pkg/gateway"
	"github.com/eidora/mythos/pkg/logging"
	"github.com/eidora/mythos/pkg/mythology"
	"github.com/eidora/mythos/pkg/telemetry"
)

// Snapshot is a render-ready copy of the console state. The renderer is
// a pure reader: it receives copies and never aliases store internals.
type Snapshot struct {
	Narratives []mythology.NarrativeFragment
	Dreams     []mythology.DreamScenario
	Stats      mythology.AggregateStats
	Loading    bool
	Draft      mythology.InteractionDraft

	// Search state lives beside the narrative list and never replaces it.
	SearchKeyword string
	SearchResults []mythology.NarrativeFragment
	SearchActive  bool

	// LastError is the most recent surfaced failure, cleared by the
	// next successfully applied protocol. Transient and non-fatal.
	LastError string
}

// StoreOptions configures a Store.
type StoreOptions struct {
	Hub       *telemetry.Hub
	Logger    *logging.Logger
	SessionID string
	// Fetch limits passed to the gateway's list endpoints.
	NarrativeLimit int
	DreamLimit     int
}

// Store maintains the authoritative client snapshot and keeps it
// consistent with the remote service. All mutation enters through the
// named protocols; state transitions are applied atomically under the
// store's lock in the order their triggering operations complete.
type Store struct {
	gw       gateway.Gateway
	hub      *telemetry.Hub
	log      *logging.Logger
	validate *validator.Validate

	sessionID      string
	narrativeLimit int
	dreamLimit     int

	mu         sync.Mutex
	narratives []mythology.NarrativeFragment
	dreams     []mythology.DreamScenario
	stats      mythology.AggregateStats
	draft      mythology.InteractionDraft

	searchKeyword string
	searchResults []mythology.NarrativeFragment
	searchActive  bool

	lastError string

	// loadDepth counts in-flight load-style operations; the loading
	// flag is true while any of them is outstanding.
	loadDepth int
}

// NewStore creates a console state store backed by the given gateway.
func NewStore(gw gateway.Gateway, opts StoreOptions) *Store {
	if opts.Hub == nil {
		opts.Hub = telemetry.NewHub()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.NarrativeLimit <= 0 {
		opts.NarrativeLimit = 10
	}
	if opts.DreamLimit <= 0 {
		opts.DreamLimit = 5
	}
	return &Store{
		gw:             gw,
		hub:            opts.Hub,
		log:            opts.Logger,
		validate:       validator.New(),
		sessionID:      opts.SessionID,
		narrativeLimit: opts.NarrativeLimit,
		dreamLimit:     opts.DreamLimit,
		draft:          mythology.NewDraft(),
	}
}

// Hub returns the event hub the store publishes to.
func (s *Store) Hub() *telemetry.Hub {
	return s.hub
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Narratives:    append([]mythology.NarrativeFragment(nil), s.narratives...),
		Dreams:        append([]mythology.DreamScenario(nil), s.dreams...),
		Stats:         s.stats,
		Loading:       s.loadDepth > 0,
		Draft:         s.draft,
		SearchKeyword: s.searchKeyword,
		SearchResults: append([]mythology.NarrativeFragment(nil), s.searchResults...),
		SearchActive:  s.searchActive,
		LastError:     s.lastError,
	}
}

// LoadAll runs the bulk refresh protocol: the three read endpoints are
// fetched concurrently and joined all-or-nothing. On success every
// fetched field is replaced in a single atomic transition. If any fetch
// fails, all three results are discarded so the renderer never sees
// mismatched cross-field state.
func (s *Store) LoadAll(ctx context.Context) error {
	s.beginLoad()

	var (
		narratives []mythology.NarrativeFragment
		dreams     []mythology.DreamScenario
		stats      mythology.AggregateStats

		narrativesOK, dreamsOK, statsOK bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		narratives, err = s.gw.FetchNarratives(gctx, s.narrativeLimit)
		narrativesOK = err == nil
		return err
	})
	g.Go(func() error {
		var err error
		dreams, err = s.gw.FetchDreams(gctx, s.dreamLimit)
		dreamsOK = err == nil
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.gw.FetchStats(gctx)
		statsOK = err == nil
		return err
	})

	if err := g.Wait(); err != nil {
		if narrativesOK || dreamsOK || statsOK {
			err = consoleerrors.Wrap(err, consoleerrors.ErrCodePartialRefresh,
				"bulk refresh partially failed; discarding all results").
				WithRetryable(true)
		}
		s.endLoad()
		s.fail(telemetry.EventLoadFailed, "load_all", err)
		return err
	}

	s.mu.Lock()
	s.narratives = narratives
	s.dreams = dreams
	s.stats = stats
	s.lastError = ""
	s.mu.Unlock()
	s.endLoad()

	s.hub.Publish(telemetry.Event{Type: telemetry.EventLoadCompleted, Data: map[string]any{
		"narratives": len(narratives),
		"dreams":     len(dreams),
	}})
	s.log.Info(logging.CategoryConsole, "load_all", "bulk refresh applied", map[string]any{
		"narratives": len(narratives),
		"dreams":     len(dreams),
	})
	return nil
}

// RefreshStats runs the stats-only refresh. Only the stats field is
// replaced; narrative and dream lists are untouched.
func (s *Store) RefreshStats(ctx context.Context) error {
	s.beginLoad()
	stats, err := s.gw.FetchStats(ctx)
	s.endLoad()
	if err != nil {
		s.fail(telemetry.EventLoadFailed, "refresh_stats", err)
		return err
	}

	s.mu.Lock()
	s.stats = stats
	s.lastError = ""
	s.mu.Unlock()

	s.hub.Publish(telemetry.Event{Type: telemetry.EventStatsRefreshed})
	return nil
}

// ProcessInteraction runs the submission protocol. The draft's required
// fields must be non-empty; a validation failure is caught before any
// gateway call. On success the returned fragment is prepended, the
// draft resets to defaults, and a stats-only refresh follows (only the
// aggregates are guaranteed stale by a submission).
func (s *Store) ProcessInteraction(ctx context.Context) error {
	s.mu.Lock()
	draft := s.draft
	draft.SessionID = s.sessionID
	s.mu.Unlock()

	if err := s.validate.Struct(draft); err != nil {
		verr := consoleerrors.Wrap(err, consoleerrors.ErrCodeValidation,
			"interaction and response are both required")
		s.fail(telemetry.EventProtocolFailed, "process_interaction", verr)
		return verr
	}

	fragment, err := s.gw.SubmitInteraction(ctx, draft)
	if err != nil {
		s.fail(telemetry.EventProtocolFailed, "process_interaction", err)
		return err
	}

	s.mu.Lock()
	s.narratives = append([]mythology.NarrativeFragment{fragment}, s.narratives...)
	s.draft = mythology.NewDraft()
	s.lastError = ""
	s.mu.Unlock()

	s.hub.Publish(telemetry.Event{Type: telemetry.EventNarrativeCreated, Data: map[string]any{
		"id":        fragment.ID,
		"archetype": string(fragment.Archetype),
	}})
	s.log.Info(logging.CategoryConsole, "narrative_created", "interaction processed", map[string]any{
		"id":   fragment.ID,
		"tone": string(fragment.EmotionalTone),
	})

	return s.RefreshStats(ctx)
}

// GenerateDream runs the dream-generation protocol: the new dream is
// prepended, then a full bulk refresh follows because dreaming may have
// side effects beyond the dream list on the remote service.
func (s *Store) GenerateDream(ctx context.Context) error {
	return s.generateDream(ctx, "generate_dream", s.gw.TriggerDream)
}

// GenerateEnhancedDream generates a dream seeded with an emotional tone.
func (s *Store) GenerateEnhancedDream(ctx context.Context, seed mythology.EmotionalTone) error {
	return s.generateDream(ctx, "generate_enhanced_dream", func(ctx context.Context) (mythology.DreamScenario, error) {
		return s.gw.TriggerEnhancedDream(ctx, seed)
	})
}

// GenerateMergerDream generates a consciousness-merger dream.
func (s *Store) GenerateMergerDream(ctx context.Context) error {
	return s.generateDream(ctx, "generate_merger_dream", s.gw.TriggerMergerDream)
}

func (s *Store) generateDream(ctx context.Context, op string, trigger func(context.Context) (mythology.DreamScenario, error)) error {
	dream, err := trigger(ctx)
	if err != nil {
		s.fail(telemetry.EventProtocolFailed, op, err)
		return err
	}

	s.mu.Lock()
	s.dreams = append([]mythology.DreamScenario{dream}, s.dreams...)
	s.lastError = ""
	s.mu.Unlock()

	s.hub.Publish(telemetry.Event{Type: telemetry.EventDreamGenerated, Data: map[string]any{
		"id":   dream.ID,
		"name": dream.NameSuggestion,
	}})
	s.log.Info(logging.CategoryConsole, op, "dream generated", map[string]any{
		"id":        dream.ID,
		"resonance": dream.ResonanceScore,
	})

	return s.LoadAll(ctx)
}

// SearchNarratives queries the service by keyword. Results are held in
// a dedicated snapshot field and never replace the narrative list.
func (s *Store) SearchNarratives(ctx context.Context, keyword string) error {
	s.beginLoad()
	results, err := s.gw.SearchNarratives(ctx, keyword)
	s.endLoad()
	if err != nil {
		s.fail(telemetry.EventProtocolFailed, "search_narratives", err)
		return err
	}

	s.mu.Lock()
	s.searchKeyword = keyword
	s.searchResults = results
	s.searchActive = true
	s.lastError = ""
	s.mu.Unlock()

	s.hub.Publish(telemetry.Event{Type: telemetry.EventSearchCompleted, Data: map[string]any{
		"keyword": keyword,
		"results": len(results),
	}})
	return nil
}

// ClearSearch drops any active search results.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	s.searchKeyword = ""
	s.searchResults = nil
	s.searchActive = false
	s.mu.Unlock()
	s.hub.Publish(telemetry.Event{Type: telemetry.EventSearchCleared})
}

// EditDraft applies a user edit to the in-progress draft.
func (s *Store) EditDraft(edit func(*mythology.InteractionDraft)) {
	s.mu.Lock()
	edit(&s.draft)
	s.mu.Unlock()
	s.hub.Publish(telemetry.Event{Type: telemetry.EventDraftChanged})
}

// ResetDraft restores the draft to empty defaults.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	s.draft = mythology.NewDraft()
	s.mu.Unlock()
	s.hub.Publish(telemetry.Event{Type: telemetry.EventDraftChanged})
}

func (s *Store) beginLoad() {
	s.mu.Lock()
	s.loadDepth++
	first := s.loadDepth == 1
	s.mu.Unlock()
	if first {
		s.hub.Publish(telemetry.Event{Type: telemetry.EventLoadStarted})
	}
}

func (s *Store) endLoad() {
	s.mu.Lock()
	if s.loadDepth > 0 {
		s.loadDepth--
	}
	s.mu.Unlock()
}

// fail records a surfaced failure: last-known-good state is retained,
// the error is logged, and subscribers are notified.
func (s *Store) fail(event telemetry.EventType, op string, err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()

	s.log.Error(logging.CategoryConsole, op, err.Error(), nil)
	s.hub.Publish(telemetry.Event{Type: event, Err: err, Data: map[string]any{"op": op}})
}
