package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-profile/internal/domain"
	"github.com/naka-gawa/github-profile/internal/gateway"
)

// ProfileOrchestrator owns the view-state machine for one profile screen.
// It fetches the user and their repositories concurrently, joins the two
// results into a single transition, and publishes every transition on a
// single-writer stream. Optional capabilities (search history) are
// injected at construction instead of subclassed.
type ProfileOrchestrator struct {
	gateway gateway.UserRepository
	logger  *log.Logger

	history  *SearchHistory
	platform Platform

	mu         sync.Mutex
	state      domain.ViewState
	generation uint64
	cancelPrev context.CancelFunc

	transitions chan domain.ViewState
}

// OrchestratorOption configures optional orchestrator capabilities.
type OrchestratorOption func(*ProfileOrchestrator)

// WithHistory attaches a search-history recorder. Every validated fetch
// request records its username under the given platform.
func WithHistory(history *SearchHistory, platform Platform) OrchestratorOption {
	return func(o *ProfileOrchestrator) {
		o.history = history
		o.platform = platform
	}
}

// WithLogger replaces the default discarding logger.
func WithLogger(logger *log.Logger) OrchestratorOption {
	return func(o *ProfileOrchestrator) {
		o.logger = logger
	}
}

// NewProfileOrchestrator creates an orchestrator in the idle state.
func NewProfileOrchestrator(gw gateway.UserRepository, opts ...OrchestratorOption) *ProfileOrchestrator {
	o := &ProfileOrchestrator{
		gateway:     gw,
		logger:      log.New(io.Discard, "", log.LstdFlags),
		state:       domain.Idle(),
		transitions: make(chan domain.ViewState, 16),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current view state.
func (o *ProfileOrchestrator) State() domain.ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Transitions is the single-writer stream of state transitions. The
// channel is buffered; a consumer that falls far behind misses
// intermediate transitions but State always reflects the latest.
func (o *ProfileOrchestrator) Transitions() <-chan domain.ViewState {
	return o.transitions
}

// FetchProfile runs the fetch state machine for one username and returns
// the terminal state of this request. The two sub-fetches run
// concurrently and are joined before any terminal transition, so a
// loaded state always carries both the user and the repository list.
// Calling FetchProfile while a previous request is in flight cancels the
// predecessor; a superseded request publishes no terminal transition.
func (o *ProfileOrchestrator) FetchProfile(ctx context.Context, username string) domain.ViewState {
	username = strings.TrimSpace(username)
	if username == "" {
		state := domain.Errored(domain.ErrUnexpected("Username cannot be empty"))
		gen := o.begin(nil)
		o.publish(gen, state)
		return state
	}

	reqCtx, cancel := context.WithCancel(ctx)
	gen := o.begin(cancel)
	o.publish(gen, domain.Loading())

	if o.history != nil {
		if err := o.history.Add(ctx, username, o.platform); err != nil {
			o.logger.Printf("Failed to record search history for %q: %v", username, err)
		}
	}

	o.logger.Printf("Orchestrator: fetching profile for %q...", username)

	var user domain.User
	var repos []domain.Repository
	var userErr, repoErr error

	// Each goroutine owns its result and error; returning nil keeps a
	// failure in one fetch from cancelling the other mid-flight.
	eg, egCtx := errgroup.WithContext(reqCtx)
	eg.Go(func() error {
		user, userErr = o.gateway.FetchUser(egCtx, username)
		return nil
	})
	eg.Go(func() error {
		repos, repoErr = o.gateway.FetchUserRepositories(egCtx, username)
		return nil
	})
	_ = eg.Wait()

	var state domain.ViewState
	switch {
	case userErr != nil:
		// The user-fetch error takes precedence when both fail;
		// repositories are meaningless without a resolved user.
		state = domain.Errored(asAppError(userErr))
	case repoErr != nil:
		state = domain.Errored(asAppError(repoErr))
	default:
		state = domain.Loaded(user, repos)
	}

	if !o.publish(gen, state) {
		o.logger.Printf("Orchestrator: request for %q superseded, dropping result.", username)
		return o.State()
	}
	o.logger.Printf("Orchestrator: profile fetch for %q finished in state %s.", username, state.Phase)
	return state
}

// begin registers a new request: it supersedes and cancels any in-flight
// predecessor and returns the new request's generation.
func (o *ProfileOrchestrator) begin(cancel context.CancelFunc) uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancelPrev != nil {
		o.cancelPrev()
	}
	o.cancelPrev = cancel
	o.generation++
	return o.generation
}

// publish installs the state and emits it on the stream, unless the
// request has been superseded by a newer generation.
func (o *ProfileOrchestrator) publish(gen uint64, state domain.ViewState) bool {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return false
	}
	o.state = state
	o.mu.Unlock()

	select {
	case o.transitions <- state:
	default:
	}
	return true
}

// asAppError recovers the taxonomy error from a gateway failure, wrapping
// anything uncategorized as unexpected.
func asAppError(err error) *domain.AppError {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return domain.ErrUnexpected(err.Error())
}
