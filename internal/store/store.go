package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/track"
)

// ErrClosed is returned when a result arrives after Close; the result is
// discarded instead of being applied to a torn-down store.
var ErrClosed = errors.New("store closed")

// Remote is the persistence collaborator the store reconciles against.
// The HTTP implementation lives in internal/client; tests substitute a
// fake.
type Remote interface {
	FetchState(ctx context.Context) (*models.State, error)

	CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error)
	UpdateFolder(ctx context.Context, id string, req *models.UpdateFolderRequest) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	CreateModule(ctx context.Context, req *models.CreateModuleRequest) (*models.Module, error)
	UpdateModule(ctx context.Context, id string, req *models.UpdateModuleRequest) (*models.Module, error)
	DeleteModule(ctx context.Context, id string) error

	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, req *models.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// Session supplies the current authenticated identity. UserID returns ""
// when signed out, in which case the store holds an empty snapshot and
// refuses mutations before any network call.
type Session interface {
	UserID() string
}

// Store owns the current snapshot of folders, modules, entries and
// profile, and reconciles create/update/delete operations against the
// remote. It is constructed explicitly at the application boundary and
// passed to consumers; there is no package-level instance.
//
// Mutations are serialized by a mutex (last-write-wins races between
// concurrent mutations are resolved by never running them concurrently).
// Busy() stays an advisory flag for UI affordances. Readers are
// lock-free: the snapshot is swapped atomically as a whole, so no reader
// ever observes folders from one fetch and entries from another.
type Store struct {
	remote  Remote
	session Session
	logger  *slog.Logger

	mu   sync.Mutex // serializes Refresh and all mutations
	snap atomic.Pointer[track.Snapshot]
	busy atomic.Bool

	closed  atomic.Bool
	deriver track.Deriver

	errMu   sync.Mutex
	lastErr error
}

// New creates a store starting from an empty snapshot.
func New(remote Remote, session Session, logger *slog.Logger) *Store {
	s := &Store{
		remote:  remote,
		session: session,
		logger:  logger,
	}
	s.snap.Store(emptySnapshot(0))
	return s
}

func emptySnapshot(version int64) *track.Snapshot {
	return &track.Snapshot{
		Version: version,
		Folders: []models.Folder{},
		Modules: []models.Module{},
		Entries: []models.Entry{},
	}
}

// Snapshot returns the current snapshot. The returned value is
// immutable; a later change installs a new snapshot with a higher
// version.
func (s *Store) Snapshot() *track.Snapshot {
	return s.snap.Load()
}

// Derived returns the derivation pipeline output for the current
// snapshot, memoized on snapshot identity.
func (s *Store) Derived() (*track.Derived, error) {
	return s.deriver.Derive(s.Snapshot())
}

// Busy reports whether a refresh or mutation is in flight. Advisory
// only: callers use it to disable triggers, not for synchronization.
func (s *Store) Busy() bool {
	return s.busy.Load()
}

// LastError returns the most recent refresh/mutation failure, for
// passive display alongside the error returned to the caller.
func (s *Store) LastError() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Close marks the store dead. In-flight requests are not aborted, but
// their results are discarded rather than applied.
func (s *Store) Close() {
	s.closed.Store(true)
}

// Refresh replaces the entire snapshot from the remote in one fetch.
// All four collections swap together. With no signed-in user the store
// resets to an empty snapshot without a network call.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Store(true)
	defer s.busy.Store(false)

	if s.session.UserID() == "" {
		s.install(func(next *track.Snapshot) {
			*next = *emptySnapshot(next.Version)
		})
		return nil
	}

	state, err := s.remote.FetchState(ctx)
	if err != nil {
		s.setErr(err)
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		next.Profile = state.Profile
		next.Folders = state.Folders
		next.Modules = state.Modules
		next.Entries = state.Entries
		if next.Folders == nil {
			next.Folders = []models.Folder{}
		}
		if next.Modules == nil {
			next.Modules = []models.Module{}
		}
		if next.Entries == nil {
			next.Entries = []models.Entry{}
		}
		track.SortEntries(next.Entries)
	})

	s.logger.Debug("snapshot refreshed",
		"folders", len(state.Folders),
		"modules", len(state.Modules),
		"entries", len(state.Entries),
	)
	return nil
}

// install swaps in a new snapshot built from a copy of the current one.
// Caller must hold s.mu.
func (s *Store) install(mutate func(next *track.Snapshot)) {
	current := s.snap.Load()
	next := &track.Snapshot{
		Version: current.Version + 1,
		Profile: current.Profile,
		Folders: append([]models.Folder(nil), current.Folders...),
		Modules: append([]models.Module(nil), current.Modules...),
		Entries: append([]models.Entry(nil), current.Entries...),
	}
	mutate(next)
	s.snap.Store(next)
}

func (s *Store) setErr(err error) {
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
}

// begin performs the pre-flight auth check and acquires the mutation
// lock. The auth failure is local: no network call is attempted.
func (s *Store) begin() error {
	if s.session.UserID() == "" {
		err := &domain.UnauthorizedError{Message: "you must be signed in to make changes"}
		s.setErr(err)
		return err
	}
	s.mu.Lock()
	s.busy.Store(true)
	return nil
}

func (s *Store) end() {
	s.busy.Store(false)
	s.mu.Unlock()
}

// CreateFolder creates a folder remotely and appends it to the snapshot.
func (s *Store) CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	folder, err := s.remote.CreateFolder(ctx, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		next.Folders = append(next.Folders, *folder)
	})
	return folder, nil
}

// UpdateFolder updates a folder remotely and replaces it in place.
func (s *Store) UpdateFolder(ctx context.Context, id string, req *models.UpdateFolderRequest) (*models.Folder, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	folder, err := s.remote.UpdateFolder(ctx, id, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		for i := range next.Folders {
			if next.Folders[i].ID == id {
				next.Folders[i] = *folder
				break
			}
		}
	})
	return folder, nil
}

// DeleteFolder deletes a folder remotely, then refetches the whole
// snapshot: the remote cascades to descendant folders, modules and
// entries, and the local snapshot cannot know which rows disappeared.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}

	err := s.remote.DeleteFolder(ctx, id)
	s.end()
	if err != nil {
		s.setErr(err)
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	return s.Refresh(ctx)
}

// CreateModule creates a module remotely and appends it to the snapshot.
func (s *Store) CreateModule(ctx context.Context, req *models.CreateModuleRequest) (*models.Module, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	module, err := s.remote.CreateModule(ctx, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		next.Modules = append(next.Modules, *module)
	})
	return module, nil
}

// UpdateModule updates a module remotely and replaces it in place.
func (s *Store) UpdateModule(ctx context.Context, id string, req *models.UpdateModuleRequest) (*models.Module, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	module, err := s.remote.UpdateModule(ctx, id, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		for i := range next.Modules {
			if next.Modules[i].ID == id {
				next.Modules[i] = *module
				break
			}
		}
	})
	return module, nil
}

// DeleteModule deletes a module remotely, then refetches: the remote
// cascades the module's entries away.
func (s *Store) DeleteModule(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}

	err := s.remote.DeleteModule(ctx, id)
	s.end()
	if err != nil {
		s.setErr(err)
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	return s.Refresh(ctx)
}

// CreateEntry creates an entry remotely and prepends it, keeping the
// most-recent-first ordering of the entry list.
func (s *Store) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	entry, err := s.remote.CreateEntry(ctx, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		next.Entries = append([]models.Entry{*entry}, next.Entries...)
	})
	return entry, nil
}

// UpdateEntry updates an entry remotely and replaces it in place.
func (s *Store) UpdateEntry(ctx context.Context, id string, req *models.UpdateEntryRequest) (*models.Entry, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	entry, err := s.remote.UpdateEntry(ctx, id, req)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		for i := range next.Entries {
			if next.Entries[i].ID == id {
				next.Entries[i] = *entry
				break
			}
		}
	})
	return entry, nil
}

// DeleteEntry deletes an entry remotely and removes it locally; nothing
// cascades from an entry, so no refetch is needed.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.remote.DeleteEntry(ctx, id); err != nil {
		s.setErr(err)
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	s.install(func(next *track.Snapshot) {
		for i := range next.Entries {
			if next.Entries[i].ID == id {
				next.Entries = append(next.Entries[:i], next.Entries[i+1:]...)
				break
			}
		}
	})
	return nil
}

// SetProfile patches the snapshot's profile after an external update
// (profile edits don't go through the Remote CRUD surface).
func (s *Store) SetProfile(profile *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(func(next *track.Snapshot) {
		next.Profile = profile
	})
}
