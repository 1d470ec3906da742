package accounts

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gymkeeper/internal/common"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/storage"
)

// Store is the persistence the service writes through to. *storage.Adapter
// implements it.
type Store interface {
	LoadJSON(ctx context.Context, key string, dst any) bool
	SaveJSON(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, keys ...string) error
}

type Service struct {
	mu    sync.Mutex
	store Store
	log   logging.Logger
	now   func() time.Time

	users   []User
	current *User
	lastID  int64
}

type Option func(*Service)

// WithClock replaces time.Now, which stamps ids and CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(log logging.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService loads the persisted users and session from store. Missing or
// corrupt data starts the service empty.
func NewService(ctx context.Context, store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logging.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	store.LoadJSON(ctx, storage.KeyUsers, &s.users)
	for _, u := range s.users {
		s.lastID = max(s.lastID, u.ID)
	}

	var current User
	if store.LoadJSON(ctx, storage.KeySession, &current) {
		if s.indexByID(current.ID) < 0 {
			s.log.Warn(ctx, "session user no longer exists, dropping session", "user_id", current.ID)
			if err := store.Remove(ctx, storage.KeySession); err != nil {
				s.log.Error(ctx, "failed to drop stale session", "error", err)
			}
		} else {
			s.current = &current
		}
	}

	s.log.Debug(ctx, "account service loaded", "users", len(s.users), "logged_in", s.current != nil)
	return s
}

// Register creates an account. It fails when the email is taken. The
// session is not touched.
func (s *Service) Register(ctx context.Context, reg Registration) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexByEmail(reg.Email) >= 0 {
		s.log.Info(ctx, "registration rejected, email taken", "email", reg.Email)
		return fail(MsgDuplicateEmail, common.ErrDuplicateEmail)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	u := User{
		ID:         s.nextID(now),
		FullName:   reg.FullName,
		Email:      reg.Email,
		Phone:      reg.Phone,
		NationalID: reg.NationalID,
		Password:   reg.Password,
		CreatedAt:  now,
		Extra:      cleanExtra(reg.Extra),
	}

	next := append(slices.Clone(s.users), u)
	if err := s.store.SaveJSON(ctx, storage.KeyUsers, next); err != nil {
		return s.storageFailure(ctx, "register", err)
	}
	s.users = next

	s.log.Info(ctx, "user registered", "user_id", u.ID, "email", u.Email)
	created := u.Clone()
	return ok(MsgRegistered, &created)
}

// Login starts a session for the first record whose email and password both
// match. The failure message does not say which of the two was wrong.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u User) bool {
		return u.Email == email && u.Password == password
	})
	if idx < 0 {
		s.log.Info(ctx, "login failed", "email", email)
		return fail(MsgInvalidCredentials, common.ErrInvalidCredentials)
	}

	session := s.users[idx].Clone()
	if err := s.store.SaveJSON(ctx, storage.KeySession, session); err != nil {
		return s.storageFailure(ctx, "login", err)
	}
	s.current = &session

	s.log.Info(ctx, "user logged in", "user_id", session.ID)
	u := session.Clone()
	return ok(MsgLoggedIn, &u)
}

// Logout ends the session. Calling it without a session still succeeds.
func (s *Service) Logout(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logout(ctx)
}

func (s *Service) logout(ctx context.Context) Result {
	if err := s.store.Remove(ctx, storage.KeySession); err != nil {
		return s.storageFailure(ctx, "logout", err)
	}
	if s.current != nil {
		s.log.Info(ctx, "user logged out", "user_id", s.current.ID)
	}
	s.current = nil
	return ok(MsgLoggedOut, nil)
}

// CurrentUser returns a copy of the session user, or nil.
func (s *Service) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := s.current.Clone()
	return &u
}

func (s *Service) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// UpdateProfile merges patch into the record with the given id. If that
// record is the session user the session copy is refreshed too.
func (s *Service) UpdateProfile(ctx context.Context, id int64, patch Patch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		return fail(MsgUserNotFound, common.ErrUserNotFound)
	}
	if patch.Email != nil && *patch.Email != s.users[idx].Email && s.indexByEmail(*patch.Email) >= 0 {
		return fail(MsgDuplicateEmail, common.ErrDuplicateEmail)
	}

	updated := s.users[idx].Clone()
	patch.applyTo(&updated)

	next := slices.Clone(s.users)
	next[idx] = updated
	if err := s.store.SaveJSON(ctx, storage.KeyUsers, next); err != nil {
		return s.storageFailure(ctx, "update profile", err)
	}
	s.users = next

	if s.current != nil && s.current.ID == id {
		session := updated.Clone()
		if err := s.store.SaveJSON(ctx, storage.KeySession, session); err != nil {
			return s.storageFailure(ctx, "refresh session", err)
		}
		s.current = &session
	}

	s.log.Info(ctx, "profile updated", "user_id", id)
	u := updated.Clone()
	return ok(MsgProfileUpdated, &u)
}

// AllUsers returns a copy of every record in registration order.
func (s *Service) AllUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// DeleteUser removes the record with the given id, logging out first when
// it is the session user.
func (s *Service) DeleteUser(ctx context.Context, id int64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		return fail(MsgUserNotFound, common.ErrUserNotFound)
	}

	next := slices.Delete(slices.Clone(s.users), idx, idx+1)
	if err := s.store.SaveJSON(ctx, storage.KeyUsers, next); err != nil {
		return s.storageFailure(ctx, "delete user", err)
	}
	s.users = next

	if s.current != nil && s.current.ID == id {
		if res := s.logout(ctx); !res.Success {
			// the record is gone either way; the stale key is dropped at startup
			s.current = nil
			return res
		}
	}

	s.log.Info(ctx, "user deleted", "user_id", id)
	return ok(MsgUserDeleted, nil)
}

// ClearAllData wipes both persisted keys and empties the service. Meant for
// tests and resets.
func (s *Service) ClearAllData(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, storage.KeyUsers, storage.KeySession); err != nil {
		return s.storageFailure(ctx, "clear data", err)
	}
	// lastID survives so ids stay unique for the life of the service
	s.users = nil
	s.current = nil

	s.log.Warn(ctx, "all account data cleared")
	return ok(MsgDataCleared, nil)
}

// nextID derives an id from the clock in Unix milliseconds, bumped past the
// last one issued when the clock has not moved on.
func (s *Service) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) indexByID(id int64) int {
	return slices.IndexFunc(s.users, func(u User) bool { return u.ID == id })
}

func (s *Service) indexByEmail(email string) int {
	return slices.IndexFunc(s.users, func(u User) bool { return u.Email == email })
}

func (s *Service) storageFailure(ctx context.Context, op string, err error) Result {
	s.log.Error(ctx, "account store write failed", "op", op, "error", err)
	return fail(MsgStorageError, fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err))
}
