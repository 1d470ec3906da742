// Package accounts is the member account service: registration, login,
// session tracking and profile changes over a durable key/value store.
//
// # State
//
// The service keeps the whole user collection and the current session user
// in memory. Both are loaded once by NewService and then written through to
// the store on every mutation: a call that reports success has already
// persisted its change, and a call whose write fails leaves memory exactly
// as it was.
//
// # Invariants
//
//   - Emails are unique (exact, case-sensitive match), including on update.
//   - IDs are unique and never handed out twice by one Service, even after
//     the owning record is deleted.
//   - The session user, when set, refers to a stored record. Deleting that
//     record logs out; a dangling session found at startup is dropped.
//
// # Errors
//
// Operations never return a Go error or panic on domain failures. They
// return a Result whose Err is common.ErrDuplicateEmail,
// common.ErrInvalidCredentials, common.ErrUserNotFound or a wrapped
// common.ErrStorage.
//
// Known limitations carried on purpose: passwords are stored and compared in
// plain text, sessions never expire and there is no login throttling.
package accounts
