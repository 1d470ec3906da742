// Package cli provides the interactive UNITY FITNESS terminal front end.
//
// It wires configuration, the account service and the promo carousel into a
// read–eval–print loop. Every screen is framed by a navbar that reflects the
// login state and a footer; results of member actions appear as transient
// alert banners that expire after the configured timeout.
//
// Key features:
//   - Register / Login / Logout with form validation
//   - Dashboard and profile editing for the logged-in member
//   - Member listing, deletion and a full data reset
//   - An auto-advancing promo carousel that can be paused or jumped
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
