// Package state holds the single in-memory application state tree:
// the record store, the column registry, the edit buffer and the UI
// selection (search term, sort spec, current page).
//
// All mutation goes through the enumerated operations on [AppState];
// nothing else writes the tree. Operations referencing a missing record
// id or column key are silent no-ops so handlers stay idempotent against
// stale references. The model is cooperative single-actor: every
// operation runs to completion inside one user action, so there is no
// locking.
package state
