// Package cli contains the bubbletea models for the interactive table:
// the table view itself, the manage-columns view, the delete
// confirmation and the preferences form. The models are pure consumers
// of the view pipeline; every state change is dispatched through the
// operations on state.AppState and the snapshot is persisted after each
// mutation.
package cli
