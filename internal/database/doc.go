// Package database persists the application snapshot.
//
// The [Store] interface abstracts the backend so either can be used
// interchangeably. The backend is selected at build time:
//   - Default: BoltDB, snapshot JSON under a fixed bucket/key
//   - With -tags sqlite: SQLite via modernc.org/sqlite, single-row table
//
// Both store the whole state tree as one JSON document and stamp a fresh
// revision UID on every save.
package database
