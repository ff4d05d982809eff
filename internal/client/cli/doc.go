// Package cli is the interactive shell of the Filebox client: a cobra root
// command that drops into a small REPL with login/register commands and a
// dashboard (list, upload, delete) once authenticated.
//
// The package is also the composition root: it opens the local database,
// rehydrates the persisted session, builds the store, binds the token
// provider, and wires the API client and services together.
package cli
