// Package devserver is a self-contained development backend for the Filebox
// client. It implements the same REST surface the client consumes — auth,
// current user, health, and file management — with in-memory storage, bcrypt
// password hashing, and HS256 JWT credentials.
//
// Success bodies are wrapped in the {success, message, data} envelope the
// client knows how to unwrap; failures carry {success:false, message}.
//
// It exists for local development and end-to-end tests, not for production:
// state lives in process memory and is gone on restart.
package devserver
