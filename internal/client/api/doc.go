// Package api is the single chokepoint for requests to the Filebox backend.
//
// A Client wraps a resty HTTP client whose request middleware injects the
// current bearer credential, read through a late-bound token provider.
// Every call — success, HTTP failure, or transport failure — is normalized
// into a Result so callers never deal with raw errors or raw responses:
//
//	Status 0   — transport failure, Error holds the message
//	Status 4xx — Error holds the server's message field (or "HTTP Error n")
//	Status 2xx — Data holds the decoded payload
//
// Success bodies may arrive wrapped in a {success, message, data} envelope;
// the Client unwraps exactly one level when the envelope's data member is
// present.
//
// The Client deliberately does not react to 401 responses: session
// invalidation is owned by the service flows, which keeps the Client
// reusable and testable in isolation.
package api
