// Package services contains the asynchronous action flows of the Filebox
// client: each flow calls a domain API module, interprets the normalized
// result, dispatches store mutations, and hands the view a uniform
// success/error outcome.
//
// Flows own the reaction to HTTP 401: any protected call that comes back
// unauthorized triggers the session-expiry path — auth slice cleared,
// durable snapshot removed via the store's persistence observer, and a
// single navigation back to the login entry point.
package services
