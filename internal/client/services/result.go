package services

// Result is what every flow returns to the view layer. Error is display-ready;
// the view never sees raw errors or raw HTTP responses.
type Result struct {
	Success bool
	Error   string
}

func ok() Result {
	return Result{Success: true}
}

func fail(msg string) Result {
	return Result{Success: false, Error: msg}
}

// Navigator is the view-level side effect of a session expiry. The CLI
// implements it by dropping back to the login prompt; a browser shell would
// route to the login page.
type Navigator interface {
	ToLogin()
}

// SessionExpiredError is the flow-level message for a rejected credential.
const SessionExpiredError = "Session expired"
