package xhttp

const (
	XAPIKey     = "X-API-Key"
	XSessionID  = "X-Session-ID"
	Accept      = "Accept"
	ContentType = "Content-Type"
)

const ApplicationJSON = "application/json"
