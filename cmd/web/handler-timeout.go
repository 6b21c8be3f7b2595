package main

import (
	"net/http"
	"time"
)

const timeoutBody = `<!doctype html>
<html lang="en">
<head><title>Timeout - LIFEtune</title></head>
<body>
<h1>The table is busy</h1>
<p>Your last move may not have been applied. Reload the board to see where the game stands.</p>
<a href="/game">Back to the board</a>
</body>
</html>
`

// timeoutHandler responds with a 503 Service Unavailable error when the handler does not meet the deadline.
func timeoutHandler(h http.Handler, serverTimeout time.Duration) http.Handler {
	// Slightly shorter than the server's write timeout so that the client still receives the response.
	httpHandlerTimeout := serverTimeout - 500*time.Millisecond //nolint:mnd // 500ms
	return http.TimeoutHandler(h, httpHandlerTimeout, timeoutBody)
}
