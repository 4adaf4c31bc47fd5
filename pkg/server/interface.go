/*
Package server implements msgpack IPC for spelling correction services.

The server provides a minimal request/response interface over stdin/stdout
using binary msgpack encoding. Messages are processed synchronously with
timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses through
stdout. Each message carries an ID the response echoes back, an action, and
the word being queried.

Correction requests use this structure:

	{"id": "req_001", "a": "suggest", "w": "teh", "l": 3}

The server responds with candidates ranked by corpus probability:

	{"id": "req_001", "s": [{"w": "the", "p": 0.847}], "c": 1, "t": 145}

The "complete" action returns known words extending a prefix instead, ranked
by raw frequency. "health" reports server status and vocabulary size.

Error responses carry an HTTP-style code and a message:

	{"id": "req_001", "e": "missing 'w' parameter", "c": 400}

msgpack keeps messages roughly 30 to 50% smaller than JSON and parses faster,
which matters for editor integrations issuing a request per keystroke.
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`           // "suggest", "complete", "health"
	Word   string `msgpack:"w,omitempty"` // query word, or prefix for "complete"
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked correction in a response.
type Suggestion struct {
	Word        string  `msgpack:"w"`
	Probability float64 `msgpack:"p"`
}

// SuggestResponse answers a "suggest" request.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"` // microseconds
}

// Completion is one prefix completion in a response.
type Completion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// CompleteResponse answers a "complete" request.
type CompleteResponse struct {
	ID          string       `msgpack:"id"`
	Completions []Completion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// HealthResponse answers a "health" request and is also sent once at startup.
type HealthResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Words  int    `msgpack:"words,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
