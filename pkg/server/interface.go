/*
Package server implements msgpack IPC for spelling correction services.

The server reads a stream of msgpack maps from stdin and writes one msgpack map
per request to stdout. Requests are handled strictly in order with timing info
included in responses. Logs never go to stdout.

# IPC

Every request carries an ID, echoed back in the response, and an action:

	{"id": "req_001", "a": "correct", "w": "speling"}

	{"id": "req_001", "w": "speling", "c": "spelling", "ch": true, "t": 412}

An empty action means "correct". Suggestions come ranked by corpus frequency:

	{"id": "req_002", "a": "suggest", "w": "cbt", "l": 5}

	{"id": "req_002", "s": [{"w": "cat", "f": 76, "d": 1, "r": 1}, {"w": "cot", "f": 12, "d": 1, "r": 2}], "c": 2, "t": 230}

The corpus can be replaced at runtime; on failure the old one stays loaded:

	{"id": "load_1", "a": "load", "path": "/data/big.txt"}
	{"id": "stats_1", "a": "stats"}
	{"id": "ping", "a": "health"}

	{"id": "load_1", "status": "ok", "stats": {"distinctWords": 32198, "totalTokens": 1105285, ...}}

# Errors

	{"id": "req_003", "e": "word exceeds maximum length of 60 characters", "c": 400}

Codes: 400 for malformed requests, empty or overlong words and unknown actions;
404 when a corpus path does not exist; 500 when a corpus could not be read.
*/
package server

// Request is any client message. Which fields matter depends on Action.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Path   string `msgpack:"path,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CorrectResponse answers a correct request. Changed is false when the word was
// already known or nothing better was found; Corrected then equals Word.
type CorrectResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Corrected string `msgpack:"c"`
	Changed   bool   `msgpack:"ch"`
	TimeTaken int64  `msgpack:"t"`
}

// SuggestionItem - one ranked suggestion
type SuggestionItem struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
	Distance  int    `msgpack:"d"`
	Rank      uint16 `msgpack:"r"`
}

// SuggestResponse answers a suggest request.
type SuggestResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []SuggestionItem `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
}

// StatusResponse answers load, stats and health requests.
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for any failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Actions understood by the server.
const (
	ActionCorrect = "correct"
	ActionSuggest = "suggest"
	ActionLoad    = "load"
	ActionStats   = "stats"
	ActionHealth  = "health"
)
