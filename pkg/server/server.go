package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"spellserve/pkg/config"
	"spellserve/pkg/speller"
	"spellserve/pkg/vocab"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling corrections.
type Server struct {
	speller *speller.Speller
	vocab   *vocab.Vocabulary
	config  *config.Config
	in      io.Reader
	out     io.Writer
}

// NewServer creates a new correction server using stdin/stdout for IPC.
func NewServer(sp *speller.Speller, v *vocab.Vocabulary, cfg *config.Config) *Server {
	return &Server{
		speller: sp,
		vocab:   v,
		config:  cfg,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	dec := msgpack.NewDecoder(s.in)
	enc := msgpack.NewEncoder(s.out)

	// Signal that the server is ready
	s.send(enc, HealthResponse{Status: "ready", Words: s.vocab.Len()})

	for {
		var request Request
		if err := dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(enc, request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(enc *msgpack.Encoder, request Request) {
	switch request.Action {
	case "suggest":
		s.handleSuggest(enc, request)
	case "complete":
		s.handleComplete(enc, request)
	case "health":
		s.send(enc, HealthResponse{ID: request.ID, Status: "ok", Words: s.vocab.Len()})
	default:
		s.sendError(enc, request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

// handleSuggest validates a correction request and runs the speller.
func (s *Server) handleSuggest(enc *msgpack.Encoder, request Request) {
	word, ok := s.validateWord(enc, request)
	if !ok {
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	suggestions, err := s.speller.Suggest(word, limit)
	elapsed := time.Since(start)

	if err != nil {
		s.sendError(enc, request.ID, err.Error(), 400)
		return
	}

	results := make([]Suggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		results = append(results, Suggestion{Word: sg.Word, Probability: sg.Probability})
	}

	s.send(enc, SuggestResponse{
		ID:          request.ID,
		Suggestions: results,
		Count:       len(results),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleComplete serves prefix completions straight from the vocabulary trie.
func (s *Server) handleComplete(enc *msgpack.Encoder, request Request) {
	prefix, ok := s.validateWord(enc, request)
	if !ok {
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	completions := s.vocab.Complete(prefix, limit)
	elapsed := time.Since(start)

	results := make([]Completion, 0, len(completions))
	for _, c := range completions {
		results = append(results, Completion{Word: c.Word, Frequency: c.Frequency})
	}

	s.send(enc, CompleteResponse{
		ID:          request.ID,
		Completions: results,
		Count:       len(results),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// validateWord checks the word parameter shared by suggest and complete.
func (s *Server) validateWord(enc *msgpack.Encoder, request Request) (string, bool) {
	if request.Word == "" {
		s.sendError(enc, request.ID, "missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return "", false
	}
	if len(request.Word) > s.config.Server.MaxWordLen {
		s.sendError(enc, request.ID,
			fmt.Sprintf("word exceeds maximum length of %d characters", s.config.Server.MaxWordLen), 400)
		log.Debug("Word is too long in request")
		return "", false
	}
	return request.Word, true
}

// clampLimit applies the configured default and ceiling to a request limit.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		return s.config.Speller.DefaultLimit
	}
	if limit > s.config.Server.MaxLimit {
		return s.config.Server.MaxLimit
	}
	return limit
}

// send encodes one response message.
func (s *Server) send(enc *msgpack.Encoder, response any) {
	if err := enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(enc *msgpack.Encoder, id, message string, code int) {
	s.send(enc, ErrorResponse{ID: id, Error: message, Code: code})
}
