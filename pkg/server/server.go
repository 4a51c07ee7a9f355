package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling corrections
type Server struct {
	speller  suggest.ISpeller
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	out      *bufio.Writer
	log      *log.Logger
	requests int
}

// NewServer creates a server reading requests from r and writing responses to w.
// cmd/spellserve passes stdin and stdout.
func NewServer(speller suggest.ISpeller, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		speller: speller,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(out),
		out:     out,
		log:     logger.New("server"),
	}
}

// Start serves requests until the input is closed. It returns nil on a clean EOF
// and an error when the stream itself is corrupt or a response cannot be written.
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	if err := s.sendResponse(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.log.Errorf("Reading request stream: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requests++

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			s.log.Warnf("Malformed request: %v", err)
			if err := s.sendError("", "Invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}

		if err := s.sendResponse(s.handleRequest(request)); err != nil {
			return err
		}
	}
}

// handleRequest dispatches a request and returns the response to send.
func (s *Server) handleRequest(request Request) any {
	switch strings.ToLower(request.Action) {
	case "", ActionCorrect:
		return s.handleCorrect(request)
	case ActionSuggest:
		return s.handleSuggest(request)
	case ActionLoad:
		return s.handleLoad(request)
	case ActionStats:
		return StatusResponse{ID: request.ID, Status: "ok", Stats: s.speller.Stats()}
	case ActionHealth:
		return StatusResponse{ID: request.ID, Status: "ok"}
	default:
		return ErrorResponse{ID: request.ID, Error: fmt.Sprintf("Unknown action: %s", request.Action), Code: 400}
	}
}

// validateWord checks the word of a request; it returns nil when the word is usable.
func (s *Server) validateWord(request Request) *ErrorResponse {
	word := strings.TrimSpace(request.Word)
	if word == "" {
		s.log.Debug("Word is empty in request", "id", request.ID)
		return &ErrorResponse{ID: request.ID, Error: "Missing 'w' parameter", Code: 400}
	}
	if maxLen := s.config.Server.MaxWordLen; utf8.RuneCountInString(word) > maxLen {
		s.log.Debug("Word is too long in request", "id", request.ID)
		return &ErrorResponse{
			ID:    request.ID,
			Error: fmt.Sprintf("word exceeds maximum length of %d characters", maxLen),
			Code:  400,
		}
	}
	return nil
}

func (s *Server) handleCorrect(request Request) any {
	if errResp := s.validateWord(request); errResp != nil {
		return *errResp
	}

	start := time.Now()
	corrected, err := s.speller.Correct(request.Word)
	elapsed := time.Since(start)
	if err != nil {
		return s.errorFor(request.ID, err)
	}

	word := strings.TrimSpace(request.Word)
	return CorrectResponse{
		ID:        request.ID,
		Word:      word,
		Corrected: corrected,
		Changed:   corrected != word,
		TimeTaken: elapsed.Microseconds(),
	}
}

func (s *Server) handleSuggest(request Request) any {
	if errResp := s.validateWord(request); errResp != nil {
		return *errResp
	}

	limit := request.Limit
	maxLimit := s.config.Server.MaxSuggestions
	if limit <= 0 || (maxLimit > 0 && limit > maxLimit) {
		limit = maxLimit
	}

	start := time.Now()
	suggestions, err := s.speller.Suggest(request.Word, limit)
	elapsed := time.Since(start)
	if err != nil {
		return s.errorFor(request.ID, err)
	}

	ranks := utils.RankByPosition(len(suggestions))
	items := make([]SuggestionItem, len(suggestions))
	for i, sg := range suggestions {
		items[i] = SuggestionItem{
			Word:      sg.Word,
			Frequency: sg.Frequency,
			Distance:  sg.Distance,
			Rank:      ranks[i],
		}
	}

	return SuggestResponse{
		ID:          request.ID,
		Suggestions: items,
		Count:       len(items),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleLoad(request Request) any {
	if strings.TrimSpace(request.Path) == "" {
		return ErrorResponse{ID: request.ID, Error: "Missing 'path' parameter", Code: 400}
	}

	if err := s.speller.LoadCorpus(request.Path); err != nil {
		s.log.Warn("Corpus load failed, keeping previous dictionary", "path", request.Path, "err", err)
		return s.errorFor(request.ID, err)
	}
	s.log.Info("Corpus loaded", "path", request.Path)
	return StatusResponse{ID: request.ID, Status: "ok", Stats: s.speller.Stats()}
}

// errorFor maps engine errors to response codes.
func (s *Server) errorFor(id string, err error) ErrorResponse {
	code := 500
	switch {
	case errors.Is(err, suggest.ErrEmptyInput):
		code = 400
	case errors.Is(err, suggest.ErrNotFound):
		code = 404
	}
	return ErrorResponse{ID: id, Error: err.Error(), Code: code}
}

// sendResponse encodes a response and flushes it, so clients never wait on a
// buffered reply.
func (s *Server) sendResponse(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Flushing response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
