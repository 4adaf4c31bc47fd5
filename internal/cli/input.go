// Package cli handles cmd line input and corrections for DBG and testing various features
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"spellserve/internal/utils"
	"spellserve/pkg/speller"

	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, printing ranked correction
// suggestions. Filtering of numeric/special-character input can be disabled
// for debugging.
type InputHandler struct {
	speller      *speller.Speller
	suggestLimit int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(sp *speller.Speller, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		speller:      sp,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates on stdin EOF.
func (h *InputHandler) Start() error {
	log.Print("spellserve CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see corrections (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput processes a single word query and prints its suggestions.
func (h *InputHandler) handleInput(word string) {
	if !h.noFilter {
		if !utils.IsValidInput(word) {
			log.Infof("Skipping input: '%s' (use -no-filter to query anything)", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	suggestions, err := h.speller.Suggest(word, h.suggestLimit)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, speller.ErrInvalidLimit) {
			log.Errorf("Bad limit %d: %v", h.suggestLimit, err)
			return
		}
		log.Errorf("Suggest failed for '%s': %v", word, err)
		return
	}

	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for word: '%s'", word)
		return
	}

	log.Printf("Found %d suggestions for '%s':", len(suggestions), word)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (p: %.6f)", i+1, clWord, s.Probability)
	}
}
