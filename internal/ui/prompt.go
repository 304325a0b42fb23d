package ui

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// maxPromptDigits caps how much a player can type into a prompt.
const maxPromptDigits = 4

// PromptResult reports what a key press did to a prompt.
type PromptResult int

const (
	// PromptPending means the prompt is still collecting input.
	PromptPending PromptResult = iota
	// PromptAccepted means Enter was pressed.
	PromptAccepted
	// PromptCancelled means Escape was pressed.
	PromptCancelled
)

// Prompt collects a positive integer typed by the player. Submitting an
// empty prompt selects the default.
type Prompt struct {
	Label   string
	Default int
	Error   string // Shown under the prompt after a rejected value

	input []rune
}

// NewPrompt creates an empty prompt.
func NewPrompt(label string, def int) *Prompt {
	return &Prompt{Label: label, Default: def}
}

// HandleKey applies a key press. Non-digit runes are ignored.
func (p *Prompt) HandleKey(ev *tcell.EventKey) PromptResult {
	switch ev.Key() {
	case tcell.KeyEnter:
		return PromptAccepted
	case tcell.KeyEscape:
		return PromptCancelled
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsDigit(r) && len(p.input) < maxPromptDigits {
			p.input = append(p.input, r)
			p.Error = ""
		}
	}
	return PromptPending
}

// Value returns the typed number, or Default when nothing was typed.
func (p *Prompt) Value() (int, error) {
	if len(p.input) == 0 {
		return p.Default, nil
	}
	n, err := strconv.Atoi(string(p.input))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.Label, err)
	}
	return n, nil
}

// Reject clears the input and records why the value was refused.
func (p *Prompt) Reject(reason string) {
	p.input = p.input[:0]
	p.Error = reason
}

// Text returns the prompt line as displayed.
func (p *Prompt) Text() string {
	return fmt.Sprintf("%s [%d]: %s", p.Label, p.Default, string(p.input))
}
