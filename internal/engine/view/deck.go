package view

import "go.trai.ch/cram/internal/core/domain"

// Deck is a study cursor over a fixed set of flashcards.
// Moving wraps around at either end and always shows the question side.
type Deck struct {
	cards   []domain.Flashcard
	index   int
	flipped bool
}

// NewDeck creates a deck positioned on the first card.
func NewDeck(cards []domain.Flashcard) *Deck {
	return &Deck{cards: cards}
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Position returns the 1-based index of the current card, or 0 for an empty deck.
func (d *Deck) Position() int {
	if len(d.cards) == 0 {
		return 0
	}
	return d.index + 1
}

// Current returns the card under the cursor.
func (d *Deck) Current() (domain.Flashcard, bool) {
	if len(d.cards) == 0 {
		return domain.Flashcard{}, false
	}
	return d.cards[d.index], true
}

// Flipped reports whether the answer side is showing.
func (d *Deck) Flipped() bool { return d.flipped }

// Face returns the side label and text currently showing.
func (d *Deck) Face() (label, text string) {
	card, ok := d.Current()
	if !ok {
		return "", ""
	}
	if d.flipped {
		return "Answer", card.Answer
	}
	return "Question", card.Question
}

// Flip toggles between question and answer.
func (d *Deck) Flip() {
	if len(d.cards) > 0 {
		d.flipped = !d.flipped
	}
}

// Next advances to the following card.
func (d *Deck) Next() { d.move(1) }

// Previous steps back to the preceding card.
func (d *Deck) Previous() { d.move(-1) }

func (d *Deck) move(step int) {
	n := len(d.cards)
	if n == 0 {
		return
	}
	d.flipped = false
	d.index = ((d.index+step)%n + n) % n
}
