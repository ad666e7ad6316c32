package drill

// VocabItem is one prompt/answer pair from a lesson.
type VocabItem struct {
	Prompt string
	Answer string
}

// Card is a VocabItem plus how many times it was marked wrong in the
// current session. ID is the item's position in the list the session was
// created from and stays stable while the card cycles through the queue.
type Card struct {
	ID         int
	Item       VocabItem
	WrongCount int
}

// Perfect reports whether the card was answered correctly on the first try.
func (c Card) Perfect() bool { return c.WrongCount == 0 }

func newCards(items []VocabItem) []Card {
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = Card{ID: i, Item: item}
	}
	return cards
}
