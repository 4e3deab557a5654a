package session

// Mode is the closed set of interaction states a user can be in.
// Exactly one mode is active per user; the dispatcher switches on the
// concrete type exhaustively.
type Mode interface {
	isMode()
}

// Idle is the default mode: no dialog in progress.
type Idle struct{}

// AwaitingWord means the bot asked for a word to explain and is waiting
// for the user's next message.
type AwaitingWord struct{}

// BrowsingCards tracks the current position while flipping through the deck.
type BrowsingCards struct {
	Cursor int
}

// InQuiz tracks quiz progress: Cursor is the next card to answer,
// Score the number of correct answers so far. 0 <= Score <= Cursor.
type InQuiz struct {
	Cursor int
	Score  int
}

func (Idle) isMode()          {}
func (AwaitingWord) isMode()  {}
func (BrowsingCards) isMode() {}
func (InQuiz) isMode()        {}

// UserSession is the per-user record. Values are copies: mutating a
// returned UserSession does not affect the store.
type UserSession struct {
	UserID int64
	Mode   Mode
}
