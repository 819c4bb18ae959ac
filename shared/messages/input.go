package messages

// MenuInput is the held button bitmask, sent whenever it changes.
type MenuInput struct {
	Buttons uint64
}

// DigitCommand is a number key bound to a menu slot (0-9).
type DigitCommand struct {
	Key int
}

// ChatCommand is a chat line such as "menu" or "!3".
type ChatCommand struct {
	Text string
}

// ViewChange reports the observer mode the client switched to.
type ViewChange struct {
	Mode   int
	Target uint64
}
