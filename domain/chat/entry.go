package chat

// DisplayedEntry is one rendered line of the conversation.
// It maps to exactly one sent ChatMessage or one received ReplyMessage.
type DisplayedEntry struct {
	Sender string
	Glyph  string
	Color  string
	Text   string
}

// IsLocal tells whether the entry echoes something typed in this client.
func (e DisplayedEntry) IsLocal() bool {
	return e.Sender == LocalUsername
}
