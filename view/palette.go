package view

import (
	"bot-chat/domain/chat"
	"unicode/utf16"
	"unicode/utf8"
)

// Palette holds the avatar background colours, indexed by the sender hash.
var Palette = [8]string{
	"#2196F3", "#32c787", "#00BCD4", "#ff5652",
	"#ffc107", "#ff85af", "#FF9800", "#39bbb0",
}

const unknownGlyph = "?"

// senderHash is 31*h + c over the UTF-16 code units of the sender, with int32 wraparound.
// The value must stay stable across clients so a sender always gets the same colour.
func senderHash(sender string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(sender)) {
		h = 31*h + int32(unit)
	}
	return h
}

// ColorFor returns the avatar colour of a sender.
func ColorFor(sender string) string {
	index := senderHash(sender) % int32(len(Palette))
	if index < 0 {
		index = -index
	}
	return Palette[index]
}

// Glyph is the single character shown in the avatar.
func Glyph(sender string) string {
	r, size := utf8.DecodeRuneInString(sender)
	if size == 0 || r == utf8.RuneError {
		return unknownGlyph
	}
	return string(r)
}

// NewEntry builds the displayed entry of a message.
func NewEntry(sender, text string) chat.DisplayedEntry {
	return chat.DisplayedEntry{
		Sender: sender,
		Glyph:  Glyph(sender),
		Color:  ColorFor(sender),
		Text:   text,
	}
}
