// Package chat contains the entities exchanged between the chat client and the bot server.
// Wire entities are built per send or per receive and never retained.
package chat

import (
	"bot-chat/errors"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// LocalUsername is the fixed name of the person typing in the client.
	LocalUsername = "You"
	// BotSender is the identity the server puts on every reply.
	BotSender = "BOT"
)

// ChatMessage is the outbound payload of a user message.
type ChatMessage struct {
	Text string `json:"text"`
}

// ReplyMessage is the inbound payload pushed on the reply channel.
type ReplyMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// NewChatMessage trims the user text. ok is false when nothing is left to send.
func NewChatMessage(text string) (msg ChatMessage, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ChatMessage{}, false
	}
	return ChatMessage{Text: trimmed}, true
}

// Encode returns the JSON body of the message.
func (m ChatMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// ParseReply decodes a reply body.
// Invalid JSON, or an object carrying neither sender nor content, yields ErrMalformedReply.
func ParseReply(body []byte) (ReplyMessage, error) {
	var raw struct {
		Sender  *string `json:"sender"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ReplyMessage{}, fmt.Errorf("%w: %v", errors.ErrMalformedReply, err)
	}
	if raw.Sender == nil && raw.Content == nil {
		return ReplyMessage{}, fmt.Errorf("%w: no sender and no content", errors.ErrMalformedReply)
	}
	var reply ReplyMessage
	if raw.Sender != nil {
		reply.Sender = *raw.Sender
	}
	if raw.Content != nil {
		reply.Content = *raw.Content
	}
	return reply, nil
}

// ParseChatMessage decodes the body of a user message received by the server.
func ParseChatMessage(body []byte) (ChatMessage, error) {
	var msg ChatMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}
