package view

import (
	"bot-chat/domain/chat"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// LineRenderer prints the conversation as coloured lines, one per entry.
// It is used when the client runs without a terminal UI.
type LineRenderer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLineRenderer(out io.Writer) *LineRenderer {
	return &LineRenderer{out: out}
}

// Echo prints a line typed by the local user.
func (r *LineRenderer) Echo(text string) {
	r.write(NewEntry(chat.LocalUsername, text))
}

func (r *LineRenderer) OnReady() {
	r.println(color.Green.Sprint("Connected"))
}

func (r *LineRenderer) OnFailed(reason string) {
	r.println(color.Red.Sprint(reason))
}

func (r *LineRenderer) OnReply(reply chat.ReplyMessage) {
	r.write(NewEntry(reply.Sender, reply.Content))
}

func (r *LineRenderer) OnClosed(err error) {
	r.println(color.Yellow.Sprintf("Connection closed: %v", err))
}

func (r *LineRenderer) write(e chat.DisplayedEntry) {
	avatar := color.HEX(e.Color, true).Sprintf(" %s ", e.Glyph)
	r.println(fmt.Sprintf("%s %s %s", avatar, color.Bold.Sprint(e.Sender), e.Text))
}

func (r *LineRenderer) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.out, line)
}
