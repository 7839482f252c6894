package view

import (
	"bot-chat/domain/chat"

	tea "github.com/charmbracelet/bubbletea"
)

// Poster is the part of *tea.Program the listener needs.
type Poster interface {
	Send(msg tea.Msg)
}

// ProgramListener turns connection callbacks into messages of the bubbletea loop,
// so the view is only ever mutated from Update.
type ProgramListener struct {
	program Poster
}

func NewProgramListener(program Poster) *ProgramListener {
	return &ProgramListener{program: program}
}

func (l *ProgramListener) OnReady() {
	l.program.Send(ReadyMsg{})
}

func (l *ProgramListener) OnFailed(reason string) {
	l.program.Send(FailedMsg{Reason: reason})
}

func (l *ProgramListener) OnReply(reply chat.ReplyMessage) {
	l.program.Send(ReplyMsg{Reply: reply})
}

func (l *ProgramListener) OnClosed(err error) {
	l.program.Send(ClosedMsg{Err: err})
}
