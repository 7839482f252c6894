package stomp

import (
	"io"
	"sync"

	"github.com/go-stomp/stomp/v3/frame"
)

const pipeBuffer = 64

type pipeEnd struct {
	in     <-chan []byte
	out    chan<- []byte
	done   chan struct{}
	closer *sync.Once
}

// Pipe returns two connected in-memory sessions. Frames go through Encode and
// Decode so both ends see exactly what a WebSocket peer would see.
// Closing either end closes both.
func Pipe() (FrameConn, FrameConn) {
	a := make(chan []byte, pipeBuffer)
	b := make(chan []byte, pipeBuffer)
	done := make(chan struct{})
	once := &sync.Once{}
	return &pipeEnd{in: a, out: b, done: done, closer: once},
		&pipeEnd{in: b, out: a, done: done, closer: once}
}

func (p *pipeEnd) WriteFrame(f *frame.Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}
	select {
	case <-p.done:
		return io.ErrClosedPipe
	default:
	}
	select {
	case p.out <- data:
		return nil
	case <-p.done:
		return io.ErrClosedPipe
	}
}

func (p *pipeEnd) ReadFrame() (*frame.Frame, error) {
	for {
		var data []byte
		select {
		case data = <-p.in:
		case <-p.done:
			// Frames written before Close are still delivered.
			select {
			case data = <-p.in:
			default:
				return nil, io.EOF
			}
		}
		f, err := Decode(data)
		if err != nil {
			return nil, err
		}
		if f != nil {
			return f, nil
		}
	}
}

func (p *pipeEnd) Close() error {
	p.closer.Do(func() { close(p.done) })
	return nil
}
