package stomp

import (
	"github.com/go-stomp/stomp/v3/frame"
)

const (
	acceptedVersions = "1.2,1.1,1.0"
	noHeartBeat      = "0,0"
	serverName       = "bot-chat/1.0"
)

func Connect(host string) *frame.Frame {
	return frame.New(frame.CONNECT,
		frame.AcceptVersion, acceptedVersions,
		frame.Host, host,
		frame.HeartBeat, noHeartBeat)
}

func Connected(sessionID string) *frame.Frame {
	return frame.New(frame.CONNECTED,
		frame.Version, "1.2",
		frame.HeartBeat, noHeartBeat,
		frame.Session, sessionID,
		frame.Server, serverName)
}

func Subscribe(id, destination string) *frame.Frame {
	return frame.New(frame.SUBSCRIBE,
		frame.Id, id,
		frame.Destination, destination)
}

// Send builds a fire-and-forget SEND frame. An empty contentType omits the header.
func Send(destination, contentType string, body []byte) *frame.Frame {
	f := frame.New(frame.SEND, frame.Destination, destination)
	if contentType != "" {
		f.Header.Add(frame.ContentType, contentType)
	}
	f.Body = body
	return f
}

func Message(destination, subscription, messageID, contentType string, body []byte) *frame.Frame {
	f := frame.New(frame.MESSAGE,
		frame.Destination, destination,
		frame.Subscription, subscription,
		frame.MessageId, messageID,
		frame.ContentType, contentType)
	f.Body = body
	return f
}

func Error(message, detail string) *frame.Frame {
	f := frame.New(frame.ERROR, frame.Message, message)
	if detail != "" {
		f.Header.Add(frame.ContentType, "text/plain")
		f.Body = []byte(detail)
	}
	return f
}

func Disconnect(receipt string) *frame.Frame {
	if receipt == "" {
		return frame.New(frame.DISCONNECT)
	}
	return frame.New(frame.DISCONNECT, frame.Receipt, receipt)
}

func Receipt(id string) *frame.Frame {
	return frame.New(frame.RECEIPT, frame.ReceiptId, id)
}
