//go:generate go run go.uber.org/mock/mockgen -source=sender.go -destination=../mocks/mock_sender.go -package=mocks
package view

// Sender forwards what the user typed to the connection manager.
type Sender interface {
	SendUserMessage(text string) error
}
