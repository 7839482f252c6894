package main

import (
	"bot-chat/client"
	"bot-chat/domain/chat"
	"bot-chat/internal"
	"bot-chat/stomp"
	"bot-chat/view"
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2

	initialWidth  = 80
	initialHeight = 24
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config internal.ClientConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log, closeLog, err := clientLogger(config)
	if err != nil {
		return exitConfig, err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := stomp.Dialer{HandshakeTimeout: config.HandshakeTimeout, WriteTimeout: config.HandshakeTimeout}
	sessionConfig := client.Config{
		Endpoint:         config.Endpoint,
		Host:             config.Host,
		SendQueueSize:    config.SendQueueSize,
		HandshakeTimeout: config.HandshakeTimeout,
	}

	if config.Plain {
		return runPlain(ctx, log, transport, sessionConfig)
	}
	return runTUI(ctx, log, transport, sessionConfig)
}

// programPoster lets the session be built before the program that receives its callbacks.
type programPoster struct {
	program *tea.Program
}

func (p *programPoster) Send(msg tea.Msg) {
	p.program.Send(msg)
}

func runTUI(ctx context.Context, log *slog.Logger, transport client.Transport, config client.Config) (int, error) {
	poster := &programPoster{}
	session := client.NewSession(log, transport, view.NewProgramListener(poster), config)
	defer func() { _ = session.Close() }()

	model := view.NewModel(log, session, initialWidth, initialHeight)
	poster.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		// The failure is rendered by the view through the listener.
		_ = session.Connect(ctx)
	}()

	if _, err := poster.program.Run(); err != nil && ctx.Err() == nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func runPlain(ctx context.Context, log *slog.Logger, transport client.Transport, config client.Config) (int, error) {
	renderer := view.NewLineRenderer(os.Stdout)
	session := client.NewSession(log, transport, renderer, config)
	defer func() { _ = session.Close() }()

	if err := session.Connect(ctx); err != nil {
		return exitRuntime, err
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return exitOK, nil
		case <-session.Done():
			return exitRuntime, fmt.Errorf("connection lost")
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			msg, ok := chat.NewChatMessage(line)
			if !ok {
				continue
			}
			renderer.Echo(msg.Text)
			if err := session.SendUserMessage(msg.Text); err != nil {
				color.Red.Println(err)
			}
		}
	}
}

// clientLogger writes to CHAT_LOG_FILE when set. The terminal UI owns stdout,
// so without a file it logs nowhere unless running in plain mode.
func clientLogger(config internal.ClientConfig) (*slog.Logger, func(), error) {
	if config.LogFile == "" {
		if config.Plain {
			return logs.GetLoggerFromString(config.LogLevel), func() {}, nil
		}
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = file.Close() }, nil
}
