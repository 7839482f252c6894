package internal

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type ClientConfig struct {
	Endpoint         string        `env:"CHAT_ENDPOINT,default=ws://localhost:8080/ws"`
	Host             string        `env:"CHAT_HOST"`
	SendQueueSize    int           `env:"SEND_QUEUE_SIZE,default=16"`
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT,default=10s"`
	Plain            bool          `env:"CHAT_PLAIN,default=false"`
	LogFile          string        `env:"CHAT_LOG_FILE"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
}

type ServerConfig struct {
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=8080"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	FlowFile        string        `env:"FLOW_FILE"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL,default=gpt-3.5-turbo"`
	OpenAIAPIURL    string        `env:"OPENAI_API_URL"`
	IntentTimeout   time.Duration `env:"INTENT_TIMEOUT,default=10s"`
	HealthInterval  time.Duration `env:"HEALTH_INTERVAL,default=5s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Words splits CENSORED_WORDS on commas, blanks dropped.
func (c ServerConfig) Words() []string {
	return lo.FilterMap(strings.Split(c.CensoredWords, ","), func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return w, w != ""
	})
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
