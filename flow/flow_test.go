package flow

import (
	"bot-chat/errors"
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDecode_SupportFlow(t *testing.T) {
	req := require.New(t)
	data, err := os.ReadFile("testdata/support.json")
	req.NoError(err)

	f, err := Decode(data)

	req.NoError(err)
	req.NoError(f.Validate())
	req.Equal("support", f.Name())
	req.Equal("greeting", f.StartBlockID)
	req.Len(f.Blocks, 9)

	wait, ok := f.ByID("wait")
	req.True(ok)
	req.Equal(WaitForResponse, wait.Type)
	req.Len(wait.On, 3)
	req.Equal(Fallback, wait.On[2].Match.Type)

	detect, ok := f.ByID("detect")
	req.True(ok)
	req.True(detect.Type.IsWait())
	req.Equal("sorry", detect.Fallback)
	req.Equal([]string{"refund", "money back"}, detect.Intents[0].Keywords)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	req := require.New(t)
	f, err := Decode([]byte(`{"startBlockId":"a","extra":{"x":1},"blocks":[{"id":"a","type":"WRITE_MESSAGE","color":"red"}]}`))
	req.NoError(err)
	req.NoError(f.Validate())
	req.Empty(f.Name())
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"startBlockId":`))
	require.ErrorIs(t, err, errors.ErrInvalidFlow)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing start", `{"blocks":[{"id":"a","type":"WRITE_MESSAGE"}]}`},
		{"no blocks", `{"startBlockId":"a","blocks":[]}`},
		{"unknown start", `{"startBlockId":"b","blocks":[{"id":"a","type":"WRITE_MESSAGE"}]}`},
		{"unknown type", `{"startBlockId":"a","blocks":[{"id":"a","type":"SING"}]}`},
		{"missing id", `{"startBlockId":"a","blocks":[{"id":"a","type":"WRITE_MESSAGE"},{"type":"WRITE_MESSAGE"}]}`},
		{"duplicate id", `{"startBlockId":"a","blocks":[{"id":"a","type":"WRITE_MESSAGE"},{"id":"a","type":"WAIT_FOR_RESPONSE"}]}`},
		{"bad match type", `{"startBlockId":"a","blocks":[{"id":"a","type":"WAIT_FOR_RESPONSE","on":[{"match":{"type":"REGEX"},"next":"a"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f, err := Decode([]byte(tt.input))
			req.NoError(err)
			req.ErrorIs(f.Validate(), errors.ErrInvalidFlow)
		})
	}
}

func TestByID(t *testing.T) {
	req := require.New(t)
	f := &Flow{StartBlockID: "a", Blocks: []Block{{ID: "a", Type: WriteMessage}, {ID: "b", Type: WaitForResponse}}}

	b, ok := f.ByID("b")
	req.True(ok)
	req.Equal(WaitForResponse, b.Type)

	_, ok = f.ByID("")
	req.False(ok)
	_, ok = f.ByID("missing")
	req.False(ok)

	var empty *Flow
	_, ok = empty.ByID("a")
	req.False(ok)
}

func TestIntentCandidates(t *testing.T) {
	b := Block{On: []Route{
		{Match: &MatchSpec{Type: Intent, AnyOf: []string{"price", "cost"}}, Next: "p"},
		{Match: &MatchSpec{Type: Keyword, AnyOf: []string{"hours"}}, Next: "h"},
		{Next: "nothing"},
		{Match: &MatchSpec{Type: Intent, AnyOf: []string{"refund"}}, Next: "r"},
	}}
	require.Equal(t, []string{"price", "cost", "refund"}, b.IntentCandidates())
}

func TestHolder(t *testing.T) {
	req := require.New(t)
	h := NewHolder(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.Nil(h.Flow())

	f := &Flow{StartBlockID: "a", Blocks: []Block{{ID: "a", Type: WriteMessage}}}
	h.SetFlow(f)
	req.Same(f, h.Flow())

	h.SetFlow(nil)
	req.Nil(h.Flow())
}
