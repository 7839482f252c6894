package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSenderHash(t *testing.T) {
	tests := []struct {
		sender string
		hash   int32
	}{
		{"", 0},
		{"A", 65},
		{"BOT", 65959},
		{"You", 89087},
		{"hello", 99162322},
		{"Aa", 2112},
		{"BB", 2112},
		{"polygenelubricants", math.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			require.Equal(t, tt.hash, senderHash(tt.sender))
		})
	}
}

func TestColorFor(t *testing.T) {
	req := require.New(t)

	req.Equal(Palette[0], ColorFor(""))
	req.Equal(Palette[1], ColorFor("A"))
	req.Equal(Palette[7], ColorFor("BOT"))
	req.Equal(Palette[7], ColorFor("You"))
	req.Equal(Palette[2], ColorFor("hello"))
	// The hash overflows to MinInt32, whose remainder is 0.
	req.Equal(Palette[0], ColorFor("polygenelubricants"))
	// Colliding names share a colour
	req.Equal(ColorFor("Aa"), ColorFor("BB"))
}

func TestColorFor_IsPureAndInPalette(t *testing.T) {
	req := require.New(t)
	for _, sender := range []string{"alice", "Bob", "été", "日本語", "👋 wave", "a long sender name with spaces"} {
		first := ColorFor(sender)
		req.Equal(first, ColorFor(sender))
		req.Contains(Palette[:], first)
	}
}

func TestColorFor_NegativeHash(t *testing.T) {
	req := require.New(t)

	// Given a sender whose hash is negative
	req.Equal(int32(-832992604), senderHash("Hello world"))

	// Then the index is the absolute remainder
	req.Equal(Palette[4], ColorFor("Hello world"))
}

func TestGlyph(t *testing.T) {
	req := require.New(t)
	req.Equal("B", Glyph("BOT"))
	req.Equal("é", Glyph("été"))
	req.Equal("?", Glyph(""))
}

func TestNewEntry(t *testing.T) {
	req := require.New(t)
	e := NewEntry("BOT", "hi")
	req.Equal("BOT", e.Sender)
	req.Equal("B", e.Glyph)
	req.Equal(ColorFor("BOT"), e.Color)
	req.Equal("hi", e.Text)
	req.False(e.IsLocal())
	req.True(NewEntry("You", "hello").IsLocal())
}
