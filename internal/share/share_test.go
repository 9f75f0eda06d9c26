package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Check out my score on this TV show quiz: 184", ScoreText(184))
}

func TestClipboardSharer_Unsupported(t *testing.T) {
	c := &ClipboardSharer{unsupported: true, write: func(string) error {
		t.Fatal("write must not be called")
		return nil
	}}

	err := c.Share(context.Background(), Payload{Text: "x"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestClipboardSharer_Writes(t *testing.T) {
	var got string
	c := &ClipboardSharer{write: func(s string) error {
		got = s
		return nil
	}}

	err := c.Share(context.Background(), Payload{Title: "TV Show Quiz", Text: ScoreText(7)})
	require.NoError(t, err)
	assert.Equal(t, ScoreText(7), got)
}

func TestClipboardSharer_WriteFailure(t *testing.T) {
	boom := errors.New("no display")
	c := &ClipboardSharer{write: func(string) error { return boom }}

	err := c.Share(context.Background(), Payload{Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestClipboardSharer_CancelledContext(t *testing.T) {
	c := &ClipboardSharer{write: func(string) error { return nil }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Share(ctx, Payload{Text: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
