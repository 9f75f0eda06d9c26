// Package share hands a score summary to a platform share capability.
package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the platform has no share capability.
var ErrUnsupported = errors.New("share is not supported on this system")

// Payload is the content handed to the share capability.
type Payload struct {
	Title string
	Text  string
}

// ScoreText renders the fixed share message for a running total score.
func ScoreText(totalScore int) string {
	return fmt.Sprintf("Check out my score on this TV show quiz: %d", totalScore)
}

// Sharer publishes a payload through some platform capability.
type Sharer interface {
	Share(ctx context.Context, p Payload) error
}

// ClipboardSharer shares by copying the payload text to the system clipboard.
type ClipboardSharer struct {
	write       func(string) error
	unsupported bool
}

var _ Sharer = (*ClipboardSharer)(nil)

// NewClipboard returns a Sharer backed by the system clipboard.
func NewClipboard() *ClipboardSharer {
	return &ClipboardSharer{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

func (c *ClipboardSharer) Share(ctx context.Context, p Payload) error {
	if c.unsupported {
		return ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(p.Text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
