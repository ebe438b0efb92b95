package share

import (
	"context"
	"errors"
	"fmt"
	"time"
)

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks

var ErrClipboardWriteFailed = errors.New("could not write to the clipboard")

// CopyFeedback is how long a successful copy is acknowledged before the
// copy control returns to its normal state.
const CopyFeedback = 2 * time.Second

type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyResult describes what the user should see after a copy attempt.
type CopyResult struct {
	Copied bool

	// ResetAfter is set when Copied is true.
	ResetAfter time.Duration

	// Fallback is the manual-copy message shown when the write failed.
	Fallback string

	// Err wraps ErrClipboardWriteFailed when the write failed.
	Err error
}

// CopyLink writes link to the clipboard. A failed write is not returned
// as an error; the result carries a fallback message with the link so it
// can be copied by hand.
func CopyLink(ctx context.Context, cb Clipboard, link string) CopyResult {
	if err := cb.WriteText(ctx, link); err != nil {
		return CopyResult{
			Fallback: FallbackMessage(link),
			Err:      fmt.Errorf("%w: %w", ErrClipboardWriteFailed, err),
		}
	}

	return CopyResult{Copied: true, ResetAfter: CopyFeedback}
}

func FallbackMessage(link string) string {
	return "Could not copy link. Please copy manually: " + link
}
