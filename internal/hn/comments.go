package hn

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ThreadComments fetches the direct children of a thread, one request per
// comment. Per-comment failures are retried up to MaxRetries and then
// skipped; only failure to fetch the thread item itself aborts the call.
func (c *Connector) ThreadComments(ctx context.Context, threadID int) ([]RawComment, error) {
	thread, err := c.item(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("fetch thread %d: %w", threadID, err)
	}

	var comments []RawComment
	for _, kid := range thread.Kids {
		cm, ok := c.fetchComment(ctx, kid)
		if !ok {
			continue
		}
		if cm.ID == 0 || cm.Deleted || cm.Dead {
			continue
		}
		comments = append(comments, cm)
	}
	return comments, nil
}

func (c *Connector) fetchComment(ctx context.Context, id int) (RawComment, bool) {
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		cm, err := c.item(ctx, id)
		if err == nil {
			// Courtesy pause so we don't hammer the item API. A wait cut
			// short means the run was cancelled, so drop the comment too.
			if err := c.limiter.Wait(ctx); err != nil {
				return RawComment{}, false
			}
			return cm, true
		}

		if attempt < c.cfg.MaxRetries-1 {
			select {
			case <-ctx.Done():
				return RawComment{}, false
			case <-time.After(c.cfg.RetryDelay):
			}
		}
	}
	log.Printf("[hn] failed to fetch comment %d after %d attempts", id, c.cfg.MaxRetries)
	return RawComment{}, false
}
