package hn

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrThreadNotFound means neither search attempt surfaced a hiring thread.
// Callers treat it as "zero jobs this run", not as a process failure.
var ErrThreadNotFound = errors.New("hiring thread not found")

// FindHiringThread returns the id of the best-matching "Who is hiring?"
// thread for the month monthsBack months ago. Matching is first-hit in the
// order the search returns, not best-of.
func (c *Connector) FindHiringThread(ctx context.Context, monthsBack int) (int, error) {
	month, year := targetMonthYear(time.Now(), monthsBack)
	query := fmt.Sprintf("Ask HN: Who is hiring? %s %d", month, year)

	candidates, err := c.searchThreads(ctx, query)
	if err != nil {
		return 0, err
	}
	for _, t := range candidates {
		title := strings.ToLower(t.Title)
		if strings.Contains(title, "hiring") && strings.Contains(title, "ask hn") {
			return t.ID, nil
		}
	}

	// No exact match: loosen the query and accept any hiring title.
	query = fmt.Sprintf("Who is hiring? %s", month)
	candidates, err = c.searchThreads(ctx, query)
	if err != nil {
		return 0, err
	}
	for _, t := range candidates {
		if strings.Contains(strings.ToLower(t.Title), "hiring") {
			return t.ID, nil
		}
	}

	return 0, ErrThreadNotFound
}

// searchThreads runs one search and keeps the hits whose ids parse.
func (c *Connector) searchThreads(ctx context.Context, query string) ([]HiringThread, error) {
	hits, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}
	threads := make([]HiringThread, 0, len(hits))
	for _, h := range hits {
		id, err := strconv.Atoi(h.ObjectID)
		if err != nil {
			continue
		}
		threads = append(threads, HiringThread{ID: id, Title: h.Title, Points: h.Points})
	}
	return threads, nil
}

// targetMonthYear back-computes the month/year the thread title should carry.
// The modular arithmetic is carried over as-is from the original collector,
// including its year-boundary behavior (see locator tests).
func targetMonthYear(now time.Time, monthsBack int) (time.Month, int) {
	target := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if monthsBack == 1 {
		target = target.AddDate(0, 0, -1)
	}

	m := int(target.Month())
	month := mod(m-monthsBack, 12) + 1
	year := target.Year() - floorDiv(m-month, 12)
	return time.Month(month), year
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
