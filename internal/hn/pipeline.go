package hn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jobfeed-engine/internal/domain"
)

// ExtractJobs runs the full thread pipeline: locate the hiring thread, fetch
// its comments, parse each one. Every failure mode degrades to fewer (or
// zero) jobs plus a log line; nothing escapes as an error.
func (c *Connector) ExtractJobs(ctx context.Context, monthsBack int) []domain.JobPosting {
	threadID, err := c.FindHiringThread(ctx, monthsBack)
	if err != nil {
		log.Printf("[hn] could not find a recent 'Who is hiring' thread: %v", err)
		return nil
	}

	comments, err := c.ThreadComments(ctx, threadID)
	if err != nil {
		log.Printf("[hn] fetching comments for thread %d: %v", threadID, err)
		return nil
	}
	log.Printf("[hn] extracted %d job postings from thread %d", len(comments), threadID)

	var jobs []domain.JobPosting
	for _, cm := range comments {
		job := ParseJobComment(cm)
		if job == nil {
			continue
		}
		// A posting with neither company nor title is noise.
		if job.Company == "" && job.Title == "" {
			continue
		}
		jobs = append(jobs, *job)
	}
	log.Printf("[hn] successfully parsed %d jobs", len(jobs))

	return jobs
}

// SaveJobs writes the batch as newline-delimited JSON under a
// date-partitioned path and returns that path. An empty batch writes nothing
// and returns "".
func (c *Connector) SaveJobs(ctx context.Context, jobs []domain.JobPosting) (string, error) {
	if len(jobs) == 0 {
		log.Printf("[hn] no jobs to save")
		return "", nil
	}

	path := fmt.Sprintf("raw/hackernews/jobs_%s.json", time.Now().UTC().Format("2006-01-02"))

	var buf bytes.Buffer
	for i, job := range jobs {
		b, err := json.Marshal(job)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", job.JobID, err)
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(b)
	}

	if err := c.store.Put(ctx, c.cfg.Bucket, path, buf.Bytes(), "application/json"); err != nil {
		return "", err
	}
	log.Printf("[hn] saved %d jobs to %s/%s", len(jobs), c.cfg.Bucket, path)
	return path, nil
}

// Preview parses at most limit comments from the current hiring thread. Used
// by the harness test endpoint; nothing is written to the store.
func (c *Connector) Preview(ctx context.Context, monthsBack, limit int) ([]domain.JobPosting, error) {
	threadID, err := c.FindHiringThread(ctx, monthsBack)
	if err != nil {
		return nil, err
	}

	thread, err := c.item(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("fetch thread %d: %w", threadID, err)
	}

	kids := thread.Kids
	if len(kids) > limit {
		kids = kids[:limit]
	}

	var jobs []domain.JobPosting
	for _, kid := range kids {
		cm, ok := c.fetchComment(ctx, kid)
		if !ok || cm.ID == 0 || cm.Deleted || cm.Dead {
			continue
		}
		if job := ParseJobComment(cm); job != nil {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}
