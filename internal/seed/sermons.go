package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

type SermonStore interface {
	Sermons(ctx context.Context, limit uint64) ([]*types.Sermon, error)
	UpsertSermon(ctx context.Context, sermon *types.Sermon) error
	DeleteSermon(ctx context.Context, id string) error
}

const (
	sampleVideoURL     = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	sampleThumbnailURL = "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"
)

var Sermons = []types.Sermon{
	{
		ID:           "T1nR6oE3wQ8yU5iP2aSdF",
		Title:        "RISE: A New Beginning",
		Description:  "Pastor John kicks off our RISE series with a powerful message about new beginnings and God's purpose for your life.",
		Speaker:      "Pastor John",
		YoutubeURL:   sampleVideoURL,
		ThumbnailURL: sampleThumbnailURL,
		Date:         time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC),
		Series:       utils.StringPtr("RISE"),
	},
	{
		ID:           "gH7jK2lZ9xC4vB1nM6qWe",
		Title:        "Faith Over Fear",
		Description:  "Learning to trust God in uncertain times. A message of hope and courage.",
		Speaker:      "Pastor Sarah",
		YoutubeURL:   sampleVideoURL,
		ThumbnailURL: sampleThumbnailURL,
		Date:         time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC),
		Series:       utils.StringPtr("RISE"),
	},
	{
		ID:           "R5tY8uI0oP3aS7dF2gHjK",
		Title:        "The Power of Community",
		Description:  "Why we need each other and how God designed us for fellowship.",
		Speaker:      "Pastor John",
		YoutubeURL:   sampleVideoURL,
		ThumbnailURL: sampleThumbnailURL,
		Date:         time.Date(2025, time.June, 22, 0, 0, 0, 0, time.UTC),
		Series:       utils.StringPtr("Connected"),
	},
	{
		ID:           "L9zX1cV4bN8mQ2wE6rT0y",
		Title:        "Grace Upon Grace",
		Description:  "Understanding the depth of God's grace and how it transforms our lives.",
		Speaker:      "Guest Speaker: Rev. Michael",
		YoutubeURL:   sampleVideoURL,
		ThumbnailURL: sampleThumbnailURL,
		Date:         time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Series:       utils.StringPtr("Amazing Grace"),
	},
}

// SeedSermons syncs the database with Sermons, deleting rows that are no longer listed.
func SeedSermons(ctx context.Context, repo SermonStore, out io.Writer) error {
	fmt.Fprintln(out, "Starting sermon sync...")

	seedIDs := make(map[string]bool, len(Sermons))
	for _, sermon := range Sermons {
		seedIDs[sermon.ID] = true
	}

	existing, err := repo.Sermons(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch existing sermons: %w", err)
	}

	deletedCount := 0
	for _, sermon := range existing {
		if seedIDs[sermon.ID] {
			continue
		}
		fmt.Fprintf(out, "  Deleting sermon: %s (id: %s)\n", sermon.Title, sermon.ID)
		if err := repo.DeleteSermon(ctx, sermon.ID); err != nil {
			return fmt.Errorf("failed to delete sermon %s: %w", sermon.ID, err)
		}
		deletedCount++
	}

	for _, sermon := range Sermons {
		fmt.Fprintf(out, "  Upserting sermon: %s\n", sermon.Title)
		if err := repo.UpsertSermon(ctx, &sermon); err != nil {
			return fmt.Errorf("failed to upsert sermon %s: %w", sermon.ID, err)
		}
	}

	fmt.Fprintf(out, "Sermon sync complete: %d upserted, %d deleted\n", len(Sermons), deletedCount)
	return nil
}
