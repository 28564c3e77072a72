package seed

import (
	"context"
	"fmt"
	"io"

	"highfields/pkg/types"
)

type LifeGroupStore interface {
	LifeGroups(ctx context.Context, limit uint64) ([]*types.LifeGroup, error)
	UpsertLifeGroup(ctx context.Context, group *types.LifeGroup) error
	DeleteLifeGroup(ctx context.Context, id string) error
}

// LifeGroups is the source of truth for the groups offered on the resources screen.
//
// To generate new IDs: `go run ./cmd/highfields nanoid`
// To add or remove a group: edit the list and run `highfields seed`.
// Membership counts only apply on first insert; later syncs keep the live count.
var LifeGroups = []types.LifeGroup{
	{
		ID:             "q8N2xTfK4vLmR7pW1sYcA",
		Name:           "Faith Foundations",
		Description:    "A study on the core beliefs of Christianity. Perfect for new believers or those wanting to strengthen their foundation.",
		Leader:         "Pastor John",
		Schedule:       "Tuesdays, 7:00 PM",
		Location:       "Church Hall A",
		MaxMembers:     12,
		CurrentMembers: 8,
		Kind:           types.LifeGroupKindStudy,
	},
	{
		ID:             "Hb3ZkP9eW2qXn5VtJ0rLd",
		Name:           "Marriage & Family",
		Description:    "Building stronger marriages and families through biblical principles and community support.",
		Leader:         "David & Sarah",
		Schedule:       "Wednesdays, 6:30 PM",
		Location:       "Fellowship Room",
		MaxMembers:     10,
		CurrentMembers: 6,
		Kind:           types.LifeGroupKindFamily,
	},
	{
		ID:             "m4Yc7Gs1RjT8uKe6NwQ2b",
		Name:           "Young Adults Connect",
		Description:    "For ages 18-30. Navigating life, faith, and purpose together.",
		Leader:         "Mike Thompson",
		Schedule:       "Fridays, 7:30 PM",
		Location:       "Youth Center",
		MaxMembers:     15,
		CurrentMembers: 11,
		Kind:           types.LifeGroupKindYoungAdults,
	},
	{
		ID:             "Vx0aL5dF9hM3cPz7EoS1k",
		Name:           "Women's Bible Study",
		Description:    "Deep dive into Scripture with fellowship and prayer. Currently studying the book of Ruth.",
		Leader:         "Jennifer Adams",
		Schedule:       "Thursdays, 10:00 AM",
		Location:       "Room 201",
		MaxMembers:     12,
		CurrentMembers: 9,
		Kind:           types.LifeGroupKindWomen,
	},
	{
		ID:             "e6Ub2Wn8Ji4Ar1Gy9QfTh",
		Name:           "Men's Breakfast",
		Description:    "Weekly gathering for men to grow in faith, accountability, and brotherhood.",
		Leader:         "Robert Chen",
		Schedule:       "Saturdays, 8:00 AM",
		Location:       "Cafe Area",
		MaxMembers:     20,
		CurrentMembers: 14,
		Kind:           types.LifeGroupKindMen,
	},
}

// SeedLifeGroups syncs the database with LifeGroups: groups missing from the list are
// deleted, the rest are upserted.
func SeedLifeGroups(ctx context.Context, repo LifeGroupStore, out io.Writer) error {
	fmt.Fprintln(out, "Starting life group sync...")
	fmt.Fprintf(out, "  Seed list contains %d life groups\n", len(LifeGroups))

	seedIDs := make(map[string]bool, len(LifeGroups))
	for _, group := range LifeGroups {
		seedIDs[group.ID] = true
	}

	existing, err := repo.LifeGroups(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch existing life groups: %w", err)
	}
	fmt.Fprintf(out, "  Database contains %d life groups\n", len(existing))

	deletedCount := 0
	for _, group := range existing {
		if seedIDs[group.ID] {
			continue
		}
		fmt.Fprintf(out, "  Deleting life group: %s (id: %s)\n", group.Name, group.ID)
		if err := repo.DeleteLifeGroup(ctx, group.ID); err != nil {
			return fmt.Errorf("failed to delete life group %s: %w", group.ID, err)
		}
		deletedCount++
	}

	upsertedCount := 0
	for _, group := range LifeGroups {
		fmt.Fprintf(out, "  Upserting life group: %s\n", group.Name)
		if err := repo.UpsertLifeGroup(ctx, &group); err != nil {
			return fmt.Errorf("failed to upsert life group %s: %w", group.ID, err)
		}
		upsertedCount++
	}

	fmt.Fprintf(out, "Life group sync complete: %d upserted, %d deleted\n", upsertedCount, deletedCount)
	return nil
}
