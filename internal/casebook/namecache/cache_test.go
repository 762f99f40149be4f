package namecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instructhub/internal/casebook/models"
)

func snapshot() []models.Case {
	return []models.Case{
		{
			Ref: "HLX-1",
			Instruction: &models.Instruction{
				Email:     "Lead@Example.com",
				FirstName: "Ada",
				LastName:  "Lovelace",
			},
			JointClients: []models.JointClient{
				{ClientEmail: "joint@example.com", FirstName: "Joan", LastName: "Clarke"},
			},
		},
	}
}

func TestCache_Lookup(t *testing.T) {
	ctx := context.Background()
	c := New(5 * time.Minute)
	c.Rebuild(ctx, snapshot())

	name, ok := c.Lookup(ctx, "lead@example.com")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)

	// Lookups are case-insensitive on the email.
	name, ok = c.Lookup(ctx, "JOINT@example.com")
	require.True(t, ok)
	assert.Equal(t, "Joan Clarke", name)

	_, ok = c.Lookup(ctx, "unknown@example.com")
	assert.False(t, ok)
}

func TestCache_RebuildBumpsGeneration(t *testing.T) {
	ctx := context.Background()
	c := New(5 * time.Minute)

	c.Rebuild(ctx, snapshot())
	require.Equal(t, uint64(1), c.Generation())

	c.Rebuild(ctx, nil)
	assert.Equal(t, uint64(2), c.Generation())

	// The old snapshot's names are gone after a rebuild.
	_, ok := c.Lookup(ctx, "lead@example.com")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, WithClock(func() time.Time { return current }))

	c.Rebuild(ctx, snapshot())

	_, ok := c.Lookup(ctx, "lead@example.com")
	require.True(t, ok)

	current = current.Add(6 * time.Minute)
	_, ok = c.Lookup(ctx, "lead@example.com")
	assert.False(t, ok)
}
