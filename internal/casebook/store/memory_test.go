package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instructhub/internal/casebook/models"
	dErrors "instructhub/pkg/domain-errors"
	"instructhub/pkg/testutil"
)

func seededMemory() *Memory {
	s := NewMemory()
	s.Replace([]models.Prospect{
		{
			ProspectID: "27367",
			IdentityVerifications: []models.IdentityVerification{
				{InternalID: 1, InstructionRef: "HLX-1", EIDStatus: "completed", EIDOverallResult: "Review"},
			},
			Instructions: []models.Instruction{
				{
					InstructionRef: "HLX-1",
					IdentityVerifications: []models.IdentityVerification{
						{InternalID: 1, InstructionRef: "HLX-1", EIDStatus: "completed", EIDOverallResult: "Review"},
					},
				},
			},
		},
	})
	return s
}

func TestMemory_Prospects_CopiesSnapshot(t *testing.T) {
	ctx := testutil.Context(t)
	s := seededMemory()

	first, err := s.Prospects(ctx)
	require.NoError(t, err)
	first[0].ProspectID = "mutated"

	second, err := s.Prospects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "27367", second[0].ProspectID)
}

func TestMemory_SetEIDResult(t *testing.T) {
	ctx := testutil.Context(t)
	s := seededMemory()

	err := s.SetEIDResult(ctx, "HLX-1", "verified", "Passed")
	require.NoError(t, err)

	prospects, err := s.Prospects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Passed", prospects[0].IdentityVerifications[0].EIDOverallResult)
	assert.Equal(t, "Passed", prospects[0].Instructions[0].IdentityVerifications[0].EIDOverallResult)
}

func TestMemory_SnapshotNotAliased(t *testing.T) {
	ctx := testutil.Context(t)
	s := seededMemory()

	before, err := s.Prospects(ctx)
	require.NoError(t, err)

	require.NoError(t, s.SetEIDResult(ctx, "HLX-1", "verified", "Passed"))

	// A snapshot handed out earlier must not see mutations applied after it
	// was taken, at any nesting level.
	assert.Equal(t, "Review", before[0].IdentityVerifications[0].EIDOverallResult)
	assert.Equal(t, "Review", before[0].Instructions[0].IdentityVerifications[0].EIDOverallResult)
}

func TestMemory_ConcurrentSnapshotsAndMutations(t *testing.T) {
	ctx := testutil.Context(t)
	s := seededMemory()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				prospects, err := s.Prospects(ctx)
				assert.NoError(t, err)
				for _, p := range prospects {
					for _, v := range p.IdentityVerifications {
						// Readers only ever observe one of the two states,
						// never a torn record.
						assert.Contains(t, []string{"Review", "Passed"}, v.EIDOverallResult)
					}
				}
			}
		}()
	}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, s.SetEIDResult(ctx, "HLX-1", "verified", "Passed"))
			}
		}()
	}
	wg.Wait()
}

func TestMemory_SetEIDResult_NotFound(t *testing.T) {
	ctx := testutil.Context(t)
	s := seededMemory()

	err := s.SetEIDResult(ctx, "HLX-MISSING", "verified", "Passed")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
