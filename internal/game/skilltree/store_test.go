package skilltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelmir/digo/internal/testutil"
)

func newTestStore(t *testing.T, totalPoints int32) *Store {
	t.Helper()
	trees := testutil.CycloneTrees()
	idx, integrity := Project(trees)
	require.Empty(t, integrity)
	return NewStore(testutil.CycloneSkills(), trees, idx, totalPoints)
}

// TestStore_BudgetScenario — сквозной сценарий: бюджет 10, вариант за 5,
// бафф 5/уровень; второй уровень баффа уже не помещается.
func TestStore_BudgetScenario(t *testing.T) {
	store := newTestStore(t, 10)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	assert.Equal(t, int32(5), store.Ledger().Spent())

	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 1))
	assert.Equal(t, int32(10), store.Ledger().Spent())

	err := store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 2)
	require.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, int32(10), store.Ledger().Spent())
	assert.Equal(t, int32(1), store.Allocation("Cyclone Strike").BuffLevel("Eye of the Storm"))
}

func TestStore_BudgetConservation(t *testing.T) {
	store := newTestStore(t, 100)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 3))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Stormheart", 1))
	require.NoError(t, store.SelectVariant("Flying Kick", "Spinning Kick"))
	require.NoError(t, store.SetBuffLevel("Flying Kick", "Momentum", 2))

	// Recompute the expected spend from scratch out of catalog costs.
	var want int32
	for skillName, alloc := range store.Allocations() {
		entry, ok := store.trees.Get(skillName)
		require.True(t, ok)
		if alloc.ActiveVariant != "" {
			want += entry.Variant(alloc.ActiveVariant).CostPoints
		}
		for buff, lvl := range alloc.BuffLevels {
			want += entry.Buff(buff).CostPoints * lvl
		}
	}

	assert.Equal(t, want, store.Ledger().Spent())
	assert.Equal(t, int32(100)-want, store.Ledger().Remaining())

	// PointsInvested mirrors the per-skill current cost.
	for skillName, alloc := range store.Allocations() {
		entry, _ := store.trees.Get(skillName)
		assert.Equal(t, store.allocationCost(entry, alloc), alloc.PointsInvested, skillName)
	}
}

// TestStore_VariantSwitchCleanup: баффы, привязанные к старому варианту,
// снимаются, "any"-scoped переживают переключение без изменений.
func TestStore_VariantSwitchCleanup(t *testing.T) {
	store := newTestStore(t, 100)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 2)) // any-scoped
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Stormheart", 1))      // variant-scoped

	// Build up enough investment for Vortex (needs 10 in skill): 5 + 10 + 5.
	require.NoError(t, store.SelectVariant("Cyclone Strike", "Vortex"))

	alloc := store.Allocation("Cyclone Strike")
	assert.Equal(t, "Vortex", alloc.ActiveVariant)
	assert.Equal(t, int32(2), alloc.BuffLevel("Eye of the Storm"), "any-scoped buff must survive")
	assert.Equal(t, int32(0), alloc.BuffLevel("Stormheart"), "old-variant buff must be cleared")

	// Ledger reflects the cleanup: Vortex 5 + EotS buff 10.
	assert.Equal(t, int32(15), store.Ledger().Spent())
}

func TestStore_SelectVariant_Prerequisite(t *testing.T) {
	store := newTestStore(t, 100)

	// Vortex requires 10 points already invested in Cyclone Strike.
	err := store.SelectVariant("Cyclone Strike", "Vortex")
	require.ErrorIs(t, err, ErrPrerequisiteNotMet)
	assert.True(t, store.Allocation("Cyclone Strike").IsEmpty(), "failed mutation must not change state")

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 1))
	// 10 points invested now.
	require.NoError(t, store.SelectVariant("Cyclone Strike", "Vortex"))
}

func TestStore_SelectVariant_InsufficientPoints(t *testing.T) {
	store := newTestStore(t, 4)

	err := store.SelectVariant("Cyclone Strike", "Eye of the Storm")
	require.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, int32(0), store.Ledger().Spent())
}

func TestStore_SelectVariant_BackToBase(t *testing.T) {
	store := newTestStore(t, 100)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 1))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Stormheart", 1))

	require.NoError(t, store.SelectVariant("Cyclone Strike", ""))

	alloc := store.Allocation("Cyclone Strike")
	assert.Equal(t, "", alloc.ActiveVariant)
	assert.Equal(t, int32(1), alloc.BuffLevel("Eye of the Storm"))
	assert.Equal(t, int32(0), alloc.BuffLevel("Stormheart"))
	assert.Equal(t, int32(5), store.Ledger().Spent())
}

func TestStore_SetBuffLevel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		skill   string
		buff    string
		level   int32
		wantErr error
	}{
		{"negative level", "Cyclone Strike", "Eye of the Storm", -1, ErrInvalidLevel},
		{"above max level", "Cyclone Strike", "Eye of the Storm", 4, ErrInvalidLevel},
		{"variant mismatch", "Cyclone Strike", "Implosion", 1, ErrVariantMismatch},
		{"unknown buff", "Cyclone Strike", "No Such Buff", 1, ErrUnknownBuff},
		{"unknown skill", "No Such Skill", "Eye of the Storm", 1, ErrUnknownSkill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, 100)
			err := store.SetBuffLevel(tt.skill, tt.buff, tt.level)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int32(0), store.Ledger().Spent())
		})
	}
}

func TestStore_SetBuffLevel_RemoveAtZero(t *testing.T) {
	store := newTestStore(t, 100)

	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 2))
	assert.Equal(t, int32(10), store.Ledger().Spent())

	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 0))
	alloc := store.Allocation("Cyclone Strike")
	_, present := alloc.BuffLevels["Eye of the Storm"]
	assert.False(t, present, "level 0 must remove the key entirely")
	assert.Equal(t, int32(0), store.Ledger().Spent())
}

func TestStore_OnChangeSignal(t *testing.T) {
	store := newTestStore(t, 100)

	var fired int
	store.OnChange(func() { fired++ })

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 1))
	assert.Equal(t, 2, fired)

	// Failed mutations must not fire the signal.
	_ = store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 99)
	assert.Equal(t, 2, fired)
}

func TestStore_UnknownVariant(t *testing.T) {
	store := newTestStore(t, 100)
	err := store.SelectVariant("Cyclone Strike", "No Such Variant")
	require.ErrorIs(t, err, ErrUnknownVariant)
}
