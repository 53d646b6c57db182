package skilltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelmir/digo/internal/model"
	"github.com/skelmir/digo/internal/testutil"
)

func cycloneFixture(t *testing.T) (*Store, ProjectedBuffIndex) {
	t.Helper()
	skills := testutil.CycloneSkills()
	trees := testutil.CycloneTrees()
	idx, integrity := Project(trees)
	require.Empty(t, integrity)
	return NewStore(skills, trees, idx, 100), idx
}

func TestResolve_BaseSkill(t *testing.T) {
	store, _ := cycloneFixture(t)

	eff, err := store.Resolve("Cyclone Strike")
	require.NoError(t, err)

	assert.Equal(t, "Cyclone Strike", eff.Name)
	assert.Equal(t, "", eff.ActiveVariant)
	assert.Equal(t, []string{"pull enemies to center", "area damage"}, eff.Effects)
	assert.Equal(t, int32(0), eff.PointCost)
}

func TestResolve_EffectOrdering(t *testing.T) {
	store, _ := cycloneFixture(t)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	// Select buffs in reverse catalog order: output order must still follow
	// the catalog, not the selection sequence.
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Stormheart", 1))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 2))

	eff, err := store.Resolve("Cyclone Strike")
	require.NoError(t, err)

	assert.Equal(t, []string{
		// base effects first
		"pull enemies to center", "area damage",
		// then variant effects in declared order
		"increased pull range", "absorb shield after pull",
		// then buff bonuses in catalog declaration order
		"+20% center damage",
		"heal 6% max life",
	}, eff.Effects)
	assert.Equal(t, "The vortex tightens, shielding you as it closes.", eff.Description)
	assert.Equal(t, int32(5+10+5), eff.PointCost)
}

func TestResolve_Deterministic(t *testing.T) {
	store, _ := cycloneFixture(t)

	require.NoError(t, store.SelectVariant("Cyclone Strike", "Eye of the Storm"))
	require.NoError(t, store.SetBuffLevel("Cyclone Strike", "Eye of the Storm", 3))

	first, err := store.Resolve("Cyclone Strike")
	require.NoError(t, err)
	second, err := store.Resolve("Cyclone Strike")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestResolve_DropsStaleBuff(t *testing.T) {
	skills := testutil.CycloneSkills()
	trees := testutil.CycloneTrees()
	idx, _ := Project(trees)

	def, ok := skills.Get("Cyclone Strike")
	require.True(t, ok)
	entry, ok := trees.Get("Cyclone Strike")
	require.True(t, ok)

	// Corrupted allocation: a buff scoped to Vortex while the base form is
	// active, plus a buff that no longer exists at all.
	alloc := &model.PlayerSkillAllocation{
		BuffLevels: map[string]int32{
			"Implosion":    1,
			"Gone Forever": 2,
		},
	}

	eff, stale := Resolve(def, entry, idx, alloc)

	// Never fails: resolution survives a corrupted save.
	assert.Equal(t, []string{"pull enemies to center", "area damage"}, eff.Effects)
	assert.Equal(t, int32(0), eff.PointCost)

	staleNames := make([]string, 0, len(stale))
	for _, ref := range stale {
		staleNames = append(staleNames, ref.Name)
	}
	assert.ElementsMatch(t, []string{"Implosion", "Gone Forever"}, staleNames)
}

func TestResolve_NilAllocation(t *testing.T) {
	skills := testutil.CycloneSkills()
	trees := testutil.CycloneTrees()
	idx, _ := Project(trees)

	def, _ := skills.Get("Cyclone Strike")
	entry, _ := trees.Get("Cyclone Strike")

	eff, stale := Resolve(def, entry, idx, nil)
	require.NotNil(t, eff)
	assert.Empty(t, stale)
	assert.Equal(t, int32(0), eff.PointCost)
}

func TestResolve_ClampsOverleveledBuff(t *testing.T) {
	skills := testutil.CycloneSkills()
	trees := testutil.CycloneTrees()
	idx, _ := Project(trees)

	def, _ := skills.Get("Cyclone Strike")
	entry, _ := trees.Get("Cyclone Strike")

	alloc := &model.PlayerSkillAllocation{
		BuffLevels: map[string]int32{"Eye of the Storm": 99},
	}

	eff, _ := Resolve(def, entry, idx, alloc)
	assert.Contains(t, eff.Effects, "+30% center damage")
	assert.Equal(t, int32(15), eff.PointCost)
}
