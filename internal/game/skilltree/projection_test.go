package skilltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelmir/digo/internal/data"
	"github.com/skelmir/digo/internal/testutil"
)

func buffNames(set BuffSet) []string {
	names := make([]string, 0, len(set))
	for _, b := range set {
		names = append(names, b.Name)
	}
	return names
}

func TestProject_AnyScopedBuffReachesEveryVariant(t *testing.T) {
	idx, integrity := Project(testutil.CycloneTrees())
	require.Empty(t, integrity)

	// "any"-scoped buff lands in the base set and every variant's set.
	assert.Equal(t, []string{"Eye of the Storm"}, buffNames(idx.Applicable("Cyclone Strike", "")))
	assert.Contains(t, buffNames(idx.Applicable("Cyclone Strike", "Eye of the Storm")), "Eye of the Storm")
	assert.Contains(t, buffNames(idx.Applicable("Cyclone Strike", "Vortex")), "Eye of the Storm")
}

func TestProject_VariantScopedBuffOnlyUnderItsVariant(t *testing.T) {
	idx, _ := Project(testutil.CycloneTrees())

	assert.Contains(t, buffNames(idx.Applicable("Cyclone Strike", "Vortex")), "Implosion")
	assert.NotContains(t, buffNames(idx.Applicable("Cyclone Strike", "Eye of the Storm")), "Implosion")
	assert.NotContains(t, buffNames(idx.Applicable("Cyclone Strike", "")), "Implosion")

	assert.Contains(t, buffNames(idx.Applicable("Cyclone Strike", "Eye of the Storm")), "Stormheart")
	assert.NotContains(t, buffNames(idx.Applicable("Cyclone Strike", "Vortex")), "Stormheart")
}

func TestProject_Idempotent(t *testing.T) {
	trees := testutil.CycloneTrees()

	first, _ := Project(trees)
	second, _ := Project(trees)

	require.Equal(t, first, second)

	// No duplication: every set holds distinct names.
	for skill, variants := range second {
		for variant, set := range variants {
			seen := make(map[string]bool, len(set))
			for _, b := range set {
				assert.Falsef(t, seen[b.Name], "duplicate buff %q under %s/%s", b.Name, skill, variant)
				seen[b.Name] = true
			}
		}
	}
}

func TestProject_IntegrityErrorForMissingVariant(t *testing.T) {
	trees := data.NewTreeCatalog([]*data.SkillTreeEntry{
		{
			SkillName: "Cyclone Strike",
			Variants: []*data.VariantDefinition{
				{Name: "Vortex", CostPoints: 5},
			},
			Buffs: []*data.BuffDefinition{
				{Name: "Ghost Buff", CostPoints: 5, MaxLevel: 1,
					LevelBonuses: []string{"+1"}, RequiredVariant: "No Such Variant"},
				{Name: "Implosion", CostPoints: 5, MaxLevel: 1,
					LevelBonuses: []string{"+1"}, RequiredVariant: "Vortex"},
			},
		},
	})

	idx, integrity := Project(trees)

	require.Len(t, integrity, 1)
	assert.Equal(t, "Ghost Buff", integrity[0].Buff)
	assert.Equal(t, "No Such Variant", integrity[0].Variant)

	// Load is not aborted: the valid buff is still projected.
	assert.Equal(t, []string{"Implosion"}, buffNames(idx.Applicable("Cyclone Strike", "Vortex")))
	assert.NotContains(t, buffNames(idx.Applicable("Cyclone Strike", "Vortex")), "Ghost Buff")
}

func TestProjectedBuffIndex_UnknownSkill(t *testing.T) {
	idx, _ := Project(testutil.CycloneTrees())
	assert.Nil(t, idx.Applicable("No Such Skill", ""))
}
