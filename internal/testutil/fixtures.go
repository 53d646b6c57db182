// Package testutil — общие фикстуры каталогов для тестов.
package testutil

import (
	"github.com/skelmir/digo/internal/data"
)

// CycloneSkills возвращает маленький каталог скиллов для тестов ядра:
// Cyclone Strike с двумя вариантами и тремя баффами плюс скилл без дерева.
func CycloneSkills() *data.SkillCatalog {
	return data.NewSkillCatalog([]*data.SkillDefinition{
		{
			Name:            "Cyclone Strike",
			Kind:            data.KindAoe,
			ManaCost:        30,
			CooldownSeconds: 9,
			Radius:          8,
			DamageCoef:      4.5,
			PresentationRef: "cyclone-strike",
			Effects:         []string{"pull enemies to center", "area damage"},
		},
		{
			Name:            "Flying Kick",
			Kind:            data.KindDash,
			Damage:          35,
			ManaCost:        20,
			CooldownSeconds: 6,
			Range:           14,
			PresentationRef: "flying-kick",
			Effects:         []string{"dash through enemies"},
		},
		{
			Name:            "Tempest Rush",
			Kind:            data.KindControl,
			Damage:          18,
			PresentationRef: "tempest-rush",
			Effects:         []string{"channelled forward rush"},
			IsCustomSkill:   true,
		},
	})
}

// CycloneTrees возвращает дерево Cyclone Strike: вариант "Eye of the Storm"
// (5 очков) и одноимённый бафф
// (3 уровня по 5, scope any), плюс баффы, привязанные к вариантам.
func CycloneTrees() *data.TreeCatalog {
	return data.NewTreeCatalog([]*data.SkillTreeEntry{
		{
			SkillName: "Cyclone Strike",
			Variants: []*data.VariantDefinition{
				{
					Name:        "Eye of the Storm",
					Description: "The vortex tightens, shielding you as it closes.",
					Effects:     []string{"increased pull range", "absorb shield after pull"},
					CostPoints:  5,
				},
				{
					Name:                  "Vortex",
					Description:           "The cyclone lingers for several seconds.",
					Effects:               []string{"persistent pull area"},
					CostPoints:            5,
					RequiredPointsInSkill: 10,
				},
			},
			Buffs: []*data.BuffDefinition{
				{
					Name:            "Eye of the Storm",
					Description:     "The storm strikes harder at its center.",
					Effects:         []string{"center damage increase"},
					CostPoints:      5,
					MaxLevel:        3,
					LevelBonuses:    []string{"+10% center damage", "+20% center damage", "+30% center damage"},
					RequiredVariant: data.VariantAny,
				},
				{
					Name:            "Implosion",
					Description:     "Pulled enemies detonate when the vortex ends.",
					Effects:         []string{"detonation on vortex end"},
					CostPoints:      5,
					MaxLevel:        2,
					LevelBonuses:    []string{"+15% detonation damage", "+30% detonation damage"},
					RequiredVariant: "Vortex",
				},
				{
					Name:            "Stormheart",
					Description:     "The closing shield also heals you.",
					Effects:         []string{"heal on shield gain"},
					CostPoints:      5,
					MaxLevel:        1,
					LevelBonuses:    []string{"heal 6% max life"},
					RequiredVariant: "Eye of the Storm",
				},
			},
		},
		{
			SkillName: "Flying Kick",
			Variants: []*data.VariantDefinition{
				{
					Name:        "Spinning Kick",
					Description: "Kick in place, striking all around you.",
					Effects:     []string{"spin attack around self"},
					CostPoints:  5,
				},
			},
			Buffs: []*data.BuffDefinition{
				{
					Name:            "Momentum",
					Description:     "Each enemy passed through speeds you up.",
					Effects:         []string{"movement speed on pierce"},
					CostPoints:      5,
					MaxLevel:        3,
					LevelBonuses:    []string{"+4% speed", "+8% speed", "+12% speed"},
					RequiredVariant: data.VariantAny,
				},
			},
		},
	})
}
