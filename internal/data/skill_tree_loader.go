package data

import (
	"fmt"
	"log/slog"
)

const (
	defaultCostPoints int32 = 5
	defaultMaxLevel   int32 = 1
)

// TreeCatalog — иммутабельный реестр деревьев скиллов, ключ — имя скилла.
type TreeCatalog struct {
	byName map[string]*SkillTreeEntry
	order  []string
}

// Get returns the tree entry for a skill name.
func (c *TreeCatalog) Get(skillName string) (*SkillTreeEntry, bool) {
	e, ok := c.byName[skillName]
	return e, ok
}

// Names returns skill names with tree entries, in declaration order.
func (c *TreeCatalog) Names() []string {
	return c.order
}

// Len returns the number of tree entries.
func (c *TreeCatalog) Len() int {
	return len(c.byName)
}

// LoadSkillTrees собирает TreeCatalog из skillTreeDefs.
//
// Дефолты: costPoints 0 → 5 (и для вариантов, и для баффов), maxLevel 0 → 1.
// Явного глобального дефолта 3 нет — maxLevel всегда данные каталога.
// Деревья, ссылающиеся на неизвестный скилл, пропускаются с warning, не
// валят загрузку. Проверка requiredVariant выполняется проекцией
// (skilltree.Project), а не здесь.
func LoadSkillTrees(skills *SkillCatalog) (*TreeCatalog, error) {
	cat := &TreeCatalog{
		byName: make(map[string]*SkillTreeEntry, len(skillTreeDefs)),
	}

	var variants, buffs int
	for _, def := range skillTreeDefs {
		if _, ok := skills.Get(def.skillName); !ok {
			slog.Warn("skill tree references unknown skill, skipping", "skill", def.skillName)
			continue
		}
		if _, dup := cat.byName[def.skillName]; dup {
			return nil, fmt.Errorf("duplicate skill tree for %q", def.skillName)
		}

		entry := &SkillTreeEntry{SkillName: def.skillName}

		seenVariants := make(map[string]bool, len(def.variants))
		for _, v := range def.variants {
			if seenVariants[v.name] {
				return nil, fmt.Errorf("duplicate variant %q under skill %q", v.name, def.skillName)
			}
			seenVariants[v.name] = true

			cost := v.costPoints
			if cost == 0 {
				cost = defaultCostPoints
			}
			entry.Variants = append(entry.Variants, &VariantDefinition{
				Name:                  v.name,
				Description:           v.description,
				Effects:               append([]string(nil), v.effects...),
				UnlockRequirement:     v.unlockRequirement,
				CostPoints:            cost,
				RequiredPointsInSkill: v.requiredPointsInSkill,
			})
		}

		seenBuffs := make(map[string]bool, len(def.buffs))
		for _, b := range def.buffs {
			if seenBuffs[b.name] {
				return nil, fmt.Errorf("duplicate buff %q under skill %q", b.name, def.skillName)
			}
			seenBuffs[b.name] = true

			cost := b.costPoints
			if cost == 0 {
				cost = defaultCostPoints
			}
			maxLevel := b.maxLevel
			if maxLevel == 0 {
				maxLevel = defaultMaxLevel
			}
			if int32(len(b.levelBonuses)) != maxLevel {
				slog.Warn("level bonuses length mismatch, clamping",
					"skill", def.skillName, "buff", b.name,
					"max_level", maxLevel, "bonuses", len(b.levelBonuses))
				if int32(len(b.levelBonuses)) < maxLevel {
					maxLevel = int32(len(b.levelBonuses))
				}
			}
			entry.Buffs = append(entry.Buffs, &BuffDefinition{
				Name:            b.name,
				Description:     b.description,
				Effects:         append([]string(nil), b.effects...),
				CostPoints:      cost,
				MaxLevel:        maxLevel,
				LevelBonuses:    append([]string(nil), b.levelBonuses...),
				RequiredVariant: b.requiredVariant,
			})
		}

		cat.byName[def.skillName] = entry
		cat.order = append(cat.order, def.skillName)
		variants += len(entry.Variants)
		buffs += len(entry.Buffs)
	}

	slog.Info("loaded skill trees",
		"skills", cat.Len(),
		"variants", variants,
		"buffs", buffs,
	)
	return cat, nil
}
