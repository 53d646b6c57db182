package data

import (
	"fmt"
	"log/slog"
)

// SkillCatalog — иммутабельный реестр базовых скиллов. Хранит порядок
// объявления для стабильного показа в UI.
type SkillCatalog struct {
	byName map[string]*SkillDefinition
	order  []string
}

// Get returns the skill definition by name.
func (c *SkillCatalog) Get(name string) (*SkillDefinition, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Names returns skill names in declaration order.
func (c *SkillCatalog) Names() []string {
	return c.order
}

// Len returns the number of skills in the catalog.
func (c *SkillCatalog) Len() int {
	return len(c.byName)
}

// LoadSkills собирает SkillCatalog из skillDefs. Производные поля
// (damage/duration по формулам) вычисляются один раз здесь, а не лениво
// при каждом обращении.
func LoadSkills() (*SkillCatalog, error) {
	cat := &SkillCatalog{
		byName: make(map[string]*SkillDefinition, len(skillDefs)),
	}

	for _, def := range skillDefs {
		if def.name == "" {
			return nil, fmt.Errorf("skill def with empty name")
		}
		if _, dup := cat.byName[def.name]; dup {
			return nil, fmt.Errorf("duplicate skill name %q", def.name)
		}

		sd := &SkillDefinition{
			Name:            def.name,
			Kind:            SkillKind(def.kind),
			Damage:          def.damage,
			ManaCost:        def.manaCost,
			CooldownSeconds: def.cooldownSeconds,
			Range:           def.castRange,
			Radius:          def.radius,
			DurationSeconds: def.durationSeconds,
			DamageCoef:      def.damageCoef,
			DurationCoef:    def.durationCoef,
			PresentationRef: def.presentationRef,
			CastCue:         def.castCue,
			ImpactCue:       def.impactCue,
			EndCue:          def.endCue,
			Effects:         append([]string(nil), def.effects...),
			IsPrimaryAttack: def.isPrimaryAttack,
			Piercing:        def.piercing,
			IsCustomSkill:   def.isCustomSkill,
		}
		sd.Recompute()

		cat.byName[sd.Name] = sd
		cat.order = append(cat.order, sd.Name)
	}

	slog.Info("loaded skills", "count", cat.Len())
	return cat, nil
}
