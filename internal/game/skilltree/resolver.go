package skilltree

import (
	"log/slog"

	"github.com/skelmir/digo/internal/data"
	"github.com/skelmir/digo/internal/model"
)

// EffectiveSkill — полностью разрешённый скилл: база + вариант + баффы.
// Готов к показу и исполнению, дальше по пайплайну не мутирует.
type EffectiveSkill struct {
	Name            string
	Kind            data.SkillKind
	Description     string
	Damage          float64
	ManaCost        int32
	CooldownSeconds float64
	Range           float64
	Radius          float64
	DurationSeconds float64
	PresentationRef string
	CastCue         string
	ImpactCue       string
	EndCue          string

	// ActiveVariant — имя активного варианта, "" для базовой формы.
	ActiveVariant string

	// Effects — полный упорядоченный список: базовые эффекты, затем эффекты
	// варианта (в порядке объявления варианта), затем строки бонусов баффов
	// в порядке объявления баффов в каталоге (не в порядке выбора игроком).
	Effects []string

	// PointCost — очки, закоммиченные в этот скилл (вариант + баффы).
	PointCost int32
}

// Resolve собирает EffectiveSkill из каталога и аллокации игрока.
//
// Чистая проекция: не мутирует вход и никогда не отказывает. Битые ссылки
// на баффы (orphaned/stale записи из старых сейвов) не валят разрешение —
// они отбрасываются и возвращаются вторым значением, чтобы показ скилла
// переживал повреждённый сейв. Детерминированность: для фиксированного
// входа результат побайтово воспроизводим, включая порядок Effects.
func Resolve(
	def *data.SkillDefinition,
	entry *data.SkillTreeEntry,
	idx ProjectedBuffIndex,
	alloc *model.PlayerSkillAllocation,
) (*EffectiveSkill, []StaleReference) {
	eff := &EffectiveSkill{
		Name:            def.Name,
		Kind:            def.Kind,
		Damage:          def.Damage,
		ManaCost:        def.ManaCost,
		CooldownSeconds: def.CooldownSeconds,
		Range:           def.Range,
		Radius:          def.Radius,
		DurationSeconds: def.DurationSeconds,
		PresentationRef: def.PresentationRef,
		CastCue:         def.CastCue,
		ImpactCue:       def.ImpactCue,
		EndCue:          def.EndCue,
		Effects:         append([]string(nil), def.Effects...),
	}

	if alloc == nil {
		return eff, nil
	}

	// Вариант — описательный оверлей: числовые поля не переопределяет,
	// численный эффект реализует внешний игровой слой.
	if alloc.ActiveVariant != "" && entry != nil {
		if v := entry.Variant(alloc.ActiveVariant); v != nil {
			eff.ActiveVariant = v.Name
			eff.Description = v.Description
			eff.Effects = append(eff.Effects, v.Effects...)
			eff.PointCost += v.CostPoints
		} else {
			slog.Warn("allocation references unknown variant",
				"skill", def.Name, "variant", alloc.ActiveVariant)
		}
	}

	applicable := idx.Applicable(def.Name, eff.ActiveVariant)

	var stale []StaleReference
	// Обход по порядку каталога даёт стабильный порядок бонусов.
	for _, b := range applicable {
		level := alloc.BuffLevel(b.Name)
		if level < 1 {
			continue
		}
		if level > b.MaxLevel {
			level = b.MaxLevel
		}
		eff.Effects = append(eff.Effects, b.LevelBonuses[level-1])
		eff.PointCost += b.CostPoints * level
	}
	for name := range alloc.BuffLevels {
		if alloc.BuffLevels[name] >= 1 && !applicable.Contains(name) {
			ref := StaleReference{Skill: def.Name, Kind: "buff", Name: name}
			slog.Warn("dropping inapplicable buff from resolution", "ref", ref.String())
			stale = append(stale, ref)
		}
	}

	return eff, stale
}
