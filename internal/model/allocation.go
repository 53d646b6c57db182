package model

// PlayerSkillAllocation — текущий выбор игрока по одному скиллу.
// Мутируется только через API skilltree.Store: прямое изменение полей
// ломает инварианты бюджета.
type PlayerSkillAllocation struct {
	// ActiveVariant — имя активного варианта, "" = базовый скилл без варианта.
	ActiveVariant string

	// BuffLevels — уровень по имени баффа, >= 1. Отсутствие ключа = не взят.
	BuffLevels map[string]int32

	// PointsInvested — очки, вложенные в этот скилл (вариант + баффы).
	// Обновляется атомарно с каждой мутацией, гейтит RequiredPointsInSkill.
	// Не персистится: восстанавливается из каталога при загрузке.
	PointsInvested int32
}

// NewPlayerSkillAllocation returns an empty allocation (base skill, no buffs).
func NewPlayerSkillAllocation() *PlayerSkillAllocation {
	return &PlayerSkillAllocation{
		BuffLevels: make(map[string]int32),
	}
}

// Clone returns a deep copy.
func (a *PlayerSkillAllocation) Clone() *PlayerSkillAllocation {
	c := &PlayerSkillAllocation{
		ActiveVariant:  a.ActiveVariant,
		PointsInvested: a.PointsInvested,
		BuffLevels:     make(map[string]int32, len(a.BuffLevels)),
	}
	for name, lvl := range a.BuffLevels {
		c.BuffLevels[name] = lvl
	}
	return c
}

// BuffLevel returns the current level of a buff, 0 if not taken.
func (a *PlayerSkillAllocation) BuffLevel(name string) int32 {
	return a.BuffLevels[name]
}

// IsEmpty reports whether nothing is allocated for this skill.
func (a *PlayerSkillAllocation) IsEmpty() bool {
	return a.ActiveVariant == "" && len(a.BuffLevels) == 0
}
