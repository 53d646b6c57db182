package data

// skillDef — определение базового скилла (Go-литералы в skill_defs.go).
// Поля damageCoef/durationCoef задают производные формулы: если коэффициент
// ненулевой, итоговое значение = coef * radius и пересчитывается лоадером.
type skillDef struct {
	name            string
	kind            string
	damage          float64
	manaCost        int32
	cooldownSeconds float64
	castRange       float64
	radius          float64
	durationSeconds float64

	// derived-field formula inputs (see computeDerived)
	damageCoef   float64 // damage = damageCoef * radius, когда != 0
	durationCoef float64 // durationSeconds = durationCoef * radius, когда != 0

	presentationRef string

	// effect hooks: имена аудио-кью, прозрачные для резолвера
	castCue   string
	impactCue string
	endCue    string

	effects []string // базовые теги эффектов, порядок значим

	// boolean flags
	isPrimaryAttack bool
	piercing        bool
	isCustomSkill   bool
}

// SkillKind классифицирует скилл по механике исполнения.
type SkillKind string

const (
	KindTeleport   SkillKind = "teleport"
	KindProjectile SkillKind = "projectile"
	KindWave       SkillKind = "wave"
	KindBuff       SkillKind = "buff"
	KindHeal       SkillKind = "heal"
	KindAoe        SkillKind = "aoe"
	KindMulti      SkillKind = "multi"
	KindMark       SkillKind = "mark"
	KindDash       SkillKind = "dash"
	KindControl    SkillKind = "control"
	KindSummon     SkillKind = "summon"
)

// SkillDefinition — собранное определение скилла. Строится один раз
// в LoadSkills и после этого не мутирует.
//
// Damage и DurationSeconds могут быть производными от Radius: входы формулы
// (DamageCoef/DurationCoef) сохраняются, а Recompute пересчитывает значения
// заново при горячей перезагрузке каталога.
type SkillDefinition struct {
	Name            string
	Kind            SkillKind
	Damage          float64
	ManaCost        int32
	CooldownSeconds float64
	Range           float64
	Radius          float64
	DurationSeconds float64

	DamageCoef   float64
	DurationCoef float64

	PresentationRef string

	CastCue   string
	ImpactCue string
	EndCue    string

	Effects []string

	IsPrimaryAttack bool
	Piercing        bool
	IsCustomSkill   bool
}

// Recompute пересчитывает производные поля из сохранённых входов формулы.
func (s *SkillDefinition) Recompute() {
	if s.DamageCoef != 0 {
		s.Damage = s.DamageCoef * s.Radius
	}
	if s.DurationCoef != 0 {
		s.DurationSeconds = s.DurationCoef * s.Radius
	}
}
