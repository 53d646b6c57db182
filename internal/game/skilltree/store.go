package skilltree

import (
	"fmt"

	"github.com/skelmir/digo/internal/data"
	"github.com/skelmir/digo/internal/model"
)

// Store — мутабельное состояние прокачки игрока: аллокации по скиллам плюс
// бюджет очков. Все мутации атомарны (при ошибке состояние не меняется) и
// выполняются синхронно в одном обработчике событий — блокировки не нужны.
type Store struct {
	skills *data.SkillCatalog
	trees  *data.TreeCatalog
	index  ProjectedBuffIndex

	allocs map[string]*model.PlayerSkillAllocation
	ledger *Ledger

	onChange []func()
}

// NewStore создаёт пустой Store поверх иммутабельных каталогов.
func NewStore(skills *data.SkillCatalog, trees *data.TreeCatalog, idx ProjectedBuffIndex, totalPoints int32) *Store {
	s := &Store{
		skills: skills,
		trees:  trees,
		index:  idx,
		allocs: make(map[string]*model.PlayerSkillAllocation),
	}
	s.ledger = &Ledger{total: totalPoints, store: s}
	return s
}

// Ledger returns the budget ledger bound to this store.
func (s *Store) Ledger() *Ledger {
	return s.ledger
}

// OnChange подписывает колбэк на сигнал "состояние изменилось".
// Ядро не зависит от UI-фреймворка: это единственный канал ре-рендера.
func (s *Store) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Store) fireChange() {
	for _, fn := range s.onChange {
		fn()
	}
}

// Allocation returns a copy of the allocation for a skill (empty if none).
// Копия: прямые мутации снаружи ломали бы инварианты бюджета.
func (s *Store) Allocation(skillName string) *model.PlayerSkillAllocation {
	if a, ok := s.allocs[skillName]; ok {
		return a.Clone()
	}
	return model.NewPlayerSkillAllocation()
}

// Allocations returns copies of all non-empty allocations keyed by skill.
func (s *Store) Allocations() map[string]*model.PlayerSkillAllocation {
	out := make(map[string]*model.PlayerSkillAllocation, len(s.allocs))
	for name, a := range s.allocs {
		if !a.IsEmpty() {
			out[name] = a.Clone()
		}
	}
	return out
}

// Resolve разрешает один скилл по текущей аллокации.
func (s *Store) Resolve(skillName string) (*EffectiveSkill, error) {
	def, ok := s.skills.Get(skillName)
	if !ok {
		return nil, fmt.Errorf("resolving %q: %w", skillName, ErrUnknownSkill)
	}
	entry, _ := s.trees.Get(skillName)
	eff, _ := Resolve(def, entry, s.index, s.allocs[skillName])
	return eff, nil
}

// SelectVariant активирует вариант скилла ("" = вернуться к базовой форме).
//
// При уходе со старого варианта сначала вычищаются баффы, неприменимые под
// новым: баффы, привязанные ровно к старому варианту, снимаются, баффы со
// scope "any" переживают переключение. Ошибки: ErrPrerequisiteNotMet, если
// вложенных в скилл очков меньше requiredPointsInSkill нового варианта;
// ErrInsufficientPoints, если новая суммарная трата превысила бы бюджет.
func (s *Store) SelectVariant(skillName, variantName string) error {
	if _, ok := s.skills.Get(skillName); !ok {
		return fmt.Errorf("select variant for %q: %w", skillName, ErrUnknownSkill)
	}
	entry, ok := s.trees.Get(skillName)
	if !ok {
		return fmt.Errorf("select variant for %q: %w", skillName, ErrUnknownSkill)
	}

	var newVariant *data.VariantDefinition
	if variantName != "" {
		newVariant = entry.Variant(variantName)
		if newVariant == nil {
			return fmt.Errorf("skill %q has no variant %q: %w", skillName, variantName, ErrUnknownVariant)
		}
	}

	cur := s.allocs[skillName]
	if cur == nil {
		cur = model.NewPlayerSkillAllocation()
	}
	if cur.ActiveVariant == variantName {
		return nil
	}

	if newVariant != nil && cur.PointsInvested < newVariant.RequiredPointsInSkill {
		return fmt.Errorf("variant %q needs %d points in %q (have %d): %w",
			variantName, newVariant.RequiredPointsInSkill, skillName, cur.PointsInvested, ErrPrerequisiteNotMet)
	}

	// Переносим только баффы, применимые под новым вариантом.
	applicable := s.index.Applicable(skillName, variantName)
	kept := make(map[string]int32, len(cur.BuffLevels))
	for name, lvl := range cur.BuffLevels {
		if applicable.Contains(name) {
			kept[name] = lvl
		}
	}

	next := &model.PlayerSkillAllocation{ActiveVariant: variantName, BuffLevels: kept}
	next.PointsInvested = s.allocationCost(entry, next)

	newSpent := s.ledger.Spent() - cur.PointsInvested + next.PointsInvested
	if newSpent > s.ledger.TotalPoints() {
		return fmt.Errorf("variant %q costs %d, budget %d/%d: %w",
			variantName, next.PointsInvested, s.ledger.Spent(), s.ledger.TotalPoints(), ErrInsufficientPoints)
	}

	s.allocs[skillName] = next
	s.fireChange()
	return nil
}

// SetBuffLevel устанавливает уровень баффа; 0 снимает бафф полностью.
//
// Ошибки: ErrInvalidLevel вне [0, maxLevel]; ErrVariantMismatch, если бафф
// неприменим к текущему активному варианту; ErrInsufficientPoints, если
// маржинальная стоимость не помещается в остаток бюджета.
func (s *Store) SetBuffLevel(skillName, buffName string, level int32) error {
	if _, ok := s.skills.Get(skillName); !ok {
		return fmt.Errorf("set buff for %q: %w", skillName, ErrUnknownSkill)
	}
	entry, ok := s.trees.Get(skillName)
	if !ok {
		return fmt.Errorf("set buff for %q: %w", skillName, ErrUnknownSkill)
	}
	buff := entry.Buff(buffName)
	if buff == nil {
		return fmt.Errorf("skill %q has no buff %q: %w", skillName, buffName, ErrUnknownBuff)
	}
	if level < 0 || level > buff.MaxLevel {
		return fmt.Errorf("buff %q level %d outside [0,%d]: %w",
			buffName, level, buff.MaxLevel, ErrInvalidLevel)
	}

	cur := s.allocs[skillName]
	if cur == nil {
		cur = model.NewPlayerSkillAllocation()
	}

	if level > 0 {
		applicable := s.index.Applicable(skillName, cur.ActiveVariant)
		if !applicable.Contains(buffName) {
			return fmt.Errorf("buff %q requires variant %q, active %q: %w",
				buffName, buff.RequiredVariant, cur.ActiveVariant, ErrVariantMismatch)
		}
	}

	marginal := (level - cur.BuffLevel(buffName)) * buff.CostPoints
	if marginal > 0 && !s.ledger.CanAfford(marginal) {
		return fmt.Errorf("buff %q level %d needs %d more points, %d remaining: %w",
			buffName, level, marginal, s.ledger.Remaining(), ErrInsufficientPoints)
	}

	next := cur.Clone()
	if level == 0 {
		delete(next.BuffLevels, buffName)
	} else {
		next.BuffLevels[buffName] = level
	}
	next.PointsInvested = s.allocationCost(entry, next)

	s.allocs[skillName] = next
	s.fireChange()
	return nil
}

// allocationCost пересчитывает стоимость аллокации с нуля из каталога.
func (s *Store) allocationCost(entry *data.SkillTreeEntry, a *model.PlayerSkillAllocation) int32 {
	var cost int32
	if a.ActiveVariant != "" {
		if v := entry.Variant(a.ActiveVariant); v != nil {
			cost += v.CostPoints
		}
	}
	for name, lvl := range a.BuffLevels {
		if b := entry.Buff(name); b != nil {
			cost += b.CostPoints * lvl
		}
	}
	return cost
}

// Ledger — бюджет очков сессии. Spent всегда пересчитывается из живого
// состояния аллокаций, отдельно не хранится и потому не дрейфует.
type Ledger struct {
	total int32
	store *Store
}

// TotalPoints returns the externally set points budget.
func (l *Ledger) TotalPoints() int32 {
	return l.total
}

// SetTotalPoints задаёт бюджет (например, из сейва).
func (l *Ledger) SetTotalPoints(total int32) {
	l.total = total
}

// Spent recomputes the total of all allocations' current costs from scratch.
func (l *Ledger) Spent() int32 {
	var spent int32
	for name, a := range l.store.allocs {
		entry, ok := l.store.trees.Get(name)
		if !ok {
			continue
		}
		spent += l.store.allocationCost(entry, a)
	}
	return spent
}

// Remaining returns TotalPoints - Spent.
func (l *Ledger) Remaining() int32 {
	return l.total - l.Spent()
}

// CanAfford reports whether cost fits in the remaining budget.
func (l *Ledger) CanAfford(cost int32) bool {
	return l.Remaining() >= cost
}
