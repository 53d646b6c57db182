package skilltree

import (
	"log/slog"

	"github.com/skelmir/digo/internal/data"
)

// BuffSet — упорядоченный набор баффов (порядок объявления в каталоге).
type BuffSet []*data.BuffDefinition

// Contains reports whether the set has a buff with the given name.
func (s BuffSet) Contains(name string) bool {
	return s.Get(name) != nil
}

// Get returns the buff with the given name, or nil.
func (s BuffSet) Get(name string) *data.BuffDefinition {
	for _, b := range s {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// ProjectedBuffIndex — производный индекс: скилл → вариант → применимые баффы.
// Синтетический ключ data.VariantAny представляет базовое состояние без
// варианта. Строится один раз после загрузки каталога, далее read-only.
type ProjectedBuffIndex map[string]map[string]BuffSet

// Applicable returns the buff set for (skill, variant). Пустое имя варианта
// трактуется как базовое состояние (VariantAny).
func (idx ProjectedBuffIndex) Applicable(skillName, variantName string) BuffSet {
	variants, ok := idx[skillName]
	if !ok {
		return nil
	}
	if variantName == "" {
		variantName = data.VariantAny
	}
	return variants[variantName]
}

// Project строит ProjectedBuffIndex из каталога деревьев. Чистая функция:
// повторный вызов на том же каталоге даёт индекс с тем же содержимым, и
// вставка защищена от дублей, так что баффы не задваиваются.
//
// Бафф с requiredVariant == "any" попадает в набор каждого варианта и в
// базовый набор; бафф с точным requiredVariant — только в набор этого
// варианта. Бафф, ссылающийся на несуществующий вариант, исключается из
// проекции и попадает в список ошибок целостности.
func Project(trees *data.TreeCatalog) (ProjectedBuffIndex, []*IntegrityError) {
	idx := make(ProjectedBuffIndex, trees.Len())
	var integrity []*IntegrityError

	for _, skillName := range trees.Names() {
		entry, _ := trees.Get(skillName)

		variants := make(map[string]BuffSet, len(entry.Variants)+1)
		variants[data.VariantAny] = nil
		for _, v := range entry.Variants {
			variants[v.Name] = nil
		}

		for _, b := range entry.Buffs {
			if b.RequiredVariant == data.VariantAny {
				for name := range variants {
					variants[name] = insertBuff(variants[name], b)
				}
				continue
			}
			if !entry.HasVariant(b.RequiredVariant) {
				err := &IntegrityError{Skill: skillName, Buff: b.Name, Variant: b.RequiredVariant}
				slog.Warn("excluding buff from projection", "error", err.Error())
				integrity = append(integrity, err)
				continue
			}
			variants[b.RequiredVariant] = insertBuff(variants[b.RequiredVariant], b)
		}

		idx[skillName] = variants
	}

	return idx, integrity
}

// insertBuff appends b unless a buff with the same name is already present.
func insertBuff(set BuffSet, b *data.BuffDefinition) BuffSet {
	if set.Contains(b.Name) {
		return set
	}
	return append(set, b)
}
