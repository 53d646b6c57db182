package skilltree

import (
	"errors"
	"fmt"
)

// Ошибки мутаций. Все возвращаются синхронно, состояние при этом не меняется.
var (
	// ErrInsufficientPoints — стоимость превысила бы бюджет очков.
	ErrInsufficientPoints = errors.New("insufficient skill points")

	// ErrPrerequisiteNotMet — вариант требует больше вложенных в скилл очков.
	ErrPrerequisiteNotMet = errors.New("variant prerequisite not met")

	// ErrVariantMismatch — бафф неприменим к текущему активному варианту.
	ErrVariantMismatch = errors.New("buff not applicable to active variant")

	// ErrInvalidLevel — уровень баффа вне [0, maxLevel].
	ErrInvalidLevel = errors.New("buff level out of range")

	// ErrUnknownSkill — имя скилла отсутствует в каталоге.
	ErrUnknownSkill = errors.New("unknown skill")

	// ErrUnknownVariant — имя варианта отсутствует под этим скиллом.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownBuff — имя баффа отсутствует под этим скиллом.
	ErrUnknownBuff = errors.New("unknown buff")

	// ErrNotReady — сессия ещё не загружена из хранилища.
	ErrNotReady = errors.New("allocation store not loaded yet")
)

// IntegrityError — ошибка целостности каталога: бафф ссылается на
// несуществующий вариант. Возникает на этапе загрузки/проекции; запись
// исключается, загрузка продолжается.
type IntegrityError struct {
	Skill   string
	Buff    string
	Variant string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: buff %q of skill %q requires nonexistent variant %q",
		e.Buff, e.Skill, e.Variant)
}

// StaleReference — нефатальное предупреждение реконсиляции при загрузке
// сейва: запись ссылается на имя, которого больше нет в каталоге.
type StaleReference struct {
	Skill string
	Kind  string // "skill", "variant", "buff"
	Name  string
}

func (r StaleReference) String() string {
	return fmt.Sprintf("stale %s reference %q (skill %q)", r.Kind, r.Name, r.Skill)
}
