package data

// VariantAny — сентинел для RequiredVariant: бафф применим к любому варианту
// скилла, включая базовое состояние без варианта.
const VariantAny = "any"

// variantDef — определение варианта скилла (взаимоисключающая альтернативная форма).
type variantDef struct {
	name                  string
	description           string
	effects               []string // порядок значим: display + вывод иконок баффов
	unlockRequirement     string   // flavor text, резолвером не проверяется
	costPoints            int32    // 0 в литерале = дефолт 5
	requiredPointsInSkill int32
}

// buffDef — определение баффа (стекуемый модификатор с уровнями).
// maxLevel — явное поле каталога; 0 в литерале трактуется лоадером как 1
// (глобального дефолта 3 не существует, см. LoadSkillTrees).
type buffDef struct {
	name            string
	description     string
	effects         []string
	costPoints      int32    // за уровень; 0 = дефолт 5
	maxLevel        int32
	levelBonuses    []string // len == maxLevel, индекс 0 = уровень 1
	requiredVariant string   // VariantAny либо точное имя варианта этого скилла
}

// skillTreeDef — дерево одного скилла: варианты + баффы.
// Баффы вложены под скилл и фильтруются по requiredVariant — это источник
// истины; представление "баффы под вариантом" строится проекцией (skilltree.Project).
type skillTreeDef struct {
	skillName string
	variants  []variantDef
	buffs     []buffDef
}

// VariantDefinition — собранный вариант. Имя уникально в пределах скилла;
// область видимости всегда (skillName, variantName).
type VariantDefinition struct {
	Name                  string
	Description           string
	Effects               []string
	UnlockRequirement     string
	CostPoints            int32
	RequiredPointsInSkill int32
}

// BuffDefinition — собранный бафф.
type BuffDefinition struct {
	Name            string
	Description     string
	Effects         []string
	CostPoints      int32
	MaxLevel        int32
	LevelBonuses    []string
	RequiredVariant string
}

// SkillTreeEntry — дерево одного скилла после загрузки. Слайсы хранят
// порядок объявления в каталоге: он определяет стабильный порядок
// эффектов в резолвере.
type SkillTreeEntry struct {
	SkillName string
	Variants  []*VariantDefinition
	Buffs     []*BuffDefinition
}

// Variant returns the variant with the given name, or nil.
func (e *SkillTreeEntry) Variant(name string) *VariantDefinition {
	for _, v := range e.Variants {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Buff returns the buff with the given name, or nil.
func (e *SkillTreeEntry) Buff(name string) *BuffDefinition {
	for _, b := range e.Buffs {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// HasVariant reports whether a variant with the given name exists.
func (e *SkillTreeEntry) HasVariant(name string) bool {
	return e.Variant(name) != nil
}
