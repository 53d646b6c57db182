package data

// NewSkillCatalog builds a catalog from already-built definitions, in the
// given order. Intended for cross-package test setup and catalog hot-reload.
func NewSkillCatalog(defs []*SkillDefinition) *SkillCatalog {
	cat := &SkillCatalog{byName: make(map[string]*SkillDefinition, len(defs))}
	for _, d := range defs {
		if _, dup := cat.byName[d.Name]; dup {
			continue
		}
		cat.byName[d.Name] = d
		cat.order = append(cat.order, d.Name)
	}
	return cat
}

// NewTreeCatalog builds a tree catalog from already-built entries, in the
// given order. Intended for cross-package test setup.
func NewTreeCatalog(entries []*SkillTreeEntry) *TreeCatalog {
	cat := &TreeCatalog{byName: make(map[string]*SkillTreeEntry, len(entries))}
	for _, e := range entries {
		if _, dup := cat.byName[e.SkillName]; dup {
			continue
		}
		cat.byName[e.SkillName] = e
		cat.order = append(cat.order, e.SkillName)
	}
	return cat
}
