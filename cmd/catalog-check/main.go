// catalog-check — офлайн-проверка целостности каталогов: загружает скиллы
// и деревья, строит проекцию и печатает отчёт. Ненулевой код выхода при
// ошибках целостности.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/skelmir/digo/internal/data"
	"github.com/skelmir/digo/internal/game/skilltree"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	skills, err := data.LoadSkills()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading skills: %v\n", err)
		os.Exit(1)
	}
	trees, err := data.LoadSkillTrees(skills)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading skill trees: %v\n", err)
		os.Exit(1)
	}
	index, integrity := skilltree.Project(trees)

	var variants, buffs int
	for _, name := range trees.Names() {
		entry, _ := trees.Get(name)
		variants += len(entry.Variants)
		buffs += len(entry.Buffs)
	}

	fmt.Printf("skills:   %d\n", skills.Len())
	fmt.Printf("trees:    %d (%d variants, %d buffs)\n", trees.Len(), variants, buffs)

	// Per-skill projection summary.
	for _, name := range trees.Names() {
		entry, _ := trees.Get(name)
		base := index.Applicable(name, "")
		fmt.Printf("  %-20s base:%d", name, len(base))
		for _, v := range entry.Variants {
			fmt.Printf("  %s:%d", v.Name, len(index.Applicable(name, v.Name)))
		}
		fmt.Println()
	}

	if len(integrity) > 0 {
		fmt.Printf("\n%d integrity error(s):\n", len(integrity))
		for _, ie := range integrity {
			fmt.Printf("  %s\n", ie.Error())
		}
		os.Exit(1)
	}
	fmt.Println("\ncatalog OK")
}
