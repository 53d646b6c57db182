package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Presentation — кортеж отображения для скилла/варианта/баффа.
// Никогда не влияет на игровую логику.
type Presentation struct {
	Symbol     string
	StyleClass string
	Color      string
}

// UnknownIcon returned for names with no mapping.
var UnknownIcon = Presentation{Symbol: "❓", StyleClass: "icon-unknown", Color: "#9e9e9e"}

// genericBuffIcon — дефолт для эвристики по тексту эффекта.
var genericBuffIcon = Presentation{Symbol: "✨", StyleClass: "icon-buff", Color: "#b39ddb"}

// buffIconKeyword — одна категория эвристики. Порядок проверки в
// buffIconKeywords зафиксирован: первый подстроковый матч выигрывает.
type buffIconKeyword struct {
	keywords []string
	icon     Presentation
}

var buffIconKeywords = []buffIconKeyword{
	{[]string{"damage"}, Presentation{Symbol: "⚔", StyleClass: "icon-damage", Color: "#e53935"}},
	{[]string{"cooldown"}, Presentation{Symbol: "⏱", StyleClass: "icon-cooldown", Color: "#1e88e5"}},
	{[]string{"range", "radius"}, Presentation{Symbol: "➹", StyleClass: "icon-range", Color: "#fb8c00"}},
	{[]string{"duration"}, Presentation{Symbol: "⌛", StyleClass: "icon-duration", Color: "#8d6e63"}},
	{[]string{"heal"}, Presentation{Symbol: "✚", StyleClass: "icon-heal", Color: "#43a047"}},
	{[]string{"defense", "shield", "absorption", "absorb"}, Presentation{Symbol: "🛡", StyleClass: "icon-defense", Color: "#fdd835"}},
	{[]string{"speed", "movement"}, Presentation{Symbol: "🡅", StyleClass: "icon-speed", Color: "#00acc1"}},
	{[]string{"area", "aoe"}, Presentation{Symbol: "◎", StyleClass: "icon-area", Color: "#7e57c2"}},
}

// iconDefs — базовая таблица иконок по presentationRef и именам
// вариантов/баффов. Переопределяется YAML-файлом (LoadOverrides).
var iconDefs = map[string]Presentation{
	"fists-of-thunder":   {Symbol: "⚡", StyleClass: "icon-skill", Color: "#fdd835"},
	"cyclone-strike":     {Symbol: "🌀", StyleClass: "icon-skill", Color: "#00acc1"},
	"seven-sided-strike": {Symbol: "七", StyleClass: "icon-skill", Color: "#e53935"},
	"exploding-palm":     {Symbol: "🖐", StyleClass: "icon-skill", Color: "#d81b60"},
	"flying-kick":        {Symbol: "👣", StyleClass: "icon-skill", Color: "#fb8c00"},
	"wave-of-light":      {Symbol: "🔔", StyleClass: "icon-skill", Color: "#ffd54f"},
	"inner-sanctuary":    {Symbol: "⭕", StyleClass: "icon-skill", Color: "#43a047"},
	"mystic-allies":      {Symbol: "👥", StyleClass: "icon-skill", Color: "#5e35b1"},
	"shield-of-zen":      {Symbol: "🛡", StyleClass: "icon-skill", Color: "#ffb300"},
	"tempest-rush":       {Symbol: "💨", StyleClass: "icon-skill", Color: "#90caf9"},
}

// IconTable маппит имя скилла/варианта/баффа на Presentation.
type IconTable struct {
	icons map[string]Presentation
}

// DefaultIconTable returns a table seeded with the built-in mappings.
func DefaultIconTable() *IconTable {
	t := &IconTable{icons: make(map[string]Presentation, len(iconDefs))}
	for name, icon := range iconDefs {
		t.icons[name] = icon
	}
	return t
}

// Lookup — тотальная функция: для неизвестного имени возвращает UnknownIcon.
func (t *IconTable) Lookup(name string) Presentation {
	if icon, ok := t.icons[name]; ok {
		return icon
	}
	return UnknownIcon
}

// LookupByEffectText подбирает иконку баффа по тексту эффекта: нормализует
// в lowercase и проверяет категории в фиксированном порядке (damage,
// cooldown, range/radius, duration, heal, defense/shield/absorption,
// speed/movement, area/aoe). Первый матч выигрывает, дефолт — generic buff.
func (t *IconTable) LookupByEffectText(effectText string) Presentation {
	text := strings.ToLower(effectText)
	for _, cat := range buffIconKeywords {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				return cat.icon
			}
		}
	}
	return genericBuffIcon
}

// Count returns the number of name mappings.
func (t *IconTable) Count() int {
	return len(t.icons)
}

// --- YAML overrides ---

type iconEntry struct {
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"`
	StyleClass string `yaml:"style_class"`
	Color      string `yaml:"color"`
}

type iconFile struct {
	Icons []iconEntry `yaml:"icons"`
}

// LoadOverrides подмешивает иконки из YAML-файла поверх базовой таблицы.
func (t *IconTable) LoadOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read icon table: %w", err)
	}
	var f iconFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse icon table %s: %w", path, err)
	}
	for _, e := range f.Icons {
		if e.Name == "" {
			continue
		}
		t.icons[e.Name] = Presentation{Symbol: e.Symbol, StyleClass: e.StyleClass, Color: e.Color}
	}
	return nil
}
