package skilltree

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/blake2b"

	"github.com/skelmir/digo/internal/model"
)

const saveVersion = 1

// savedSkill — персистируемая форма аллокации одного скилла.
// PointsInvested намеренно не сохраняется: при загрузке он проигрывается
// заново через каталог, чтобы смена стоимостей между версиями не оставляла
// протухших сумм.
type savedSkill struct {
	ActiveVariant *string          `json:"activeVariant"`
	BuffLevels    map[string]int32 `json:"buffLevels,omitempty"`
}

// saveEnvelope — конверт блоба: версия + blake2b-256 чексумма полезной
// нагрузки. Блоб с несошедшейся чексуммой трактуется как отсутствующий.
type saveEnvelope struct {
	Version  int                   `json:"version"`
	Checksum string                `json:"checksum"`
	Skills   map[string]savedSkill `json:"skills"`
}

// EncodeSave сериализует аллокации стора в блоб для Persistence Gateway.
func EncodeSave(s *Store) ([]byte, error) {
	skills := make(map[string]savedSkill, len(s.allocs))
	for name, a := range s.allocs {
		if a.IsEmpty() {
			continue
		}
		sv := savedSkill{}
		if a.ActiveVariant != "" {
			v := a.ActiveVariant
			sv.ActiveVariant = &v
		}
		if len(a.BuffLevels) > 0 {
			sv.BuffLevels = make(map[string]int32, len(a.BuffLevels))
			for b, lvl := range a.BuffLevels {
				sv.BuffLevels[b] = lvl
			}
		}
		skills[name] = sv
	}

	payload, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("marshal allocations: %w", err)
	}
	sum := blake2b.Sum256(payload)

	blob, err := json.Marshal(saveEnvelope{
		Version:  saveVersion,
		Checksum: hex.EncodeToString(sum[:]),
		Skills:   skills,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal save envelope: %w", err)
	}
	return blob, nil
}

// DecodeSave восстанавливает аллокации из блоба в стор, выполняя
// защитную реконсиляцию против дрейфа схемы между версиями сейвов:
//
//   - скилл, которого нет в текущем каталоге — отбрасывается;
//   - activeVariant, которого нет под скиллом — сбрасывается в базу;
//   - бафф вне применимого набора текущего варианта — отбрасывается;
//   - уровень выше maxLevel — зажимается.
//
// Каждый случай даёт StaleReference-warning; ничего не фатально. Битый
// JSON или несошедшаяся чексумма дают пустой стор с warning.
func DecodeSave(blob []byte, s *Store) []StaleReference {
	s.allocs = make(map[string]*model.PlayerSkillAllocation)
	defer s.fireChange()

	if len(blob) == 0 {
		return nil
	}

	var env saveEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		slog.Warn("save blob is not valid JSON, starting empty", "error", err)
		return nil
	}
	if env.Checksum != "" {
		payload, err := json.Marshal(env.Skills)
		if err == nil {
			sum := blake2b.Sum256(payload)
			if hex.EncodeToString(sum[:]) != env.Checksum {
				slog.Warn("save blob checksum mismatch, starting empty")
				return nil
			}
		}
	}

	var stale []StaleReference
	for skillName, sv := range env.Skills {
		if _, ok := s.skills.Get(skillName); !ok {
			stale = appendStale(stale, StaleReference{Skill: skillName, Kind: "skill", Name: skillName})
			continue
		}
		entry, ok := s.trees.Get(skillName)
		if !ok {
			stale = appendStale(stale, StaleReference{Skill: skillName, Kind: "skill", Name: skillName})
			continue
		}

		alloc := model.NewPlayerSkillAllocation()

		if sv.ActiveVariant != nil {
			if entry.HasVariant(*sv.ActiveVariant) {
				alloc.ActiveVariant = *sv.ActiveVariant
			} else {
				stale = appendStale(stale, StaleReference{Skill: skillName, Kind: "variant", Name: *sv.ActiveVariant})
			}
		}

		applicable := s.index.Applicable(skillName, alloc.ActiveVariant)
		for buffName, level := range sv.BuffLevels {
			if level < 1 {
				continue
			}
			b := applicable.Get(buffName)
			if b == nil {
				stale = appendStale(stale, StaleReference{Skill: skillName, Kind: "buff", Name: buffName})
				continue
			}
			if level > b.MaxLevel {
				slog.Warn("clamping saved buff level",
					"skill", skillName, "buff", buffName, "level", level, "max", b.MaxLevel)
				level = b.MaxLevel
			}
			alloc.BuffLevels[buffName] = level
		}

		if alloc.IsEmpty() {
			continue
		}
		alloc.PointsInvested = s.allocationCost(entry, alloc)
		s.allocs[skillName] = alloc
	}

	return stale
}

func appendStale(stale []StaleReference, ref StaleReference) []StaleReference {
	slog.Warn("dropping stale save entry", "ref", ref.String())
	return append(stale, ref)
}
