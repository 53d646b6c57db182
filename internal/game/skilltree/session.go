package skilltree

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skelmir/digo/internal/db"
	"github.com/skelmir/digo/internal/notify"
)

// Ключи Persistence Gateway.
const (
	// SaveKeyAllocations — блоб стора аллокаций.
	SaveKeyAllocations = "skilltree:allocations"

	// SaveKeyCustomSkills — флаг "кастомные скиллы включены". Фильтрует
	// видимость скиллов, данные каталога не меняет.
	SaveKeyCustomSkills = "skilltree:custom-skills"
)

// Session владеет стором на время сессии игрока: загрузка/сохранение через
// gateway, гейт готовности и поверхность мутаций с уведомлениями.
//
// Мутации до завершения Load отклоняются с ErrNotReady: UI не должен
// позволять трогать ещё не загруженный стор.
type Session struct {
	store    *Store
	gateway  db.Gateway
	notifier notify.Notifier

	ready        bool
	customSkills bool
}

// NewSession связывает стор с gateway. Нотификатор опционален (nil = no-op).
func NewSession(store *Store, gateway db.Gateway, notifier notify.Notifier) *Session {
	return &Session{store: store, gateway: gateway, notifier: notifier}
}

// Store returns the underlying allocation store.
func (s *Session) Store() *Store {
	return s.store
}

// Ready reports whether Load has completed.
func (s *Session) Ready() bool {
	return s.ready
}

// Load читает блобы из gateway и восстанавливает стор с реконсиляцией.
// Протухшие записи отбрасываются с warning, не фатально.
func (s *Session) Load(ctx context.Context) error {
	blob, err := s.gateway.Load(ctx, SaveKeyAllocations)
	if err != nil {
		return fmt.Errorf("loading allocations: %w", err)
	}
	stale := DecodeSave(blob, s.store)
	if len(stale) > 0 {
		slog.Warn("save reconciliation dropped stale entries", "count", len(stale))
	}

	flag, err := s.gateway.Load(ctx, SaveKeyCustomSkills)
	if err != nil {
		return fmt.Errorf("loading custom skills flag: %w", err)
	}
	s.customSkills = string(flag) == "true"

	s.ready = true
	slog.Info("skill tree session loaded",
		"skills_allocated", len(s.store.allocs),
		"spent", s.store.ledger.Spent(),
		"custom_skills", s.customSkills,
	)
	return nil
}

// Save пишет стор в gateway. Отказывает при перерасходе бюджета (возможен
// только при внешнем уменьшении totalPoints после загрузки).
func (s *Session) Save(ctx context.Context) error {
	if !s.ready {
		return ErrNotReady
	}
	if spent := s.store.ledger.Spent(); spent > s.store.ledger.TotalPoints() {
		notify.Send(s.notifier, "Cannot save: spent points exceed budget", 4*time.Second, notify.SeverityError)
		return fmt.Errorf("spent %d exceeds budget %d: %w", spent, s.store.ledger.TotalPoints(), ErrInsufficientPoints)
	}

	blob, err := EncodeSave(s.store)
	if err != nil {
		return fmt.Errorf("encoding allocations: %w", err)
	}
	if err := s.gateway.Save(ctx, SaveKeyAllocations, blob); err != nil {
		notify.Send(s.notifier, "Saving failed", 4*time.Second, notify.SeverityError)
		return fmt.Errorf("saving allocations: %w", err)
	}

	notify.Send(s.notifier, "Skill build saved", 2*time.Second, notify.SeverityInfo)
	return nil
}

// SelectVariant — мутация с гейтом готовности; отказ показывается игроку.
func (s *Session) SelectVariant(skillName, variantName string) error {
	if !s.ready {
		return ErrNotReady
	}
	if err := s.store.SelectVariant(skillName, variantName); err != nil {
		notify.Send(s.notifier, err.Error(), 3*time.Second, notify.SeverityWarn)
		return err
	}
	return nil
}

// SetBuffLevel — мутация с гейтом готовности; отказ показывается игроку.
func (s *Session) SetBuffLevel(skillName, buffName string, level int32) error {
	if !s.ready {
		return ErrNotReady
	}
	if err := s.store.SetBuffLevel(skillName, buffName, level); err != nil {
		notify.Send(s.notifier, err.Error(), 3*time.Second, notify.SeverityWarn)
		return err
	}
	return nil
}

// CustomSkillsEnabled reports the feature flag state.
func (s *Session) CustomSkillsEnabled() bool {
	return s.customSkills
}

// SetCustomSkillsEnabled переключает флаг и персистит его сразу.
func (s *Session) SetCustomSkillsEnabled(ctx context.Context, enabled bool) error {
	s.customSkills = enabled
	value := "false"
	if enabled {
		value = "true"
	}
	if err := s.gateway.Save(ctx, SaveKeyCustomSkills, []byte(value)); err != nil {
		return fmt.Errorf("saving custom skills flag: %w", err)
	}
	return nil
}

// VisibleSkills возвращает имена скиллов для показа в порядке каталога,
// скрывая кастомные при выключенном флаге.
func (s *Session) VisibleSkills() []string {
	names := s.store.skills.Names()
	out := make([]string, 0, len(names))
	for _, name := range names {
		def, _ := s.store.skills.Get(name)
		if def.IsCustomSkill && !s.customSkills {
			continue
		}
		out = append(out, name)
	}
	return out
}
