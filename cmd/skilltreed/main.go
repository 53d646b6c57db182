package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/skelmir/digo/internal/config"
	"github.com/skelmir/digo/internal/data"
	"github.com/skelmir/digo/internal/db"
	"github.com/skelmir/digo/internal/game/skilltree"
	"github.com/skelmir/digo/internal/mirror"
	"github.com/skelmir/digo/internal/notify"
)

const ConfigPath = "config/skilltreed.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("digo skill tree daemon starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("DIGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSkillTreed(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded",
		"bind", cfg.BindAddress, "port", cfg.Port,
		"driver", cfg.Storage.Driver, "total_points", cfg.TotalPoints)

	// Load catalogs
	skills, err := data.LoadSkills()
	if err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	trees, err := data.LoadSkillTrees(skills)
	if err != nil {
		return fmt.Errorf("loading skill trees: %w", err)
	}
	index, integrity := skilltree.Project(trees)
	for _, ie := range integrity {
		slog.Warn("catalog integrity", "error", ie.Error())
	}

	icons := data.DefaultIconTable()
	if cfg.IconOverridesPath != "" {
		if err := icons.LoadOverrides(cfg.IconOverridesPath); err != nil {
			return fmt.Errorf("loading icon overrides: %w", err)
		}
	}
	slog.Info("icon table ready", "entries", icons.Count())

	// Open persistence gateway
	gateway, err := openGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer gateway.Close()

	// Build session and load the save
	store := skilltree.NewStore(skills, trees, index, cfg.TotalPoints)
	session := skilltree.NewSession(store, gateway, notify.SlogNotifier{})
	if err := session.Load(ctx); err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	// Mirror: snapshot on connect and on every mutation
	hub := mirror.NewHub(func() ([]byte, error) {
		return skilltree.EncodeSave(store)
	})
	store.OnChange(hub.Broadcast)

	srv := mirror.NewServer(fmt.Sprintf("%s:%d", cfg.BindAddress, cfg.Port), hub)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("mirror server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// Flush the session before exit; navigating away without awaiting save
	// is how data gets lost.
	saveCtx := context.Background()
	if err := session.Save(saveCtx); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	slog.Info("digo skill tree daemon stopped")
	return nil
}

func openGateway(ctx context.Context, cfg config.SkillTreed) (db.Gateway, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return db.NewMemoryGateway(), nil
	case config.DriverSQLite:
		gw, err := db.NewSQLiteGateway(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite gateway: %w", err)
		}
		return gw, nil
	case config.DriverPostgres:
		dsn := cfg.Storage.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		gw, err := db.NewPostgresGateway(ctx, dsn, cfg.PlayerProfile)
		if err != nil {
			return nil, fmt.Errorf("opening postgres gateway: %w", err)
		}
		return gw, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
