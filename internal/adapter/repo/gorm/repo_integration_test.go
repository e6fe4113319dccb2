package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

func TestPlayerRepo_RoundTrip(t *testing.T) {
	dsn := os.Getenv("STREETLIFE_DB_DSN")
	if dsn == "" {
		t.Skip("STREETLIFE_DB_DSN is required for integration test")
	}

	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, "../../../../migrations"); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	const userID = int64(990001)
	ctx := context.Background()
	for _, stmt := range []string{
		"DELETE FROM player_event WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM balance WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM home_player WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM skill_player WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM transport_player WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM business_player WHERE player_id IN (SELECT id FROM player WHERE user_id = ?)",
		"DELETE FROM player WHERE user_id = ?",
	} {
		if err := db.Exec(stmt, userID).Error; err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}

	players := NewPlayerRepo(db)
	currencies := NewCurrencyRepo(db)

	known, err := currencies.List(ctx)
	if err != nil {
		t.Fatalf("list currencies: %v", err)
	}
	if len(known) == 0 {
		t.Fatalf("expected seeded currencies")
	}

	created, err := players.Create(ctx, life.NewPlayer(userID, known, time.Now()))
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	loaded, err := players.GetActiveByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	if len(loaded.Balances) != len(known) {
		t.Fatalf("expected %d balances, got %d", len(known), len(loaded.Balances))
	}

	loaded.Hunger = 40
	loaded.Grant(life.CategorySkill, 1)
	loaded.Version++
	if err := players.SaveWithVersion(ctx, loaded, loaded.Version-1); err != nil {
		t.Fatalf("save player: %v", err)
	}

	reloaded, err := players.GetActiveByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("reload player: %v", err)
	}
	if reloaded.Hunger != 40 || !reloaded.Owns(life.CategorySkill, 1) {
		t.Fatalf("save did not round-trip: %+v", reloaded)
	}

	if err := players.SaveWithVersion(ctx, reloaded, reloaded.Version-1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

// Marshal failures surface before any row is written, so this needs no
// database.
func TestEventRepo_RejectsUnmarshalablePayload(t *testing.T) {
	repo := NewEventRepo(nil)
	err := repo.Append(context.Background(), 1, []life.Event{
		{Type: "action_resolved", Payload: map[string]any{"bad": make(chan int)}},
	})
	if err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestCatalogRepo_ReadsSeededTables(t *testing.T) {
	dsn := os.Getenv("STREETLIFE_DB_DSN")
	if dsn == "" {
		t.Skip("STREETLIFE_DB_DSN is required for integration test")
	}

	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, "../../../../migrations"); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	catalog := NewCatalogRepo(db)
	for _, cat := range []life.Category{
		life.CategoryHome, life.CategorySkill, life.CategoryTransport,
		life.CategoryStreet, life.CategoryWork, life.CategoryFood,
		life.CategoryHealth, life.CategoryLeisure, life.CategoryBusiness,
	} {
		items, err := catalog.ListByCategory(context.Background(), cat)
		if err != nil {
			t.Fatalf("list %s: %v", cat, err)
		}
		for _, item := range items {
			if err := item.Validate(); err != nil {
				t.Fatalf("seeded item %s/%d invalid: %v", cat, item.ID, err)
			}
		}
	}

	if _, err := catalog.GetByID(context.Background(), life.CategoryHome, 999999); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
