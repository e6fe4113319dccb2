package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	httpadapter "streetlife/internal/adapter/http"
	metricsinmem "streetlife/internal/adapter/metrics/inmemory"
	gormrepo "streetlife/internal/adapter/repo/gorm"
	"streetlife/internal/adapter/repo/memory"
	"streetlife/internal/app/action"
	"streetlife/internal/app/catalog"
	"streetlife/internal/app/history"
	"streetlife/internal/app/player"
	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	addr := envOr("STREETLIFE_ADDR", ":8080")
	players, catalogRepo, currencies, events, txManager := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()
	resolver := life.Resolver{Rand: buildRand()}

	h := httpadapter.Handler{
		CreateUC: player.CreateUseCase{
			TxManager:  txManager,
			Players:    players,
			Currencies: currencies,
			Now:        time.Now,
		},
		InfoUC:    player.InfoUseCase{Players: players},
		CatalogUC: catalog.UseCase{Catalog: catalogRepo},
		ActionUC: action.UseCase{
			TxManager: txManager,
			Players:   players,
			Catalog:   catalogRepo,
			Events:    events,
			Metrics:   kpiRecorder,
			Resolver:  resolver,
			Now:       time.Now,
		},
		HistoryUC: history.UseCase{Players: players, Events: events},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("streetlife server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.PlayerRepository, ports.CatalogRepository, ports.CurrencyRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("STREETLIFE_DB_DSN"))
	if dsn == "" {
		log.Println("STREETLIFE_DB_DSN is empty, using in-memory store with demo catalog")
		store := memory.NewStore()
		seedDemo(store)
		return memory.NewPlayerRepo(store), memory.NewCatalogRepo(store), memory.NewCurrencyRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	migrationsDir := envOr("STREETLIFE_MIGRATIONS_DIR", "./migrations")
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewPlayerRepo(db), gormrepo.NewCatalogRepo(db), gormrepo.NewCurrencyRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

// seedDemo gives the in-memory store a playable catalog so the server is
// usable without a database.
func seedDemo(store *memory.Store) {
	store.SeedCurrencies(life.Currency{ID: 1, Name: "dollar"})
	store.SeedCatalog(
		life.CatalogItem{ID: 1, Category: life.CategoryHome, Name: "basement room", Price: 500, CurrencyID: 1},
		life.CatalogItem{ID: 1, Category: life.CategorySkill, Name: "driving", Price: 200, CurrencyID: 1},
		life.CatalogItem{ID: 1, Category: life.CategoryTransport, Name: "old bike", Price: 100, CurrencyID: 1},
		life.CatalogItem{
			ID: 1, Category: life.CategoryStreet, Name: "collect bottles",
			IncomeMin: 5, IncomeMax: 20, CurrencyID: 1,
			HungerHarm: life.Range{Min: 2, Max: 6},
			RestHarm:   life.Range{Min: 2, Max: 6},
		},
		life.CatalogItem{
			ID: 1, Category: life.CategoryWork, Name: "courier",
			IncomeMin: 30, IncomeMax: 60, CurrencyID: 1,
			RequiredTransportID: 1,
			HungerHarm:          life.Range{Min: 4, Max: 10},
			RestHarm:            life.Range{Min: 6, Max: 12},
			HealthHarm:          life.Range{Min: 1, Max: 3},
		},
		life.CatalogItem{
			ID: 1, Category: life.CategoryFood, Name: "street food", Price: 10, CurrencyID: 1,
			HungerBenefit: life.Range{Min: 10, Max: 25},
		},
		life.CatalogItem{
			ID: 1, Category: life.CategoryHealth, Name: "clinic visit", Price: 50, CurrencyID: 1,
			HealthBenefit: life.Range{Min: 10, Max: 30},
		},
		life.CatalogItem{
			ID: 1, Category: life.CategoryLeisure, Name: "night out", Price: 40, CurrencyID: 1,
			RestBenefit:      life.Range{Min: 10, Max: 20},
			AuthorityBenefit: life.Range{Min: 1, Max: 2},
		},
		life.CatalogItem{
			ID: 1, Category: life.CategoryBusiness, Name: "kiosk", Price: 2000, CurrencyID: 1,
			MinAuthority: 5, Income: 100, IncomePeriod: 5,
		},
	)
}

// buildRand returns a seeded source for reproducible runs when
// STREETLIFE_SEED is set; otherwise the resolver falls back to the global
// source. The seeded source is shared by every request handler, so it is
// wrapped in a lock.
func buildRand() *rand.Rand {
	seed := uint64(intEnv("STREETLIFE_SEED", 0))
	if seed == 0 {
		return nil
	}
	return rand.New(&lockedSource{src: rand.NewPCG(seed, seed)})
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
