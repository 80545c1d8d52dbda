package main

import (
	"context"

	"github.com/bizbudz/bizbudz/config"
	"github.com/bizbudz/bizbudz/models"
	"github.com/bizbudz/bizbudz/routes"
	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	st := openStore(cfg)
	defer st.Close()

	r := routes.SetupRouter(st, *store.DefaultCatalog())

	utils.Sugar.Infof("Starting server on port %s (graceful, %s storage)", cfg.AppPort, cfg.StorageDriver)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

// openStore selects the storage backend. MySQL is the production path;
// the in-memory store serves local development and demos.
func openStore(cfg config.AppConfig) store.Store {
	var seed *store.Seed
	if cfg.SeedDemo {
		seed = store.DemoSeed()
	}

	if cfg.StorageDriver == "mysql" {
		db := config.InitDatabase(
			&models.User{}, &models.Session{}, &models.Signup{},
			&models.Note{}, &models.Like{}, &models.Comment{},
			&models.UserStats{}, &models.PageView{},
		)
		gs := store.NewGormStore(db)
		if seed != nil {
			if err := gs.SeedIfEmpty(context.Background(), seed); err != nil {
				utils.Sugar.Warnf("demo seed skipped: %v", err)
			}
		}
		return gs
	}

	return store.NewMemStore(seed)
}
