package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"novelhub/internal/config"
	"novelhub/internal/storage"
	"novelhub/pkg/database"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0755); err != nil {
		log.Fatal(err)
	}
	db, err := database.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// noveltype is reference data; seed from JSON if present, built-in list otherwise
	types := database.DefaultNovelTypes
	if _, err := os.Stat("./data/noveltypes.json"); err == nil {
		types, err = database.LoadNovelTypesFromJSON("./data/noveltypes.json")
		if err != nil {
			log.Fatal(err)
		}
	}
	if n, err := database.SeedNovelTypes(db, types); err != nil {
		log.Fatal(err)
	} else if n > 0 {
		log.Printf("Seeded %d novel types into %s", n, cfg.DB.Path)
	}

	images, err := storage.NewImageStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal(err)
	}

	r := newRouter(cfg, db, images)
	log.Printf("HTTP API listening on %s", cfg.Server.Addr)
	log.Fatal(r.Run(cfg.Server.Addr))
}
