package main

import (
	"os"

	"stage-shift/internal/api"
	"stage-shift/internal/api/handler"
	"stage-shift/internal/config"
	"stage-shift/internal/store"
	"stage-shift/pkg/router"
)

func main() {
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}
	handler.Init(cfg.OutputDir)

	r := router.New()
	api.RegisterRoutes(r)
	r.Start(cfg.Addr)
}
