package main

import (
	"flag"
	"log"

	lib "github.com/shonan-transit/commute-routes"
	"github.com/shonan-transit/commute-routes/config"
	"github.com/shonan-transit/commute-routes/timetable"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: ./config.yml, ./config.yaml)")
	flag.Parse()

	lib.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := timetable.NewStoreFromConfig(cfg.Timetable)
	if err != nil {
		log.Fatalf("load timetables: %v", err)
	}
	log.Printf("loaded %d trains across %d legs", store.TrainCount(), timetable.LegCount)

	server, err := lib.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("initialize server: %v", err)
	}
	server.Start()
	server.HandleGracefulShutdown()
}
