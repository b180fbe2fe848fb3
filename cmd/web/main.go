package main

import (
	"log"

	"github.com/raghul07102002/holofolio/internal/config"
	"github.com/raghul07102002/holofolio/internal/web"
)

func main() {

	cfg := config.LoadConfig()
	srv, err := web.NewServer(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("%v", err)
	}

}
