package main

import (
	"context"
	"log"

	"github.com/raghul07102002/holofolio/internal/cli"
	"github.com/raghul07102002/holofolio/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
