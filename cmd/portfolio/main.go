package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hatamisugandi/portfolio"
	"github.com/hatamisugandi/portfolio/views"
)

func main() {
	// A missing .env is fine in production where the environment is real.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg, err := portfolio.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := portfolio.New(cfg, views.Funcs(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
