package main

import (
	"github.com/rs/zerolog/log"

	"baccarat_sim/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
