package main

import (
	"fmt"
	"os"

	"integrationdeck/config"
	"integrationdeck/export"
)

func main() {
	os.Exit(mainExitCode())
}

func mainExitCode() int {
	// stdout carries the result lines only.
	log := newCLILogger(os.Stderr, os.Getenv(config.EnvLogDir))
	defer log.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Errorf(err, "invalid configuration")
		fmt.Println("Failed to generate presentation")
		return 1
	}
	gen, err := export.NewPowerPointGenerator(cfg, log)
	if err != nil {
		log.Errorf(err, "invalid configuration")
		fmt.Println("Failed to generate presentation")
		return 1
	}

	return run(os.Stdout, gen, outputDir(), log.WithComponent("cli"))
}
