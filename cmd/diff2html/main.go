package main

import (
	"os"

	"diff2html/internal/cli"
	"diff2html/internal/config"
	"diff2html/internal/logging"
)

func main() {
	log, closeLog := logging.FromEnv()

	cfg, path, err := config.Load()
	if err == nil {
		log.Debug("loaded config", "path", path, "encodings", cfg.Encodings)
		err = cli.Run(cli.Options{
			Args:   os.Args[1:],
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Config: cfg,
			Log:    log,
		})
	}

	closeLog()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
