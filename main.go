package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
)

// errLog carries fatal errors to stderr; everything else goes to stdout.
var errLog = &log.Logger{Handler: logfmt.New(os.Stderr), Level: log.InfoLevel}

func main() {
	log.SetHandler(logfmt.New(os.Stdout))

	cfg := LoadConfig()

	srv, err := Start(cfg.Port, NewRouter(DefaultGreeting))
	if err != nil {
		errLog.WithError(err).WithField("port", cfg.Port).Fatal("unable to start server")
	}

	log.WithField("port", srv.Port()).Infof("server listening on port %d", srv.Port())

	if err := srv.Wait(); err != nil {
		errLog.WithError(err).Fatal("server stopped")
	}
}
