// canteend: development fixture server for the canteenms terminal.
//
// Serves the backend API surface the terminal expects, with an in-memory
// seeded dataset. Intended for local development and demos; the production
// backend lives elsewhere.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/canteenms/canteenms/internal/stubserver"
)

const defaultAddr = ":5000"

func main() {
	addr := flag.String("addr", "", "Listen address (overrides CANTEEND_ADDR)")
	flag.Parse()

	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	listen := *addr
	if listen == "" {
		listen = os.Getenv("CANTEEND_ADDR")
	}
	if listen == "" {
		listen = defaultAddr
	}

	srv := stubserver.New(logger)
	logger.Info("canteend listening", zap.String("addr", listen))

	if err := srv.Router().Run(listen); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
