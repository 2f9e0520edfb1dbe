package app

import (
	"os"

	"github.com/guttosm/laundry-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_PRETTY. Runs before config loading so startup errors are structured too.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init(logLevel, os.Getenv("LOG_PRETTY") == "true")
}
