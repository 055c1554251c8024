package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/certdrill/internal/config"
)

// New returns a JSON production logger or a console development logger
// depending on the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
