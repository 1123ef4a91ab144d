package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Anything other than APP_ENV=production gets
// the human-readable development config.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
