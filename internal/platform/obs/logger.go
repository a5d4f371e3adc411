package obs

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a JSON production logger for APP_ENV=production and a
// console development logger otherwise.
func NewLogger(appEnv string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	return log.Named("ecoroute"), nil
}
