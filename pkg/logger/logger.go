// Package logger builds the structured logger used throughout ferret.
package logger

import "go.uber.org/zap"

// New builds a *zap.SugaredLogger suitable for either production or local
// development use. In development mode the logger writes human-readable
// console output to stderr; otherwise it writes JSON to stderr.
func New(development bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return base.Sugar(), nil
}
