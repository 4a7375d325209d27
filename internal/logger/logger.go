// Package logger builds the process-wide zap logger. FINCOME_ENV=dev
// switches to the human-readable development encoder.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		log *zap.Logger
		err error
	)

	if strings.ToLower(os.Getenv("FINCOME_ENV")) == "dev" {
		log, err = zap.NewDevelopment(zap.AddStacktrace(zap.ErrorLevel))
	} else {
		log, err = zap.NewProduction(
			zap.AddStacktrace(zap.ErrorLevel),
			zap.Fields(zap.Field{
				Key:    "FINCOME_ENV",
				Type:   zapcore.StringType,
				String: os.Getenv("FINCOME_ENV"),
			}),
		)
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}
	return log.Sugar()
}
