package config

// This file wires up the global zap logger. Console output always goes to
// stdout; when a log file is configured the same entries are mirrored to a
// size-rotated file. The rest of the application logs through zap.S()/zap.L().

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger builds the process-wide zap logger and installs it via
// zap.ReplaceGlobals. env selects the encoder and level profile: "prod"
// uses the production JSON config, anything else the development console
// config. logFile, when non-empty, adds a rotating file sink.
func InitLogger(env, logFile string) {
	var zapConfig zap.Config
	if env == "prod" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if logFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    32,
			MaxBackups: 5,
			MaxAge:     14,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotated),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}
