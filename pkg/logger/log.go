package logger

import "go.uber.org/zap"

// NewLogger собирает консольный zap-логгер портала.
// Уровень Debug оставлен намеренно: портал — тонкий шлюз, и трассировка
// обращений к бэкенду нужна чаще, чем тишина в логах.
func NewLogger() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return l
}
