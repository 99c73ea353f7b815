package utils

import "go.uber.org/zap"

// Logger is the process-wide structured logger. main replaces it with a
// production logger at startup; the no-op default keeps tests quiet.
var Logger = zap.NewNop()

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Logger = logger
}
