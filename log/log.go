// Package log installs the global zap logger. Import for side effect
// from main.
package log

import "go.uber.org/zap"

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
