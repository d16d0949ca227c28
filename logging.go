package sparsecs

import "go.uber.org/zap"

// nopLogger is used whenever a caller doesn't inject one, following the
// "nil logger field defaults to a no-op" idiom used throughout the
// retrieval pack's server code rather than forcing every construction site
// to care about logging.
func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return nopLogger()
	}
	return log
}
