package contracts

// Logger is the logging port every component writes through. Key/value
// pairs follow the zap sugared convention.
type Logger interface {
	IsDebugEnabled() bool
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
