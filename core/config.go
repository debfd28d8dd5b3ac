package core

// DefaultMaxQueueSize is MAX_TOLERATED_QUEUE_SIZE from spec.md §3: the
// default bound on each per-type pending-request queue.
const DefaultMaxQueueSize = 10

// DefaultHistorySize bounds the in-memory ring buffer of terminal
// submission events kept for diagnostics.
const DefaultHistorySize = 256

// ManagerConfig configures a ComputationManager. All fields are optional;
// DefaultManagerConfig fills in sane defaults the same way the teacher's
// TaskSchedulerConfig does for its handlers.
type ManagerConfig struct {
	// MaxQueueSize bounds every per-type pending-request queue. Must be
	// positive; zero or negative is replaced with DefaultMaxQueueSize.
	MaxQueueSize int

	// Logger receives state-transition diagnostics. Defaults to NoOpLogger.
	Logger Logger

	// Metrics receives observability counters. Defaults to NilMetrics.
	Metrics Metrics

	// HistorySize bounds the terminal-event ring buffer. Zero or negative
	// is replaced with DefaultHistorySize.
	HistorySize int
}

// DefaultManagerConfig returns a ManagerConfig with every field set to its
// default value.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		MaxQueueSize: DefaultMaxQueueSize,
		Logger:       NewNoOpLogger(),
		Metrics:      NilMetrics{},
		HistorySize:  DefaultHistorySize,
	}
}

// withDefaults returns a copy of cfg with every unset field replaced by its
// default.
func (cfg ManagerConfig) withDefaults() ManagerConfig {
	out := cfg
	if out.MaxQueueSize <= 0 {
		out.MaxQueueSize = DefaultMaxQueueSize
	}
	if out.Logger == nil {
		out.Logger = NewNoOpLogger()
	}
	if out.Metrics == nil {
		out.Metrics = NilMetrics{}
	}
	if out.HistorySize <= 0 {
		out.HistorySize = DefaultHistorySize
	}
	return out
}
