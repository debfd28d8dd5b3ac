package compmanager

import "sync"

// Global process-wide Manager (Singleton), mirroring the teacher's
// global thread pool helper: a convenience for programs that only ever
// need one manager, never the primary way to obtain one.

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// InitGlobalManager initializes the global manager with cfg. A second call
// before ShutdownGlobalManager is a no-op.
func InitGlobalManager(cfg ManagerConfig) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager != nil {
		return
	}
	globalManager = NewManager(cfg)
}

// GetGlobalManager returns the global manager. It panics if
// InitGlobalManager has not been called.
func GetGlobalManager() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("compmanager: global manager not initialized. Call InitGlobalManager() first.")
	}
	return globalManager
}

// ShutdownGlobalManager stops the global manager, if one was initialized,
// and clears it so a later InitGlobalManager can start fresh.
func ShutdownGlobalManager() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager != nil {
		globalManager.Stop()
		globalManager = nil
	}
}
