// Package compmanager is a thin facade over core.ComputationManager: it
// re-exports the domain types clients and engines exchange, narrows the
// manager down to the two sides of its contract (ClientFacade and
// EngineFacade), and offers an optional process-global singleton for
// programs that only ever need one manager.
package compmanager
