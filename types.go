package compmanager

import (
	"github.com/hoare-go/compmanager/core"
	"github.com/hoare-go/compmanager/domain"
)

// Re-export commonly used types from domain and core so callers can depend
// on this package alone for the common case.

// ComputationType routes a Request to the engines that know how to execute it.
type ComputationType = domain.ComputationType

// Computation is a submission payload.
type Computation = domain.Computation

// Request is a Computation plus the id the manager assigned it.
type Request = domain.Request

// Result is the (id, value) pair an engine reports back.
type Result = domain.Result

// ManagerConfig configures a Manager.
type ManagerConfig = core.ManagerConfig

// ManagerStats is a point-in-time snapshot of a Manager's internal sizes.
type ManagerStats = core.ManagerStats

// Manager is the concrete coordination buffer. Most callers should depend
// on ClientFacade or EngineFacade instead.
type Manager = core.ComputationManager

// Logger and Metrics let embedders plug in their own observability.
type Logger = core.Logger
type Metrics = core.Metrics
type Field = core.Field

const (
	TypeA = domain.TypeA
	TypeB = domain.TypeB
	TypeC = domain.TypeC
)

// ErrStopped is returned by RequestComputation, GetWork, and GetNextResult
// once the manager has been stopped.
var ErrStopped = domain.ErrStopped

// DefaultManagerConfig returns a ManagerConfig with every field set to its
// default value.
func DefaultManagerConfig() ManagerConfig {
	return core.DefaultManagerConfig()
}

// NewManager creates a Manager ready to accept submissions and work requests.
func NewManager(cfg ManagerConfig) *Manager {
	return core.NewComputationManager(cfg)
}

// ClientFacade is the subset of Manager a submitting client depends on.
// Narrowing to this interface, rather than the concrete *Manager, mirrors
// the teacher's TaskRunner/ThreadPool interfaces.
type ClientFacade interface {
	RequestComputation(c Computation) (int64, error)
	AbortComputation(id int64)
	GetNextResult() (Result, error)
}

// EngineFacade is the subset of Manager a compute engine depends on.
type EngineFacade interface {
	GetWork(t ComputationType) (Request, error)
	ContinueWork(id int64) bool
	ProvideResult(r Result)
}

var (
	_ ClientFacade = (*Manager)(nil)
	_ EngineFacade = (*Manager)(nil)
)
