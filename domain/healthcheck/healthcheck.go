package healthcheck

import (
	"github.com/arcadia-music/goapi/base/ctx"
)

// Report lists the state of every upstream. Upstream failures degrade the
// report but do not fail the check.
type Report struct {
	Healthy   bool              `json:"healthy"`
	Upstreams map[string]string `json:"upstreams"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check fails only when the databases are unreachable
	Check(context ctx.Ctx) (*Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
}

// UpstreamChecker is implemented by clients of remote services the api depends on
type UpstreamChecker interface {
	Name() string
	Ping(context ctx.Ctx) error
}
