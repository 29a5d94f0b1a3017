package usecase

import (
	"sync"
	"time"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	hcdomain "github.com/arcadia-music/goapi/domain/healthcheck"
)

const (
	statusOk      = "ok"
	upstreamLimit = 3 * time.Second
)

type impl struct {
	repo      hcdomain.HealthCheckRepo
	upstreams []hcdomain.UpstreamChecker
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, upstreams ...hcdomain.UpstreamChecker) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:      repo,
		upstreams: upstreams,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Report, error) {
	if err := im.repo.PingDB(context); err != nil {
		return nil, err
	}

	report := &hcdomain.Report{Healthy: true, Upstreams: map[string]string{}}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, u := range im.upstreams {
		wg.Add(1)
		go func(u hcdomain.UpstreamChecker) {
			defer wg.Done()
			c, cancel := ctx.WithTimeout(context, upstreamLimit)
			defer cancel()

			status := statusOk
			if err := u.Ping(c); err != nil {
				context.WithFields(log.Fields{"upstream": u.Name(), "err": err}).Warn("upstream ping failed")
				status = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			report.Upstreams[u.Name()] = status
			if status != statusOk {
				report.Healthy = false
			}
		}(u)
	}
	wg.Wait()
	return report, nil
}
