package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil)

	gql := &mocks.UpstreamChecker{}
	gql.On("Name").Return("gql")
	gql.On("Ping", mock.Anything).Return(nil)

	dre := &mocks.UpstreamChecker{}
	dre.On("Name").Return("dre")
	dre.On("Ping", mock.Anything).Return(errors.New("timeout"))

	report, err := New(repo, gql, dre).Check(ctx.Background())
	req.NoError(err)
	req.False(report.Healthy)
	req.Equal(map[string]string{"gql": "ok", "dre": "timeout"}, report.Upstreams)
}

func TestCheckDBDown(t *testing.T) {
	repo := &mocks.HealthCheckRepo{}
	boom := errors.New("no mongo")
	repo.On("PingDB", mock.Anything).Return(boom)

	_, err := New(repo).Check(ctx.Background())
	require.ErrorIs(t, err, boom)
}
