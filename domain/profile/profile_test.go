package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcadia-music/goapi/domain"
)

func TestFromTransaction(t *testing.T) {
	req := require.New(t)
	tx := &domain.Transaction{Id: "tx-1", Owner: "owner-1", Timestamp: 1700000000}

	p := FromTransaction(tx, []byte(`{"handle":"dj","name":"DJ","bio":"hi","avatar":"av","links":{"x":"@dj"}}`))
	req.Equal(&Profile{
		Address:   "owner-1",
		Handle:    "dj",
		Name:      "DJ",
		Bio:       "hi",
		Avatar:    "av",
		Links:     map[string]string{"x": "@dj"},
		TxId:      "tx-1",
		Timestamp: 1700000000,
	}, p)
	req.False(p.IsEmpty())

	broken := FromTransaction(tx, []byte(`not json`))
	req.Equal(domain.Address("owner-1"), broken.Address)
	req.Equal("", broken.Handle)
	req.NotNil(broken.Links)
}

func TestEmpty(t *testing.T) {
	p := Empty("owner-2")
	require.True(t, p.IsEmpty())
	require.Equal(t, domain.Address("owner-2"), p.Address)
}
