package usecase

import (
	"errors"

	"github.com/viney-shih/goroutines"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/slice"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/service/cache"
	"github.com/arcadia-music/goapi/service/gql"
)

const batchWorkers = 8

type ProfileUseCaseCfg struct {
	Gql         gql.Client
	WebResource domain.WebResourceUseCase
	// optional
	Cache cache.Service
}

type impl struct {
	gql         gql.Client
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

func New(cfg *ProfileUseCaseCfg) profile.Usecase {
	return &impl{
		gql:         cfg.Gql,
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (im *impl) GetProfile(c ctx.Ctx, address domain.Address) (*profile.Profile, error) {
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if im.cache == nil {
		return im.fetch(c, address)
	}

	p := &profile.Profile{}
	err := im.cache.GetByFunc(c, address.String(), p, func() (interface{}, error) {
		return im.fetch(c, address)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (im *impl) fetch(c ctx.Ctx, address domain.Address) (*profile.Profile, error) {
	page, err := im.gql.Transactions(c,
		gql.WithOwners(address),
		gql.WithTag(domain.TagProtocolName, domain.ProtocolNameAccount),
		gql.WithFirst(1),
		gql.WithSort(gql.SortHeightDesc),
	)
	if err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("gql.Transactions failed")
		return nil, err
	}

	txs := page.Transactions()
	if len(txs) == 0 {
		return profile.Empty(address), nil
	}
	tx := txs[0]

	data, err := im.webResource.GetJson(c, tx.Id.String())
	if errors.Is(err, domain.ErrNotFound) {
		// not seeded yet, keep what the tags tell
		return profile.FromTransaction(tx, nil), nil
	} else if err != nil {
		c.WithFields(log.Fields{"address": address, "txId": tx.Id, "err": err}).Error("webResource.GetJson failed")
		return nil, err
	}
	return profile.FromTransaction(tx, data), nil
}

type indexed struct {
	idx     int
	profile *profile.Profile
}

func (im *impl) GetProfiles(c ctx.Ctx, addresses []domain.Address) ([]*profile.Profile, error) {
	addresses = slice.DedupeStrings(addresses)
	res := make([]*profile.Profile, len(addresses))
	if len(addresses) == 0 {
		return res, nil
	}

	b := goroutines.NewBatch(batchWorkers, goroutines.WithBatchSize(len(addresses)))
	defer b.Close()

	for i := range addresses {
		idx := i
		b.Queue(func() (interface{}, error) {
			p, err := im.GetProfile(c, addresses[idx])
			if err != nil {
				c.WithFields(log.Fields{"address": addresses[idx], "err": err}).Warn("GetProfile failed")
				p = profile.Empty(addresses[idx])
			}
			return indexed{idx, p}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("profile batch result failed")
			continue
		}
		r := ret.Value().(indexed)
		res[r.idx] = r.profile
	}
	return res, nil
}
