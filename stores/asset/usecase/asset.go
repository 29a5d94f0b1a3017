package usecase

import (
	"github.com/tidwall/gjson"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/service/dre"
)

type AssetUseCaseCfg struct {
	Dre dre.Client
	// Marketplace is the order book contract, it holds units while they are listed
	Marketplace domain.Address
	// optional, owners are returned without profiles when nil
	Profile profile.Usecase
}

type impl struct {
	dre         dre.Client
	marketplace domain.Address
	profile     profile.Usecase
}

func New(cfg *AssetUseCaseCfg) asset.Usecase {
	return &impl{
		dre:         cfg.Dre,
		marketplace: cfg.Marketplace,
		profile:     cfg.Profile,
	}
}

func (im *impl) GetState(c ctx.Ctx, id domain.ContractId) (*asset.State, error) {
	if id.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	st, err := im.dre.State(c, id)
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("dre.State failed")
		return nil, err
	}

	res := &asset.State{
		Id:       id,
		Name:     st.Get("name").String(),
		Ticker:   st.Get("ticker").String(),
		Balances: map[domain.Address]int64{},
	}
	// balances may be numbers or numeric strings
	st.Get("balances").ForEach(func(key, value gjson.Result) bool {
		res.Balances[domain.Address(key.String())] = value.Int()
		return true
	})
	return res, nil
}

func (im *impl) GetOwners(c ctx.Ctx, id domain.ContractId) ([]*asset.TrackAssetOwner, error) {
	st, err := im.GetState(c, id)
	if err != nil {
		return nil, err
	}

	owners := asset.NewOwners(st.Balances, im.marketplace)
	if im.profile == nil || len(owners) == 0 {
		return owners, nil
	}

	addresses := make([]domain.Address, 0, len(owners))
	for _, o := range owners {
		addresses = append(addresses, o.Address)
	}
	profiles, err := im.profile.GetProfiles(c, addresses)
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Warn("profile.GetProfiles failed")
		return owners, nil
	}
	for i, o := range owners {
		if i < len(profiles) {
			o.Profile = profiles[i]
		}
	}
	return owners, nil
}
