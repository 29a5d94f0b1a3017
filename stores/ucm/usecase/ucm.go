package usecase

import (
	"encoding/json"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/domain/ucm"
	"github.com/arcadia-music/goapi/service/dre"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// U, the currency the order book settles in, has 6 decimals
	DefaultDecimals = 6
)

type UcmUseCaseCfg struct {
	Dre        dre.Client
	ContractId domain.ContractId
	Asset      asset.Usecase
	// Decimals of the settlement currency, DefaultDecimals when zero
	Decimals int32
}

type impl struct {
	dre        dre.Client
	contractId domain.ContractId
	asset      asset.Usecase
	decimals   int32
}

func New(cfg *UcmUseCaseCfg) ucm.Usecase {
	decimals := cfg.Decimals
	if decimals == 0 {
		decimals = DefaultDecimals
	}
	return &impl{
		dre:        cfg.Dre,
		contractId: cfg.ContractId,
		asset:      cfg.Asset,
		decimals:   decimals,
	}
}

func (im *impl) ContractId() domain.ContractId {
	return im.contractId
}

func (im *impl) GetPairs(c ctx.Ctx) ([]*ucm.Pair, error) {
	st, err := im.dre.State(c, im.contractId)
	if err != nil {
		c.WithFields(log.Fields{"contract": im.contractId, "err": err}).Error("dre.State failed")
		return nil, err
	}

	pairs := []*ucm.Pair{}
	raw := st.Get("pairs")
	if !raw.Exists() {
		return pairs, nil
	}
	if err := json.Unmarshal([]byte(raw.Raw), &pairs); err != nil {
		c.WithFields(log.Fields{"contract": im.contractId, "err": err}).Error("json.Unmarshal pairs failed")
		return nil, domain.ErrInvalidJsonFormat
	}
	return pairs, nil
}

func (im *impl) GetListings(c ctx.Ctx, assetId domain.TxId) ([]*ucm.Listing, error) {
	if assetId.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	pairs, err := im.GetPairs(c)
	if err != nil {
		return nil, err
	}

	listings := ucm.ListingsOf(pairs, assetId, im.decimals, 0)
	if len(listings) == 0 {
		return listings, nil
	}

	st, err := im.asset.GetState(c, assetId)
	if err != nil {
		// percentages stay zero
		c.WithFields(log.Fields{"assetId": assetId, "err": err}).Warn("asset.GetState failed")
		return listings, nil
	}
	return ucm.ListingsOf(pairs, assetId, im.decimals, st.Supply()), nil
}

func (im *impl) GetListedAssets(c ctx.Ctx, offset, limit int) (*ucm.ListedAssets, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if offset < 0 || limit < 0 || limit > MaxLimit {
		return nil, domain.ErrBadParamInput
	}

	pairs, err := im.GetPairs(c)
	if err != nil {
		return nil, err
	}

	ids := ucm.ListedAssetIds(pairs)
	res := &ucm.ListedAssets{Items: []domain.TxId{}, Count: len(ids)}
	if offset >= len(ids) {
		return res, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	res.Items = ids[offset:end]
	return res, nil
}
