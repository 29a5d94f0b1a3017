package ucm

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

// Order is an open sell order of the universal content marketplace
type Order struct {
	Id               domain.TxId    `json:"id"`
	Creator          domain.Address `json:"creator"`
	Token            domain.TxId    `json:"token"`
	Transfer         domain.TxId    `json:"transfer"`
	Quantity         int64          `json:"quantity"`
	OriginalQuantity int64          `json:"originalQuantity"`
	// price per unit in the smallest currency unit
	Price       int64 `json:"price"`
	DateCreated int64 `json:"dateCreated"`
}

type MatchLog struct {
	Id    domain.TxId `json:"id"`
	Qty   int64       `json:"qty"`
	Price int64       `json:"price"`
}

type PriceData struct {
	DominantToken domain.TxId `json:"dominantToken"`
	Block         string      `json:"block"`
	Vwap          int64       `json:"vwap"`
	MatchLogs     []MatchLog  `json:"matchLogs"`
}

// Pair is [asset, currency] with the orders selling the asset
type Pair struct {
	Pair      [2]domain.TxId `json:"pair"`
	Orders    []Order        `json:"orders"`
	PriceData *PriceData     `json:"priceData,omitempty"`
}

func (p *Pair) AssetId() domain.TxId {
	return p.Pair[0]
}

func (p *Pair) CurrencyId() domain.TxId {
	return p.Pair[1]
}

type Listing struct {
	Order
	AssetId      domain.TxId     `json:"assetId"`
	Currency     domain.TxId     `json:"currency"`
	DisplayPrice decimal.Decimal `json:"displayPrice"`
	// share of the asset supply offered by this order
	Percentage decimal.Decimal `json:"percentage"`
}

// ListingsOf collects the open orders selling assetId, cheapest first.
// supply <= 0 leaves Percentage zero.
func ListingsOf(pairs []*Pair, assetId domain.TxId, decimals int32, supply int64) []*Listing {
	res := []*Listing{}
	for _, p := range pairs {
		if p.AssetId() != assetId {
			continue
		}
		for _, o := range p.Orders {
			if o.Quantity <= 0 {
				continue
			}
			l := &Listing{
				Order:        o,
				AssetId:      assetId,
				Currency:     p.CurrencyId(),
				DisplayPrice: decimal.New(o.Price, -decimals),
				Percentage:   decimal.Zero,
			}
			if supply > 0 {
				l.Percentage = decimal.NewFromInt(o.Quantity).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(supply)).Round(2)
			}
			res = append(res, l)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Price != res[j].Price {
			return res[i].Price < res[j].Price
		}
		return res[i].DateCreated < res[j].DateCreated
	})
	return res
}

// ListedAssetIds returns distinct assets with at least one open order, in pair order
func ListedAssetIds(pairs []*Pair) []domain.TxId {
	res := []domain.TxId{}
	seen := map[domain.TxId]bool{}
	for _, p := range pairs {
		if seen[p.AssetId()] {
			continue
		}
		for _, o := range p.Orders {
			if o.Quantity > 0 {
				seen[p.AssetId()] = true
				res = append(res, p.AssetId())
				break
			}
		}
	}
	return res
}

type ListedAssets struct {
	Items []domain.TxId `json:"items"`
	Count int           `json:"count"`
}

type Usecase interface {
	// ContractId is the order book contract, which holds listed units
	ContractId() domain.ContractId
	GetPairs(c ctx.Ctx) ([]*Pair, error)
	GetListings(c ctx.Ctx, assetId domain.TxId) ([]*Listing, error)
	GetListedAssets(c ctx.Ctx, offset, limit int) (*ListedAssets, error)
}
