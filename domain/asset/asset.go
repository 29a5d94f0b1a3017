package asset

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/profile"
)

const percentagePlaces = 2

var hundred = decimal.NewFromInt(100)

// State is the part of an atomic asset contract state we read
type State struct {
	Id       domain.ContractId        `json:"id"`
	Name     string                   `json:"name"`
	Ticker   string                   `json:"ticker"`
	Balances map[domain.Address]int64 `json:"balances"`
}

// Supply is the sum of all balances
func (s *State) Supply() int64 {
	total := int64(0)
	for _, b := range s.Balances {
		total += b
	}
	return total
}

type TrackAssetOwner struct {
	Address    domain.Address  `json:"address"`
	Balance    int64           `json:"balance"`
	Percentage decimal.Decimal `json:"percentage"`
	// units held by the order book contract while listed
	IsMarketplace bool             `json:"isMarketplace"`
	Profile       *profile.Profile `json:"profile,omitempty"`
}

// NewOwners turns balances into owners sorted by balance desc, then address asc.
// Zero and negative balances are dropped.
func NewOwners(balances map[domain.Address]int64, marketplace domain.Address) []*TrackAssetOwner {
	total := int64(0)
	for _, b := range balances {
		if b > 0 {
			total += b
		}
	}

	owners := []*TrackAssetOwner{}
	if total == 0 {
		return owners
	}
	totalDec := decimal.NewFromInt(total)
	for addr, b := range balances {
		if b <= 0 {
			continue
		}
		owners = append(owners, &TrackAssetOwner{
			Address:       addr,
			Balance:       b,
			Percentage:    decimal.NewFromInt(b).Mul(hundred).Div(totalDec).Round(percentagePlaces),
			IsMarketplace: !marketplace.IsEmpty() && addr == marketplace,
		})
	}

	sort.SliceStable(owners, func(i, j int) bool {
		if owners[i].Balance != owners[j].Balance {
			return owners[i].Balance > owners[j].Balance
		}
		return owners[i].Address < owners[j].Address
	})
	return owners
}

type Usecase interface {
	GetState(c ctx.Ctx, id domain.ContractId) (*State, error)
	// GetOwners returns an empty list for assets without balances
	GetOwners(c ctx.Ctx, id domain.ContractId) ([]*TrackAssetOwner, error)
}
