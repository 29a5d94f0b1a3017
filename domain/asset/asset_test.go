package asset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/arcadia-music/goapi/domain"
)

type ownersTestSuite struct {
	suite.Suite
}

func TestOwnersSuite(t *testing.T) {
	suite.Run(t, new(ownersTestSuite))
}

func (s *ownersTestSuite) TestSortedByBalanceThenAddress() {
	owners := NewOwners(map[domain.Address]int64{
		"c":   1,
		"b":   2,
		"a":   2,
		"ucm": 5,
		"z":   0,
	}, "ucm")

	s.Require().Len(owners, 4)
	s.Equal([]domain.Address{"ucm", "a", "b", "c"}, []domain.Address{
		owners[0].Address, owners[1].Address, owners[2].Address, owners[3].Address,
	})
	s.True(owners[0].IsMarketplace)
	s.False(owners[1].IsMarketplace)
	s.True(decimal.RequireFromString("50").Equal(owners[0].Percentage))
	s.True(decimal.RequireFromString("20").Equal(owners[1].Percentage))
	s.True(decimal.RequireFromString("10").Equal(owners[3].Percentage))
}

func (s *ownersTestSuite) TestRounding() {
	owners := NewOwners(map[domain.Address]int64{"a": 1, "b": 1, "c": 1}, "")
	s.Require().Len(owners, 3)
	for _, o := range owners {
		s.Equal("33.33", o.Percentage.String())
		s.False(o.IsMarketplace)
	}
}

func (s *ownersTestSuite) TestEmpty() {
	s.Empty(NewOwners(nil, "ucm"))
	s.Empty(NewOwners(map[domain.Address]int64{"a": 0}, "ucm"))
}

func (s *ownersTestSuite) TestSupply() {
	st := &State{Balances: map[domain.Address]int64{"a": 3, "b": 7}}
	s.Equal(int64(10), st.Supply())
}
