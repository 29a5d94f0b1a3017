package profile

import (
	"encoding/json"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

// Profile is the latest Account-0 record published by an address
type Profile struct {
	Address   domain.Address    `json:"address"`
	Handle    string            `json:"handle"`
	Name      string            `json:"name"`
	Bio       string            `json:"bio"`
	Avatar    domain.TxId       `json:"avatar"`
	Banner    domain.TxId       `json:"banner"`
	Links     map[string]string `json:"links"`
	TxId      domain.TxId       `json:"txId"`
	Timestamp int64             `json:"timestamp"`
}

// Data is the json body of an Account-0 transaction
type Data struct {
	Handle string            `json:"handle"`
	Name   string            `json:"name"`
	Bio    string            `json:"bio"`
	Avatar domain.TxId       `json:"avatar"`
	Banner domain.TxId       `json:"banner"`
	Links  map[string]string `json:"links"`
}

// Empty is returned for addresses that never published a profile
func Empty(address domain.Address) *Profile {
	return &Profile{Address: address, Links: map[string]string{}}
}

func (p *Profile) IsEmpty() bool {
	return p.TxId.IsEmpty()
}

// FromTransaction builds a profile from an Account-0 transaction and its data.
// Malformed data keeps the address and tx but no fields.
func FromTransaction(tx *domain.Transaction, data []byte) *Profile {
	p := Empty(tx.Owner)
	p.TxId = tx.Id
	p.Timestamp = tx.Timestamp

	d := Data{}
	if err := json.Unmarshal(data, &d); err != nil {
		return p
	}
	p.Handle = d.Handle
	p.Name = d.Name
	p.Bio = d.Bio
	p.Avatar = d.Avatar
	p.Banner = d.Banner
	if d.Links != nil {
		p.Links = d.Links
	}
	return p
}

type Usecase interface {
	// GetProfile never returns ErrNotFound, see Empty
	GetProfile(c ctx.Ctx, address domain.Address) (*Profile, error)
	// GetProfiles returns one profile per distinct address, in input order
	GetProfiles(c ctx.Ctx, addresses []domain.Address) ([]*Profile, error)
}
