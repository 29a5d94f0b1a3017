package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is an arweave wallet address: 43 characters of base64url.
// Unlike hex addresses it is case sensitive.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// TxId identifies an arweave transaction
type TxId string

func (i TxId) String() string {
	return string(i)
}

func (i TxId) IsEmpty() bool {
	return len(i) == 0
}

// ContractId is the id of the transaction that deployed a SmartWeave contract.
// Atomic assets share it with their data transaction.
type ContractId = TxId

// Tag is an arweave transaction tag
type Tag struct {
	Name  string `json:"name" bson:"name"`
	Value string `json:"value" bson:"value"`
}

type Tags []Tag

// Get returns the value of the first tag named name
func (t Tags) Get(name string) (string, bool) {
	for _, tag := range t {
		if tag.Name == name {
			return tag.Value, true
		}
	}
	return "", false
}

// Value returns the value of the first tag named name, or ""
func (t Tags) Value(name string) string {
	v, _ := t.Get(name)
	return v
}

// GetAll returns values of every tag whose name starts with prefix, in order
func (t Tags) GetAll(prefix string) []string {
	res := []string{}
	for _, tag := range t {
		if strings.HasPrefix(tag.Name, prefix) {
			res = append(res, tag.Value)
		}
	}
	return res
}
