package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

const optKey = "nft"

// genesisOptions is the json shape expected under the "nft" key:
//
//   {"nft": {"owner": "<hex address>", "initial_supply": 3}}
type genesisOptions struct {
	Owner         nftoken.Address `json:"owner"`
	InitialSupply uint64          `json:"initial_supply"`
}

// Initializer fulfils the Initializer interface to load data
// from the genesis file
type Initializer struct{}

var _ nftoken.Initializer = Initializer{}

// FromGenesis configures the contract owner and mints the
// initial supply to them. Without an "nft" section this is
// a noop and the ledger stays unusable.
func (Initializer) FromGenesis(opts nftoken.Options, kv nftoken.KVStore) error {
	var gen genesisOptions
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen.Owner == nil {
		return nil
	}
	if err := gen.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}

	control := NewController()
	if err := control.SetOwner(kv, gen.Owner); err != nil {
		return err
	}
	if gen.InitialSupply > 0 {
		if _, err := control.Mint(kv, gen.Owner, gen.Owner, gen.InitialSupply); err != nil {
			return err
		}
	}
	return nil
}
