package nft

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/nftokentest"
	"github.com/iov-one/nftoken/store"
)

func TestGenesisKey(t *testing.T) {
	owner := nftokentest.NewAddress()
	genesis := fmt.Sprintf(`
		{
			"nft": {
				"owner": %q,
				"initial_supply": 3
			}
		}
	`, owner.String())

	var opts nftoken.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	ctrl := NewController()

	got, err := ctrl.ContractOwner(db)
	if err != nil {
		t.Fatalf("cannot fetch contract owner: %s", err)
	}
	if !got.Equals(owner) {
		t.Errorf("invalid contract owner: %s", got)
	}

	total, err := ctrl.TotalMinted(db)
	if err != nil {
		t.Fatalf("cannot fetch total minted: %s", err)
	}
	if total != 3 {
		t.Errorf("invalid total minted: %d", total)
	}

	balance, err := ctrl.BalanceOf(db, owner)
	if err != nil {
		t.Fatalf("cannot fetch balance: %s", err)
	}
	if balance != 3 {
		t.Errorf("invalid owner balance: %d", balance)
	}

	for id := uint64(0); id < 3; id++ {
		holder, err := ctrl.OwnerOf(db, id)
		if err != nil {
			t.Fatalf("cannot fetch owner of token %d: %s", id, err)
		}
		if !holder.Equals(owner) {
			t.Errorf("token %d not held by the contract owner", id)
		}
	}
}

func TestGenesisWithoutSection(t *testing.T) {
	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(nftoken.Options{}, db); err != nil {
		t.Fatalf("empty genesis must be a noop: %s", err)
	}

	if _, err := NewController().ContractOwner(db); err == nil {
		t.Fatal("contract owner must not be configured")
	}
}

func TestGenesisZeroSupply(t *testing.T) {
	owner := nftokentest.NewAddress()
	genesis := fmt.Sprintf(`{"nft": {"owner": %q}}`, owner.String())

	var opts nftoken.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	ctrl := NewController()
	total, err := ctrl.TotalMinted(db)
	if err != nil {
		t.Fatalf("cannot fetch total minted: %s", err)
	}
	if total != 0 {
		t.Errorf("no tokens should exist, got %d", total)
	}
}
