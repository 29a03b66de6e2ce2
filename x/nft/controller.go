package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
)

// Controller is the token ledger state machine. It owns all
// writes to the nft buckets; handlers only authenticate and
// translate messages into these calls.
//
// Every command validates fully before the first write, so a
// failing call never mutates state.
type Controller struct {
	config    *ConfigBucket
	tokens    *TokenBucket
	balances  *BalanceBucket
	approvals *ApprovalBucket
	minted    orm.Sequence
}

// NewController returns a controller over the standard buckets
func NewController() *Controller {
	tokens := NewTokenBucket()
	return &Controller{
		config:    NewConfigBucket(),
		tokens:    tokens,
		balances:  NewBalanceBucket(),
		approvals: NewApprovalBucket(),
		minted:    tokens.TotalMinted(),
	}
}

// SetOwner writes the contract owner. Fails if one is already
// configured, the owner is immutable.
func (c *Controller) SetOwner(db nftoken.KVStore, owner nftoken.Address) error {
	return c.config.Save(db, &Config{Owner: owner})
}

// ContractOwner returns the address allowed to mint. Fails with
// a not found error before initialization.
func (c *Controller) ContractOwner(db nftoken.ReadOnlyKVStore) (nftoken.Address, error) {
	conf, err := c.config.Get(db)
	if err != nil {
		return nil, err
	}
	if conf == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "contract owner not configured")
	}
	return conf.Owner, nil
}

// Mint creates count new tokens owned by recipient, with dense
// ids continuing from the current total. Only the contract
// owner may mint. A count that would overflow the token id
// space is rejected without any state change.
func (c *Controller) Mint(db nftoken.KVStore, minter, recipient nftoken.Address, count uint64) (*MintedEvent, error) {
	owner, err := c.ContractOwner(db)
	if err != nil {
		return nil, err
	}
	if !minter.Equals(owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "only %s may mint", owner)
	}
	if count == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "mint count must be positive")
	}

	// the sequence counts from 1, token ids from 0
	start, err := c.minted.Reserve(db, count)
	if err != nil {
		return nil, err
	}
	firstID := start - 1

	info := &TokenInfo{Owner: recipient}
	for i := uint64(0); i < count; i++ {
		if err := c.tokens.Save(db, firstID+i, info); err != nil {
			return nil, err
		}
	}
	if err := c.addBalance(db, recipient, count); err != nil {
		return nil, err
	}

	return &MintedEvent{
		Owner:       recipient,
		Count:       count,
		TotalMinted: firstID + count,
	}, nil
}

// Transfer moves one token from its current owner to recipient,
// clearing any approval on it. Only the token owner may call.
func (c *Controller) Transfer(db nftoken.KVStore, caller, recipient nftoken.Address, tokenID uint64) (*TransferredEvent, error) {
	owner, err := c.tokenOwner(db, tokenID)
	if err != nil {
		return nil, err
	}
	if !caller.Equals(owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "token %d not held by caller", tokenID)
	}
	return c.moveToken(db, owner, recipient, tokenID)
}

// TransferApproved moves one token on behalf of its owner. Only
// the approved address of the token may call, and the approval
// is consumed by the move.
func (c *Controller) TransferApproved(db nftoken.KVStore, caller, recipient nftoken.Address, tokenID uint64) (*TransferredEvent, error) {
	owner, err := c.tokenOwner(db, tokenID)
	if err != nil {
		return nil, err
	}
	approval, err := c.approvals.Get(db, tokenID)
	if err != nil {
		return nil, err
	}
	if approval == nil || !caller.Equals(nftoken.Address(approval.Target)) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "caller not approved for token %d", tokenID)
	}
	return c.moveToken(db, owner, recipient, tokenID)
}

// SetApproval grants or revokes the approval on one token. Only
// the token owner may call. Granting overwrites any previous
// approval and is idempotent. Revoking an approval that does
// not exist fails with ErrNoApproval.
func (c *Controller) SetApproval(db nftoken.KVStore, caller, target nftoken.Address, tokenID uint64, approved bool) (*ApprovalChangedEvent, error) {
	owner, err := c.tokenOwner(db, tokenID)
	if err != nil {
		return nil, err
	}
	if !caller.Equals(owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "token %d not held by caller", tokenID)
	}

	if approved {
		if err := c.approvals.Save(db, tokenID, &Approval{Target: target}); err != nil {
			return nil, err
		}
	} else {
		existing, err := c.approvals.Get(db, tokenID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errors.Wrapf(ErrNoApproval, "token %d", tokenID)
		}
		if err := c.approvals.Delete(db, tokenID); err != nil {
			return nil, err
		}
	}

	return &ApprovalChangedEvent{
		Owner:    caller,
		Target:   target,
		TokenID:  tokenID,
		Approved: approved,
	}, nil
}

//-------------------- queries --------------------

// TotalMinted returns how many tokens were ever created. Token
// ids are exactly [0, TotalMinted).
func (c *Controller) TotalMinted(db nftoken.ReadOnlyKVStore) (uint64, error) {
	total, _, err := c.minted.Latest(db)
	return total, err
}

// BalanceOf returns how many tokens this address currently
// holds, zero for unknown addresses
func (c *Controller) BalanceOf(db nftoken.ReadOnlyKVStore, addr nftoken.Address) (uint64, error) {
	balance, err := c.balances.Get(db, addr)
	if err != nil || balance == nil {
		return 0, err
	}
	return balance.Count, nil
}

// OwnerOf returns the address holding this token, nil if the
// token was never minted
func (c *Controller) OwnerOf(db nftoken.ReadOnlyKVStore, tokenID uint64) (nftoken.Address, error) {
	info, err := c.tokens.Get(db, tokenID)
	if err != nil || info == nil {
		return nil, err
	}
	return info.Owner, nil
}

// IsApproved returns whether this address holds the approval on
// this token
func (c *Controller) IsApproved(db nftoken.ReadOnlyKVStore, tokenID uint64, addr nftoken.Address) (bool, error) {
	approval, err := c.approvals.Get(db, tokenID)
	if err != nil || approval == nil {
		return false, err
	}
	return addr.Equals(nftoken.Address(approval.Target)), nil
}

// ApprovedFor returns the approved address of this token, nil
// if no approval was granted
func (c *Controller) ApprovedFor(db nftoken.ReadOnlyKVStore, tokenID uint64) (nftoken.Address, error) {
	approval, err := c.approvals.Get(db, tokenID)
	if err != nil || approval == nil {
		return nil, err
	}
	return approval.Target, nil
}

//-------------------- internals --------------------

// tokenOwner resolves the current owner, failing with a not
// found error for unminted token ids
func (c *Controller) tokenOwner(db nftoken.ReadOnlyKVStore, tokenID uint64) (nftoken.Address, error) {
	info, err := c.tokens.Get(db, tokenID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %d", tokenID)
	}
	return info.Owner, nil
}

// moveToken reassigns ownership, updates both balances and
// clears the approval. Callers must have validated authorization.
func (c *Controller) moveToken(db nftoken.KVStore, from, to nftoken.Address, tokenID uint64) (*TransferredEvent, error) {
	if err := c.tokens.Save(db, tokenID, &TokenInfo{Owner: to}); err != nil {
		return nil, err
	}
	if err := c.subBalance(db, from, 1); err != nil {
		return nil, err
	}
	if err := c.addBalance(db, to, 1); err != nil {
		return nil, err
	}
	if err := c.approvals.Delete(db, tokenID); err != nil {
		return nil, err
	}
	return &TransferredEvent{
		From:    from,
		To:      to,
		TokenID: tokenID,
	}, nil
}

func (c *Controller) addBalance(db nftoken.KVStore, addr nftoken.Address, count uint64) error {
	balance, err := c.balances.Get(db, addr)
	if err != nil {
		return err
	}
	if balance == nil {
		balance = &TokenCount{}
	}
	balance.Count += count
	return c.balances.Save(db, addr, balance)
}

func (c *Controller) subBalance(db nftoken.KVStore, addr nftoken.Address, count uint64) error {
	balance, err := c.balances.Get(db, addr)
	if err != nil {
		return err
	}
	if balance == nil || balance.Count < count {
		return errors.Wrapf(errors.ErrInvalidState, "balance of %s below %d", addr, count)
	}
	balance.Count -= count
	return c.balances.Save(db, addr, balance)
}
