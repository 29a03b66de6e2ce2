package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/x"
	"github.com/tendermint/tendermint/libs/common"
)

// gas costs are nominal, there is no fee accounting on top
const (
	mintCost     = 100
	transferCost = 100
	approvalCost = 50
)

// RegisterQuery exposes the nft buckets on the query router
func RegisterQuery(qr nftoken.QueryRouter) {
	NewTokenBucket().Register("nft/tokens", qr)
	NewBalanceBucket().Register("nft/balances", qr)
	NewApprovalBucket().Register("nft/approvals", qr)
}

// RegisterRoutes connects all message handlers to the registry
func RegisterRoutes(r nftoken.Registry, auth x.Authenticator) {
	c := NewController()
	r.Handle(&MintMsg{}, &mintHandler{auth: auth, control: c})
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, control: c})
	r.Handle(&UpdateApprovalMsg{}, &updateApprovalHandler{auth: auth, control: c})
	r.Handle(&TransferApprovedMsg{}, &transferApprovedHandler{auth: auth, control: c})
}

// actionTags index the transaction under its action name plus
// all involved addresses
func actionTags(path string, addrs ...nftoken.Address) []common.KVPair {
	tags := []common.KVPair{
		{Key: []byte("action"), Value: []byte(path)},
	}
	for _, a := range addrs {
		tags = append(tags, common.KVPair{Key: []byte("account"), Value: []byte(a.String())})
	}
	return tags
}

//-------------------- mint --------------------

type mintHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ nftoken.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftoken.CheckResult{GasAllocated: mintCost}, nil
}

func (h *mintHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	msg, minter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.control.Mint(db, minter, msg.Recipient, msg.Count)
	if err != nil {
		return nil, err
	}
	data, err := event.Marshal()
	if err != nil {
		return nil, err
	}
	return &nftoken.DeliverResult{
		Data: data,
		Tags: actionTags(PathMint, event.Owner),
	}, nil
}

func (h *mintHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*MintMsg, nftoken.Address, error) {
	var msg MintMsg
	if err := nftoken.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.control.ContractOwner(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "tokens only minted by %s", owner)
	}
	return &msg, owner, nil
}

//-------------------- transfer --------------------

type transferHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ nftoken.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftoken.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.control.Transfer(db, owner, msg.Recipient, msg.TokenID)
	if err != nil {
		return nil, err
	}
	data, err := event.Marshal()
	if err != nil {
		return nil, err
	}
	return &nftoken.DeliverResult{
		Data: data,
		Tags: actionTags(PathTransfer, event.From, event.To),
	}, nil
}

func (h *transferHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*TransferMsg, nftoken.Address, error) {
	var msg TransferMsg
	if err := nftoken.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.control.OwnerOf(db, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if owner == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "token %d", msg.TokenID)
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "token %d not held by signer", msg.TokenID)
	}
	return &msg, owner, nil
}

//-------------------- update approval --------------------

type updateApprovalHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ nftoken.Handler = (*updateApprovalHandler)(nil)

func (h *updateApprovalHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftoken.CheckResult{GasAllocated: approvalCost}, nil
}

func (h *updateApprovalHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.control.SetApproval(db, owner, msg.Target, msg.TokenID, msg.Approved)
	if err != nil {
		return nil, err
	}
	data, err := event.Marshal()
	if err != nil {
		return nil, err
	}
	return &nftoken.DeliverResult{
		Data: data,
		Tags: actionTags(PathUpdateApproval, event.Owner, event.Target),
	}, nil
}

func (h *updateApprovalHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*UpdateApprovalMsg, nftoken.Address, error) {
	var msg UpdateApprovalMsg
	if err := nftoken.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.control.OwnerOf(db, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if owner == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "token %d", msg.TokenID)
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "token %d not held by signer", msg.TokenID)
	}
	return &msg, owner, nil
}

//-------------------- transfer approved --------------------

type transferApprovedHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ nftoken.Handler = (*transferApprovedHandler)(nil)

func (h *transferApprovedHandler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftoken.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferApprovedHandler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	msg, approved, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	event, err := h.control.TransferApproved(db, approved, msg.Recipient, msg.TokenID)
	if err != nil {
		return nil, err
	}
	data, err := event.Marshal()
	if err != nil {
		return nil, err
	}
	return &nftoken.DeliverResult{
		Data: data,
		Tags: actionTags(PathTransferApproved, event.From, event.To),
	}, nil
}

func (h *transferApprovedHandler) validate(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*TransferApprovedMsg, nftoken.Address, error) {
	var msg TransferApprovedMsg
	if err := nftoken.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.control.OwnerOf(db, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if owner == nil {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "token %d", msg.TokenID)
	}
	approved, err := h.control.ApprovedFor(db, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if approved == nil || !h.auth.HasAddress(ctx, approved) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "signer not approved for token %d", msg.TokenID)
	}
	return &msg, approved, nil
}
