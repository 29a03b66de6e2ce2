package nft

import (
	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// Path constants are used for routing and as the action tag on
// delivered transactions.
const (
	PathMint             = "nft/mint"
	PathTransfer         = "nft/transfer"
	PathUpdateApproval   = "nft/update_approval"
	PathTransferApproved = "nft/transfer_approved"
)

var _ nftoken.Msg = (*MintMsg)(nil)
var _ nftoken.Msg = (*TransferMsg)(nil)
var _ nftoken.Msg = (*UpdateApprovalMsg)(nil)
var _ nftoken.Msg = (*TransferApprovedMsg)(nil)

func (*MintMsg) Path() string {
	return PathMint
}

// Validate rejects malformed recipients and empty mints. A zero
// count mint is refused outright rather than accepted as a noop,
// so the caller learns the request made no sense.
func (m *MintMsg) Validate() error {
	if err := nftoken.Address(m.Recipient).Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Count == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "mint count must be positive")
	}
	return nil
}

func (*TransferMsg) Path() string {
	return PathTransfer
}

func (m *TransferMsg) Validate() error {
	if err := nftoken.Address(m.Recipient).Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}

func (*UpdateApprovalMsg) Path() string {
	return PathUpdateApproval
}

func (m *UpdateApprovalMsg) Validate() error {
	if err := nftoken.Address(m.Target).Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	return nil
}

func (*TransferApprovedMsg) Path() string {
	return PathTransferApproved
}

func (m *TransferApprovedMsg) Validate() error {
	if err := nftoken.Address(m.Recipient).Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}
