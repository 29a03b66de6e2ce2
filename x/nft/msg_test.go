package nft

import (
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/nftokentest"
)

func TestValidateMintMsg(t *testing.T) {
	recipient := nftokentest.NewAddress()

	cases := map[string]struct {
		Msg     nftoken.Msg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg:     &MintMsg{Recipient: recipient, Count: 3},
			WantErr: nil,
		},
		"zero count is rejected": {
			Msg:     &MintMsg{Recipient: recipient, Count: 0},
			WantErr: errors.ErrInvalidAmount,
		},
		"missing recipient": {
			Msg:     &MintMsg{Count: 1},
			WantErr: errors.ErrInvalidInput,
		},
		"recipient of the wrong size": {
			Msg:     &MintMsg{Recipient: []byte("too-short"), Count: 1},
			WantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestValidateTransferMsg(t *testing.T) {
	recipient := nftokentest.NewAddress()

	cases := map[string]struct {
		Msg     nftoken.Msg
		WantErr *errors.Error
	}{
		"valid message": {
			Msg:     &TransferMsg{Recipient: recipient, TokenID: 7},
			WantErr: nil,
		},
		"token zero is a valid id": {
			Msg:     &TransferMsg{Recipient: recipient, TokenID: 0},
			WantErr: nil,
		},
		"missing recipient": {
			Msg:     &TransferMsg{TokenID: 7},
			WantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestValidateApprovalMsgs(t *testing.T) {
	target := nftokentest.NewAddress()

	cases := map[string]struct {
		Msg     nftoken.Msg
		WantErr *errors.Error
	}{
		"valid approval": {
			Msg:     &UpdateApprovalMsg{Target: target, TokenID: 1, Approved: true},
			WantErr: nil,
		},
		"valid revocation": {
			Msg:     &UpdateApprovalMsg{Target: target, TokenID: 1, Approved: false},
			WantErr: nil,
		},
		"missing target": {
			Msg:     &UpdateApprovalMsg{TokenID: 1, Approved: true},
			WantErr: errors.ErrInvalidInput,
		},
		"valid approved transfer": {
			Msg:     &TransferApprovedMsg{Recipient: target, TokenID: 1},
			WantErr: nil,
		},
		"approved transfer without recipient": {
			Msg:     &TransferApprovedMsg{TokenID: 1},
			WantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	paths := map[nftoken.Msg]string{
		&MintMsg{}:             "nft/mint",
		&TransferMsg{}:         "nft/transfer",
		&UpdateApprovalMsg{}:   "nft/update_approval",
		&TransferApprovedMsg{}: "nft/transfer_approved",
	}
	for msg, want := range paths {
		if got := msg.Path(); got != want {
			t.Errorf("wrong path: got %q, want %q", got, want)
		}
	}
}
