package nft

import (
	"github.com/gogo/protobuf/proto"
)

// Config is the contract-level configuration, written once at
// genesis and never modified.
type Config struct {
	// Owner is the only address allowed to mint
	Owner []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (c *Config) Reset()         { *c = Config{} }
func (c *Config) String() string { return proto.CompactTextString(c) }
func (*Config) ProtoMessage()    {}

// configPlain mirrors Config without the Marshaler/Unmarshaler
// methods, so proto.Marshal uses its generic encoder instead of
// dispatching back into Config.Marshal.
type configPlain Config

func (c *configPlain) Reset()         { *c = configPlain{} }
func (c *configPlain) String() string { return proto.CompactTextString(c) }
func (*configPlain) ProtoMessage()    {}

func (c *Config) Marshal() ([]byte, error)  { return proto.Marshal((*configPlain)(c)) }
func (c *Config) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*configPlain)(c)) }

// TokenInfo is the value stored per token id
type TokenInfo struct {
	// Owner is the address currently holding this token
	Owner []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (t *TokenInfo) Reset()         { *t = TokenInfo{} }
func (t *TokenInfo) String() string { return proto.CompactTextString(t) }
func (*TokenInfo) ProtoMessage()    {}

type tokenInfoPlain TokenInfo

func (t *tokenInfoPlain) Reset()         { *t = tokenInfoPlain{} }
func (t *tokenInfoPlain) String() string { return proto.CompactTextString(t) }
func (*tokenInfoPlain) ProtoMessage()    {}

func (t *TokenInfo) Marshal() ([]byte, error)  { return proto.Marshal((*tokenInfoPlain)(t)) }
func (t *TokenInfo) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*tokenInfoPlain)(t)) }

// TokenCount is the value stored per holder address.
// Entries are created on first receive and never deleted,
// so a count of zero is a valid state.
type TokenCount struct {
	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (t *TokenCount) Reset()         { *t = TokenCount{} }
func (t *TokenCount) String() string { return proto.CompactTextString(t) }
func (*TokenCount) ProtoMessage()    {}

type tokenCountPlain TokenCount

func (t *tokenCountPlain) Reset()         { *t = tokenCountPlain{} }
func (t *tokenCountPlain) String() string { return proto.CompactTextString(t) }
func (*tokenCountPlain) ProtoMessage()    {}

func (t *TokenCount) Marshal() ([]byte, error)  { return proto.Marshal((*tokenCountPlain)(t)) }
func (t *TokenCount) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*tokenCountPlain)(t)) }

// Approval delegates transfer rights for one token to a target
// address. At most one approval exists per token.
type Approval struct {
	Target []byte `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
}

func (a *Approval) Reset()         { *a = Approval{} }
func (a *Approval) String() string { return proto.CompactTextString(a) }
func (*Approval) ProtoMessage()    {}

type approvalPlain Approval

func (a *approvalPlain) Reset()         { *a = approvalPlain{} }
func (a *approvalPlain) String() string { return proto.CompactTextString(a) }
func (*approvalPlain) ProtoMessage()    {}

func (a *Approval) Marshal() ([]byte, error)  { return proto.Marshal((*approvalPlain)(a)) }
func (a *Approval) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*approvalPlain)(a)) }

//-------------------- messages --------------------

// MintMsg creates count new tokens owned by recipient.
// Only the contract owner is authorized.
type MintMsg struct {
	Recipient []byte `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Count     uint64 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()    {}

type mintMsgPlain MintMsg

func (m *mintMsgPlain) Reset()         { *m = mintMsgPlain{} }
func (m *mintMsgPlain) String() string { return proto.CompactTextString(m) }
func (*mintMsgPlain) ProtoMessage()    {}

func (m *MintMsg) Marshal() ([]byte, error)  { return proto.Marshal((*mintMsgPlain)(m)) }
func (m *MintMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*mintMsgPlain)(m)) }

// TransferMsg moves one token to recipient.
// Only the current token owner is authorized.
type TransferMsg struct {
	Recipient []byte `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	TokenID   uint64 `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

type transferMsgPlain TransferMsg

func (m *transferMsgPlain) Reset()         { *m = transferMsgPlain{} }
func (m *transferMsgPlain) String() string { return proto.CompactTextString(m) }
func (*transferMsgPlain) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error)  { return proto.Marshal((*transferMsgPlain)(m)) }
func (m *TransferMsg) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*transferMsgPlain)(m)) }

// UpdateApprovalMsg grants or revokes the approval on one token.
// Only the current token owner is authorized.
type UpdateApprovalMsg struct {
	Target   []byte `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	TokenID  uint64 `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Approved bool   `protobuf:"varint,3,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (m *UpdateApprovalMsg) Reset()         { *m = UpdateApprovalMsg{} }
func (m *UpdateApprovalMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateApprovalMsg) ProtoMessage()    {}

type updateApprovalMsgPlain UpdateApprovalMsg

func (m *updateApprovalMsgPlain) Reset()         { *m = updateApprovalMsgPlain{} }
func (m *updateApprovalMsgPlain) String() string { return proto.CompactTextString(m) }
func (*updateApprovalMsgPlain) ProtoMessage()    {}

func (m *UpdateApprovalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateApprovalMsgPlain)(m))
}
func (m *UpdateApprovalMsg) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*updateApprovalMsgPlain)(m))
}

// TransferApprovedMsg moves one token to recipient on behalf of
// the owner. Only the approved address of that token is
// authorized, and the approval is consumed by the transfer.
type TransferApprovedMsg struct {
	Recipient []byte `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	TokenID   uint64 `protobuf:"varint,2,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (m *TransferApprovedMsg) Reset()         { *m = TransferApprovedMsg{} }
func (m *TransferApprovedMsg) String() string { return proto.CompactTextString(m) }
func (*TransferApprovedMsg) ProtoMessage()    {}

type transferApprovedMsgPlain TransferApprovedMsg

func (m *transferApprovedMsgPlain) Reset()         { *m = transferApprovedMsgPlain{} }
func (m *transferApprovedMsgPlain) String() string { return proto.CompactTextString(m) }
func (*transferApprovedMsgPlain) ProtoMessage()    {}

func (m *TransferApprovedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferApprovedMsgPlain)(m))
}
func (m *TransferApprovedMsg) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*transferApprovedMsgPlain)(m))
}

//-------------------- events --------------------

// MintedEvent reports newly created tokens and the counter state
// after the mint.
type MintedEvent struct {
	Owner       []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Count       uint64 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	TotalMinted uint64 `protobuf:"varint,3,opt,name=total_minted,json=totalMinted,proto3" json:"total_minted,omitempty"`
}

func (e *MintedEvent) Reset()         { *e = MintedEvent{} }
func (e *MintedEvent) String() string { return proto.CompactTextString(e) }
func (*MintedEvent) ProtoMessage()    {}

type mintedEventPlain MintedEvent

func (e *mintedEventPlain) Reset()         { *e = mintedEventPlain{} }
func (e *mintedEventPlain) String() string { return proto.CompactTextString(e) }
func (*mintedEventPlain) ProtoMessage()    {}

func (e *MintedEvent) Marshal() ([]byte, error)  { return proto.Marshal((*mintedEventPlain)(e)) }
func (e *MintedEvent) Unmarshal(bz []byte) error { return proto.Unmarshal(bz, (*mintedEventPlain)(e)) }

// TransferredEvent reports a change of token ownership
type TransferredEvent struct {
	From    []byte `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To      []byte `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	TokenID uint64 `protobuf:"varint,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (e *TransferredEvent) Reset()         { *e = TransferredEvent{} }
func (e *TransferredEvent) String() string { return proto.CompactTextString(e) }
func (*TransferredEvent) ProtoMessage()    {}

type transferredEventPlain TransferredEvent

func (e *transferredEventPlain) Reset()         { *e = transferredEventPlain{} }
func (e *transferredEventPlain) String() string { return proto.CompactTextString(e) }
func (*transferredEventPlain) ProtoMessage()    {}

func (e *TransferredEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*transferredEventPlain)(e))
}
func (e *TransferredEvent) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*transferredEventPlain)(e))
}

// ApprovalChangedEvent reports a granted or revoked approval
type ApprovalChangedEvent struct {
	Owner    []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Target   []byte `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	TokenID  uint64 `protobuf:"varint,3,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Approved bool   `protobuf:"varint,4,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (e *ApprovalChangedEvent) Reset()         { *e = ApprovalChangedEvent{} }
func (e *ApprovalChangedEvent) String() string { return proto.CompactTextString(e) }
func (*ApprovalChangedEvent) ProtoMessage()    {}

type approvalChangedEventPlain ApprovalChangedEvent

func (e *approvalChangedEventPlain) Reset()         { *e = approvalChangedEventPlain{} }
func (e *approvalChangedEventPlain) String() string { return proto.CompactTextString(e) }
func (*approvalChangedEventPlain) ProtoMessage()    {}

func (e *ApprovalChangedEvent) Marshal() ([]byte, error) {
	return proto.Marshal((*approvalChangedEventPlain)(e))
}
func (e *ApprovalChangedEvent) Unmarshal(bz []byte) error {
	return proto.Unmarshal(bz, (*approvalChangedEventPlain)(e))
}
