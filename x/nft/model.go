package nft

import (
	"encoding/binary"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/orm"
)

var _ orm.CloneableData = (*TokenInfo)(nil)
var _ orm.CloneableData = (*TokenCount)(nil)
var _ orm.CloneableData = (*Approval)(nil)
var _ orm.CloneableData = (*Config)(nil)

// TokenKey converts a token id into the fixed-size bucket key.
// Big-endian, so iteration order matches numeric order.
func TokenKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// TokenID converts a bucket key back to the token id
func TokenID(key []byte) (uint64, error) {
	if err := orm.ValidateSequence(key); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(key), nil
}

// Validate ensures the token is held by a plausible address
func (t *TokenInfo) Validate() error {
	return nftoken.Address(t.Owner).Validate()
}

func (t *TokenInfo) Copy() orm.CloneableData {
	return &TokenInfo{
		Owner: append([]byte(nil), t.Owner...),
	}
}

// Validate is always successful, any count including zero is fine
func (t *TokenCount) Validate() error {
	return nil
}

func (t *TokenCount) Copy() orm.CloneableData {
	return &TokenCount{
		Count: t.Count,
	}
}

// Validate ensures the approval points at a plausible address
func (a *Approval) Validate() error {
	return nftoken.Address(a.Target).Validate()
}

func (a *Approval) Copy() orm.CloneableData {
	return &Approval{
		Target: append([]byte(nil), a.Target...),
	}
}

// Validate ensures the configured owner is a plausible address
func (c *Config) Validate() error {
	return nftoken.Address(c.Owner).Validate()
}

func (c *Config) Copy() orm.CloneableData {
	return &Config{
		Owner: append([]byte(nil), c.Owner...),
	}
}

//-------------------- buckets --------------------

// TokenBucket stores one TokenInfo per minted token id
type TokenBucket struct {
	orm.Bucket
}

func NewTokenBucket() *TokenBucket {
	return &TokenBucket{
		Bucket: orm.NewBucket("tokens", orm.NewSimpleObj(nil, &TokenInfo{})),
	}
}

// Get loads the token with this id, nil if not minted
func (b *TokenBucket) Get(db nftoken.ReadOnlyKVStore, id uint64) (*TokenInfo, error) {
	obj, err := b.Bucket.Get(db, TokenKey(id))
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.Value().(*TokenInfo), nil
}

// Save stores the token info under this id
func (b *TokenBucket) Save(db nftoken.KVStore, id uint64, info *TokenInfo) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(TokenKey(id), info))
}

// TotalMinted returns the sequence tracking how many tokens
// were ever created
func (b *TokenBucket) TotalMinted() orm.Sequence {
	return b.Sequence("minted")
}

// BalanceBucket stores one TokenCount per holder address
type BalanceBucket struct {
	orm.Bucket
}

func NewBalanceBucket() *BalanceBucket {
	return &BalanceBucket{
		Bucket: orm.NewBucket("balances", orm.NewSimpleObj(nil, &TokenCount{})),
	}
}

// Get loads the balance of this address, nil if it never held a token
func (b *BalanceBucket) Get(db nftoken.ReadOnlyKVStore, addr nftoken.Address) (*TokenCount, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.Value().(*TokenCount), nil
}

// Save stores the balance of this address
func (b *BalanceBucket) Save(db nftoken.KVStore, addr nftoken.Address, count *TokenCount) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(addr, count))
}

// ApprovalBucket stores at most one Approval per token id
type ApprovalBucket struct {
	orm.Bucket
}

func NewApprovalBucket() *ApprovalBucket {
	return &ApprovalBucket{
		Bucket: orm.NewBucket("approvals", orm.NewSimpleObj(nil, &Approval{})),
	}
}

// Get loads the approval for this token, nil if none granted
func (b *ApprovalBucket) Get(db nftoken.ReadOnlyKVStore, id uint64) (*Approval, error) {
	obj, err := b.Bucket.Get(db, TokenKey(id))
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.Value().(*Approval), nil
}

// Save stores the approval for this token, overwriting any
// previous one
func (b *ApprovalBucket) Save(db nftoken.KVStore, id uint64, a *Approval) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(TokenKey(id), a))
}

// Delete removes the approval for this token, a noop if absent
func (b *ApprovalBucket) Delete(db nftoken.KVStore, id uint64) error {
	return b.Bucket.Delete(db, TokenKey(id))
}

// ConfigBucket stores the contract configuration under one
// fixed key
type ConfigBucket struct {
	orm.Bucket
}

var configKey = []byte("config")

func NewConfigBucket() *ConfigBucket {
	return &ConfigBucket{
		Bucket: orm.NewBucket("nftconfig", orm.NewSimpleObj(nil, &Config{})),
	}
}

// Get loads the configuration, nil before genesis ran
func (b *ConfigBucket) Get(db nftoken.ReadOnlyKVStore) (*Config, error) {
	obj, err := b.Bucket.Get(db, configKey)
	if err != nil || obj == nil {
		return nil, err
	}
	return obj.Value().(*Config), nil
}

// Save stores the configuration. It refuses to overwrite an
// existing one, the contract owner is immutable.
func (b *ConfigBucket) Save(db nftoken.KVStore, c *Config) error {
	existing, err := b.Get(db)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Wrap(errors.ErrCannotBeModified, "owner already set")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(configKey, c))
}
