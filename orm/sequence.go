package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as 8 bytes.
func (s *Sequence) NextVal(db nftoken.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db, 1)
	return bz, err
}

// NextInt increments the sequence and returns its state as uint64.
func (s *Sequence) NextInt(db nftoken.KVStore) (uint64, error) {
	val, _, err := s.increment(db, 1)
	return val, err
}

// Reserve claims a block of count consecutive values, returning the
// first of them. The sequence state after the call is the last value
// of the block, so concurrent users never see any of them again.
func (s *Sequence) Reserve(db nftoken.KVStore, count uint64) (uint64, error) {
	if count == 0 {
		return 0, errors.Wrap(errors.ErrInvalidAmount, "reserving zero values")
	}
	val, _, err := s.increment(db, count)
	if err != nil {
		return 0, err
	}
	return val - count + 1, nil
}

// Latest returns the recently returned value of the sequence. This method does
// not modify the sequence state. Use NextVal or NextInt to acquire a sequence
// value that was not given to anyone else.
func (s *Sequence) Latest(db nftoken.ReadOnlyKVStore) (uint64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	return DecodeSequence(raw), raw, nil
}

func (s *Sequence) increment(db nftoken.KVStore, inc uint64) (uint64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	if val > math.MaxUint64-inc {
		return 0, nil, errors.Wrapf(errors.ErrOverflow, "sequence %s exhausted", s.id)
	}
	val += inc
	raw = EncodeSequence(val)
	err = db.Set(s.id, raw)
	return val, raw, err
}

// DecodeSequence converts the stored bytes into the counter value.
// Missing data decodes to zero.
func DecodeSequence(bz []byte) uint64 {
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// EncodeSequence converts the counter value to stored bytes
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// ValidateSequence returns an error if this is not an 8-byte
// value as produced by a Sequence
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInvalidInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}
