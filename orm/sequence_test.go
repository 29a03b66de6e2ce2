package orm

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/store"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		increments uint64
	}{
		0: {"first", "id", 22},
		1: {"first", "seq", 11},
		2: {"first", "id", 18},
		3: {"second", "id", 77},
		4: {"first", "seq", 248},
	}

	// track expected state per sequence across cases
	expect := map[string]uint64{}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			_, orig, err := s.Latest(db)
			require.NoError(t, err)

			var val uint64
			for i := uint64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}

			key := tc.bucket + "/" + tc.name
			expect[key] += tc.increments
			assert.Equal(t, expect[key], val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			_, last, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequenceReserve(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("tokens", "id")

	// blocks are consecutive and disjoint
	start, err := s.Reserve(db, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), start)

	start, err = s.Reserve(db, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), start)

	latest, _, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), latest)

	// a single next value continues after the block
	next, err := s.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), next)

	// an empty block makes no sense
	_, err = s.Reserve(db, 0)
	assert.True(t, errors.ErrInvalidAmount.Is(err))
}

func TestSequenceReserveOverflow(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("tokens", "id")

	// wind the counter close to the limit
	require.NoError(t, db.Set([]byte("_s.tokens:id"), EncodeSequence(math.MaxUint64-3)))

	// more than the remaining space must fail without state change
	_, err := s.Reserve(db, 10)
	assert.True(t, errors.ErrOverflow.Is(err))

	latest, _, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64-3), latest)

	// the remaining space can still be claimed
	start, err := s.Reserve(db, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64-2), start)
}
