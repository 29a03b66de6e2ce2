package nftoken_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/nftoken"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := nftoken.WithLogger(bg, newLogger)
	assert.Equal(t, nftoken.DefaultLogger, nftoken.GetLogger(bg))
	assert.Equal(t, newLogger, nftoken.GetLogger(ctx))

	// test height - uninitialized
	val, ok := nftoken.GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	// set
	ctx = nftoken.WithHeight(ctx, 7)
	val, ok = nftoken.GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { nftoken.WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := nftoken.WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, nftoken.GetLogger(ctx), nftoken.GetLogger(ctx2))
	val, _ = nftoken.GetHeight(ctx)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { nftoken.GetChainID(ctx) })
	ctx2 = nftoken.WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", nftoken.GetChainID(ctx2))
	// don't try a second time
	assert.Panics(t, func() { nftoken.WithChainID(ctx2, "my-chain") })
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, nftoken.IsValidChainID(tc.chainID), tc.chainID)
	}
}
