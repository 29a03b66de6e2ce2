package nftokentest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/nftoken"
)

// NewCondition returns a random condition, unique with high probability
func NewCondition() nftoken.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return nftoken.NewCondition("test", "rnd", data)
}

// NewAddress returns the address of a random condition
func NewAddress() nftoken.Address {
	return NewCondition().Address()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation, failing the test on bad input.
func ParseAddress(t testing.TB, encodedAddress string) nftoken.Address {
	t.Helper()

	addr, err := nftoken.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
