package nft

import "github.com/iov-one/nftoken/errors"

// nft reserves 1000~1009 error codes

// ErrNoApproval is returned when revoking an approval that
// does not exist. Granting twice is idempotent, revoking
// twice is not.
var ErrNoApproval = errors.Register(1000, "no approval")
