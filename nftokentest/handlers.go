package nftokentest

import "github.com/iov-one/nftoken"

// Handler is a mock implementation of the nftoken.Handler interface,
// returning configured results and counting calls.
type Handler struct {
	checkCall   int
	CheckResult nftoken.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult nftoken.DeliverResult
	DeliverErr    error
}

var _ nftoken.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx nftoken.Context, db nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
