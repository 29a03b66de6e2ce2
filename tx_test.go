package nftoken_test

import (
	"errors"
	"testing"

	"github.com/iov-one/nftoken"
	apperrors "github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/nftokentest"
)

func TestLoadMsg(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tx := &nftokentest.Tx{Msg: &nftokentest.Msg{
			RoutePath:  "test/mine",
			Serialized: []byte("payload"),
		}}
		var dest nftokentest.Msg
		if err := nftoken.LoadMsg(tx, &dest); err != nil {
			t.Fatalf("cannot load message: %+v", err)
		}
		if string(dest.Serialized) != "payload" {
			t.Fatalf("destination not filled: %q", dest.Serialized)
		}
	})

	t.Run("message fails validation", func(t *testing.T) {
		tx := &nftokentest.Tx{Msg: &nftokentest.Msg{
			Err: apperrors.ErrInvalidInput.New("bad content"),
		}}
		var dest nftokentest.Msg
		if err := nftoken.LoadMsg(tx, &dest); !apperrors.ErrInvalidInput.Is(err) {
			t.Fatalf("unexpected error: %+v", err)
		}
	})

	t.Run("transaction without a message", func(t *testing.T) {
		tx := &nftokentest.Tx{Err: errors.New("boom")}
		var dest nftokentest.Msg
		if err := nftoken.LoadMsg(tx, &dest); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		tx := &nftokentest.Tx{Msg: &nftokentest.Msg{}}
		var dest *nftokentest.Msg
		if err := nftoken.LoadMsg(tx, dest); !apperrors.ErrInvalidType.Is(err) {
			t.Fatalf("unexpected error: %+v", err)
		}
	})

	t.Run("destination of another type", func(t *testing.T) {
		tx := &nftokentest.Tx{Msg: &nftokentest.Msg{RoutePath: "test/mine"}}
		var dest otherMsg
		if err := nftoken.LoadMsg(tx, &dest); !apperrors.ErrInvalidType.Is(err) {
			t.Fatalf("unexpected error: %+v", err)
		}
	})
}

func TestGetPath(t *testing.T) {
	tx := &nftokentest.Tx{Msg: &nftokentest.Msg{RoutePath: "test/mine"}}
	if got := nftoken.GetPath(tx); got != "test/mine" {
		t.Fatalf("unexpected path: %q", got)
	}

	broken := &nftokentest.Tx{Err: errors.New("boom")}
	if got := nftoken.GetPath(broken); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
}

type otherMsg struct {
	nftokentest.Msg
}
