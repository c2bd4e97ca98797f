package adt

import (
	"context"

	"github.com/filecoin-project/go-state-types/cbor"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"

	"github.com/FeineCapital/PLSXSSS/actors/runtime"
)

// Store defines an interface required to back the ADTs in this package.
type Store interface {
	Context() context.Context
	ipldcbor.IpldStore
}

// Adapts a Runtime as an ADT store.
func AsStore(rt runtime.Runtime) Store {
	return rtStore{rt}
}

type rtStore struct {
	runtime.Runtime
}

var _ Store = &rtStore{}

func (r rtStore) Context() context.Context {
	return context.TODO()
}

func (r rtStore) Get(_ context.Context, c cid.Cid, out interface{}) error {
	// The Runtime handles serialization failures by aborting; callers of
	// Store.Get only see not-found as an error.
	if !r.StoreGet(c, out.(cbor.Unmarshaler)) {
		return ErrNotFound{Cid: c}
	}
	return nil
}

func (r rtStore) Put(_ context.Context, v interface{}) (cid.Cid, error) {
	return r.StorePut(v.(cbor.Marshaler)), nil
}

// WrapStore adapts a vanilla IPLD store as an ADT store.
func WrapStore(ctx context.Context, store ipldcbor.IpldStore) Store {
	return &wstore{
		ctx:       ctx,
		IpldStore: store,
	}
}

type wstore struct {
	ctx context.Context
	ipldcbor.IpldStore
}

var _ Store = &wstore{}

func (s *wstore) Context() context.Context {
	return s.ctx
}

// ErrNotFound is returned by a store when no object is recorded at a CID.
type ErrNotFound struct {
	Cid cid.Cid
}

func (e ErrNotFound) Error() string {
	return "no data found at " + e.Cid.String()
}
