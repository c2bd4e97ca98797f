package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"

	"github.com/FeineCapital/PLSXSSS/support/ipld"
)

// RuntimeBuilder arranges the initial condition of a mock runtime.
type RuntimeBuilder struct {
	ctx context.Context

	receiver   addr.Address
	caller     addr.Address
	callerType cid.Cid

	epoch         abi.ChainEpoch
	balance       abi.TokenAmount
	valueReceived abi.TokenAmount

	idAddresses   map[addr.Address]addr.Address
	actorCodeCIDs map[addr.Address]cid.Cid
}

func NewBuilder(ctx context.Context, receiver addr.Address) *RuntimeBuilder {
	return &RuntimeBuilder{
		ctx:           ctx,
		receiver:      receiver,
		balance:       big.Zero(),
		valueReceived: big.Zero(),
		idAddresses:   make(map[addr.Address]addr.Address),
		actorCodeCIDs: make(map[addr.Address]cid.Cid),
	}
}

func (b *RuntimeBuilder) Build(t testing.TB) *Runtime {
	idAddresses := make(map[addr.Address]addr.Address, len(b.idAddresses))
	for k, v := range b.idAddresses {
		idAddresses[k] = v
	}
	actorCodeCIDs := make(map[addr.Address]cid.Cid, len(b.actorCodeCIDs))
	for k, v := range b.actorCodeCIDs {
		actorCodeCIDs[k] = v
	}

	return &Runtime{
		ctx: b.ctx,
		t:   t,

		receiver:   b.receiver,
		caller:     b.caller,
		callerType: b.callerType,

		epoch:         b.epoch,
		balance:       b.balance,
		valueReceived: b.valueReceived,

		idAddresses:   idAddresses,
		actorCodeCIDs: actorCodeCIDs,

		store: ipldcbor.NewCborStore(ipld.NewBlockStoreInMemory()),
	}
}

func (b *RuntimeBuilder) WithCaller(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.caller = address
	b.callerType = code
	b.actorCodeCIDs[address] = code
	return b
}

func (b *RuntimeBuilder) WithActorType(address addr.Address, code cid.Cid) *RuntimeBuilder {
	b.actorCodeCIDs[address] = code
	return b
}

func (b *RuntimeBuilder) WithEpoch(epoch abi.ChainEpoch) *RuntimeBuilder {
	b.epoch = epoch
	return b
}

func (b *RuntimeBuilder) WithBalance(balance, received abi.TokenAmount) *RuntimeBuilder {
	b.balance = balance
	b.valueReceived = received
	return b
}
