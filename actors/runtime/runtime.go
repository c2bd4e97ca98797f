package runtime

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
)

// Runtime is the interface through which actor code observes and mutates the
// world: the current message, chain clock, its own state, and other actors.
// The host executing a Runtime guarantees total ordering of messages and
// all-or-nothing commitment of each invocation's effects.
type Runtime interface {
	// The epoch of the message currently being executed.
	CurrEpoch() abi.ChainEpoch

	// Address of the actor receiving the current message.
	Receiver() addr.Address

	// Address of the immediate caller, always an ID-address.
	Caller() addr.Address

	// Value attached to the current message, already credited to the
	// receiver's balance.
	ValueReceived() abi.TokenAmount

	// The receiver's balance, including ValueReceived().
	CurrentBalance() abi.TokenAmount

	// Exactly one caller validation must be made by each method.
	ValidateImmediateCallerAcceptAny()
	ValidateImmediateCallerIs(addrs ...addr.Address)
	ValidateImmediateCallerType(types ...cid.Cid)

	// Resolves an address to the canonical ID-address form, if known.
	ResolveAddress(address addr.Address) (addr.Address, bool)

	// The code CID of the actor at the given address, if any.
	GetActorCodeCID(addr addr.Address) (cid.Cid, bool)

	// Initializes the receiver's state. May be called only once, from the
	// constructor.
	StateCreate(obj cbor.Marshaler)

	// Loads the receiver's state for reading.
	StateReadonly(obj cbor.Unmarshaler)

	// Loads the receiver's state, runs f, and commits the mutated state
	// atomically. No outbound sends are permitted while the transaction is
	// open; this is the reentrancy guard around every ledger mutation.
	StateTransaction(obj cbor.Er, f func())

	// Raw access to the underlying IPLD store for off-state structures.
	StorePut(obj cbor.Marshaler) cid.Cid
	StoreGet(c cid.Cid, obj cbor.Unmarshaler) bool

	// Sends a message to another actor, returning its exit code. Funds move
	// immediately on success.
	Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode

	// Aborts the current invocation; the host discards all of its effects.
	Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{})

	Log(level rt.LogLevel, msg string, args ...interface{})
}

// VMActor is the interface all builtin actors implement for registration
// with the host.
type VMActor = rt.VMActor
