package mock

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/stretchr/testify/require"

	"github.com/FeineCapital/PLSXSSS/actors/runtime"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

// Runtime is a test harness implementation of the actor runtime. Test code
// arranges expectations on caller validations and outbound sends, invokes an
// actor method through Call, and then asserts the expectations were consumed
// with Verify.
type Runtime struct {
	ctx context.Context
	t   testing.TB

	receiver   addr.Address
	caller     addr.Address
	callerType cid.Cid

	epoch         abi.ChainEpoch
	balance       abi.TokenAmount
	valueReceived abi.TokenAmount

	idAddresses   map[addr.Address]addr.Address
	actorCodeCIDs map[addr.Address]cid.Cid

	state cid.Cid
	store ipldcbor.IpldStore

	inCall        bool
	inTransaction bool

	// Expectations
	expectValidateCallerAny  bool
	expectValidateCallerAddr []addr.Address
	expectValidateCallerType []cid.Cid
	expectSends              []*expectedMessage
	logs                     []string
}

var _ runtime.Runtime = &Runtime{}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

type expectedMessage struct {
	to     addr.Address
	method abi.MethodNum
	params cbor.Marshaler
	value  abi.TokenAmount

	sendReturn cbor.Er
	exitCode   exitcode.ExitCode
}

func (m *expectedMessage) String() string {
	return fmt.Sprintf("to: %v method: %v value: %v params: %v sendReturn: %v exitCode: %v", m.to, m.method, m.value, m.params, m.sendReturn, m.exitCode)
}

//
// Runtime interface
//

func (rt *Runtime) CurrEpoch() abi.ChainEpoch {
	return rt.epoch
}

func (rt *Runtime) Receiver() addr.Address {
	return rt.receiver
}

func (rt *Runtime) Caller() addr.Address {
	return rt.caller
}

func (rt *Runtime) ValueReceived() abi.TokenAmount {
	rt.requireInCall()
	return rt.valueReceived
}

func (rt *Runtime) CurrentBalance() abi.TokenAmount {
	return rt.balance
}

func (rt *Runtime) ValidateImmediateCallerAcceptAny() {
	rt.requireInCall()
	if !rt.expectValidateCallerAny {
		rt.failTest("unexpected validate-caller-any")
	}
	rt.expectValidateCallerAny = false
}

func (rt *Runtime) ValidateImmediateCallerIs(addrs ...addr.Address) {
	rt.requireInCall()
	rt.checkArgument(len(addrs) > 0, "addrs must be non-empty")

	if len(rt.expectValidateCallerAddr) == 0 {
		rt.failTest("unexpected validate caller addrs")
		return
	}
	if len(addrs) != len(rt.expectValidateCallerAddr) {
		rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
	} else {
		for i, a := range addrs {
			if a != rt.expectValidateCallerAddr[i] {
				rt.failTest("unexpected validate caller addrs %v, expected %v", addrs, rt.expectValidateCallerAddr)
				break
			}
		}
	}
	defer func() {
		rt.expectValidateCallerAddr = nil
	}()

	for _, expected := range addrs {
		if rt.caller == expected {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller address %v forbidden, allowed: %v", rt.caller, addrs)
}

func (rt *Runtime) ValidateImmediateCallerType(types ...cid.Cid) {
	rt.requireInCall()
	rt.checkArgument(len(types) > 0, "types must be non-empty")

	if len(rt.expectValidateCallerType) == 0 {
		rt.failTest("unexpected validate caller code")
	}
	if len(types) != len(rt.expectValidateCallerType) {
		rt.failTest("unexpected validate caller code %v, expected %v", types, rt.expectValidateCallerType)
	} else {
		for i, c := range types {
			if !c.Equals(rt.expectValidateCallerType[i]) {
				rt.failTest("unexpected validate caller code %v, expected %v", types, rt.expectValidateCallerType)
				break
			}
		}
	}
	defer func() {
		rt.expectValidateCallerType = nil
	}()

	for _, expected := range types {
		if rt.callerType.Equals(expected) {
			return
		}
	}
	rt.Abortf(exitcode.SysErrForbidden, "caller type %v forbidden, allowed: %v", rt.callerType, types)
}

func (rt *Runtime) ResolveAddress(address addr.Address) (addr.Address, bool) {
	if address.Protocol() == addr.ID {
		return address, true
	}
	resolved, ok := rt.idAddresses[address]
	return resolved, ok
}

func (rt *Runtime) GetActorCodeCID(address addr.Address) (cid.Cid, bool) {
	code, ok := rt.actorCodeCIDs[address]
	return code, ok
}

func (rt *Runtime) StateCreate(obj cbor.Marshaler) {
	if rt.state.Defined() {
		rt.Abortf(exitcode.SysErrorIllegalActor, "state already constructed")
	}
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StateReadonly(obj cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, obj)
	require.True(rt.t, found, "actor state not found")
}

func (rt *Runtime) StateTransaction(obj cbor.Er, f func()) {
	rt.checkArgument(obj != nil, "object must not be nil")
	rt.checkArgument(!rt.inTransaction, "nested transaction")

	rt.StateReadonly(obj)
	rt.inTransaction = true
	defer func() {
		rt.inTransaction = false
	}()
	f()
	rt.state = rt.StorePut(obj)
}

func (rt *Runtime) StorePut(obj cbor.Marshaler) cid.Cid {
	c, err := rt.store.Put(rt.ctx, obj)
	require.NoError(rt.t, err)
	return c
}

func (rt *Runtime) StoreGet(c cid.Cid, obj cbor.Unmarshaler) bool {
	err := rt.store.Get(rt.ctx, c, obj)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return false
		}
		rt.failTestNow("store get failed: %v", err)
	}
	return true
}

func (rt *Runtime) Send(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode {
	rt.requireInCall()
	if rt.inTransaction {
		rt.Abortf(exitcode.SysErrorIllegalActor, "side-effect within transaction")
	}
	if len(rt.expectSends) == 0 {
		rt.failTestNow("unexpected send to: %v method: %v, value: %v, params: %v", toAddr, methodNum, value, params)
	}
	expectedMsg := rt.expectSends[0]

	if expectedMsg.to != toAddr || expectedMsg.method != methodNum {
		rt.failTestNow("expected send to: %v method: %v, got to: %v method: %v", expectedMsg.to, expectedMsg.method, toAddr, methodNum)
	}
	if !expectedMsg.value.Equals(value) {
		rt.failTestNow("expected send value: %v, got: %v (to: %v method: %v)", expectedMsg.value, value, toAddr, methodNum)
	}
	if !paramsMatch(expectedMsg.params, params) {
		rt.failTestNow("expected send params: %v, got: %v (to: %v method: %v)", expectedMsg.params, params, toAddr, methodNum)
	}

	rt.expectSends = rt.expectSends[1:]

	if value.GreaterThan(rt.balance) {
		rt.Abortf(exitcode.SysErrSenderStateInvalid, "cannot send value: %v exceeds balance: %v", value, rt.balance)
	}
	rt.balance = big.Sub(rt.balance, value)

	if expectedMsg.sendReturn != nil && out != nil {
		buf := new(bytes.Buffer)
		require.NoError(rt.t, expectedMsg.sendReturn.MarshalCBOR(buf))
		require.NoError(rt.t, out.UnmarshalCBOR(buf))
	}
	return expectedMsg.exitCode
}

func (rt *Runtime) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

func (rt *Runtime) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	rt.logs = append(rt.logs, fmt.Sprintf(msg, args...))
}

//
// Test harness controls
//

func (rt *Runtime) SetCaller(address addr.Address, actorType cid.Cid) {
	rt.caller = address
	rt.callerType = actorType
	rt.actorCodeCIDs[address] = actorType
}

func (rt *Runtime) SetAddressActorType(address addr.Address, actorType cid.Cid) {
	rt.actorCodeCIDs[address] = actorType
}

func (rt *Runtime) AddIDAddress(src addr.Address, target addr.Address) {
	rt.require(target.Protocol() == addr.ID, "target must use ID address protocol")
	rt.idAddresses[src] = target
}

func (rt *Runtime) SetEpoch(epoch abi.ChainEpoch) {
	rt.epoch = epoch
}

func (rt *Runtime) SetBalance(amt abi.TokenAmount) {
	rt.balance = amt
}

func (rt *Runtime) Balance() abi.TokenAmount {
	return rt.balance
}

func (rt *Runtime) SetReceived(amt abi.TokenAmount) {
	rt.valueReceived = amt
}

// GetState retrieves the committed actor state root into out.
func (rt *Runtime) GetState(out cbor.Unmarshaler) {
	found := rt.StoreGet(rt.state, out)
	require.True(rt.t, found, "actor state not found")
}

// ReplaceState forcibly commits a new actor state.
func (rt *Runtime) ReplaceState(obj cbor.Marshaler) {
	rt.state = rt.StorePut(obj)
}

// StateRoot returns the CID of the committed actor state.
func (rt *Runtime) StateRoot() cid.Cid {
	return rt.state
}

// AdtStore exposes the underlying store for test inspection of state
// structures.
func (rt *Runtime) AdtStore() adt.Store {
	return adt.WrapStore(rt.ctx, rt.store)
}

func (rt *Runtime) ExpectValidateCallerAny() {
	rt.expectValidateCallerAny = true
}

func (rt *Runtime) ExpectValidateCallerAddr(addrs ...addr.Address) {
	rt.require(len(addrs) > 0, "addrs must be non-empty")
	rt.expectValidateCallerAddr = addrs[:]
}

func (rt *Runtime) ExpectValidateCallerType(types ...cid.Cid) {
	rt.require(len(types) > 0, "types must be non-empty")
	rt.expectValidateCallerType = types[:]
}

func (rt *Runtime) ExpectSend(toAddr addr.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, ret cbor.Er, exitCode exitcode.ExitCode) {
	rt.expectSends = append(rt.expectSends, &expectedMessage{
		to:         toAddr,
		method:     methodNum,
		params:     params,
		value:      value,
		sendReturn: ret,
		exitCode:   exitCode,
	})
}

// ExpectAbort runs f and asserts it aborts with the given exit code.
func (rt *Runtime) ExpectAbort(expected exitcode.ExitCode, f func()) {
	rt.expectAbort(expected, "", f)
}

// ExpectAbortContainsMessage runs f and asserts it aborts with the given
// exit code and a message containing substr.
func (rt *Runtime) ExpectAbortContainsMessage(expected exitcode.ExitCode, substr string, f func()) {
	rt.expectAbort(expected, substr, f)
}

func (rt *Runtime) expectAbort(expected exitcode.ExitCode, substr string, f func()) {
	prevState := rt.state

	defer func() {
		r := recover()
		if r == nil {
			rt.failTest("expected abort with code %v but call succeeded", expected)
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		if a.code != expected {
			rt.failTest("abort expected code %v, got %v: %s", expected, a.code, a.msg)
		}
		if substr != "" && !strings.Contains(a.msg, substr) {
			rt.failTest("abort expected message %q, got %q", substr, a.msg)
		}
		// an abort rolls back all state mutations made by the call
		rt.state = prevState
		// drop any unconsumed expectations from the aborted path
		rt.expectValidateCallerAny = false
		rt.expectValidateCallerAddr = nil
		rt.expectValidateCallerType = nil
		rt.expectSends = nil
	}()
	f()
}

// Verify asserts that every arranged expectation was consumed.
func (rt *Runtime) Verify() {
	if h, ok := rt.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if rt.expectValidateCallerAny {
		rt.failTest("missed expected validate-caller-any")
	}
	if rt.expectValidateCallerAddr != nil {
		rt.failTest("missed expected validate caller addrs %v", rt.expectValidateCallerAddr)
	}
	if rt.expectValidateCallerType != nil {
		rt.failTest("missed expected validate caller types %v", rt.expectValidateCallerType)
	}
	if len(rt.expectSends) > 0 {
		rt.failTest("missed expected sends %v", rt.expectSends)
	}
}

// Reset clears all expectations.
func (rt *Runtime) Reset() {
	rt.expectValidateCallerAny = false
	rt.expectValidateCallerAddr = nil
	rt.expectValidateCallerType = nil
	rt.expectSends = nil
}

func (rt *Runtime) requireInCall() {
	rt.require(rt.inCall, "invalid runtime invocation outside of method call")
}

func (rt *Runtime) checkArgument(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.failTestNow(msg, args...)
	}
}

func (rt *Runtime) failTest(msg string, args ...interface{}) {
	rt.t.Errorf(msg, args...)
}

func (rt *Runtime) failTestNow(msg string, args ...interface{}) {
	rt.t.Fatalf(msg, args...)
}

func paramsMatch(expected, actual cbor.Marshaler) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	expBuf := new(bytes.Buffer)
	actBuf := new(bytes.Buffer)
	if err := expected.MarshalCBOR(expBuf); err != nil {
		return false
	}
	if err := actual.MarshalCBOR(actBuf); err != nil {
		return false
	}
	return bytes.Equal(expBuf.Bytes(), actBuf.Bytes())
}
