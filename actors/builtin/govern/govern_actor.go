package govern

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/runtime"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Grant,
		3:                         a.Revoke,
		4:                         a.ValidateGranted,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.GovernActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er { return new(State) }

var _ runtime.VMActor = Actor{}

func (a Actor) Constructor(rt runtime.Runtime, supervisor *address.Address) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt), *supervisor)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")

	rt.StateCreate(st)
	return nil
}

// ValidateGranted aborts with ErrForbidden unless the Supervisor has granted
// the named method to the named caller. Invoked by governed actors, never
// directly by principals.
func (a Actor) ValidateGranted(rt runtime.Runtime, params *builtin.ValidateGrantedParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerType(GovernedCallerTypes...)

	governor, ok := rt.ResolveAddress(params.Caller)
	builtin.RequireParam(rt, ok, "failed to resolve governor %s", params.Caller)

	var st State
	rt.StateReadonly(&st)

	governors, err := adt.AsMap(adt.AsStore(rt), st.Governors, builtin.DefaultHamtBitwidth)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load governors")

	granted, err := st.IsGranted(governors, governor, params.Method)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to check granted")

	if !granted {
		rt.Abortf(exitcode.ErrForbidden, "method not granted")
	}

	return nil
}

type GrantOrRevokeParams struct {
	Governor address.Address
	Methods  []abi.MethodNum
	All      bool // Methods will be ignored if true
}

// Grant delegates governed staking methods to the specified governor.
func (a Actor) Grant(rt runtime.Runtime, params *GrantOrRevokeParams) *abi.EmptyValue {

	governor, methods := checkGrantOrRevokeParams(rt, params)

	code, ok := rt.GetActorCodeCID(governor)
	builtin.RequireParam(rt, ok && builtin.IsPrincipal(code), "failed to check actor code for %s", params.Governor)

	var st State
	rt.StateTransaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Supervisor)

		governors, err := adt.AsMap(adt.AsStore(rt), st.Governors, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load governors")

		err = st.grant(governors, governor, methods)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to grant")

		st.Governors, err = governors.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush governors")
	})
	return nil
}

// Revoke removes governed staking methods from the specified governor.
func (a Actor) Revoke(rt runtime.Runtime, params *GrantOrRevokeParams) *abi.EmptyValue {

	governor, methods := checkGrantOrRevokeParams(rt, params)

	var st State
	rt.StateTransaction(&st, func() {
		rt.ValidateImmediateCallerIs(st.Supervisor)

		governors, err := adt.AsMap(adt.AsStore(rt), st.Governors, builtin.DefaultHamtBitwidth)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load governors")

		err = st.revoke(governors, governor, methods)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to revoke")

		st.Governors, err = governors.Root()
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to flush governors")
	})
	return nil
}

func checkGrantOrRevokeParams(rt runtime.Runtime, params *GrantOrRevokeParams) (address.Address, []abi.MethodNum) {
	governor, ok := rt.ResolveAddress(params.Governor)
	builtin.RequireParam(rt, ok, "failed to resolve governor")

	if params.All {
		methods := make([]abi.MethodNum, 0, len(GovernedMethods))
		for method := range GovernedMethods {
			methods = append(methods, method)
		}
		return governor, methods
	}

	seen := make(map[abi.MethodNum]struct{})
	for _, method := range params.Methods {
		_, ok := GovernedMethods[method]
		builtin.RequireParam(rt, ok, "method %d not governed", method)

		_, ok = seen[method]
		builtin.RequireParam(rt, !ok, "duplicated method %d", method)
		seen[method] = struct{}{}
	}
	builtin.RequireParam(rt, len(params.Methods) != 0, "no methods specified")
	return governor, params.Methods
}
