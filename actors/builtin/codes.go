package builtin

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var (
	SystemActorCodeID    cid.Cid
	AccountActorCodeID   cid.Cid
	MultisigActorCodeID  cid.Cid
	GovernActorCodeID    cid.Cid
	StakingActorCodeID   cid.Cid
	TelemetryActorCodeID cid.Cid
	CallerTypesSignable  []cid.Cid
)

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		return c
	}

	SystemActorCodeID = makeBuiltin("plsx/1/system")
	AccountActorCodeID = makeBuiltin("plsx/1/account")
	MultisigActorCodeID = makeBuiltin("plsx/1/multisig")
	GovernActorCodeID = makeBuiltin("plsx/1/govern")
	StakingActorCodeID = makeBuiltin("plsx/1/staking")
	TelemetryActorCodeID = makeBuiltin("plsx/1/telemetry")

	// Set of actor code types that can represent external signing parties.
	CallerTypesSignable = []cid.Cid{AccountActorCodeID, MultisigActorCodeID}
}

// IsPrincipal returns true if the code belongs to an actor that can stand in
// for an external party (i.e. can hold and move funds of its own volition).
func IsPrincipal(code cid.Cid) bool {
	for _, c := range CallerTypesSignable {
		if c.Equals(code) {
			return true
		}
	}
	return false
}
