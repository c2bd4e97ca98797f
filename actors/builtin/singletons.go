package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses of singleton actors, defined at genesis.
var (
	SystemActorAddr     = mustMakeAddress(0)
	GovernActorAddr     = mustMakeAddress(2)
	StakingActorAddr    = mustMakeAddress(10)
	TelemetryActorAddr  = mustMakeAddress(11)
	BurntFundsActorAddr = mustMakeAddress(99)
)

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
