package govern

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-bitfield"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
)

type State struct {

	// Supervisor is in charge of the management of authorization policies.
	Supervisor address.Address

	// Methods granted to each governor by Supervisor.
	Governors cid.Cid // Map, HAMT[address]BitField, ID-Address
}

func ConstructState(store adt.Store, supervisor address.Address) (*State, error) {

	if supervisor.Protocol() != address.ID {
		return nil, xerrors.New("supervisor address must be an ID address")
	}

	emptyMapCid, err := adt.StoreEmptyMap(store, builtin.DefaultHamtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty map: %w", err)
	}

	return &State{
		Supervisor: supervisor,
		Governors:  emptyMapCid,
	}, nil
}

// IsGranted returns whether the Supervisor has granted the given method to
// the governor.
func (st *State) IsGranted(governors *adt.Map, governor address.Address, method abi.MethodNum) (bool, error) {
	var bf bitfield.BitField
	found, err := governors.Get(abi.AddrKey(governor), &bf)
	if err != nil {
		return false, xerrors.Errorf("failed to get authorities: %w", err)
	}
	if !found {
		return false, nil
	}
	return bf.IsSet(uint64(method))
}

func (st *State) grant(governors *adt.Map, governor address.Address, methods []abi.MethodNum) error {
	if len(methods) == 0 {
		return nil
	}

	setBits := make([]uint64, 0, len(methods))
	for _, method := range methods {
		setBits = append(setBits, uint64(method))
	}

	var bf bitfield.BitField
	found, err := governors.Get(abi.AddrKey(governor), &bf)
	if err != nil {
		return xerrors.Errorf("failed to get authorities: %w", err)
	}
	if !found {
		bf = bitfield.NewFromSet(setBits)
	} else {
		bf, err = bitfield.MergeBitFields(bf, bitfield.NewFromSet(setBits))
		if err != nil {
			return xerrors.Errorf("failed to merge bitfields: %w", err)
		}
	}
	return governors.Put(abi.AddrKey(governor), bf)
}

func (st *State) revoke(governors *adt.Map, governor address.Address, methods []abi.MethodNum) error {
	if len(methods) == 0 {
		return nil
	}

	var bf bitfield.BitField
	found, err := governors.Get(abi.AddrKey(governor), &bf)
	if err != nil {
		return xerrors.Errorf("failed to get authorities: %w", err)
	}
	if !found {
		// nothing to revoke
		return nil
	}

	setBits := make([]uint64, 0, len(methods))
	for _, method := range methods {
		setBits = append(setBits, uint64(method))
	}

	bf, err = bitfield.SubtractBitField(bf, bitfield.NewFromSet(setBits))
	if err != nil {
		return xerrors.Errorf("failed to subtract bitfields: %w", err)
	}

	empty, err := bf.IsEmpty()
	if err != nil {
		return xerrors.Errorf("failed to check bitfield empty: %w", err)
	}
	if empty {
		return governors.Delete(abi.AddrKey(governor))
	}
	return governors.Put(abi.AddrKey(governor), bf)
}
