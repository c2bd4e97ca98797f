package adt

import (
	"github.com/filecoin-project/go-state-types/abi"
)

// StringKey interprets a string as a HAMT key verbatim.
type StringKey string

func (k StringKey) Key() string {
	return string(k)
}

var _ abi.Keyer = StringKey("")
