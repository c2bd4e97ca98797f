package system_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/builtin/system"
	"github.com/FeineCapital/PLSXSSS/support/mock"
	tutil "github.com/FeineCapital/PLSXSSS/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, system.Actor{})
}

func TestConstruction(t *testing.T) {
	t.Run("construction", func(t *testing.T) {
		rt := mock.NewBuilder(context.Background(), builtin.SystemActorAddr).
			WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID).
			Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(system.Actor{}.Constructor, nil)
		assert.Nil(t, ret)
		rt.Verify()
	})

	t.Run("rejects non-system caller", func(t *testing.T) {
		rt := mock.NewBuilder(context.Background(), builtin.SystemActorAddr).
			WithCaller(tutil.NewIDAddr(t, 101), builtin.AccountActorCodeID).
			Build(t)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(system.Actor{}.Constructor, nil)
		})
	})
}
