package mock

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FeineCapital/PLSXSSS/actors/runtime"
)

// Call invokes an exported actor method with the given parameter. Aborts
// propagate as panics for ExpectAbort to observe.
func (rt *Runtime) Call(method interface{}, params interface{}) interface{} {
	methodVal := reflect.ValueOf(method)
	if methodVal.Kind() != reflect.Func {
		rt.failTestNow("not a method: %v", method)
	}

	rt.inCall = true
	defer func() {
		rt.inCall = false
	}()

	var arg reflect.Value
	if params != nil {
		arg = reflect.ValueOf(params)
	} else {
		arg = reflect.ValueOf(&abi.EmptyValue{})
	}

	ret := methodVal.Call([]reflect.Value{reflect.ValueOf(rt), arg})
	return ret[0].Interface()
}

// CheckActorExports verifies that every exported method has the canonical
// actor method shape: func(Runtime, cbor-decodable pointer) cbor-encodable.
func CheckActorExports(t *testing.T, act interface{ Exports() []interface{} }) {
	rtType := reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
	unmarshaler := reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
	marshaler := reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()

	for i, m := range act.Exports() {
		if i == 0 {
			// the Send method slot is implicit
			assert.Nil(t, m, "send slot must be empty")
			continue
		}
		if m == nil {
			continue
		}

		t.Run(fmt.Sprintf("method%d", i), func(t *testing.T) {
			mt := reflect.TypeOf(m)
			require.Equal(t, reflect.Func, mt.Kind())
			require.Equal(t, 2, mt.NumIn())
			require.Equal(t, 1, mt.NumOut())

			require.Equal(t, rtType, mt.In(0), "first parameter is not Runtime")
			require.True(t, mt.In(1).Implements(unmarshaler), "parameter %v is not CBOR-decodable", mt.In(1))
			require.True(t, mt.Out(0).Implements(marshaler), "return %v is not CBOR-encodable", mt.Out(0))
		})
	}
}
