package simd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The stamped-out named wrappers must be indistinguishable from the generic
// builtins they delegate to.
func TestNamedOpsMatchGeneric(t *testing.T) {
	fa := Load([]float32{1, 2, 3, 4})
	fb := Load([]float32{5, 6, 7, 8})

	if diff := cmp.Diff(Add(fa, fb).Data(), AddFloat32(fa, fb).Data()); diff != "" {
		t.Errorf("AddFloat32 disagrees with Add (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Sub(fa, fb).Data(), SubFloat32(fa, fb).Data()); diff != "" {
		t.Errorf("SubFloat32 disagrees with Sub (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Mul(fa, fb).Data(), MulFloat32(fa, fb).Data()); diff != "" {
		t.Errorf("MulFloat32 disagrees with Mul (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Div(fa, fb).Data(), DivFloat32(fa, fb).Data()); diff != "" {
		t.Errorf("DivFloat32 disagrees with Div (-want +got):\n%s", diff)
	}

	ia := Load([]int64{10, -20, 30, 40})
	ib := Load([]int64{2, 4, -5, 8})

	if diff := cmp.Diff(Add(ia, ib).Data(), AddInt64(ia, ib).Data()); diff != "" {
		t.Errorf("AddInt64 disagrees with Add (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Div(ia, ib).Data(), DivInt64(ia, ib).Data()); diff != "" {
		t.Errorf("DivInt64 disagrees with Div (-want +got):\n%s", diff)
	}
}
