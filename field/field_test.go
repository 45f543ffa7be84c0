// Copyright 2026 The Holography Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package field_test

import (
	"testing"

	"github.com/DanLovesOrange/holography/backend/host"
	"github.com/DanLovesOrange/holography/field"
)

// TestBackendInterface verifies that host.Backend implements field.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ field.Backend = (*host.Backend)(nil)
}

// TestFieldAPI verifies the Field type alias exposes the expected API.
func TestFieldAPI(t *testing.T) {
	f, err := field.New(field.Shape{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !f.Shape().Equal(field.Shape{Rows: 2, Cols: 3}) {
		t.Errorf("Shape() = %v, want (2,3)", f.Shape())
	}
	if f.Shape().NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", f.Shape().NumElements())
	}

	f.Set(1, 2, 3+4i)
	if f.At(1, 2) != 3+4i {
		t.Errorf("At(1,2) = %v, want 3+4i", f.At(1, 2))
	}

	clone := f.Clone()
	clone.Set(0, 0, 1)
	if f.At(0, 0) != 0 {
		t.Error("Clone() should not alias the original")
	}
}

// TestStackAPI verifies the Stack type alias exposes the expected API.
func TestStackAPI(t *testing.T) {
	s, err := field.NewStack(field.Shape{Rows: 2, Cols: 2}, 3)
	if err != nil {
		t.Fatalf("NewStack failed: %v", err)
	}

	if s.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", s.Depth())
	}

	s.SetSlice(1, field.Full(2, 2, 5i))
	if s.Slice(1).At(0, 0) != 5i {
		t.Errorf("Slice(1)[0,0] = %v, want 5i", s.Slice(1).At(0, 0))
	}
}
