// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"errors"
	"strings"
	"testing"
)

func TestDefineAssignsDenseIndices(t *testing.T) {
	r := NewRegistry()
	a := r.Define("A", 1)
	b := r.Define("B", 2)

	if a.Index() != 0 || b.Index() != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", a.Index(), b.Index())
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if got, ok := r.Lookup("B"); !ok || got != b {
		t.Errorf("Lookup(B) = %v, %v", got, ok)
	}
	if _, ok := r.Lookup("C"); ok {
		t.Error("Lookup(C) should fail")
	}
	if r.Property(1) != b {
		t.Error("Property(1) should return B")
	}
}

func TestDefineDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Define("A", 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Define")
		}
	}()
	r.Define("A", 0)
}

func TestDefineAfterSealPanics(t *testing.T) {
	r := NewRegistry()
	r.Define("A", 0)
	if err := r.Seal(); err != nil {
		t.Fatalf("Seal() = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Define after Seal")
		}
	}()
	r.Define("B", 0)
}

func TestRequireForeignPropertyPanics(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()
	a := r1.Define("A", 0)
	b := r2.Define("B", 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when requiring a property of another registry")
		}
	}()
	r1.Require(a, b)
}

func TestSealDetectsCycle(t *testing.T) {
	tests := []struct {
		name  string
		build func(r *Registry)
		path  string
	}{
		{
			name: "self",
			build: func(r *Registry) {
				a := r.Define("A", 0)
				r.Require(a, a)
			},
			path: "A -> A",
		},
		{
			name: "transitive",
			build: func(r *Registry) {
				a := r.Define("A", 0)
				b := r.Define("B", 0)
				c := r.Define("C", 0)
				r.Require(a, b)
				r.Require(b, c)
				r.Require(c, a)
			},
			path: "A -> B -> C -> A",
		},
		{
			name: "conditional edges count",
			build: func(r *Registry) {
				a := r.Define("A", 0)
				b := r.Define("B", 0)
				never := func(*State) bool { return false }
				r.RequireWhen(a, b, never)
				r.RequireWhen(b, a, never)
			},
			path: "A -> B -> A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.build(r)

			err := r.Seal()
			if !errors.Is(err, ErrDependencyCycle) {
				t.Fatalf("Seal() = %v, want ErrDependencyCycle", err)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q does not name path %q", err, tt.path)
			}
			if r.Sealed() {
				t.Error("registry should stay unsealed after a failed Seal")
			}
		})
	}
}

func TestSealAcyclic(t *testing.T) {
	r := NewRegistry()
	a := r.Define("A", 0)
	b := r.Define("B", 0)
	c := r.Define("C", 0)
	r.Require(c, a)
	r.Require(c, b)
	r.Require(b, a)

	if err := r.Seal(); err != nil {
		t.Fatalf("Seal() = %v", err)
	}
	if !r.Sealed() {
		t.Error("Sealed() = false after Seal")
	}
	if err := r.Seal(); err != nil {
		t.Errorf("second Seal() = %v, want nil", err)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	r := NewRegistry()
	a := r.Define("A", 42)
	if err := r.Seal(); err != nil {
		t.Fatal(err)
	}

	if r.Default() != r.Default() {
		t.Error("Default() should return the same snapshot every time")
	}
	if got := r.Default().Get(a); got != 42 {
		t.Errorf("Default().Get(A) = %d, want 42", got)
	}
}

func TestDefaultUnsealedPanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Error("expected panic from Default on unsealed registry")
		}
	}()
	r.Default()
}

func TestPropertyFormat(t *testing.T) {
	r := NewRegistry()
	plain := r.Define("PLAIN", 0)
	hex := r.Define("HEX", 0, WithFormat(FormatHex))

	if got := plain.Format(255); got != "255" {
		t.Errorf("plain.Format(255) = %q", got)
	}
	if got := hex.Format(255); got != "0xff" {
		t.Errorf("hex.Format(255) = %q", got)
	}
	if hex.String() != "HEX" {
		t.Errorf("String() = %q", hex.String())
	}
}
