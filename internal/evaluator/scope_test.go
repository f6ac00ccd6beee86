package evaluator

import (
	"math/big"
	"testing"
)

func intValue(v int64) RuntimeValue {
	return &Primitive{Value: big.NewInt(v)}
}

func TestScopeDefine(t *testing.T) {
	s := NewScope(nil)
	if !s.Define("x", intValue(1)) {
		t.Fatal("first Define should succeed")
	}
	if s.Define("x", intValue(2)) {
		t.Error("redefining in the same frame should fail")
	}
	value, ok := s.Resolve("x", false)
	if !ok || value.Inspect() != "1" {
		t.Errorf("Resolve(x) = %v (%t), want 1", value, ok)
	}
}

func TestScopeShadowing(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", intValue(1))
	child := NewScope(parent)
	if !child.Define("x", intValue(2)) {
		t.Fatal("shadowing an outer binding should succeed")
	}
	if value, _ := child.Resolve("x", false); value.Inspect() != "2" {
		t.Errorf("child sees %s, want 2", value.Inspect())
	}
	if value, _ := parent.Resolve("x", false); value.Inspect() != "1" {
		t.Errorf("parent sees %s, want 1", value.Inspect())
	}
}

func TestScopeResolveLocalOnly(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", intValue(1))
	child := NewScope(parent)
	if _, ok := child.Resolve("x", true); ok {
		t.Error("localOnly resolution should not reach the parent")
	}
	if _, ok := child.Resolve("x", false); !ok {
		t.Error("chained resolution should reach the parent")
	}
}

func TestScopeAssign(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", intValue(1))
	child := NewScope(parent)

	if !child.Assign("x", intValue(2)) {
		t.Fatal("Assign should find the defining frame")
	}
	if value, _ := parent.Resolve("x", false); value.Inspect() != "2" {
		t.Errorf("parent binding = %s, want 2", value.Inspect())
	}
	if child.Assign("y", intValue(3)) {
		t.Error("Assign to an undefined name should fail")
	}

	// With a shadow in place the assignment stops at the nearest frame.
	child.Define("x", intValue(10))
	child.Assign("x", intValue(11))
	if value, _ := parent.Resolve("x", false); value.Inspect() != "2" {
		t.Errorf("parent binding changed to %s, want 2", value.Inspect())
	}
	if value, _ := child.Resolve("x", false); value.Inspect() != "11" {
		t.Errorf("child binding = %s, want 11", value.Inspect())
	}
}

func TestScopePut(t *testing.T) {
	s := NewScope(nil)
	s.Put("x", intValue(1))
	s.Put("x", intValue(2))
	if value, _ := s.Resolve("x", true); value.Inspect() != "2" {
		t.Errorf("Put should overwrite, got %s", value.Inspect())
	}
}
