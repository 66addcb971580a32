package util

import (
	"testing"
)

func TestList(t *testing.T) {
	list := NewList[int](4)
	list.Add(1)
	list.Add(2)
	list.Add(3)

	if list.Length() != 3 {
		t.Errorf("list.Length() = %v; want 3", list.Length())
	}
	if list.Get(1) != 2 {
		t.Errorf("list.Get(1) = %v; want 2", list.Get(1))
	}
	list.Set(1, 5)
	if list.Get(1) != 5 {
		t.Errorf("list.Get(1) = %v; want 5", list.Get(1))
	}
}

func TestDict(t *testing.T) {
	dict := NewDict[string, int](4)
	dict.Set("a", 1)
	dict.Set("b", 2)

	if !dict.ContainsKey("a") {
		t.Errorf("dict.ContainsKey(a) = false; want true")
	}
	if dict.Get("b") != 2 {
		t.Errorf("dict.Get(b) = %v; want 2", dict.Get("b"))
	}
	dict.Delete("a")
	if dict.ContainsKey("a") {
		t.Errorf("dict.ContainsKey(a) = true; want false")
	}
	if dict.Length() != 1 {
		t.Errorf("dict.Length() = %v; want 1", dict.Length())
	}
}

func TestOptional(t *testing.T) {
	some := Some(10)
	if !some.HasValue() {
		t.Errorf("some.HasValue() = false; want true")
	}
	if some.Value != 10 {
		t.Errorf("some.Value = %v; want 10", some.Value)
	}
	none := None[int]()
	if none.HasValue() {
		t.Errorf("none.HasValue() = true; want false")
	}
}
