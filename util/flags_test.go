package util

import (
	"testing"
)

func TestFlagsDefault(t *testing.T) {
	flags := NewFlags[int32](10, -1)
	if *flags.Get(3) != -1 {
		t.Errorf("flags.Get(3) = %v; want -1", *flags.Get(3))
	}
	*flags.Get(3) = 7
	if *flags.Get(3) != 7 {
		t.Errorf("flags.Get(3) = %v; want 7", *flags.Get(3))
	}
}

func TestFlagsReset(t *testing.T) {
	flags := NewFlags[bool](5, false)
	*flags.Get(0) = true
	*flags.Get(4) = true
	flags.Reset()
	for i := int32(0); i < 5; i++ {
		if *flags.Get(i) != false {
			t.Errorf("flags.Get(%v) after Reset = true; want false", i)
		}
	}
}
