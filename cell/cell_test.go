package cell

import "testing"

func TestCellSet(t *testing.T) {
	c := New(1, 0)
	c.Set(5)
	if c.Current() != 5 {
		t.Errorf("Expected current value to be 5. Got %v", c.Current())
	}
	if c.Previous() != 1 {
		t.Errorf("Expected the old current value to move into previous. Got %v", c.Previous())
	}
	c.Set(5)
	if c.Previous() != 5 || c.Changed() {
		t.Errorf("Setting the same value twice should leave current and previous equal. Got %v/%v", c.Current(), c.Previous())
	}
}

func TestCellCopyIsIndependent(t *testing.T) {
	original := New(true, false)
	cp := original
	cp.Set(false)
	if original.Current() != true || original.Previous() != false {
		t.Errorf("Changing a copy modified the original cell: %v/%v", original.Current(), original.Previous())
	}
}

func TestCellZeroValue(t *testing.T) {
	var c Cell[string]
	if c.Current() != "" || c.Previous() != "" {
		t.Errorf("Zero value cell should hold zero values. Got %q/%q", c.Current(), c.Previous())
	}
	c.Set("a")
	if !c.Changed() {
		t.Errorf("Cell should report a change after setting a new value")
	}
}
