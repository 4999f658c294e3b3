package models

import "testing"

func TestNumberListValue(t *testing.T) {
	t.Parallel()

	var empty NumberList
	value, err := empty.Value()
	if err != nil {
		t.Fatalf("value returned error: %v", err)
	}
	if value != nil {
		t.Fatalf("nil list should store as NULL, got %v", value)
	}

	value, err = NumberList{}.Value()
	if err != nil {
		t.Fatalf("value returned error: %v", err)
	}
	if value != "[]" {
		t.Fatalf("empty list should store as [], got %v", value)
	}

	value, err = NumberList{100, 105.5}.Value()
	if err != nil {
		t.Fatalf("value returned error: %v", err)
	}
	if value != "[100,105.5]" {
		t.Fatalf("unexpected encoding %v", value)
	}
}

func TestNumberListScan(t *testing.T) {
	t.Parallel()

	var list NumberList
	if err := list.Scan("[100,105,110]"); err != nil {
		t.Fatalf("scan returned error: %v", err)
	}
	if len(list) != 3 || list[0] != 100 || list[2] != 110 {
		t.Fatalf("unexpected decode %#v", list)
	}

	if err := list.Scan(nil); err != nil {
		t.Fatalf("scan nil returned error: %v", err)
	}
	if list != nil {
		t.Fatalf("NULL should scan to nil, got %#v", list)
	}
}

func TestNumberListScanCorruptValueDegradesToNil(t *testing.T) {
	t.Parallel()

	list := NumberList{1, 2, 3}
	if err := list.Scan("not-json"); err != nil {
		t.Fatalf("corrupt scan should not error, got %v", err)
	}
	if list != nil {
		t.Fatalf("corrupt value should scan to nil, got %#v", list)
	}

	list = NumberList{1}
	if err := list.Scan(42); err != nil {
		t.Fatalf("unexpected type scan should not error, got %v", err)
	}
	if list != nil {
		t.Fatalf("unexpected type should scan to nil, got %#v", list)
	}
}
