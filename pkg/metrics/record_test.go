package metrics

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	r := New()
	r.Set("b", 1)
	r.Set("a", 2)
	r.Set("c", 3)

	keys := r.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v; want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q; want %q", i, keys[i], want[i])
		}
	}
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	r := New()
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("a", 9)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", r.Len())
	}
	if keys := r.Keys(); keys[0] != "a" {
		t.Errorf("Keys()[0] = %q; want %q", keys[0], "a")
	}
	if v, _ := r.Get("a"); v != 9 {
		t.Errorf("Get(a) = %v; want 9", v)
	}
}

func TestRecordGet(t *testing.T) {
	r := New()
	r.Set("system", "Linux")

	if v, ok := r.Get("system"); !ok || v != "Linux" {
		t.Errorf("Get(system) = %v, %v; want Linux, true", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
	if !r.Has("system") || r.Has("missing") {
		t.Error("Has() inconsistent with Get()")
	}
}

func TestRecordMarshalJSONOrder(t *testing.T) {
	r := New()
	r.Set("system", "Linux")
	r.Set("cpu_cores", 8)
	r.Set("cpu_usage", 12.5)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}

	s := string(data)
	iSystem := strings.Index(s, `"system"`)
	iCores := strings.Index(s, `"cpu_cores"`)
	iUsage := strings.Index(s, `"cpu_usage"`)
	if iSystem < 0 || iCores < 0 || iUsage < 0 {
		t.Fatalf("missing keys in %s", s)
	}
	if !(iSystem < iCores && iCores < iUsage) {
		t.Errorf("keys out of order in %s", s)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["system"] != "Linux" {
		t.Errorf("system = %v; want Linux", decoded["system"])
	}
	if decoded["cpu_cores"] != float64(8) {
		t.Errorf("cpu_cores = %v; want 8", decoded["cpu_cores"])
	}
}

func TestRecordKeysReturnsCopy(t *testing.T) {
	r := New()
	r.Set("a", 1)

	keys := r.Keys()
	keys[0] = "mutated"

	if r.Keys()[0] != "a" {
		t.Error("Keys() exposed internal slice")
	}
}
