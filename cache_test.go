package gdrive

import "testing"

func TestResolutionCachePutGet(t *testing.T) {
	c := newResolutionCache()

	if _, ok := c.get("a"); ok {
		t.Fatal("get on empty cache reported a hit")
	}

	obj := &Object{ID: "id-a", Name: "a"}
	c.put("a", obj)
	got, ok := c.get("a")
	if !ok || got != obj {
		t.Fatalf("get(\"a\") = (%v, %v), want cached object", got, ok)
	}
}

func TestResolutionCacheAbsence(t *testing.T) {
	c := newResolutionCache()
	c.put("missing", nil)

	got, ok := c.get("missing")
	if !ok {
		t.Fatal("cached absence not reported as a hit")
	}
	if got != nil {
		t.Fatalf("cached absence returned object %v", got)
	}
}

func TestResolutionCacheInvalidateSubtree(t *testing.T) {
	c := newResolutionCache()
	c.put("a", &Object{ID: "1"})
	c.put("a/b", &Object{ID: "2"})
	c.put("a/b/c", &Object{ID: "3"})
	c.put("ab", &Object{ID: "4"})

	c.invalidate("a")

	for _, path := range []string{"a", "a/b", "a/b/c"} {
		if _, ok := c.get(path); ok {
			t.Errorf("entry %q survived invalidation", path)
		}
	}
	// "ab" is a sibling, not a descendant of "a".
	if _, ok := c.get("ab"); !ok {
		t.Error("sibling entry \"ab\" was dropped by invalidation of \"a\"")
	}
}

func TestResolutionCacheInvalidateRoot(t *testing.T) {
	c := newResolutionCache()
	c.put("a", &Object{ID: "1"})
	c.put("b/c", &Object{ID: "2"})

	c.invalidate("")

	if _, ok := c.get("a"); ok {
		t.Error("entry \"a\" survived root invalidation")
	}
	if _, ok := c.get("b/c"); ok {
		t.Error("entry \"b/c\" survived root invalidation")
	}
}
