package uuid

import "testing"

func TestNew(t *testing.T) {
	t.Run("produces a valid UUID", func(t *testing.T) {
		id := New()
		if !IsValid(id) {
			t.Errorf("expected valid UUID, got %q", id)
		}
	})

	t.Run("sets version 7 and RFC 4122 variant", func(t *testing.T) {
		id := New()
		// Layout: 8-4-4-4-12; version nibble leads the third group,
		// variant nibble leads the fourth.
		if id[14] != '7' {
			t.Errorf("expected version 7, got %c in %q", id[14], id)
		}
		switch id[19] {
		case '8', '9', 'a', 'b':
		default:
			t.Errorf("expected RFC 4122 variant, got %c in %q", id[19], id)
		}
	})

	t.Run("does not collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10000; i++ {
			id := New()
			if seen[id] {
				t.Fatalf("duplicate UUID %q after %d generations", id, i)
			}
			seen[id] = true
		}
	})
}
