package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranscript_ReplaceVolatile(t *testing.T) {
	tr := NewTranscript()

	tr.ReplaceVolatile("he")
	tr.ReplaceVolatile("hel")
	tr.ReplaceVolatile("hello")

	finalized, volatile := tr.Snapshot()
	if len(finalized) != 0 {
		t.Errorf("finalized = %v, want empty", finalized)
	}
	if volatile != "hello" {
		t.Errorf("volatile = %q, want %q", volatile, "hello")
	}
}

func TestTranscript_AppendFinal(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		tr := NewTranscript()

		tr.AppendFinal("first sentence")
		tr.AppendFinal("second sentence")

		finalized, _ := tr.Snapshot()
		want := []string{"first sentence", "second sentence"}
		if diff := cmp.Diff(want, finalized); diff != "" {
			t.Errorf("finalized mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("clears volatile", func(t *testing.T) {
		tr := NewTranscript()

		tr.ReplaceVolatile("first sen")
		tr.AppendFinal("first sentence")

		_, volatile := tr.Snapshot()
		if volatile != "" {
			t.Errorf("volatile = %q, want empty", volatile)
		}
	})

	t.Run("earlier entries are never rewritten", func(t *testing.T) {
		tr := NewTranscript()

		tr.AppendFinal("first sentence")
		before, _ := tr.Snapshot()

		tr.ReplaceVolatile("second sen")
		tr.AppendFinal("second sentence")

		after, _ := tr.Snapshot()
		if diff := cmp.Diff(before, after[:len(before)]); diff != "" {
			t.Errorf("committed text changed (-want +got):\n%s", diff)
		}
	})
}

func TestTranscript_Snapshot(t *testing.T) {
	tr := NewTranscript()
	tr.AppendFinal("committed")

	finalized, _ := tr.Snapshot()
	finalized[0] = "mutated"

	got, _ := tr.Snapshot()
	if got[0] != "committed" {
		t.Errorf("snapshot mutation leaked into transcript: %q", got[0])
	}
}
