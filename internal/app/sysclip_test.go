package app

import (
	"errors"
	"testing"

	"github.com/dshills/quill/internal/engine/clipboard"
)

func TestSystemClipboardMirrorsTop(t *testing.T) {
	stack := clipboard.NewStack()
	var written []string
	sc := NewSystemClipboard(stack, func(s string) error {
		written = append(written, s)
		return nil
	}, nil)
	sc.Attach()

	stack.Push("one")
	stack.Push("two")
	stack.Pop()
	stack.Pop()

	want := []string{"one", "two", "one"}
	if len(written) != len(want) {
		t.Fatalf("written = %q, want %q", written, want)
	}
	for i := range want {
		if written[i] != want[i] {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want[i])
		}
	}

	sc.Detach()
	stack.Push("three")
	if len(written) != len(want) {
		t.Error("detached mirror should not write")
	}
}

func TestSystemClipboardRetriesAfterFailure(t *testing.T) {
	stack := clipboard.NewStack()
	fail := true
	var written []string
	sc := NewSystemClipboard(stack, func(s string) error {
		if fail {
			return errors.New("no clipboard tool")
		}
		written = append(written, s)
		return nil
	}, nil)
	sc.Attach()

	stack.Push("a")
	fail = false
	stack.Push("a")

	if len(written) != 1 || written[0] != "a" {
		t.Errorf("written = %q, want [a]", written)
	}
}
