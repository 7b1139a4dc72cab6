package panicutil_test

import (
	"strings"
	"testing"

	"github.com/karupanerura/aging-cache/internal/panicutil"
)

func TestCapture(t *testing.T) {
	t.Parallel()

	t.Run("normal return", func(t *testing.T) {
		t.Parallel()

		called := false
		if err := panicutil.Capture(func() { called = true }); err != nil {
			t.Errorf("Capture() = %v, want nil", err)
		}
		if !called {
			t.Error("the function should have been called")
		}
	})

	t.Run("panic is recovered as error", func(t *testing.T) {
		t.Parallel()

		err := panicutil.Capture(func() { panic("boom") })
		if err == nil {
			t.Fatal("Capture() = nil, want error for panicking function")
		}
		if !strings.Contains(err.Error(), "boom") {
			t.Errorf("Capture() error = %v, want it to contain the panic value", err)
		}
	})
}
