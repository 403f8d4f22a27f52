package funcidioms

import (
	"testing"

	"go.uber.org/goleak"
)

// Pulled queries run on coroutines; a test that forgets stop leaks one.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
