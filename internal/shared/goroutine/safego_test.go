package goroutine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cartonworks/stockline/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	SafeGo(logger.NewNopLogger(), "panicky", func() {
		defer wg.Done()
		panic("boom")
	})

	wg.Wait()
}

func TestDetached_SurvivesParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	Detached(parent, logger.NewNopLogger(), "alert", time.Second, func(ctx context.Context) {
		time.Sleep(20 * time.Millisecond)
		done <- ctx.Err()
	})
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("detached goroutine did not finish")
	}
}
