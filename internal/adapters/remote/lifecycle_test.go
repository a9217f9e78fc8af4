package remote_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/memory"
	"go.trai.ch/cram/internal/adapters/remote"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/test/bufconn"
)

func TestLifecycle_IdleShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(100 * time.Millisecond)

		select {
		case <-lc.Done():
		case <-time.After(200 * time.Millisecond):
			t.Fatal("expected the idle period to stop the server")
		}
		synctest.Wait()
	})
}

func TestLifecycle_CallsHoldOffShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(100 * time.Millisecond)

		time.Sleep(50 * time.Millisecond)
		end := lc.Begin()
		assert.Equal(t, 1, lc.Active())
		assert.Zero(t, lc.IdleRemaining())

		// A call longer than the idle period keeps the server up.
		time.Sleep(time.Second)
		select {
		case <-lc.Done():
			t.Fatal("stopped during a call")
		default:
		}

		end()
		end()
		assert.Zero(t, lc.Active())
		assert.Equal(t, 100*time.Millisecond, lc.IdleRemaining())

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, 40*time.Millisecond, lc.IdleRemaining())

		select {
		case <-lc.Done():
		case <-time.After(time.Second):
			t.Fatal("expected shutdown after the last call")
		}
		synctest.Wait()
	})
}

func TestLifecycle_ZeroIdleNeverExpires(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(0)

		lc.Begin()()
		time.Sleep(time.Hour)
		select {
		case <-lc.Done():
			t.Fatal("a zero idle timeout must not shut down")
		default:
		}
		assert.Zero(t, lc.IdleRemaining())

		lc.Shutdown()
		lc.Shutdown()
		_, open := <-lc.Done()
		assert.False(t, open)
	})
}

func TestServer_StopsOnLifecycleShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	lc := remote.NewLifecycle(0)
	server := remote.NewServer(memory.New(), lc, quietLogger(ctrl))

	done := make(chan error, 1)
	go func() { done <- server.Serve(context.Background(), bufconn.Listen(1<<10)) }()

	lc.Shutdown()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
