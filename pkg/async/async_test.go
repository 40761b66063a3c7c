package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// TestAsyncFunctionality tests the basic functionality of the Async helper.
func TestAsyncFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	futureBool := async.Async(ctx, "test", func(ctx context.Context, s string) (bool, error) {
		time.Sleep(20 * time.Millisecond)
		return len(s) > 0, nil
	})

	resultString, errString := futureString.Await()
	resultBool, errBool := futureBool.Await()

	if errString != nil || resultString != "Number: 42" {
		t.Errorf("Expected 'Number: 42', got '%s', error: %v", resultString, errString)
	}

	if errBool != nil || resultBool != true {
		t.Errorf("Expected true, got %v, error: %v", resultBool, errBool)
	}
}

// TestAsyncContextCancellation tests that the Async helper handles context cancellation properly.
func TestAsyncContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	future := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		select {
		case <-time.After(time.Second):
			return fmt.Sprintf("Number: %d", num), nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})

	result, err := future.Await()

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected context deadline exceeded error, got: %v", err)
	}

	if result != "" {
		t.Errorf("Expected empty result due to cancellation, got: '%s'", result)
	}
}

func TestAsyncPreCancelledContextSkipsCallback(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	var mu sync.Mutex
	future := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		mu.Lock()
		called = true
		mu.Unlock()
		return 1, nil
	})

	_, err := future.Await()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if called {
		t.Error("Expected callback not to run for a cancelled context")
	}
}

// TestAsyncErrorPropagation tests that errors from the asynchronous function are propagated correctly.
func TestAsyncErrorPropagation(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("remote check failed")

	future := async.Go(context.Background(), func(context.Context) (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, expectedErr
	})

	result, err := future.Await()

	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}

	if result != 0 {
		t.Errorf("Expected result 0 due to error, got: %d", result)
	}
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved([]string{"a", "b"})
	if !future.IsComplete() {
		t.Fatal("Expected resolved future to be complete immediately")
	}

	result, err := future.Await()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if len(result) != 2 || result[0] != "a" || result[1] != "b" {
		t.Errorf("Unexpected result: %v", result)
	}
}

func TestRejected(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("boom")

	future := async.Rejected[bool](expectedErr)
	if !future.IsComplete() {
		t.Fatal("Expected rejected future to be complete immediately")
	}

	result, err := future.Await()
	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}
	if result {
		t.Error("Expected zero result for rejected future")
	}
}

// TestIsComplete tests the IsComplete method of Future.
func TestIsComplete(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})

	future := async.Go(context.Background(), func(context.Context) (bool, error) {
		<-release
		return true, nil
	})

	if future.IsComplete() {
		t.Error("Expected future to not be complete before release")
	}

	close(release)
	<-future.Done()

	if !future.IsComplete() {
		t.Error("Expected future to be complete after Done is closed")
	}
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrTimeout for slow futures", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		future := async.Go(context.Background(), func(context.Context) (int, error) {
			<-release
			return 1, nil
		})

		_, err := future.AwaitWithTimeout(10 * time.Millisecond)
		if !errors.Is(err, async.ErrTimeout) {
			t.Errorf("Expected ErrTimeout, got: %v", err)
		}
	})

	t.Run("returns result when completed in time", func(t *testing.T) {
		t.Parallel()
		result, err := async.Resolved(7).AwaitWithTimeout(time.Second)
		if err != nil || result != 7 {
			t.Errorf("Expected 7, got %d, error: %v", result, err)
		}
	})
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	future := async.Go(context.Background(), func(context.Context) (string, error) {
		<-release
		return "late", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := future.AwaitContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected context.DeadlineExceeded, got: %v", err)
	}
	if future.IsComplete() {
		t.Error("Expected underlying computation to still be pending")
	}
}

func TestConcurrentAwait(t *testing.T) {
	t.Parallel()
	future := async.Go(context.Background(), func(context.Context) (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, err := future.Await(); err != nil || res != 42 {
				t.Errorf("Expected 42, got %d, error: %v", res, err)
			}
		}()
	}
	wg.Wait()
}
