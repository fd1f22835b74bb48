package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/iho/minibank/internal/domain"
)

func TestAccountDirectory_CreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	directory := NewAccountDirectory()

	for i := 1; i <= 5; i++ {
		account := directory.Create(ctx)

		want := fmt.Sprintf("ACC%d", i)
		if account.ID != want {
			t.Errorf("expected account ID %s, got %s", want, account.ID)
		}

		if account.BalanceSnapshot() != 0 {
			t.Errorf("expected zero balance on creation, got %d", account.BalanceSnapshot())
		}
	}
}

func TestAccountDirectory_Get(t *testing.T) {
	ctx := context.Background()
	directory := NewAccountDirectory()

	created := directory.Create(ctx)

	got, err := directory.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != created {
		t.Error("expected Get to return the registered account instance")
	}

	if _, err := directory.Get(ctx, "ACC_UNKNOWN"); err != domain.ErrAccountNotFound {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountDirectory_ConcurrentCreateNeverCollides(t *testing.T) {
	ctx := context.Background()
	directory := NewAccountDirectory()

	const numAccounts = 200

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]bool)
	)

	wg.Add(numAccounts)

	for range numAccounts {
		go func() {
			defer wg.Done()

			account := directory.Create(ctx)

			mu.Lock()
			defer mu.Unlock()
			if ids[account.ID] {
				t.Errorf("duplicate account ID %s", account.ID)
			}
			ids[account.ID] = true
		}()
	}

	wg.Wait()

	if len(ids) != numAccounts {
		t.Errorf("expected %d unique IDs, got %d", numAccounts, len(ids))
	}
}
