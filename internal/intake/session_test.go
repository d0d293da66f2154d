package intake

import (
	"sync"
	"testing"
)

func TestMemoryStoreBasics(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(1); ok {
		t.Fatal("expected no session for unknown user")
	}
	if updated := store.Update(1, func(s *Session) { s.Name = "x" }); updated {
		t.Fatal("Update must report false for unknown user")
	}

	store.Put(1, &Session{Stage: StageConnect, Name: "Иван"})
	sess, ok := store.Get(1)
	if !ok || sess.Name != "Иван" {
		t.Fatalf("unexpected session after Put: %+v ok=%v", sess, ok)
	}

	if updated := store.Update(1, func(s *Session) { s.Stage = StageConsent }); !updated {
		t.Fatal("Update must report true for existing user")
	}
	sess, _ = store.Get(1)
	if sess.Stage != StageConsent {
		t.Fatalf("stage = %s, want %s", sess.Stage, StageConsent)
	}
}

func TestMemoryStoreConcurrentUsers(t *testing.T) {
	store := NewMemoryStore()
	const users = 64
	const updates = 100

	var wg sync.WaitGroup
	for u := int64(0); u < users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			store.Put(userID, &Session{Stage: StageConnect})
			for i := 0; i < updates; i++ {
				store.Update(userID, func(s *Session) {
					s.Instructions = append(s.Instructions, MessageRef{ChatID: userID, MessageID: i})
				})
			}
		}(u)
	}
	wg.Wait()

	for u := int64(0); u < users; u++ {
		sess, ok := store.Get(u)
		if !ok {
			t.Fatalf("missing session for user %d", u)
		}
		if len(sess.Instructions) != updates {
			t.Fatalf("user %d: %d instructions, want %d", u, len(sess.Instructions), updates)
		}
	}
}
