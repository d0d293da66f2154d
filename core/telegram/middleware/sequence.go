package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// userLocks hands out one mutex per user so updates from the same user are
// handled strictly in arrival order even with a concurrent poller.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

func (ul *userLocks) acquire(userID int64) *userLock {
	ul.mu.Lock()
	l, ok := ul.locks[userID]
	if !ok {
		l = &userLock{}
		ul.locks[userID] = l
	}
	l.refs++
	ul.mu.Unlock()

	l.mu.Lock()
	return l
}

func (ul *userLocks) release(userID int64, l *userLock) {
	l.mu.Unlock()

	ul.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(ul.locks, userID)
	}
	ul.mu.Unlock()
}

// SequentialMiddleware serializes update handling per user. Updates from
// different users still run concurrently.
func SequentialMiddleware() tele.MiddlewareFunc {
	locks := newUserLocks()
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}
			l := locks.acquire(user.ID)
			defer locks.release(user.ID, l)
			return next(c)
		}
	}
}
