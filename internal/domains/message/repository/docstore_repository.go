package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/infrastructure/docstore"
)

const collection = "messages"

type docstoreRepository struct {
	store *docstore.Store

	mu       sync.RWMutex
	messages []message.Message
	lastID   int64
}

// NewDocstoreRepository loads the inbox from disk; a missing file
// means an empty inbox.
func NewDocstoreRepository(store *docstore.Store) (message.Repository, error) {
	r := &docstoreRepository{store: store}

	if err := store.Read(collection, &r.messages); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		r.messages = []message.Message{}
	}

	for _, m := range r.messages {
		if m.ID > r.lastID {
			r.lastID = m.ID
		}
	}

	return r, nil
}

// ListAll returns newest first, the order the admin inbox shows
func (r *docstoreRepository) ListAll(ctx context.Context) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]message.Message, len(r.messages))
	for i := range r.messages {
		out[len(r.messages)-1-i] = r.messages[i]
	}
	return out, nil
}

func (r *docstoreRepository) GetByID(ctx context.Context, id int64) (*message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			m := r.messages[i]
			return &m, nil
		}
	}
	return nil, message.ErrMessageNotFound
}

func (r *docstoreRepository) Create(ctx context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	m.ID = r.nextID(now)
	m.CreatedAt = now
	m.Read = false

	r.messages = append(r.messages, *m)
	return r.persist()
}

func (r *docstoreRepository) MarkRead(ctx context.Context, id int64) (*message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages[i].Read = true
			m := r.messages[i]
			return &m, r.persist()
		}
	}
	return nil, message.ErrMessageNotFound
}

func (r *docstoreRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return r.persist()
		}
	}
	return message.ErrMessageNotFound
}

func (r *docstoreRepository) Count(ctx context.Context) (total, unread int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if !m.Read {
			unread++
		}
	}
	return len(r.messages), unread, nil
}

func (r *docstoreRepository) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *docstoreRepository) persist() error {
	return r.store.Write(collection, r.messages)
}
