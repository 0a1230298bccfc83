package application

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
)

// memStore keeps the document JSON-encoded so callers never share memory with it.
type memStore struct {
	mu      sync.Mutex
	raw     []byte
	saveErr error
}

func newMemStore(doc *entity.Document) *memStore {
	s := &memStore{}
	if doc == nil {
		doc = entity.NewDocument()
	}
	s.raw, _ = json.Marshal(doc)
	return s
}

func (s *memStore) Load(ctx context.Context) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decode(), nil
}

func (s *memStore) Save(ctx context.Context, doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encode(doc)
}

func (s *memStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.decode()
	if err := fn(doc); err != nil {
		return err
	}
	return s.encode(doc)
}

func (s *memStore) decode() *entity.Document {
	doc := entity.NewDocument()
	_ = json.Unmarshal(s.raw, doc)
	doc.Normalize()
	return doc
}

func (s *memStore) encode(doc *entity.Document) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.raw, _ = json.Marshal(doc)
	return nil
}

func (s *memStore) doc() *entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decode()
}

type recordingNotifier struct {
	notices []ResetNotice
}

func (r *recordingNotifier) NotifyReset(ctx context.Context, n ResetNotice) error {
	r.notices = append(r.notices, n)
	return nil
}

type mapIndex struct {
	m map[string]int
}

func (i *mapIndex) Put(ctx context.Context, token string, userID int, ttl time.Duration) error {
	i.m[token] = userID
	return nil
}

func (i *mapIndex) Lookup(ctx context.Context, token string) (int, bool, error) {
	id, ok := i.m[token]
	return id, ok, nil
}

func (i *mapIndex) Delete(ctx context.Context, token string) error {
	delete(i.m, token)
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fixture struct {
	store    *memStore
	auth     *AuthService
	notifier *recordingNotifier
	clock    time.Time
}

func newFixture(doc *entity.Document) *fixture {
	f := &fixture{
		store:    newMemStore(doc),
		notifier: &recordingNotifier{},
		clock:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	jwt := helpers.NewJWTManager("test-secret", 8*time.Hour)
	f.auth = NewAuthService(f.store, jwt, nil, f.notifier, quietLogger(), AuthConfig{
		BcryptCost:    4,
		ResetTokenTTL: time.Hour,
		ResetURL:      "http://front/reset.html",
	})
	f.auth.now = func() time.Time { return f.clock }
	return f
}
