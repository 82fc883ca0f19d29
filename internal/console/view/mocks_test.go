package view_test

import (
	"context"
	"errors"
	"sync"

	"catalog-console/internal/authentication"
	"catalog-console/internal/model"
	"catalog-console/internal/notify"
	"catalog-console/internal/product"
)

var errBoom = errors.New("boom")

type mockProducts struct {
	mu sync.Mutex

	list    []model.Product
	listErr error
	detail  map[int]model.Product
	readErr error
	err     error

	listCalls   int
	detailCalls []int
	deleteCalls []int
	created     []product.CreateInput
	updated     []int
	updateIn    []product.UpdateInput

	// onList runs inside List before it returns.
	onList func()
}

func (m *mockProducts) List(ctx context.Context) ([]model.Product, error) {
	m.mu.Lock()
	m.listCalls++
	hook := m.onList
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockProducts) Detail(ctx context.Context, id int) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detailCalls = append(m.detailCalls, id)
	if m.readErr != nil {
		return model.Product{}, m.readErr
	}
	p, ok := m.detail[id]
	if !ok {
		return model.Product{}, product.ErrNotFound
	}
	return p, nil
}

func (m *mockProducts) Create(ctx context.Context, in product.CreateInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, in)
	return m.err
}

func (m *mockProducts) Update(ctx context.Context, id int, in product.UpdateInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, id)
	m.updateIn = append(m.updateIn, in)
	return m.err
}

func (m *mockProducts) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls = append(m.deleteCalls, id)
	return m.err
}

type recordingSink struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (s *recordingSink) Success(ctx context.Context, msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, msg.Text)
}

func (s *recordingSink) Error(ctx context.Context, msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, msg.Text)
}

type recordingNav struct {
	paths []string
}

func (n *recordingNav) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type mockGate struct {
	busy     bool
	acquired int
}

func (g *mockGate) TryAcquire(key string) (func(), bool) {
	if g.busy {
		return nil, false
	}
	g.busy = true
	g.acquired++
	return func() { g.busy = false }, true
}

func (g *mockGate) Busy(key string) bool { return g.busy }

type mockAuth struct {
	calls []authentication.Credentials
}

func (m *mockAuth) Auth(ctx context.Context, creds authentication.Credentials) error {
	m.calls = append(m.calls, creds)
	return nil
}

type flag bool

func (f flag) IsLoading() bool { return bool(f) }

type mockRegistrar struct {
	got []authentication.SignUpInput
	err error
}

func (m *mockRegistrar) Register(ctx context.Context, in authentication.SignUpInput) error {
	m.got = append(m.got, in)
	return m.err
}
