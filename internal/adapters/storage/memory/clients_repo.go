package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cat-daycare/internal/domain/clients"
)

type ClientsRepo struct {
	mu   sync.RWMutex
	byID map[string]clients.Client // sin gatos; esos viven en cats
	cats map[string][]clients.Cat  // por clientID
}

func NewClientsRepo() *ClientsRepo {
	return &ClientsRepo{
		byID: make(map[string]clients.Client),
		cats: make(map[string][]clients.Cat),
	}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("client already exists")
	}
	c.Cats = nil
	r.byID[c.ID] = c
	return nil
}

func (r *ClientsRepo) CreateCats(ctx context.Context, cats []clients.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cat := range cats {
		if strings.TrimSpace(cat.ClientID) == "" {
			return errors.New("cat client_id required")
		}
		r.cats[cat.ClientID] = append(r.cats[cat.ClientID], cat)
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	c.Cats = append([]clients.Cat(nil), r.cats[id]...)
	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.byID))
	for id, c := range r.byID {
		c.Cats = append([]clients.Cat(nil), r.cats[id]...)
		out = append(out, c)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return clients.ErrNotFound
	}
	c.Cats = nil
	r.byID[c.ID] = c
	return nil
}

func (r *ClientsRepo) DeleteCats(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cats, clientID)
	return nil
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return clients.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
