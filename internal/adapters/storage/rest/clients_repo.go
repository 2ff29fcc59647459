package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"cat-daycare/internal/domain/clients"
)

type ClientsRepo struct {
	store *Store
}

func NewClientsRepo(store *Store) *ClientsRepo {
	return &ClientsRepo{store: store}
}

type catRow struct {
	ID               string `json:"id"`
	ClientID         string `json:"client_id"`
	Name             string `json:"name"`
	Age              string `json:"age"`
	MedicalCondition string `json:"medical_condition"`
}

type clientRow struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Email           string    `json:"email"`
	EmergencyName   string    `json:"emergency_name"`
	EmergencyPhone  string    `json:"emergency_phone"`
	PhotoPermission bool      `json:"photo_permission"`
	Cats            []catRow  `json:"cats,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	row := toClientRow(c)
	return r.store.http.DoJSON(ctx, http.MethodPost, "/clients", r.store.headers(), []clientRow{row}, nil)
}

func (r *ClientsRepo) CreateCats(ctx context.Context, cats []clients.Cat) error {
	rows := make([]catRow, 0, len(cats))
	for _, cat := range cats {
		rows = append(rows, toCatRow(cat))
	}
	return r.store.http.DoJSON(ctx, http.MethodPost, "/cats", r.store.headers(), rows, nil)
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	var rows []clientRow
	path := "/clients?select=*,cats(*)&id=eq." + url.QueryEscape(id)
	if err := r.store.http.DoJSON(ctx, http.MethodGet, path, r.store.headers(), nil, &rows); err != nil {
		return clients.Client{}, err
	}
	if len(rows) == 0 {
		return clients.Client{}, clients.ErrNotFound
	}
	return toClient(rows[0]), nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	var rows []clientRow
	path := "/clients?select=*,cats(*)&order=created_at.asc"
	if err := r.store.http.DoJSON(ctx, http.MethodGet, path, r.store.headers(), nil, &rows); err != nil {
		return nil, err
	}

	out := make([]clients.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClient(row))
	}
	return out, nil
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	row := toClientRow(c)
	path := "/clients?id=eq." + url.QueryEscape(c.ID)
	return r.store.http.DoJSON(ctx, http.MethodPatch, path, r.store.headers(), row, nil)
}

func (r *ClientsRepo) DeleteCats(ctx context.Context, clientID string) error {
	path := "/cats?client_id=eq." + url.QueryEscape(clientID)
	return r.store.http.DoJSON(ctx, http.MethodDelete, path, r.store.headers(), nil, nil)
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	path := "/clients?id=eq." + url.QueryEscape(id)
	return r.store.http.DoJSON(ctx, http.MethodDelete, path, r.store.headers(), nil, nil)
}

func toClientRow(c clients.Client) clientRow {
	// los gatos viajan aparte por CreateCats; aquí solo la fila del cliente
	return clientRow{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Address:         c.Address,
		Email:           c.Email,
		EmergencyName:   c.EmergencyName,
		EmergencyPhone:  c.EmergencyPhone,
		PhotoPermission: c.PhotoPermission,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toCatRow(cat clients.Cat) catRow {
	return catRow{
		ID:               cat.ID,
		ClientID:         cat.ClientID,
		Name:             cat.Name,
		Age:              cat.Age,
		MedicalCondition: cat.MedicalCondition,
	}
}

func toClient(row clientRow) clients.Client {
	c := clients.Client{
		ID:              row.ID,
		Name:            row.Name,
		Phone:           row.Phone,
		Address:         row.Address,
		Email:           row.Email,
		EmergencyName:   row.EmergencyName,
		EmergencyPhone:  row.EmergencyPhone,
		PhotoPermission: row.PhotoPermission,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for _, cat := range row.Cats {
		c.Cats = append(c.Cats, clients.Cat{
			ID:               cat.ID,
			ClientID:         cat.ClientID,
			Name:             cat.Name,
			Age:              cat.Age,
			MedicalCondition: cat.MedicalCondition,
		})
	}
	return c
}
