package postgres

import (
	"context"
	"database/sql"
	"strings"

	"cat-daycare/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			id, name, phone, address, email,
			emergency_name, emergency_phone, photo_permission,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Address,
		c.Email,
		c.EmergencyName,
		c.EmergencyPhone,
		c.PhotoPermission,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ClientsRepo) CreateCats(ctx context.Context, cats []clients.Cat) error {
	for _, cat := range cats {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO cats (id, client_id, name, age, medical_condition)
			VALUES ($1,$2,$3,$4,$5)
		`,
			cat.ID,
			cat.ClientID,
			cat.Name,
			cat.Age,
			cat.MedicalCondition,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clients.Client{}, clients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, phone, address, email,
			emergency_name, emergency_phone, photo_permission,
			created_at, updated_at
		FROM clients
		WHERE id = $1
	`, id)

	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}

	cats, err := r.catsByClient(ctx, []string{c.ID})
	if err != nil {
		return clients.Client{}, err
	}
	c.Cats = cats[c.ID]

	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, phone, address, email,
			emergency_name, emergency_phone, photo_permission,
			created_at, updated_at
		FROM clients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	ids := make([]string, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cats, err := r.catsByClient(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Cats = cats[out[i].ID]
	}

	return out, nil
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET
			name = $2,
			phone = $3,
			address = $4,
			email = $5,
			emergency_name = $6,
			emergency_phone = $7,
			photo_permission = $8,
			updated_at = $9
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Phone,
		c.Address,
		c.Email,
		c.EmergencyName,
		c.EmergencyPhone,
		c.PhotoPermission,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) DeleteCats(ctx context.Context, clientID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE client_id = $1`, clientID)
	return err
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

// catsByClient carga los gatos de varios clientes en una sola consulta.
func (r *ClientsRepo) catsByClient(ctx context.Context, clientIDs []string) (map[string][]clients.Cat, error) {
	out := make(map[string][]clients.Cat)
	if len(clientIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, name, age, medical_condition
		FROM cats
		WHERE client_id = ANY($1)
		ORDER BY name ASC
	`, clientIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cat clients.Cat
		if err := rows.Scan(&cat.ID, &cat.ClientID, &cat.Name, &cat.Age, &cat.MedicalCondition); err != nil {
			return nil, err
		}
		out[cat.ClientID] = append(out[cat.ClientID], cat)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (clients.Client, error) {
	var c clients.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.Email,
		&c.EmergencyName,
		&c.EmergencyPhone,
		&c.PhotoPermission,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
