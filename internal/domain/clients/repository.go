package clients

import "context"

type Repository interface {
	// Create inserta solo la fila del cliente; los gatos van por CreateCats.
	Create(ctx context.Context, c Client) error
	CreateCats(ctx context.Context, cats []Cat) error

	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)

	// Update toca solo los campos del cliente, no sus gatos.
	Update(ctx context.Context, c Client) error

	DeleteCats(ctx context.Context, clientID string) error
	Delete(ctx context.Context, id string) error
}
