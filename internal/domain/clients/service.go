package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CatInput struct {
	Name             string
	Age              string
	MedicalCondition string
}

type CreateInput struct {
	Name    string
	Phone   string
	Address string
	Email   string

	EmergencyName  string
	EmergencyPhone string

	PhotoPermission bool

	Cats []CatInput
}

// Create registra el cliente y luego sus gatos. Si los gatos fallan,
// el cliente ya quedó creado: se reporta el fallo parcial, no hay rollback.
func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Client{}, ErrInvalidInput
	}

	now := s.now()
	c := Client{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
		Email:           strings.TrimSpace(in.Email),
		EmergencyName:   strings.TrimSpace(in.EmergencyName),
		EmergencyPhone:  strings.TrimSpace(in.EmergencyPhone),
		PhotoPermission: in.PhotoPermission,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	c.Cats = buildCats(c.ID, in.Cats)

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	if len(c.Cats) > 0 {
		if err := s.repo.CreateCats(ctx, c.Cats); err != nil {
			return c, fmt.Errorf("client saved but cats failed: %w", err)
		}
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Client{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos los clientes con sus gatos, opcionalmente filtrados
// por nombre (búsqueda case-insensitive por subcadena).
func (s *Service) List(ctx context.Context, nameFilter string) ([]Client, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(nameFilter))
	if q == "" {
		return items, nil
	}

	out := make([]Client, 0, len(items))
	for _, c := range items {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Update reemplaza los campos del cliente y el conjunto completo de gatos
// (borrar + re-insertar; no hay edición individual de gatos).
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Client, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(in.Name) == "" {
		return Client{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	c := Client{
		ID:              current.ID,
		Name:            strings.TrimSpace(in.Name),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
		Email:           strings.TrimSpace(in.Email),
		EmergencyName:   strings.TrimSpace(in.EmergencyName),
		EmergencyPhone:  strings.TrimSpace(in.EmergencyPhone),
		PhotoPermission: in.PhotoPermission,
		CreatedAt:       current.CreatedAt,
		UpdatedAt:       s.now(),
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	if err := s.repo.DeleteCats(ctx, c.ID); err != nil {
		return Client{}, fmt.Errorf("client updated but cats not replaced: %w", err)
	}

	c.Cats = buildCats(c.ID, in.Cats)
	if len(c.Cats) > 0 {
		if err := s.repo.CreateCats(ctx, c.Cats); err != nil {
			return c, fmt.Errorf("client updated but cats not replaced: %w", err)
		}
	}
	return c, nil
}

// Delete elimina primero los gatos y después el cliente; el orden es parte
// del contrato. No hay cascada de clientes a guarderías: las del cliente
// quedan huérfanas.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCats(ctx, id); err != nil {
		return fmt.Errorf("cats not deleted: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cats deleted but client remains: %w", err)
	}
	return nil
}

func buildCats(clientID string, in []CatInput) []Cat {
	out := make([]Cat, 0, len(in))
	for _, ci := range in {
		if strings.TrimSpace(ci.Name) == "" {
			continue
		}
		out = append(out, Cat{
			ID:               uuid.NewString(),
			ClientID:         clientID,
			Name:             strings.TrimSpace(ci.Name),
			Age:              strings.TrimSpace(ci.Age),
			MedicalCondition: strings.TrimSpace(ci.MedicalCondition),
		})
	}
	return out
}
