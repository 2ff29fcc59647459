package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", createClientHandler(svc))
		cr.Get("/", listClientsHandler(svc))
		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Put("/{clientID}", updateClientHandler(svc))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

type catPayload struct {
	Name             string `json:"name"`
	Age              string `json:"age"`
	MedicalCondition string `json:"medical_condition"`
}

type clientRequest struct {
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	Address         string       `json:"address"`
	Email           string       `json:"email"`
	EmergencyName   string       `json:"emergency_name"`
	EmergencyPhone  string       `json:"emergency_phone"`
	PhotoPermission bool         `json:"photo_permission"`
	Cats            []catPayload `json:"cats"`
}

type catResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Age              string `json:"age"`
	MedicalCondition string `json:"medical_condition"`
}

type clientResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	Email           string        `json:"email"`
	EmergencyName   string        `json:"emergency_name"`
	EmergencyPhone  string        `json:"emergency_phone"`
	PhotoPermission bool          `json:"photo_permission"`
	Cats            []catResponse `json:"cats"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), toCreateInput(req))
		if err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			writeClientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clientID"), toCreateInput(req))
		if err != nil {
			writeClientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "clientID")); err != nil {
			writeClientError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toCreateInput(req clientRequest) CreateInput {
	in := CreateInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Address:         req.Address,
		Email:           req.Email,
		EmergencyName:   req.EmergencyName,
		EmergencyPhone:  req.EmergencyPhone,
		PhotoPermission: req.PhotoPermission,
	}
	for _, c := range req.Cats {
		in.Cats = append(in.Cats, CatInput{
			Name:             c.Name,
			Age:              c.Age,
			MedicalCondition: c.MedicalCondition,
		})
	}
	return in
}

func toClientResponse(c Client) clientResponse {
	out := clientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Address:         c.Address,
		Email:           c.Email,
		EmergencyName:   c.EmergencyName,
		EmergencyPhone:  c.EmergencyPhone,
		PhotoPermission: c.PhotoPermission,
		Cats:            make([]catResponse, 0, len(c.Cats)),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	for _, cat := range c.Cats {
		out.Cats = append(out.Cats, catResponse{
			ID:               cat.ID,
			Name:             cat.Name,
			Age:              cat.Age,
			MedicalCondition: cat.MedicalCondition,
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (clients/bookings) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
