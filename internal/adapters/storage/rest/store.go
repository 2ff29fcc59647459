// Package rest implementa los repositorios contra un table-store remoto
// estilo PostgREST/Supabase: filtros `campo=eq.valor`, selects anidados
// `select=*,cats(*)` y api key por header.
package rest

import (
	"time"

	"cat-daycare/internal/platform/httpclient"
)

type Store struct {
	http   *httpclient.Client
	apiKey string
}

func NewStore(baseURL, apiKey string) (*Store, error) {
	c, err := httpclient.NewWithBaseURL(baseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return &Store{http: c, apiKey: apiKey}, nil
}

func (s *Store) headers() map[string]string {
	h := map[string]string{
		// los POST/PATCH/DELETE no necesitan el cuerpo de vuelta
		"Prefer": "return=minimal",
	}
	if s.apiKey != "" {
		h["apikey"] = s.apiKey
		h["Authorization"] = "Bearer " + s.apiKey
	}
	return h
}

const (
	dateLayout = "2006-01-02"
)

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
