package dto

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// ListQuery paginación y búsqueda para listados.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero o están fuera de rango.
func (q *ListQuery) DefaultPage() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 15
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	q.Search = strings.TrimSpace(q.Search)
}

// Values codifica la consulta para la URL del backend.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Page respuesta paginada del backend.
type Page[T any] struct {
	Data        []T `json:"data"`
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// pageFields tiene los mismos campos que Page pero sin su UnmarshalJSON.
type pageFields[T any] Page[T]

// UnmarshalJSON acepta tanto el objeto paginado como un arreglo plano
// (algunos endpoints del backend no paginan).
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*p = Page[T]{Data: items, TotalItems: len(items), CurrentPage: 1, TotalPages: 1}
		return nil
	}
	var a pageFields[T]
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = Page[T](a)
	if p.Data == nil {
		p.Data = []T{}
	}
	if p.TotalItems == 0 {
		p.TotalItems = len(p.Data)
	}
	if p.CurrentPage == 0 {
		p.CurrentPage = 1
	}
	if p.TotalPages == 0 {
		p.TotalPages = 1
	}
	return nil
}

// MessageResponse respuesta {"message": "..."} de operaciones sin cuerpo propio.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
