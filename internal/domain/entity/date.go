package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout formato de fecha que el backend acepta en los cuerpos de petición.
const DateLayout = "2006-01-02"

// Date fecha del backend. Acepta "2006-01-02", RFC 3339 y null; se serializa como "2006-01-02".
type Date struct {
	time.Time
}

// NewDate construye una Date sin componente horario.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta s en cualquiera de los formatos aceptados. Cadena vacía = fecha cero.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q", s)
	}
	return Date{t}, nil
}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// String devuelve la fecha en formato dd/mm/aaaa para las vistas, o "—" si está vacía.
func (d Date) String() string {
	if d.IsZero() {
		return "—"
	}
	return d.Format("02/01/2006")
}

// Input devuelve la fecha en el formato de <input type="date">.
func (d Date) Input() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
