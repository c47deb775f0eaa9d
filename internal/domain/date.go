package domain

import (
	"fmt"
	"strings"
	"time"
)

const wireDateLayout = "20060102"

// Date é uma data de calendário que serializa como YYYY-MM-DD. Datas zeradas
// viram null no JSON.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}

// ParseWireDate converte uma data do formato de fio da API (YYYYMMDD).
// Valor vazio vira data zerada, não erro: a API omite datas em alguns
// registros.
func ParseWireDate(raw string) (Date, error) {
	if raw == "" {
		return Date{}, nil
	}

	parsed, err := time.Parse(wireDateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("data em formato inesperado %q: %w", raw, err)
	}

	return Date{Time: parsed}, nil
}

// WireDate converte uma data para o formato de fio da API.
func WireDate(t time.Time) string {
	return t.Format(wireDateLayout)
}
