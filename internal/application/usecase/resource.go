package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// resource operaciones CRUD comunes sobre un endpoint REST del backend.
// T es la entidad que devuelve el backend e In el cuerpo de alta/modificación.
type resource[T any, In any] struct {
	api      *backend.Client
	name     string // prefijo del nombre de acción en los logs, p.ej. "clients"
	base     string // "/api/clients"
	singular string // "el cliente"
	plural   string // "los clientes"

	// Rutas alternativas de endpoints que no siguen REST puro. Vacío = base.
	createPath string
	updatePath string
	deletePath string
}

func (r resource[T, In]) item(prefix string, id int) string {
	if prefix == "" {
		prefix = r.base
	}
	return prefix + "/" + strconv.Itoa(id)
}

func (r resource[T, In]) list(ctx context.Context, q dto.ListQuery, extra url.Values) (*dto.Page[T], error) {
	return action.Run(ctx, r.name+".list", "Error al obtener "+r.plural, func(ctx context.Context) (*dto.Page[T], error) {
		q.DefaultPage()
		values := q.Values()
		for k, vs := range extra {
			for _, v := range vs {
				values.Add(k, v)
			}
		}
		var page dto.Page[T]
		if err := r.api.Get(ctx, r.base, values, "Error al obtener "+r.plural, &page); err != nil {
			return nil, err
		}
		return &page, nil
	})
}

func (r resource[T, In]) get(ctx context.Context, id int) (*T, error) {
	return action.Run(ctx, r.name+".get", "Error al obtener "+r.singular, func(ctx context.Context) (*T, error) {
		var out T
		if err := r.api.Get(ctx, r.item("", id), nil, "Error al obtener "+r.singular, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

func (r resource[T, In]) create(ctx context.Context, in In) (*T, error) {
	return action.Run(ctx, r.name+".create", "Error al crear "+r.singular, func(ctx context.Context) (*T, error) {
		if err := dto.Validate(in); err != nil {
			return nil, err
		}
		path := r.createPath
		if path == "" {
			path = r.base
		}
		var out T
		if err := r.api.Post(ctx, path, in, "Error al crear "+r.singular, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

func (r resource[T, In]) update(ctx context.Context, id int, in In) (*T, error) {
	return action.Run(ctx, r.name+".update", "Error al actualizar "+r.singular, func(ctx context.Context) (*T, error) {
		if err := dto.Validate(in); err != nil {
			return nil, err
		}
		var out T
		if err := r.api.Put(ctx, r.item(r.updatePath, id), in, "Error al actualizar "+r.singular, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

func (r resource[T, In]) remove(ctx context.Context, id int) error {
	return action.Exec(ctx, r.name+".delete", "Error al eliminar "+r.singular, func(ctx context.Context) error {
		_, err := r.api.Delete(ctx, r.item(r.deletePath, id), "Error al eliminar "+r.singular)
		return err
	})
}

// patch PATCH sobre un sub-recurso del ítem (estado, aprobación...).
func (r resource[T, In]) patch(ctx context.Context, op, suffix, fallback string, id int, body interface{}) (*T, error) {
	return action.Run(ctx, r.name+"."+op, fallback, func(ctx context.Context) (*T, error) {
		if body != nil {
			if err := dto.Validate(body); err != nil {
				return nil, err
			}
		}
		var out T
		_, err := r.api.Do(ctx, backend.Request{
			Method:  http.MethodPatch,
			Path:    r.item("", id) + suffix,
			Body:    body,
			Default: fallback,
		}, &out)
		if err != nil {
			return nil, err
		}
		return &out, nil
	})
}
