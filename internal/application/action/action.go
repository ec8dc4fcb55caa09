// Package action envuelve las llamadas al backend con un manejo de errores uniforme: toda
// falla (incluido un panic) vuelve como *Error con un mensaje legible y queda registrada.
package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// Error falla de una acción. Error() es el mensaje para el usuario; Unwrap conserva la causa.
type Error struct {
	Action  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run ejecuta fn y normaliza su error. El mensaje resultante es, en orden: el "message" del
// backend, el mensaje de validación, el de un error de dominio conocido, o fallback.
func Run[T any](ctx context.Context, name, fallback string, fn func(ctx context.Context) (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = fail(ctx, name, fallback, fmt.Errorf("panic: %v", r))
		}
	}()

	out, err = fn(ctx)
	if err != nil {
		var zero T
		return zero, fail(ctx, name, fallback, err)
	}
	return out, nil
}

// Exec es Run para acciones sin resultado.
func Exec(ctx context.Context, name, fallback string, fn func(ctx context.Context) error) error {
	_, err := Run(ctx, name, fallback, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Wrap devuelve fn envuelta con Run, para registrar acciones una sola vez.
func Wrap[A, T any](name, fallback string, fn func(ctx context.Context, arg A) (T, error)) func(context.Context, A) (T, error) {
	return func(ctx context.Context, arg A) (T, error) {
		return Run(ctx, name, fallback, func(ctx context.Context) (T, error) {
			return fn(ctx, arg)
		})
	}
}

func fail(ctx context.Context, name, fallback string, err error) *Error {
	var already *Error
	if errors.As(err, &already) {
		return already
	}

	msg := message(err, fallback)
	ev := zerolog.Ctx(ctx).Warn()
	if errors.Is(err, domain.ErrBackendUnavailable) || !known(err) {
		ev = zerolog.Ctx(ctx).Error()
	}
	ev.Err(err).
		Str("action", name).
		Int("status", backend.StatusOf(err)).
		Msg(msg)

	return &Error{Action: name, Message: msg, Err: err}
}

func message(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	for _, target := range []error{domain.ErrTokenNotFound, domain.ErrSessionExpired, domain.ErrInvalidInput} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return fallback
}

func known(err error) bool {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	return errors.Is(err, domain.ErrTokenNotFound) ||
		errors.Is(err, domain.ErrSessionExpired) ||
		errors.Is(err, domain.ErrInvalidInput)
}
