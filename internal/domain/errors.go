package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que cruzan la frontera del repositorio.
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindStorage    Kind = "STORAGE"
	// KindForbidden solo lo emite la capa de aplicación (autorización); los repositorios nunca.
	KindForbidden Kind = "FORBIDDEN"
)

// Errores de dominio (sin dependencias externas). Sirven como objetivo de errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrStorage      = errors.New("error de almacenamiento")
	ErrForbidden    = errors.New("acceso denegado")

	ErrAlreadyClaimed    = errors.New("el negocio ya fue reclamado")
	ErrDuplicateFavorite = errors.New("el negocio ya está en favoritos")
	ErrPlanLimitReached  = errors.New("límite de productos del plan alcanzado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

var kindSentinels = map[Kind]error{
	KindNotFound:   ErrNotFound,
	KindValidation: ErrInvalidInput,
	KindConflict:   ErrConflict,
	KindStorage:    ErrStorage,
	KindForbidden:  ErrForbidden,
}

// Error es el error tipado que devuelven repositorios y casos de uso.
// Op identifica la operación ("business.Get"), Msg es legible para el usuario y Err la causa.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = kindSentinels[e.Kind].Error()
	}
	if e.Err != nil && !isSentinel(e.Err) {
		return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Unwrap expone la causa y el sentinel del Kind para errors.Is.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s, ok := kindSentinels[e.Kind]; ok {
		out = append(out, s)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// Message devuelve el mensaje estable para mostrar al usuario.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil && isSentinel(e.Err) {
		return e.Err.Error()
	}
	return kindSentinels[e.Kind].Error()
}

func isSentinel(err error) bool {
	for _, s := range kindSentinels {
		if err == s {
			return true
		}
	}
	switch err {
	case ErrAlreadyClaimed, ErrDuplicateFavorite, ErrPlanLimitReached, ErrInsufficientStock:
		return true
	}
	return false
}

// NotFound construye un error KindNotFound.
func NotFound(op, msg string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

// Validation construye un error KindValidation.
func Validation(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

// Conflict construye un error KindConflict con una causa (normalmente un sentinel).
func Conflict(op string, cause error) *Error {
	return &Error{Kind: KindConflict, Op: op, Err: cause}
}

// Storage envuelve un fallo del motor de ejecución.
func Storage(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Op: op, Err: cause}
}

// Forbidden construye un error KindForbidden.
func Forbidden(op, msg string) *Error {
	return &Error{Kind: KindForbidden, Op: op, Msg: msg}
}

// KindOf devuelve el Kind de err. Cualquier error sin tipar se considera de almacenamiento.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// Normalize garantiza que err sea un *Error; los errores crudos se envuelven como Storage.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return Storage(op, err)
}
