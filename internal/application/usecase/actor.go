package usecase

import (
	"context"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// Actor identidad autenticada que ejecuta un caso de uso (extraída del token).
type Actor struct {
	UserID string
	Role   entity.Role
}

// IsAdmin informa si el actor es administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanManage informa si el actor puede gestionar el negocio: su propietario o un admin.
func (a Actor) CanManage(b *entity.Business) bool {
	if a.IsAdmin() {
		return true
	}
	return b.OwnerID != nil && a.UserID != "" && *b.OwnerID == a.UserID
}

// managedBusiness carga el negocio y exige que el actor pueda gestionarlo.
func managedBusiness(ctx context.Context, repo repository.BusinessRepository, actor Actor, op, businessID string) (*entity.BusinessDetail, error) {
	b, err := repo.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(&b.Business) {
		return nil, domain.Forbidden(op, "solo el propietario del negocio puede hacer esto")
	}
	return b, nil
}
