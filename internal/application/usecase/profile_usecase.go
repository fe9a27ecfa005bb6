package usecase

import (
	"context"
	"strings"

	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// ProfileUseCase perfil del usuario autenticado.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Me devuelve el perfil del actor.
func (uc *ProfileUseCase) Me(ctx context.Context, actor Actor) (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetProfile(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// Sync crea o actualiza el perfil del actor con el rol de su token.
func (uc *ProfileUseCase) Sync(ctx context.Context, actor Actor, in dto.SyncProfileRequest) (*dto.ProfileResponse, error) {
	p, err := uc.repo.UpsertProfile(ctx, entity.Profile{
		ID:        actor.UserID,
		Role:      actor.Role,
		Email:     strings.TrimSpace(in.Email),
		FullName:  in.FullName,
		AvatarURL: in.AvatarURL,
	})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Role:      string(p.Role),
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
