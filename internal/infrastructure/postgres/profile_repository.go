package postgres

import (
	"context"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación de ProfileRepository.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetProfile obtiene un perfil por ID.
func (r *ProfileRepo) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	const op = "profile.Get"
	if !validID(id) {
		return nil, domain.NotFound(op, "perfil no encontrado")
	}
	var p entity.Profile
	err := r.q.QueryRow(ctx, `
		SELECT id, role, email, full_name, avatar_url, created_at, updated_at
		FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, (*string)(&p.Role), &p.Email, &p.FullName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "perfil no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

// UpsertProfile crea o actualiza el perfil sincronizado desde el proveedor de sesión.
func (r *ProfileRepo) UpsertProfile(ctx context.Context, in entity.Profile) (*entity.Profile, error) {
	const op = "profile.Upsert"
	if !validID(in.ID) || in.Email == "" {
		return nil, domain.Validation(op, "id (uuid) y email son requeridos")
	}
	if in.Role == "" {
		in.Role = entity.RoleVisitor
	}
	if !in.Role.Valid() {
		return nil, domain.Validation(op, "role inválido")
	}
	var p entity.Profile
	err := r.q.QueryRow(ctx, `
		INSERT INTO profiles (id, role, email, full_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			role = EXCLUDED.role, email = EXCLUDED.email, full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url, updated_at = now()
		RETURNING id, role, email, full_name, avatar_url, created_at, updated_at`,
		in.ID, string(in.Role), in.Email, in.FullName, in.AvatarURL,
	).Scan(&p.ID, (*string)(&p.Role), &p.Email, &p.FullName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, storageErr(op, err)
	}
	return &p, nil
}
