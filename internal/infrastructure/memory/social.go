package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// CreateReview inserta una reseña. Un rating fuera de 1..5 se rechaza como lo haría
// el CHECK de la tabla: error de almacenamiento.
func (s *Store) CreateReview(_ context.Context, in repository.NewReview) (*entity.Review, error) {
	const op = "review.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Rating < entity.MinRating || in.Rating > entity.MaxRating {
		return nil, domain.Storage(op, fmt.Errorf("violación de CHECK: rating %d fuera de rango", in.Rating))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.businesses[in.BusinessID]; !ok {
		return nil, fkErr(op, "businesses", in.BusinessID)
	}
	if _, ok := s.t.profiles[in.UserID]; !ok {
		return nil, fkErr(op, "profiles", in.UserID)
	}
	now := s.now()
	r := entity.Review{
		ID: uuid.New().String(), BusinessID: in.BusinessID, UserID: in.UserID,
		Rating: in.Rating, Comment: in.Comment, CreatedAt: now, UpdatedAt: now,
	}
	s.remember(func(t *tables) {
		t.reviews = withoutFunc(t.reviews, func(x entity.Review) bool { return x.ID == r.ID })
	})
	s.t.reviews = append(s.t.reviews, r)
	return &r, nil
}

// AddFavorite inserta la relación; duplicado es Conflict(ErrDuplicateFavorite).
func (s *Store) AddFavorite(_ context.Context, userID, businessID string) (*entity.Favorite, error) {
	const op = "favorite.Add"
	if userID == "" || businessID == "" {
		return nil, domain.Validation(op, "user_id y business_id son requeridos")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.t.favorites {
		if f.UserID == userID && f.BusinessID == businessID {
			return nil, domain.Conflict(op, domain.ErrDuplicateFavorite)
		}
	}
	if _, ok := s.t.profiles[userID]; !ok {
		return nil, fkErr(op, "profiles", userID)
	}
	if _, ok := s.t.businesses[businessID]; !ok {
		return nil, fkErr(op, "businesses", businessID)
	}
	f := entity.Favorite{ID: uuid.New().String(), UserID: userID, BusinessID: businessID, CreatedAt: s.now()}
	s.remember(func(t *tables) {
		t.favorites = withoutFunc(t.favorites, func(x entity.Favorite) bool { return x.ID == f.ID })
	})
	s.t.favorites = append(s.t.favorites, f)
	return &f, nil
}

// RemoveFavorite elimina la relación si existe.
func (s *Store) RemoveFavorite(_ context.Context, userID, businessID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match := func(f entity.Favorite) bool { return f.UserID == userID && f.BusinessID == businessID }
	for _, f := range s.t.favorites {
		if match(f) {
			removed := f
			s.remember(func(t *tables) { t.favorites = append(t.favorites, removed) })
		}
	}
	s.t.favorites = withoutFunc(s.t.favorites, match)
	return nil
}

// ListFavorites favoritos del usuario con el negocio, más recientes primero.
func (s *Store) ListFavorites(_ context.Context, userID string) ([]entity.FavoriteWithBusiness, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []entity.FavoriteWithBusiness{}
	for _, f := range s.t.favorites {
		if f.UserID != userID {
			continue
		}
		fw := entity.FavoriteWithBusiness{Favorite: f}
		if b, ok := s.t.businesses[f.BusinessID]; ok {
			fw.Business = &entity.FavoriteBusiness{
				ID: b.ID, Name: b.Name, Description: b.Description, Address: b.Address, City: b.City,
			}
		}
		list = append(list, fw)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// GetProfile obtiene un perfil.
func (s *Store) GetProfile(_ context.Context, id string) (*entity.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.t.profiles[id]
	if !ok {
		return nil, domain.NotFound("profile.Get", "perfil no encontrado")
	}
	return &p, nil
}

// UpsertProfile crea o actualiza el perfil; conserva created_at.
func (s *Store) UpsertProfile(_ context.Context, in entity.Profile) (*entity.Profile, error) {
	const op = "profile.Upsert"
	if _, err := uuid.Parse(in.ID); err != nil || in.Email == "" {
		return nil, domain.Validation(op, "id (uuid) y email son requeridos")
	}
	if in.Role == "" {
		in.Role = entity.RoleVisitor
	}
	if !in.Role.Valid() {
		return nil, domain.Validation(op, "role inválido")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if prev, ok := s.t.profiles[in.ID]; ok {
		in.CreatedAt = prev.CreatedAt
	} else {
		in.CreatedAt = now
	}
	in.UpdatedAt = now
	rememberKey(s, profilesOf, in.ID)
	s.t.profiles[in.ID] = in
	return &in, nil
}
