// Package memory implementa los puertos de repositorio en memoria, con la misma
// semántica que el backend PostgreSQL (filtros, orden, restricciones y errores).
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// tables estado completo del backend.
type tables struct {
	profiles      map[string]entity.Profile
	categories    map[string]entity.Category
	businesses    map[string]entity.Business
	products      map[string]entity.Product
	images        []entity.BusinessImage
	hours         []entity.BusinessHours
	subscriptions []entity.Subscription
	orders        map[string]entity.Order
	items         []entity.OrderItem
	payments      map[string]entity.Payment // por order_id
	favorites     []entity.Favorite
	reviews       []entity.Review
}

func newTables() *tables {
	return &tables{
		profiles:   map[string]entity.Profile{},
		categories: map[string]entity.Category{},
		businesses: map[string]entity.Business{},
		products:   map[string]entity.Product{},
		orders:     map[string]entity.Order{},
		payments:   map[string]entity.Payment{},
	}
}

// state datos compartidos por el Store y por los Store de cada transacción.
type state struct {
	mu   sync.RWMutex
	t    *tables
	last time.Time

	txMu sync.Mutex
}

// Store backend en memoria seguro para uso concurrente. Dentro de TxRunner.Run
// las escrituras se anotan en tx para poder deshacerlas.
type Store struct {
	*state
	tx *journal
}

// New crea un Store vacío.
func New() *Store {
	return &Store{state: &state{t: newTables()}}
}

// now devuelve un instante estrictamente creciente para que "más recientes primero"
// sea determinista aunque dos altas caigan en el mismo tick del reloj. Requiere mu.
func (s *Store) now() time.Time {
	n := time.Now().UTC()
	if !n.After(s.last) {
		n = s.last.Add(time.Microsecond)
	}
	s.last = n
	return n
}

func fold(v string) string {
	return cases.Fold().String(v)
}

// fkErr reproduce la violación de clave foránea del motor: error de almacenamiento.
func fkErr(op, table, id string) error {
	return domain.Storage(op, fmt.Errorf("violación de clave foránea: %s %q no existe", table, id))
}

// ──────────────────────────────────────────────────────────────────────────────
// Negocios
// ──────────────────────────────────────────────────────────────────────────────

// ListBusinesses filtra por categoría y texto (sin distinguir mayúsculas), ordena por
// fecha de alta descendente y aplica offset y limit al final.
func (s *Store) ListBusinesses(_ context.Context, filter repository.BusinessFilter) ([]entity.BusinessListing, error) {
	f, err := filter.Normalize()
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var needle string
	if f.Search != nil {
		needle = fold(*f.Search)
	}
	list := []entity.BusinessListing{}
	for _, b := range s.t.businesses {
		if f.CategoryID != nil && (b.CategoryID == nil || *b.CategoryID != *f.CategoryID) {
			continue
		}
		if f.OwnerID != nil && (b.OwnerID == nil || *b.OwnerID != *f.OwnerID) {
			continue
		}
		if f.Search != nil && !matches(b, needle) {
			continue
		}
		list = append(list, entity.BusinessListing{
			Business: b,
			Category: s.categoryRef(b.CategoryID),
			Reviews:  s.reviewStats(b.ID),
		})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	if f.Offset != nil {
		if *f.Offset >= len(list) {
			return []entity.BusinessListing{}, nil
		}
		list = list[*f.Offset:]
	}
	if f.Limit != nil && *f.Limit < len(list) {
		list = list[:*f.Limit]
	}
	return list, nil
}

func matches(b entity.Business, needle string) bool {
	if strings.Contains(fold(b.Name), needle) {
		return true
	}
	return b.Description != nil && strings.Contains(fold(*b.Description), needle)
}

func (s *Store) categoryRef(id *string) *entity.CategoryRef {
	if id == nil {
		return nil
	}
	c, ok := s.t.categories[*id]
	if !ok {
		return nil
	}
	return &entity.CategoryRef{ID: c.ID, Name: c.Name, Description: c.Description, Icon: c.Icon}
}

func (s *Store) reviewStats(businessID string) entity.ReviewStats {
	var count, sum int64
	for _, r := range s.t.reviews {
		if r.BusinessID == businessID {
			count++
			sum += int64(r.Rating)
		}
	}
	st := entity.ReviewStats{Count: count, AverageRating: decimal.Zero}
	if count > 0 {
		st.AverageRating = decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
	}
	return st
}

// GetBusiness ensambla la ficha completa.
func (s *Store) GetBusiness(_ context.Context, id string) (*entity.BusinessDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.t.businesses[id]
	if !ok {
		return nil, domain.NotFound("business.Get", "negocio no encontrado")
	}
	d := &entity.BusinessDetail{
		Business: b,
		Category: s.categoryRef(b.CategoryID),
		Images:   []entity.BusinessImage{},
		Hours:    []entity.BusinessHours{},
		Reviews:  []entity.ReviewWithAuthor{},
	}
	if b.OwnerID != nil {
		if p, ok := s.t.profiles[*b.OwnerID]; ok {
			d.Owner = &entity.OwnerRef{ID: p.ID, FullName: p.FullName, AvatarURL: p.AvatarURL}
		}
	}
	for _, img := range s.t.images {
		if img.BusinessID == id {
			d.Images = append(d.Images, img)
		}
	}
	sort.SliceStable(d.Images, func(i, j int) bool {
		if d.Images[i].IsPrimary != d.Images[j].IsPrimary {
			return d.Images[i].IsPrimary
		}
		return d.Images[i].UploadedAt.Before(d.Images[j].UploadedAt)
	})
	for _, h := range s.t.hours {
		if h.BusinessID == id {
			d.Hours = append(d.Hours, h)
		}
	}
	sort.SliceStable(d.Hours, func(i, j int) bool { return d.Hours[i].DayOfWeek < d.Hours[j].DayOfWeek })
	for _, r := range s.t.reviews {
		if r.BusinessID != id {
			continue
		}
		rw := entity.ReviewWithAuthor{Review: r}
		if p, ok := s.t.profiles[r.UserID]; ok {
			rw.AuthorName, rw.AuthorAvatar = p.FullName, p.AvatarURL
		}
		d.Reviews = append(d.Reviews, rw)
	}
	sort.SliceStable(d.Reviews, func(i, j int) bool { return d.Reviews[i].CreatedAt.After(d.Reviews[j].CreatedAt) })
	for _, sub := range s.t.subscriptions {
		if sub.BusinessID == id && (d.Subscription == nil || sub.CreatedAt.After(d.Subscription.CreatedAt)) {
			c := sub
			d.Subscription = &c
		}
	}
	return d, nil
}

// CreateBusiness inserta un negocio; Claimed = OwnerID presente.
func (s *Store) CreateBusiness(_ context.Context, in repository.NewBusiness) (*entity.Business, error) {
	const op = "business.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.CategoryID != nil {
		if _, ok := s.t.categories[*in.CategoryID]; !ok {
			return nil, fkErr(op, "categories", *in.CategoryID)
		}
	}
	if in.OwnerID != nil {
		if _, ok := s.t.profiles[*in.OwnerID]; !ok {
			return nil, fkErr(op, "profiles", *in.OwnerID)
		}
	}
	now := s.now()
	b := entity.Business{
		ID: uuid.New().String(), Name: in.Name, Description: in.Description, CategoryID: in.CategoryID,
		Address: in.Address, PostalCode: in.PostalCode, City: in.City, Phone: in.Phone, Email: in.Email,
		Website: in.Website, Lat: in.Lat, Lng: in.Lng, OwnerID: in.OwnerID, Claimed: in.OwnerID != nil,
		ThemeColor: in.ThemeColor, SubscriptionPlan: in.SubscriptionPlan, CreatedAt: now, UpdatedAt: now,
	}
	rememberKey(s, businessesOf, b.ID)
	s.t.businesses[b.ID] = b
	return &b, nil
}

// UpdateBusiness aplica el parche; refresca updated_at aunque el parche esté vacío.
func (s *Store) UpdateBusiness(_ context.Context, id string, patch repository.BusinessPatch) (*entity.Business, error) {
	const op = "business.Update"
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.t.businesses[id]
	if !ok {
		return nil, domain.NotFound(op, "negocio no encontrado")
	}
	if patch.CategoryID != nil {
		if _, ok := s.t.categories[*patch.CategoryID]; !ok {
			return nil, fkErr(op, "categories", *patch.CategoryID)
		}
	}
	patch.Apply(&b)
	b.UpdatedAt = s.now()
	rememberKey(s, businessesOf, id)
	s.t.businesses[id] = b
	return &b, nil
}

// ClaimBusiness fija owner y claimed a la vez; un negocio ya reclamado es Conflict.
func (s *Store) ClaimBusiness(_ context.Context, businessID, ownerID string) (*entity.Business, error) {
	const op = "business.Claim"
	if ownerID == "" {
		return nil, domain.Validation(op, "owner_id es requerido")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.t.businesses[businessID]
	if !ok {
		return nil, domain.NotFound(op, "negocio no encontrado")
	}
	if b.Claimed {
		return nil, domain.Conflict(op, domain.ErrAlreadyClaimed)
	}
	if _, ok := s.t.profiles[ownerID]; !ok {
		return nil, fkErr(op, "profiles", ownerID)
	}
	owner := ownerID
	b.OwnerID, b.Claimed, b.UpdatedAt = &owner, true, s.now()
	rememberKey(s, businessesOf, businessID)
	s.t.businesses[businessID] = b
	return &b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// ListCategories devuelve las categorías por nombre.
func (s *Store) ListCategories(_ context.Context) ([]entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]entity.Category, 0, len(s.t.categories))
	for _, c := range s.t.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// CreateCategory inserta una categoría; nombre repetido es Conflict.
func (s *Store) CreateCategory(_ context.Context, in repository.NewCategory) (*entity.Category, error) {
	const op = "category.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.t.categories {
		if c.Name == in.Name {
			return nil, domain.Conflict(op, fmt.Errorf("categoría %q ya existe", in.Name))
		}
	}
	c := entity.Category{ID: uuid.New().String(), Name: in.Name, Description: in.Description, Icon: in.Icon, CreatedAt: s.now()}
	rememberKey(s, categoriesOf, c.ID)
	s.t.categories[c.ID] = c
	return &c, nil
}
