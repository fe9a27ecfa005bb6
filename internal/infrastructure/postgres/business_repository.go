package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `b.id, b.name, b.description, b.category_id, b.address, b.postal_code, b.city,
	b.phone, b.email, b.website, b.lat, b.lng, b.owner_id, b.claimed, b.theme_color,
	b.subscription_plan, b.created_at, b.updated_at`

// BusinessRepo implementación de BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

func businessTargets(b *entity.Business) []any {
	return []any{
		&b.ID, &b.Name, &b.Description, &b.CategoryID, &b.Address, &b.PostalCode, &b.City,
		&b.Phone, &b.Email, &b.Website, &b.Lat, &b.Lng, &b.OwnerID, &b.Claimed, &b.ThemeColor,
		(*string)(&b.SubscriptionPlan), &b.CreatedAt, &b.UpdatedAt,
	}
}

// categoryCols columnas nulas de la categoría unida por LEFT JOIN.
type categoryCols struct {
	id, name, description, icon *string
}

func (c *categoryCols) targets() []any {
	return []any{&c.id, &c.name, &c.description, &c.icon}
}

func (c categoryCols) ref() *entity.CategoryRef {
	if c.id == nil || c.name == nil {
		return nil
	}
	return &entity.CategoryRef{ID: *c.id, Name: *c.name, Description: c.description, Icon: c.icon}
}

// ListBusinesses lista negocios filtrados, más recientes primero, con su categoría
// y el agregado de reseñas (conteo y media).
func (r *BusinessRepo) ListBusinesses(ctx context.Context, filter repository.BusinessFilter) ([]entity.BusinessListing, error) {
	const op = "business.List"
	f, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	var qb queryBuilder
	if f.CategoryID != nil {
		if !validID(*f.CategoryID) {
			return []entity.BusinessListing{}, nil
		}
		qb.where("b.category_id = ?", *f.CategoryID)
	}
	if f.OwnerID != nil {
		if !validID(*f.OwnerID) {
			return []entity.BusinessListing{}, nil
		}
		qb.where("b.owner_id = ?", *f.OwnerID)
	}
	if f.Search != nil {
		qb.where("(b.name ILIKE ? OR b.description ILIKE ?)", containsPattern(*f.Search))
	}
	query, args := qb.build(`
		SELECT `+businessColumns+`,
			c.id, c.name, c.description, c.icon,
			COUNT(r.id) AS review_count,
			COALESCE(AVG(r.rating), 0) AS average_rating
		FROM businesses b
		LEFT JOIN categories c ON c.id = b.category_id
		LEFT JOIN reviews r ON r.business_id = b.id`,
		"GROUP BY b.id, c.id ORDER BY b.created_at DESC",
		f.Limit, f.Offset,
	)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	list := []entity.BusinessListing{}
	for rows.Next() {
		var item entity.BusinessListing
		var cat categoryCols
		targets := append(businessTargets(&item.Business), cat.targets()...)
		targets = append(targets, &item.Reviews.Count, &item.Reviews.AverageRating)
		if err := rows.Scan(targets...); err != nil {
			return nil, storageErr(op, err)
		}
		item.Category = cat.ref()
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}

// GetBusiness obtiene la ficha completa. La fila principal y las cuatro lecturas
// auxiliares (imágenes, horario, reseñas, suscripción) son independientes, sin transacción.
func (r *BusinessRepo) GetBusiness(ctx context.Context, id string) (*entity.BusinessDetail, error) {
	const op = "business.Get"
	if !validID(id) {
		return nil, domain.NotFound(op, "negocio no encontrado")
	}
	var d entity.BusinessDetail
	var cat categoryCols
	var ownerID, ownerName, ownerAvatar *string
	targets := append(businessTargets(&d.Business), cat.targets()...)
	targets = append(targets, &ownerID, &ownerName, &ownerAvatar)
	err := r.q.QueryRow(ctx, `
		SELECT `+businessColumns+`,
			c.id, c.name, c.description, c.icon,
			p.id, p.full_name, p.avatar_url
		FROM businesses b
		LEFT JOIN categories c ON c.id = b.category_id
		LEFT JOIN profiles p ON p.id = b.owner_id
		WHERE b.id = $1`, id).Scan(targets...)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "negocio no encontrado")
		}
		return nil, storageErr(op, err)
	}
	d.Category = cat.ref()
	if ownerID != nil {
		d.Owner = &entity.OwnerRef{ID: *ownerID, FullName: ownerName, AvatarURL: ownerAvatar}
	}

	if d.Images, err = r.images(ctx, id); err != nil {
		return nil, storageErr(op+".images", err)
	}
	if d.Hours, err = r.hours(ctx, id); err != nil {
		return nil, storageErr(op+".hours", err)
	}
	if d.Reviews, err = r.reviews(ctx, id); err != nil {
		return nil, storageErr(op+".reviews", err)
	}
	if d.Subscription, err = r.subscription(ctx, id); err != nil {
		return nil, storageErr(op+".subscription", err)
	}
	return &d, nil
}

func (r *BusinessRepo) images(ctx context.Context, businessID string) ([]entity.BusinessImage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, business_id, image_url, is_primary, uploaded_at
		FROM business_images WHERE business_id = $1
		ORDER BY is_primary DESC, uploaded_at`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.BusinessImage, error) {
		var img entity.BusinessImage
		err := row.Scan(&img.ID, &img.BusinessID, &img.ImageURL, &img.IsPrimary, &img.UploadedAt)
		return img, err
	})
}

func (r *BusinessRepo) hours(ctx context.Context, businessID string) ([]entity.BusinessHours, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, business_id, day_of_week, open_time, close_time, closed
		FROM business_hours WHERE business_id = $1
		ORDER BY day_of_week`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.BusinessHours, error) {
		var h entity.BusinessHours
		err := row.Scan(&h.ID, &h.BusinessID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.Closed)
		return h, err
	})
}

func (r *BusinessRepo) reviews(ctx context.Context, businessID string) ([]entity.ReviewWithAuthor, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.id, r.business_id, r.user_id, r.rating, r.comment, r.created_at, r.updated_at,
			p.full_name, p.avatar_url
		FROM reviews r
		LEFT JOIN profiles p ON p.id = r.user_id
		WHERE r.business_id = $1
		ORDER BY r.created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ReviewWithAuthor, error) {
		var rv entity.ReviewWithAuthor
		err := row.Scan(&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Comment,
			&rv.CreatedAt, &rv.UpdatedAt, &rv.AuthorName, &rv.AuthorAvatar)
		return rv, err
	})
}

// subscription devuelve la suscripción vigente (la más reciente) o nil.
func (r *BusinessRepo) subscription(ctx context.Context, businessID string) (*entity.Subscription, error) {
	var s entity.Subscription
	err := r.q.QueryRow(ctx, `
		SELECT id, business_id, plan, max_products, max_images, includes_video, includes_chat,
			status, current_period_start, current_period_end, created_at, updated_at
		FROM subscriptions WHERE business_id = $1
		ORDER BY created_at DESC LIMIT 1`, businessID).Scan(
		&s.ID, &s.BusinessID, (*string)(&s.Plan), &s.MaxProducts, &s.MaxImages, &s.IncludesVideo,
		&s.IncludesChat, &s.Status, &s.CurrentPeriodStart, &s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// CreateBusiness inserta un negocio. Claimed queda fijado por la presencia de OwnerID.
func (r *BusinessRepo) CreateBusiness(ctx context.Context, in repository.NewBusiness) (*entity.Business, error) {
	const op = "business.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var b entity.Business
	err := r.q.QueryRow(ctx, `
		INSERT INTO businesses AS b (id, name, description, category_id, address, postal_code, city,
			phone, email, website, lat, lng, owner_id, claimed, theme_color, subscription_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+businessColumns,
		uuid.New().String(), in.Name, in.Description, in.CategoryID, in.Address, in.PostalCode, in.City,
		in.Phone, in.Email, in.Website, in.Lat, in.Lng, in.OwnerID, in.OwnerID != nil, in.ThemeColor,
		string(in.SubscriptionPlan),
	).Scan(businessTargets(&b)...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	return &b, nil
}

// UpdateBusiness aplica un parche parcial y refresca updated_at.
func (r *BusinessRepo) UpdateBusiness(ctx context.Context, id string, patch repository.BusinessPatch) (*entity.Business, error) {
	const op = "business.Update"
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, domain.NotFound(op, "negocio no encontrado")
	}
	sb := newSetBuilder(id)
	setIf(sb, "name", patch.Name)
	setIf(sb, "description", patch.Description)
	setIf(sb, "category_id", patch.CategoryID)
	setIf(sb, "address", patch.Address)
	setIf(sb, "postal_code", patch.PostalCode)
	setIf(sb, "city", patch.City)
	setIf(sb, "phone", patch.Phone)
	setIf(sb, "email", patch.Email)
	setIf(sb, "website", patch.Website)
	setIf(sb, "lat", patch.Lat)
	setIf(sb, "lng", patch.Lng)
	setIf(sb, "theme_color", patch.ThemeColor)
	if patch.SubscriptionPlan != nil {
		sb.set("subscription_plan", string(*patch.SubscriptionPlan))
	}
	query, args := sb.build("businesses AS b", businessColumns)

	var b entity.Business
	if err := r.q.QueryRow(ctx, query, args...).Scan(businessTargets(&b)...); err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "negocio no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return &b, nil
}

// ClaimBusiness fija owner_id y claimed=true en una única sentencia.
// Un negocio ya reclamado se rechaza con Conflict; no hay transferencia de propiedad.
func (r *BusinessRepo) ClaimBusiness(ctx context.Context, businessID, ownerID string) (*entity.Business, error) {
	const op = "business.Claim"
	if ownerID == "" {
		return nil, domain.Validation(op, "owner_id es requerido")
	}
	if !validID(businessID) {
		return nil, domain.NotFound(op, "negocio no encontrado")
	}
	var b entity.Business
	err := r.q.QueryRow(ctx, `
		UPDATE businesses AS b SET owner_id = $2, claimed = true, updated_at = now()
		WHERE b.id = $1 AND b.claimed = false
		RETURNING `+businessColumns, businessID, ownerID).Scan(businessTargets(&b)...)
	if err == nil {
		return &b, nil
	}
	if !isNoRows(err) {
		return nil, storageErr(op, err)
	}
	// Sin filas: o no existe o ya estaba reclamado.
	var claimed bool
	if err := r.q.QueryRow(ctx, `SELECT claimed FROM businesses WHERE id = $1`, businessID).Scan(&claimed); err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "negocio no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return nil, domain.Conflict(op, domain.ErrAlreadyClaimed)
}

func setIf[T any](sb *setBuilder, column string, v *T) {
	if v != nil {
		sb.set(column, *v)
	}
}
