package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/pkg/placeholder"
)

// BusinessUseCase directorio de negocios: búsqueda, ficha, alta, edición y reclamo.
type BusinessUseCase struct {
	repo   repository.BusinessRepository
	images placeholder.Resolver
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, images placeholder.Resolver) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, images: images}
}

// List busca negocios por categoría y texto, más recientes primero.
func (uc *BusinessUseCase) List(ctx context.Context, in dto.ListBusinessesRequest) (*dto.BusinessListResponse, error) {
	list, err := uc.repo.ListBusinesses(ctx, repository.BusinessFilter{
		CategoryID: &in.CategoryID,
		Search:     &in.Search,
		Limit:      &in.Limit,
		Offset:     &in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessListItem, 0, len(list))
	for i := range list {
		b := &list[i]
		items = append(items, dto.BusinessListItem{
			BusinessResponse: toBusinessResponse(&b.Business, uc.images.URL(b.Name, placeholder.Medium)),
			Category:         toCategoryRef(b.Category),
			ReviewCount:      b.Reviews.Count,
			AverageRating:    b.Reviews.AverageRating.Round(2),
		})
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: len(items)},
	}, nil
}

// Get devuelve la ficha completa de un negocio.
func (uc *BusinessUseCase) Get(ctx context.Context, id string) (*dto.BusinessDetailResponse, error) {
	d, err := uc.repo.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toDetail(d), nil
}

// Create da de alta un negocio. Un propietario queda como dueño (reclamado);
// un admin crea entradas del directorio sin dueño. Solo un admin elige plan.
func (uc *BusinessUseCase) Create(ctx context.Context, actor Actor, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	const op = "business.Create"
	if !actor.Role.Satisfies(entity.RoleOwner) {
		return nil, domain.Forbidden(op, "solo propietarios pueden registrar negocios")
	}
	if in.ThemeColor != "" && !entity.IsThemeColor(in.ThemeColor) {
		return nil, domain.Validation(op, "theme_color no pertenece a la paleta")
	}
	nb := repository.NewBusiness{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Address:     in.Address,
		PostalCode:  in.PostalCode,
		City:        in.City,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		Lat:         in.Lat,
		Lng:         in.Lng,
		ThemeColor:  in.ThemeColor,
	}
	if actor.IsAdmin() {
		nb.SubscriptionPlan = entity.Plan(in.SubscriptionPlan)
	} else {
		nb.OwnerID = &actor.UserID
	}
	b, err := uc.repo.CreateBusiness(ctx, nb)
	if err != nil {
		return nil, err
	}
	out := toBusinessResponse(b, uc.images.URL(b.Name, placeholder.Large))
	return &out, nil
}

// Update aplica un parche parcial. Solo el propietario o un admin; el plan solo lo cambia un admin.
func (uc *BusinessUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	const op = "business.Update"
	if _, err := managedBusiness(ctx, uc.repo, actor, op, id); err != nil {
		return nil, err
	}
	if in.ThemeColor != nil && !entity.IsThemeColor(*in.ThemeColor) {
		return nil, domain.Validation(op, "theme_color no pertenece a la paleta")
	}
	patch := repository.BusinessPatch{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Address:     in.Address,
		PostalCode:  in.PostalCode,
		City:        in.City,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		Lat:         in.Lat,
		Lng:         in.Lng,
		ThemeColor:  in.ThemeColor,
	}
	if in.SubscriptionPlan != nil {
		if !actor.IsAdmin() {
			return nil, domain.Forbidden(op, "solo un administrador cambia el plan")
		}
		plan := entity.Plan(*in.SubscriptionPlan)
		patch.SubscriptionPlan = &plan
	}
	b, err := uc.repo.UpdateBusiness(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	out := toBusinessResponse(b, uc.images.URL(b.Name, placeholder.Large))
	return &out, nil
}

// Claim asigna el negocio al actor si nadie lo ha reclamado antes.
func (uc *BusinessUseCase) Claim(ctx context.Context, actor Actor, id string) (*dto.BusinessResponse, error) {
	b, err := uc.repo.ClaimBusiness(ctx, id, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := toBusinessResponse(b, uc.images.URL(b.Name, placeholder.Large))
	return &out, nil
}

func (uc *BusinessUseCase) toDetail(d *entity.BusinessDetail) *dto.BusinessDetailResponse {
	out := &dto.BusinessDetailResponse{
		BusinessResponse: toBusinessResponse(&d.Business, uc.coverImage(d)),
		Category:         toCategoryRef(d.Category),
		Images:           make([]dto.BusinessImageResponse, 0, len(d.Images)),
		Hours:            make([]dto.BusinessHoursResponse, 0, len(d.Hours)),
		Reviews:          make([]dto.ReviewResponse, 0, len(d.Reviews)),
		AverageRating:    decimal.Zero,
	}
	if d.Owner != nil {
		out.Owner = &dto.OwnerResponse{ID: d.Owner.ID, FullName: d.Owner.FullName, AvatarURL: d.Owner.AvatarURL}
	}
	for _, img := range d.Images {
		out.Images = append(out.Images, dto.BusinessImageResponse{ID: img.ID, ImageURL: img.ImageURL, IsPrimary: img.IsPrimary})
	}
	for _, h := range d.Hours {
		out.Hours = append(out.Hours, dto.BusinessHoursResponse{
			DayOfWeek: h.DayOfWeek, OpenTime: h.OpenTime, CloseTime: h.CloseTime, Closed: h.Closed,
		})
	}
	var sum int64
	for i := range d.Reviews {
		r := &d.Reviews[i]
		rr := toReviewResponse(&r.Review)
		rr.AuthorName, rr.AuthorAvatar = r.AuthorName, r.AuthorAvatar
		out.Reviews = append(out.Reviews, rr)
		sum += int64(r.Rating)
	}
	out.ReviewCount = int64(len(d.Reviews))
	if out.ReviewCount > 0 {
		out.AverageRating = decimal.NewFromInt(sum).Div(decimal.NewFromInt(out.ReviewCount)).Round(2)
	}
	if s := d.Subscription; s != nil {
		out.Subscription = &dto.SubscriptionResponse{
			Plan:          string(s.Plan),
			Status:        s.Status,
			MaxProducts:   s.MaxProducts,
			MaxImages:     s.MaxImages,
			IncludesVideo: s.IncludesVideo,
			IncludesChat:  s.IncludesChat,
			PeriodEnd:     s.CurrentPeriodEnd,
		}
	}
	return out
}

// coverImage imagen principal, la primera de la galería o un placeholder.
func (uc *BusinessUseCase) coverImage(d *entity.BusinessDetail) string {
	for _, img := range d.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(d.Images) > 0 {
		return d.Images[0].ImageURL
	}
	return uc.images.URL(d.Name, placeholder.Large)
}
