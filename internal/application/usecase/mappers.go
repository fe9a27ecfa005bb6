package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/pkg/placeholder"
)

func toBusinessResponse(b *entity.Business, image string) dto.BusinessResponse {
	return dto.BusinessResponse{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		CategoryID:       b.CategoryID,
		Address:          b.Address,
		PostalCode:       b.PostalCode,
		City:             b.City,
		Phone:            b.Phone,
		Email:            b.Email,
		Website:          b.Website,
		Lat:              b.Lat,
		Lng:              b.Lng,
		OwnerID:          b.OwnerID,
		Claimed:          b.Claimed,
		ThemeColor:       b.ThemeColor,
		SubscriptionPlan: string(b.SubscriptionPlan),
		ImageURL:         image,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func toCategoryRef(c *entity.CategoryRef) *dto.CategoryRefResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryRefResponse{ID: c.ID, Name: c.Name, Description: c.Description, Icon: c.Icon}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
	}
}

func toProductResponse(p *entity.Product, images placeholder.Resolver) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	out.ImageURL, out.HasImage = imageOr(p.ImageURL, p.Name, placeholder.Medium, images)
	return out
}

// imageOr devuelve la URL propia o un placeholder con la etiqueta.
func imageOr(url *string, label string, size placeholder.Size, images placeholder.Resolver) (string, bool) {
	if url != nil && *url != "" {
		return *url, true
	}
	return images.URL(label, size), false
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		BusinessID:  o.BusinessID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func toOrderItemResponse(it *entity.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Subtotal:  it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt,
	}
}

func toOrderDetailResponse(o *entity.Order, items []entity.OrderItem, payment *entity.Payment) dto.OrderDetailResponse {
	out := dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(o),
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
		Payment:       toPaymentResponse(payment),
	}
	for i := range items {
		out.Items = append(out.Items, toOrderItemResponse(&items[i]))
	}
	return out
}
