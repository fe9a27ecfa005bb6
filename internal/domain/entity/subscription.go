package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan etiqueta del plan de suscripción de un negocio.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanBusiness Plan = "business"
	PlanPro      Plan = "pro"
	PlanVIP      Plan = "vip"
)

// PlanLimits capacidades de un plan.
type PlanLimits struct {
	Name          string
	Price         *decimal.Decimal // nil = precio a consultar
	MaxProducts   int
	MaxImages     int
	IncludesVideo bool
	IncludesChat  bool
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Plans tabla de planes disponibles.
var Plans = map[Plan]PlanLimits{
	PlanFree:     {Name: "Free", Price: price(0), MaxProducts: 10, MaxImages: 1},
	PlanBusiness: {Name: "Business", Price: price(1), MaxProducts: 50, MaxImages: 5, IncludesChat: true},
	PlanPro:      {Name: "Pro", Price: price(2), MaxProducts: 100, MaxImages: 10, IncludesVideo: true, IncludesChat: true},
	PlanVIP:      {Name: "VIP", MaxProducts: 250, MaxImages: 24, IncludesVideo: true, IncludesChat: true},
}

// Valid informa si p es uno de los planes conocidos.
func (p Plan) Valid() bool {
	_, ok := Plans[p]
	return ok
}

// Limits devuelve los límites del plan; un plan desconocido se trata como free.
func (p Plan) Limits() PlanLimits {
	if l, ok := Plans[p]; ok {
		return l
	}
	return Plans[PlanFree]
}

// Subscription fila de suscripción vigente de un negocio.
type Subscription struct {
	ID                 string
	BusinessID         string
	Plan               Plan
	MaxProducts        int
	MaxImages          int
	IncludesVideo      bool
	IncludesChat       bool
	Status             string
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
