package memory

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/triple000-it/schiedam/internal/domain/entity"
)

// Identificadores fijos del conjunto de demostración.
const (
	DemoOwnerID        = "00000000-0000-0000-0000-000000000001"
	DemoCategoryHoreca = "10000000-0000-0000-0000-000000000001"
	DemoBusinessLeeuw  = "20000000-0000-0000-0000-000000000001"
	DemoBusinessHaven  = "20000000-0000-0000-0000-000000000005"
)

type demoCategory struct{ id, name, description, icon string }

var demoCategories = []demoCategory{
	{"10000000-0000-0000-0000-000000000001", "Horeca", "Restaurants, cafés, bars en andere eetgelegenheden", "🍽️"},
	{"10000000-0000-0000-0000-000000000002", "Winkels", "Retail, kleding, elektronica en andere winkels", "🛍️"},
	{"10000000-0000-0000-0000-000000000003", "Diensten", "Professionele dienstverlening en advies", "💼"},
	{"10000000-0000-0000-0000-000000000004", "Zorg & Welzijn", "Zorgverleners, apotheken en welzijnsdiensten", "🏥"},
	{"10000000-0000-0000-0000-000000000005", "Sport & Vrije Tijd", "Sportclubs, fitness en recreatie", "⚽"},
	{"10000000-0000-0000-0000-000000000006", "Onderwijs", "Scholen, trainingen en educatie", "🎓"},
	{"10000000-0000-0000-0000-000000000007", "Beauty & Wellness", "Kappers, schoonheidssalons en wellness", "💅"},
	{"10000000-0000-0000-0000-000000000008", "Auto & Vervoer", "Garages, autodealers en vervoersdiensten", "🚗"},
	{"10000000-0000-0000-0000-000000000009", "Vastgoed", "Makelaars, verhuur en vastgoeddiensten", "🏠"},
	{"10000000-0000-0000-0000-000000000010", "Technologie", "IT-diensten, software en technologie", "💻"},
}

type demoBusiness struct {
	id, name, description, categoryID string
	address, postal                   string
	phone, email, website             string
	lat, lng                          float64
	claimed                           bool
	theme                             string
	plan                              entity.Plan
}

var demoBusinesses = []demoBusiness{
	{DemoBusinessLeeuw, "Restaurant De Gouden Leeuw", "Traditioneel Nederlands restaurant met moderne twist",
		DemoCategoryHoreca, "Hoogstraat 123", "3111 HG", "+31 10 123 4567", "info@goudenleeuw.nl",
		"https://goudenleeuw.nl", 51.9194, 4.3883, true, "#F59E0B", entity.PlanBusiness},
	{"20000000-0000-0000-0000-000000000002", "Café Central", "Gezellige bruine kroeg in het centrum",
		DemoCategoryHoreca, "Lange Haven 45", "3111 CD", "+31 10 234 5678", "info@cafecentral.nl",
		"", 51.9200, 4.3900, true, "#8B5CF6", entity.PlanFree},
	{"20000000-0000-0000-0000-000000000003", "Modehuis Van der Berg", "Exclusieve dames- en herenmode",
		"10000000-0000-0000-0000-000000000002", "Broersvest 67", "3111 BN", "+31 10 345 6789",
		"info@modehuisvanderberg.nl", "https://modehuisvanderberg.nl", 51.9180, 4.3850, true, "#EC4899", entity.PlanPro},
	{"20000000-0000-0000-0000-000000000004", "Fysiotherapie Schiedam Centrum", "Professionele fysiotherapie en revalidatie",
		"10000000-0000-0000-0000-000000000004", "Korte Haven 12", "3111 AB", "+31 10 456 7890",
		"info@fysioschiedam.nl", "https://fysioschiedam.nl", 51.9210, 4.3920, true, "#10B981", entity.PlanVIP},
	{DemoBusinessHaven, "Sportcentrum De Haven", "Moderne fitness en groepslessen",
		"10000000-0000-0000-0000-000000000005", "Havenplein 8", "3111 AC", "+31 10 567 8901",
		"info@sportcentrumdehaven.nl", "https://sportcentrumdehaven.nl", 51.9220, 4.3950, false, "#F59E0B", entity.PlanFree},
}

type demoProduct struct {
	id, businessID, name, description, price string
	stock                                    int
}

var demoProducts = []demoProduct{
	{"40000000-0000-0000-0000-000000000001", DemoBusinessLeeuw, "Hollandse Nieuwe Haring", "Verse haring met uitjes", "8.50", 20},
	{"40000000-0000-0000-0000-000000000002", DemoBusinessLeeuw, "Stamppot Boerenkool", "Traditionele stamppot met rookworst", "12.95", 15},
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SeedDemo carga el directorio de demostración (categorías, negocios de Schiedam,
// un propietario y sus productos). Pensado para el modo memory en desarrollo.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ownerName := "Demo Eigenaar"
	s.t.profiles[DemoOwnerID] = entity.Profile{
		ID: DemoOwnerID, Role: entity.RoleOwner, Email: "eigenaar@schiedam.local",
		FullName: &ownerName, CreatedAt: now, UpdatedAt: now,
	}
	for _, c := range demoCategories {
		s.t.categories[c.id] = entity.Category{
			ID: c.id, Name: c.name, Description: optional(c.description), Icon: optional(c.icon), CreatedAt: s.now(),
		}
	}
	for _, d := range demoBusinesses {
		lat, lng, cat := d.lat, d.lng, d.categoryID
		b := entity.Business{
			ID: d.id, Name: d.name, Description: optional(d.description), CategoryID: &cat,
			Address: d.address, PostalCode: d.postal, City: entity.DefaultCity, Phone: optional(d.phone),
			Email: optional(d.email), Website: optional(d.website), Lat: &lat, Lng: &lng,
			Claimed: d.claimed, ThemeColor: d.theme, SubscriptionPlan: d.plan,
		}
		if d.claimed {
			b.OwnerID = optional(DemoOwnerID)
		}
		b.CreatedAt = s.now()
		b.UpdatedAt = b.CreatedAt
		s.t.businesses[b.ID] = b

		if d.claimed {
			lim := d.plan.Limits()
			start := b.CreatedAt
			end := start.AddDate(0, 1, 0)
			s.t.subscriptions = append(s.t.subscriptions, entity.Subscription{
				ID: "3" + d.id[1:], BusinessID: b.ID, Plan: d.plan, MaxProducts: lim.MaxProducts,
				MaxImages: lim.MaxImages, IncludesVideo: lim.IncludesVideo, IncludesChat: lim.IncludesChat,
				Status: "active", CurrentPeriodStart: &start, CurrentPeriodEnd: &end,
				CreatedAt: b.CreatedAt, UpdatedAt: b.CreatedAt,
			})
		}
	}
	open, closeAt := "11:00", "22:00"
	for day := time.Sunday; day <= time.Saturday; day++ {
		s.t.hours = append(s.t.hours, entity.BusinessHours{
			ID: "5000000" + strconv.Itoa(int(day)) + "-0000-0000-0000-000000000001", BusinessID: DemoBusinessLeeuw,
			DayOfWeek: int(day), OpenTime: &open, CloseTime: &closeAt, Closed: day == time.Monday,
		})
	}
	for _, p := range demoProducts {
		created := s.now()
		s.t.products[p.id] = entity.Product{
			ID: p.id, BusinessID: p.businessID, Name: p.name, Description: optional(p.description),
			Price: decimal.RequireFromString(p.price), Stock: p.stock, Active: true,
			CreatedAt: created, UpdatedAt: created,
		}
	}
}
