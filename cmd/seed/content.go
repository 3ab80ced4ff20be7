package main

import (
	"context"
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/resource"
	"company-profile-be/internal/service"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

type seeder struct {
	deps   service.ResourceServiceDeps
	failed int
}

// seedAll creates each record unless its slug is already taken.
func seedAll[M any](ctx context.Context, s *seeder, def *resource.Definition, slugOf func(*M) string, records ...*M) {
	svc := service.NewResourceService[M](def, s.deps)
	for _, m := range records {
		slug := slugOf(m)
		if existing, _ := svc.GetBySlug(ctx, slug, false); existing != nil {
			color.Yellow("  %s/%s exists, skipping", def.Path, slug)
			continue
		}
		if _, err := svc.Create(ctx, m, nil); err != nil {
			color.Red("  %s/%s: %v", def.Path, slug, err)
			s.failed++
			continue
		}
		color.Green("  %s/%s", def.Path, slug)
	}
}

func (s *seeder) run(ctx context.Context) {
	now := time.Now().UTC().Truncate(time.Hour)
	inDays := func(d int) *time.Time {
		t := now.AddDate(0, 0, d)
		return &t
	}
	price := decimal.RequireFromString("1499.00")
	founded := 2012

	seedAll(ctx, s, resource.Company, func(m *model.Company) string { return m.Slug },
		&model.Company{
			Name:        "Northwind Solutions",
			Slug:        "northwind-solutions",
			Tagline:     "Software that keeps operations moving",
			Description: "Northwind builds and runs business software for logistics and retail teams.",
			Vision:      "Every operations team runs on software they trust.",
			Mission:     "Ship dependable tools and support them for the long haul.",
			Email:       "hello@northwind.example",
			Phone:       "+62 21 555 0100",
			Address:     "Jl. Sudirman 1, Jakarta",
			FoundedYear: &founded,
			SocialLinks: []model.KeyValue{{Key: "linkedin", Value: "https://linkedin.com/company/northwind"}},
			IsActive:    true,
		})

	seedAll(ctx, s, resource.Products, func(m *model.Product) string { return m.Slug },
		&model.Product{
			Name:             "Fleet Tracker",
			Slug:             "fleet-tracker",
			ShortDescription: "Live vehicle positions and delivery status.",
			Category:         "logistics",
			Price:            &price,
			Features:         []string{"Live map", "Geofencing", "Driver app"},
			Specifications:   []model.KeyValue{{Key: "Deployment", Value: "Cloud"}, {Key: "SLA", Value: "99.9%"}},
			IsActive:         true,
			IsFeatured:       true,
			OrderNumber:      1,
		},
		&model.Product{
			Name:             "Shelf Planner",
			Slug:             "shelf-planner",
			ShortDescription: "Planogram design for retail chains.",
			Category:         "retail",
			Features:         []string{"Drag and drop layouts", "Store rollout"},
			Specifications:   []model.KeyValue{},
			IsActive:         true,
			OrderNumber:      2,
		})

	seedAll(ctx, s, resource.Services, func(m *model.Service) string { return m.Slug },
		&model.Service{
			Title:            "Custom Development",
			Slug:             "custom-development",
			ShortDescription: "Product teams for your roadmap.",
			Icon:             "code",
			Features:         []string{"Discovery", "Delivery", "Support"},
			IsActive:         true,
			OrderNumber:      1,
		})

	seedAll(ctx, s, resource.Partners, func(m *model.Partner) string { return m.Slug },
		&model.Partner{Name: "Cloudline", Slug: "cloudline", PartnershipType: "technology", WebsiteUrl: "https://cloudline.example", IsActive: true})

	seedAll(ctx, s, resource.Clients, func(m *model.Client) string { return m.Slug },
		&model.Client{Name: "Sumber Retail", Slug: "sumber-retail", Industry: "Retail", Testimonial: "Rollouts went from weeks to days.", IsActive: true, IsFeatured: true})

	seedAll(ctx, s, resource.News, func(m *model.News) string { return m.Slug },
		&model.News{
			Title:         "Fleet Tracker 3.0 released",
			Slug:          "fleet-tracker-3-0-released",
			Excerpt:       "Faster maps and offline driver mode.",
			Content:       "Fleet Tracker 3.0 brings a rebuilt map engine and offline support for drivers.",
			Category:      "product",
			Tags:          []string{"release", "logistics"},
			Author:        "Product Team",
			IsPublished:   true,
			PublishedDate: inDays(-3),
		})

	seedAll(ctx, s, resource.Events, func(m *model.Event) string { return m.Slug },
		&model.Event{
			Title:     "Operations Summit",
			Slug:      "operations-summit",
			Location:  "Jakarta Convention Center",
			EventDate: *inDays(30),
			EndDate:   inDays(31),
			Category:  "conference",
			Status:    model.EventStatusUpcoming,
			Gallery:   []string{},
		})

	seedAll(ctx, s, resource.Careers, func(m *model.Career) string { return m.Slug },
		&model.Career{
			Title:               "Backend Engineer",
			Slug:                "backend-engineer",
			Department:          "Engineering",
			Location:            "Jakarta / Remote",
			EmploymentType:      "full-time",
			Responsibilities:    []string{"Design services", "Own production systems"},
			Requirements:        []string{"3+ years building web backends"},
			Benefits:            []string{"Remote friendly"},
			Status:              model.CareerStatusOpen,
			ApplicationDeadline: inDays(45),
		})

	seedAll(ctx, s, resource.Values, func(m *model.Value) string { return m.Slug },
		&model.Value{Title: "Ownership", Slug: "ownership", Description: "We finish what we start.", Icon: "flag", IsActive: true, OrderNumber: 1},
		&model.Value{Title: "Candor", Slug: "candor", Description: "We say what we see.", Icon: "chat", IsActive: true, OrderNumber: 2})
}
