package resource

import (
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/repository/contract"
)

var (
	contentRoles = []string{model.UserRoleAdmin, model.UserRoleEditor}
	adminOnly    = []string{model.UserRoleAdmin}

	manualOrder = []contract.Sort{{Column: "order_number"}, {Column: "created_at", Desc: true}}
	newestFirst = []contract.Sort{{Column: "created_at", Desc: true}}
	activeOnly  = []contract.Filter{contract.Eq("is_active", true)}
)

var Products = &Definition{
	Name:          "Product",
	Path:          "products",
	SlugSource:    "name",
	SearchColumns: []string{"name", "short_description", "description", "category"},
	Filters: map[string]FilterKind{
		"category":    FilterString,
		"is_active":   FilterBool,
		"is_featured": FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   manualOrder,
	Files:         []FileField{{FormField: "image", Column: "image_url", Folder: "products"}},
	PublicRead:    true,
	WriteRoles:    contentRoles,
	DeleteRoles:   contentRoles,
}

var Services = &Definition{
	Name:          "Service",
	Path:          "services",
	SlugSource:    "title",
	SearchColumns: []string{"title", "short_description", "description"},
	Filters: map[string]FilterKind{
		"is_active":   FilterBool,
		"is_featured": FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   manualOrder,
	Files:         []FileField{{FormField: "image", Column: "image_url", Folder: "services"}},
	PublicRead:    true,
	WriteRoles:    contentRoles,
	DeleteRoles:   contentRoles,
}

var Partners = &Definition{
	Name:          "Partner",
	Path:          "partners",
	SlugSource:    "name",
	SearchColumns: []string{"name", "description"},
	Filters: map[string]FilterKind{
		"partnership_type": FilterString,
		"is_active":        FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   manualOrder,
	Files:         []FileField{{FormField: "logo", Column: "logo_url", Folder: "partners"}},
	PublicRead:    true,
	WriteRoles:    contentRoles,
	DeleteRoles:   contentRoles,
}

var Clients = &Definition{
	Name:          "Client",
	Path:          "clients",
	SlugSource:    "name",
	SearchColumns: []string{"name", "industry", "description"},
	Filters: map[string]FilterKind{
		"industry":    FilterString,
		"is_active":   FilterBool,
		"is_featured": FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   manualOrder,
	Files:         []FileField{{FormField: "logo", Column: "logo_url", Folder: "clients"}},
	PublicRead:    true,
	WriteRoles:    contentRoles,
	DeleteRoles:   contentRoles,
}

var News = &Definition{
	Name:          "News",
	Path:          "news",
	SlugSource:    "title",
	SearchColumns: []string{"title", "excerpt", "content"},
	Filters: map[string]FilterKind{
		"category":     FilterString,
		"is_published": FilterBool,
		"is_featured":  FilterBool,
	},
	PublicFilters: []contract.Filter{contract.Eq("is_published", true)},
	DefaultSort:   newestFirst,
	ViewColumn:    "views",
	Files:         []FileField{{FormField: "featured_image", Column: "featured_image", Folder: "news"}},
	Actions: map[string]Action{
		"publish": {
			Message: "News published",
			Values: func(now time.Time) map[string]interface{} {
				return map[string]interface{}{"is_published": true, "published_date": now}
			},
		},
		"unpublish": {
			Message: "News unpublished",
			Values: func(time.Time) map[string]interface{} {
				return map[string]interface{}{"is_published": false}
			},
		},
	},
	PublicRead:  true,
	WriteRoles:  contentRoles,
	DeleteRoles: contentRoles,
}

var Events = &Definition{
	Name:          "Event",
	Path:          "events",
	SlugSource:    "title",
	SearchColumns: []string{"title", "description", "location"},
	Filters: map[string]FilterKind{
		"category":    FilterString,
		"status":      FilterString,
		"is_featured": FilterBool,
	},
	PublicFilters: []contract.Filter{
		contract.In("status", model.EventStatusUpcoming, model.EventStatusOngoing, model.EventStatusCompleted),
	},
	DefaultSort: []contract.Sort{{Column: "event_date", Desc: true}},
	Files: []FileField{
		{FormField: "featured_image", Column: "featured_image", Folder: "events"},
		{FormField: "gallery", Column: "gallery", Folder: "events/gallery", Multiple: true},
	},
	Status: &StatusMachine{
		Column: "status",
		Values: []string{
			model.EventStatusUpcoming,
			model.EventStatusOngoing,
			model.EventStatusCompleted,
			model.EventStatusCancelled,
		},
	},
	PublicRead:  true,
	WriteRoles:  contentRoles,
	DeleteRoles: contentRoles,
}

var Careers = &Definition{
	Name:          "Career",
	Path:          "careers",
	SlugSource:    "title",
	SearchColumns: []string{"title", "department", "location", "description"},
	Filters: map[string]FilterKind{
		"department":      FilterString,
		"employment_type": FilterString,
		"status":          FilterString,
		"is_featured":     FilterBool,
	},
	PublicFilters: []contract.Filter{contract.Eq("status", model.CareerStatusOpen)},
	DefaultSort:   newestFirst,
	ViewColumn:    "views",
	Status: &StatusMachine{
		Column: "status",
		Values: []string{model.CareerStatusOpen, model.CareerStatusClosed, model.CareerStatusDraft},
	},
	PublicRead:  true,
	WriteRoles:  contentRoles,
	DeleteRoles: contentRoles,
}

var Values = &Definition{
	Name:          "Value",
	Path:          "values",
	SlugSource:    "title",
	SearchColumns: []string{"title", "description"},
	Filters: map[string]FilterKind{
		"is_active": FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   manualOrder,
	PublicRead:    true,
	WriteRoles:    contentRoles,
	DeleteRoles:   contentRoles,
}

var Contacts = &Definition{
	Name:          "Contact",
	Path:          "contacts",
	SearchColumns: []string{"name", "email", "subject", "message"},
	Filters: map[string]FilterKind{
		"status": FilterString,
	},
	DefaultSort: newestFirst,
	Status: &StatusMachine{
		Column: "status",
		Values: []string{
			model.ContactStatusNew,
			model.ContactStatusRead,
			model.ContactStatusReplied,
			model.ContactStatusClosed,
		},
		Transitions: map[string][]string{
			model.ContactStatusNew:     {model.ContactStatusRead, model.ContactStatusReplied, model.ContactStatusClosed},
			model.ContactStatusRead:    {model.ContactStatusReplied, model.ContactStatusClosed},
			model.ContactStatusReplied: {model.ContactStatusClosed},
		},
		OnEnter: func(status, actor string, now time.Time) map[string]interface{} {
			if status != model.ContactStatusReplied {
				return nil
			}
			return map[string]interface{}{"replied_by": actor, "replied_at": now}
		},
	},
	PublicCreate: true,
	WriteRoles:   contentRoles,
	DeleteRoles:  adminOnly,
}

var Company = &Definition{
	Name:          "Company",
	Path:          "company",
	SlugSource:    "name",
	SearchColumns: []string{"name", "tagline"},
	Filters: map[string]FilterKind{
		"is_active": FilterBool,
	},
	PublicFilters: activeOnly,
	DefaultSort:   newestFirst,
	Files:         []FileField{{FormField: "logo", Column: "logo_url", Folder: "company"}},
	PublicRead:    true,
	WriteRoles:    adminOnly,
	DeleteRoles:   adminOnly,
}

// All lists every definition in route registration order.
func All() []*Definition {
	return []*Definition{Company, Products, Services, Partners, Clients, News, Events, Careers, Values, Contacts}
}
