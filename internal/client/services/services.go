package services

import (
	"sort"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
	"github.com/dmitrijs2005/wevraa-admin/internal/logging"
)

// Services bundles every resource service over one API client.
type Services struct {
	Auth             *AuthService
	Products         *Resource[models.Product, models.CreateProductRequest, models.UpdateProductRequest]
	Categories       *Resource[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest]
	Collections      *ImageResource[models.Collection, models.CreateCollectionRequest, models.UpdateCollectionRequest]
	Designs          *ImageResource[models.Design, models.CreateDesignRequest, models.UpdateDesignRequest]
	Gallery          *ImageResource[models.GalleryImage, models.CreateGalleryRequest, models.UpdateGalleryRequest]
	Inventory        *InventoryService
	Reviews          *ReviewService
	TailorCategories *TailorCategoryService
	Customers        *Resource[models.Customer, models.CreateCustomerRequest, models.UpdateCustomerRequest]
	Vendors          *Resource[models.Vendor, models.CreateVendorRequest, models.UpdateVendorRequest]
	Tailors          *Resource[models.Tailor, models.CreateTailorRequest, models.UpdateTailorRequest]
	StaffCategories  *Resource[models.StaffCategory, models.CreateStaffCategoryRequest, models.UpdateStaffCategoryRequest]
	Users            *Resource[models.AdminUser, models.CreateUserRequest, models.UpdateUserRequest]
	Locations        *Resource[models.Location, models.CreateLocationRequest, models.UpdateLocationRequest]
	GSTRates         *Resource[models.GSTRate, models.CreateGSTRateRequest, models.UpdateGSTRateRequest]
	Upload           *UploadService
}

func New(c *apiclient.Client, log logging.Logger) *Services {
	return &Services{
		Auth:             NewAuthService(c, log),
		Products:         NewResource[models.Product, models.CreateProductRequest, models.UpdateProductRequest](c, "/products"),
		Categories:       NewResource[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest](c, "/categories"),
		Collections:      NewImageResource[models.Collection, models.CreateCollectionRequest, models.UpdateCollectionRequest](c, "/collections", false),
		Designs:          NewImageResource[models.Design, models.CreateDesignRequest, models.UpdateDesignRequest](c, "/designs", true),
		Gallery:          NewImageResource[models.GalleryImage, models.CreateGalleryRequest, models.UpdateGalleryRequest](c, "/gallery", true),
		Inventory:        NewInventoryService(c),
		Reviews:          NewReviewService(c),
		TailorCategories: NewTailorCategoryService(c),
		Customers:        NewResource[models.Customer, models.CreateCustomerRequest, models.UpdateCustomerRequest](c, "/customers"),
		Vendors:          NewResource[models.Vendor, models.CreateVendorRequest, models.UpdateVendorRequest](c, "/vendors"),
		Tailors:          NewResource[models.Tailor, models.CreateTailorRequest, models.UpdateTailorRequest](c, "/tailors"),
		StaffCategories:  NewResource[models.StaffCategory, models.CreateStaffCategoryRequest, models.UpdateStaffCategoryRequest](c, "/staff-categories"),
		Users:            NewResource[models.AdminUser, models.CreateUserRequest, models.UpdateUserRequest](c, "/users"),
		Locations:        NewResource[models.Location, models.CreateLocationRequest, models.UpdateLocationRequest](c, "/locations"),
		GSTRates:         NewResource[models.GSTRate, models.CreateGSTRateRequest, models.UpdateGSTRateRequest](c, "/gst-rates"),
		Upload:           NewUploadService(c),
	}
}

// Browsables maps the console's resource names to their services.
func (s *Services) Browsables() map[string]Browsable {
	return map[string]Browsable{
		"products":          s.Products,
		"categories":        s.Categories,
		"collections":       s.Collections,
		"designs":           s.Designs,
		"gallery":           s.Gallery,
		"inventory":         s.Inventory,
		"reviews":           s.Reviews,
		"tailor-categories": s.TailorCategories,
		"customers":         s.Customers,
		"vendors":           s.Vendors,
		"tailors":           s.Tailors,
		"staff-categories":  s.StaffCategories,
		"users":             s.Users,
		"locations":         s.Locations,
		"gst-rates":         s.GSTRates,
	}
}

// ResourceNames returns the keys of Browsables in order.
func (s *Services) ResourceNames() []string {
	b := s.Browsables()
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
