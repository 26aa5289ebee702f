package models

type Address struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Customer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	AddressID string   `json:"addressId"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Address   *Address `json:"address"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Status  string `json:"status,omitempty"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Status  *string `json:"status,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
}

type Vendor struct {
	ID                string   `json:"id"`
	ContactPersonName string   `json:"contactPersonName"`
	CompanyName       string   `json:"companyName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CategoryID        *string  `json:"categoryId"`
	GSTIN             string   `json:"gstin"`
	Status            string   `json:"status"`
	JoinedDate        string   `json:"joinedDate"`
	AddressID         string   `json:"addressId"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
	Category          *Ref     `json:"category"`
	Address           *Address `json:"address"`
}

type CreateVendorRequest struct {
	ContactPersonName string  `json:"contactPersonName" validate:"required"`
	CompanyName       string  `json:"companyName" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             string  `json:"phone" validate:"required"`
	CategoryID        *string `json:"categoryId,omitempty"`
	GSTIN             string  `json:"gstin,omitempty"`
	Status            string  `json:"status" validate:"required"`
	JoinedDate        string  `json:"joinedDate" validate:"required"`
	Address           string  `json:"address" validate:"required"`
	City              string  `json:"city" validate:"required"`
	State             string  `json:"state" validate:"required"`
	Pincode           string  `json:"pincode" validate:"required"`
}

type UpdateVendorRequest struct {
	ContactPersonName *string `json:"contactPersonName,omitempty"`
	CompanyName       *string `json:"companyName,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string `json:"phone,omitempty"`
	CategoryID        *string `json:"categoryId,omitempty"`
	GSTIN             *string `json:"gstin,omitempty"`
	Status            *string `json:"status,omitempty"`
	JoinedDate        *string `json:"joinedDate,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	Pincode           *string `json:"pincode,omitempty"`
}

type Tailor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Experience      string   `json:"experience,omitempty"`
	Status          string   `json:"status"`
	AddressLine1    string   `json:"addressLine1,omitempty"`
	AddressLine2    string   `json:"addressLine2,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	CategoryTags    []string `json:"categoryTags,omitempty"`
	HasGST          bool     `json:"hasGst,omitempty"`
	GSTNumber       string   `json:"gstNumber,omitempty"`
	GSTPercentage   float64  `json:"gstPercentage,omitempty"`
	HSNCode         string   `json:"hsnCode,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

type CreateTailorRequest struct {
	Name            string   `json:"name" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Experience      string   `json:"experience,omitempty"`
	Status          string   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	AddressLine1    string   `json:"addressLine1,omitempty"`
	AddressLine2    string   `json:"addressLine2,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	CategoryTags    []string `json:"categoryTags,omitempty"`
	HasGST          *bool    `json:"hasGst,omitempty"`
	GSTNumber       string   `json:"gstNumber,omitempty"`
	GSTPercentage   *float64 `json:"gstPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	HSNCode         string   `json:"hsnCode,omitempty"`
}

type UpdateTailorRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty" validate:"omitempty,email"`
	Experience      *string  `json:"experience,omitempty"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	Specializations []string `json:"specializations,omitempty"`
	CategoryTags    []string `json:"categoryTags,omitempty"`
	HasGST          *bool    `json:"hasGst,omitempty"`
	GSTNumber       *string  `json:"gstNumber,omitempty"`
	GSTPercentage   *float64 `json:"gstPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	HSNCode         *string  `json:"hsnCode,omitempty"`
}

type RequiredField struct {
	Label    string `json:"label" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Required bool   `json:"required"`
}

type StaffCategory struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ColorTheme     string          `json:"colorTheme"`
	Status         string          `json:"status"`
	RequiredFields []RequiredField `json:"requiredFields"`
	CreatedAt      string          `json:"createdAt,omitempty"`
	UpdatedAt      string          `json:"updatedAt,omitempty"`
}

type CreateStaffCategoryRequest struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	ColorTheme     string          `json:"colorTheme,omitempty"`
	Status         string          `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	RequiredFields []RequiredField `json:"requiredFields,omitempty" validate:"dive"`
}

type UpdateStaffCategoryRequest struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Description    *string         `json:"description,omitempty"`
	ColorTheme     *string         `json:"colorTheme,omitempty"`
	Status         *string         `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	RequiredFields []RequiredField `json:"requiredFields,omitempty" validate:"dive"`
}

// AdminUser is a back-office account as listed under /users.
type AdminUser struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role" validate:"required,oneof=ADMIN SELLER CUSTOMER"`
	IsActive  bool   `json:"isActive"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN SELLER CUSTOMER"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type Location struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	StaffCount int    `json:"staffCount"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

type CreateLocationRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	StaffCount *int   `json:"staffCount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateLocationRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	StaffCount *int    `json:"staffCount,omitempty" validate:"omitempty,gte=0"`
}

type HSNCode struct {
	ID          any    `json:"id,omitempty"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

// GSTRate ids are numeric on some deployments and strings on others.
type GSTRate struct {
	ID         any       `json:"id"`
	Name       string    `json:"name"`
	Percentage float64   `json:"percentage"`
	IsDefault  bool      `json:"isDefault"`
	HSNCodes   []HSNCode `json:"hsnCodes"`
}

type CreateGSTRateRequest struct {
	Name       string    `json:"name" validate:"required"`
	Percentage float64   `json:"percentage" validate:"gte=0,lte=100"`
	IsDefault  *bool     `json:"isDefault,omitempty"`
	HSNCodes   []HSNCode `json:"hsnCodes,omitempty" validate:"dive"`
}

type UpdateGSTRateRequest struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Percentage *float64  `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsDefault  *bool     `json:"isDefault,omitempty"`
	HSNCodes   []HSNCode `json:"hsnCodes,omitempty" validate:"dive"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
