package models

// Ref is the {id, name} shape the backend embeds for related records.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductMedia struct {
	ID    string `json:"id,omitempty"`
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type" validate:"required"`
	Alt   string `json:"alt,omitempty"`
	Order int    `json:"order,omitempty"`
}

type ProductVariant struct {
	OptionName    string   `json:"optionName" validate:"required"`
	OptionValue   string   `json:"optionValue" validate:"required"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
	SKUOverride   string   `json:"skuOverride,omitempty"`
}

type SizeMeasurement struct {
	Key   string  `json:"key" validate:"required"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit" validate:"required"`
}

type ProductSize struct {
	SizeName      string            `json:"sizeName" validate:"required"`
	StockQuantity int               `json:"stockQuantity" validate:"gte=0"`
	Measurements  []SizeMeasurement `json:"measurements,omitempty" validate:"dive"`
}

type ProductVendor struct {
	ID                string `json:"id"`
	CompanyName       string `json:"companyName"`
	ContactPersonName string `json:"contactPersonName"`
}

type ProductCollection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Product struct {
	ID                   string              `json:"id"`
	Title                string              `json:"title"`
	ProductDescription   *string             `json:"productDescription"`
	ProductDetails       *string             `json:"productDetails"`
	FitAndFabric         *string             `json:"fitAndFabric"`
	ShippingAndReturns   *string             `json:"shippingAndReturns"`
	Status               string              `json:"status"`
	PublishOnlineStore   bool                `json:"publishOnlineStore"`
	PublishPOS           bool                `json:"publishPOS"`
	MRP                  float64             `json:"mrp"`
	CompareAtPrice       *float64            `json:"compareAtPrice"`
	DiscountType         *string             `json:"discountType"`
	DiscountValue        *float64            `json:"discountValue"`
	InventoryTracked     bool                `json:"inventoryTracked"`
	Quantity             int                 `json:"quantity"`
	SKU                  *string             `json:"sku"`
	Barcode              *string             `json:"barcode"`
	AllowOutOfStockSales bool                `json:"allowOutOfStockSales"`
	IsPhysicalProduct    bool                `json:"isPhysicalProduct"`
	Weight               *float64            `json:"weight"`
	WeightUnit           *string             `json:"weightUnit"`
	CountryOfOrigin      *string             `json:"countryOfOrigin"`
	CategoryID           *string             `json:"categoryId"`
	VendorID             *string             `json:"vendorId"`
	ProductType          *string             `json:"productType"`
	ThemeTemplate        *string             `json:"themeTemplate"`
	Tags                 []string            `json:"tags"`
	CreatedAt            string              `json:"createdAt,omitempty"`
	UpdatedAt            string              `json:"updatedAt,omitempty"`
	Category             *Ref                `json:"category"`
	Vendor               *ProductVendor      `json:"vendor"`
	Collections          []ProductCollection `json:"collections"`
	Media                []ProductMedia      `json:"media"`
	Variants             []ProductVariant    `json:"variants"`
	Sizes                []ProductSize       `json:"sizes"`
}

type CreateProductRequest struct {
	Title                string           `json:"title" validate:"required"`
	ProductDescription   string           `json:"productDescription,omitempty"`
	ProductDetails       string           `json:"productDetails,omitempty"`
	FitAndFabric         string           `json:"fitAndFabric,omitempty"`
	ShippingAndReturns   string           `json:"shippingAndReturns,omitempty"`
	Status               string           `json:"status,omitempty"`
	PublishOnlineStore   *bool            `json:"publishOnlineStore,omitempty"`
	PublishPOS           *bool            `json:"publishPOS,omitempty"`
	MRP                  float64          `json:"mrp" validate:"gte=0"`
	CompareAtPrice       *float64         `json:"compareAtPrice,omitempty" validate:"omitempty,gte=0"`
	DiscountType         string           `json:"discountType,omitempty" validate:"omitempty,oneof=PERCENTAGE FLAT"`
	DiscountValue        *float64         `json:"discountValue,omitempty" validate:"omitempty,gte=0"`
	InventoryTracked     *bool            `json:"inventoryTracked,omitempty"`
	Quantity             *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	SKU                  string           `json:"sku,omitempty"`
	Barcode              string           `json:"barcode,omitempty"`
	AllowOutOfStockSales *bool            `json:"allowOutOfStockSales,omitempty"`
	IsPhysicalProduct    *bool            `json:"isPhysicalProduct,omitempty"`
	Weight               *float64         `json:"weight,omitempty" validate:"omitempty,gte=0"`
	WeightUnit           string           `json:"weightUnit,omitempty" validate:"omitempty,oneof=GRAM KG"`
	CountryOfOrigin      string           `json:"countryOfOrigin,omitempty"`
	CategoryID           string           `json:"categoryId,omitempty"`
	VendorID             string           `json:"vendorId,omitempty"`
	ProductType          string           `json:"productType,omitempty" validate:"omitempty,oneof=PHYSICAL DIGITAL"`
	ThemeTemplate        string           `json:"themeTemplate,omitempty" validate:"omitempty,oneof=DEFAULT_PRODUCT FEATURED_PRODUCT CUSTOM_PRODUCT"`
	Tags                 []string         `json:"tags,omitempty"`
	CollectionIDs        []string         `json:"collectionIds,omitempty"`
	Media                []ProductMedia   `json:"media,omitempty" validate:"dive"`
	Variants             []ProductVariant `json:"variants,omitempty" validate:"dive"`
	Sizes                []ProductSize    `json:"sizes,omitempty" validate:"dive"`
}

// UpdateProductRequest is a partial product; nil fields are left untouched.
type UpdateProductRequest struct {
	Title              *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	ProductDescription *string          `json:"productDescription,omitempty"`
	Status             *string          `json:"status,omitempty"`
	PublishOnlineStore *bool            `json:"publishOnlineStore,omitempty"`
	PublishPOS         *bool            `json:"publishPOS,omitempty"`
	MRP                *float64         `json:"mrp,omitempty" validate:"omitempty,gte=0"`
	CompareAtPrice     *float64         `json:"compareAtPrice,omitempty" validate:"omitempty,gte=0"`
	DiscountType       *string          `json:"discountType,omitempty" validate:"omitempty,oneof=PERCENTAGE FLAT"`
	DiscountValue      *float64         `json:"discountValue,omitempty" validate:"omitempty,gte=0"`
	Quantity           *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	SKU                *string          `json:"sku,omitempty"`
	CategoryID         *string          `json:"categoryId,omitempty"`
	VendorID           *string          `json:"vendorId,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	CollectionIDs      []string         `json:"collectionIds,omitempty"`
	Media              []ProductMedia   `json:"media,omitempty" validate:"dive"`
	Variants           []ProductVariant `json:"variants,omitempty" validate:"dive"`
	Sizes              []ProductSize    `json:"sizes,omitempty" validate:"dive"`
}

type Category struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Headline         string  `json:"headline"`
	ShortDescription string  `json:"shortDescription"`
	Status           string  `json:"status"`
	ThumbnailImage   *string `json:"thumbnailImage"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
	Products         []Ref   `json:"products"`
}

type CreateCategoryRequest struct {
	Name             string   `json:"name" validate:"required"`
	Headline         string   `json:"headline" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	Status           string   `json:"status" validate:"required"`
	ThumbnailImage   string   `json:"thumbnailImage,omitempty"`
	ProductIDs       []string `json:"productIds,omitempty"`
}

type UpdateCategoryRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Headline         *string  `json:"headline,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Status           *string  `json:"status,omitempty"`
	ThumbnailImage   *string  `json:"thumbnailImage,omitempty"`
	ProductIDs       []string `json:"productIds,omitempty"`
}

type Collection struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Status             string  `json:"status"`
	PublishOnlineStore bool    `json:"publishOnlineStore"`
	PublishPOS         bool    `json:"publishPOS"`
	Image              *string `json:"image"`
	ThemeTemplate      string  `json:"themeTemplate"`
	Type               string  `json:"type"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
	Products           []Ref   `json:"products"`
}

type CreateCollectionRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description,omitempty"`
	Status             string   `json:"status,omitempty"`
	PublishOnlineStore *bool    `json:"publishOnlineStore,omitempty"`
	PublishPOS         *bool    `json:"publishPOS,omitempty"`
	Image              string   `json:"image,omitempty"`
	ThemeTemplate      string   `json:"themeTemplate,omitempty"`
	Type               string   `json:"type,omitempty" validate:"omitempty,oneof=MANUAL SMART"`
	ProductIDs         []string `json:"productIds,omitempty"`
}

type UpdateCollectionRequest struct {
	Title              *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description        *string  `json:"description,omitempty"`
	Status             *string  `json:"status,omitempty"`
	PublishOnlineStore *bool    `json:"publishOnlineStore,omitempty"`
	PublishPOS         *bool    `json:"publishPOS,omitempty"`
	Image              *string  `json:"image,omitempty"`
	ThemeTemplate      *string  `json:"themeTemplate,omitempty"`
	Type               *string  `json:"type,omitempty" validate:"omitempty,oneof=MANUAL SMART"`
	ProductIDs         []string `json:"productIds,omitempty"`
}

type Design struct {
	ID            string  `json:"id"`
	DesignName    string  `json:"designName"`
	Description   *string `json:"description"`
	CategoryID    string  `json:"categoryId"`
	SubcategoryID string  `json:"subcategoryId"`
	ImageURL      string  `json:"imageUrl"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
	Category      *Ref    `json:"category,omitempty"`
	Subcategory   *Ref    `json:"subcategory,omitempty"`
}

type CreateDesignRequest struct {
	DesignName    string `json:"designName" validate:"required"`
	Description   string `json:"description,omitempty"`
	CategoryID    string `json:"categoryId" validate:"required"`
	SubcategoryID string `json:"subcategoryId" validate:"required"`
	ImageURL      string `json:"imageUrl" validate:"required"`
}

type UpdateDesignRequest struct {
	DesignName    *string `json:"designName,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty"`
	CategoryID    *string `json:"categoryId,omitempty"`
	SubcategoryID *string `json:"subcategoryId,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

type GalleryImage struct {
	ID            string   `json:"id"`
	ImageURL      string   `json:"imageUrl"`
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	CategoryID    string   `json:"categoryId"`
	SubcategoryID string   `json:"subcategoryId"`
	Tags          []string `json:"tags"`
	IsPublic      bool     `json:"isPublic"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	Category      *Ref     `json:"category,omitempty"`
	Subcategory   *Ref     `json:"subcategory,omitempty"`
}

type CreateGalleryRequest struct {
	ImageURL      string   `json:"imageUrl" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description,omitempty"`
	CategoryID    string   `json:"categoryId" validate:"required"`
	SubcategoryID string   `json:"subcategoryId" validate:"required"`
	Tags          []string `json:"tags,omitempty"`
	IsPublic      *bool    `json:"isPublic,omitempty"`
}

type UpdateGalleryRequest struct {
	ImageURL      *string  `json:"imageUrl,omitempty"`
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description   *string  `json:"description,omitempty"`
	CategoryID    *string  `json:"categoryId,omitempty"`
	SubcategoryID *string  `json:"subcategoryId,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	IsPublic      *bool    `json:"isPublic,omitempty"`
}

// ImageFilter narrows design and gallery listings. IsPublic is only
// understood by the gallery.
type ImageFilter struct {
	CategoryID    string
	SubcategoryID string
	IsPublic      *bool
}

type InventoryItem struct {
	ID           string `json:"id"`
	ItemName     string `json:"itemName"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ReorderLevel int    `json:"reorderLevel"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type CreateInventoryItemRequest struct {
	ItemName     string `json:"itemName" validate:"required"`
	SKU          string `json:"sku" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	Unit         string `json:"unit" validate:"required"`
	ReorderLevel int    `json:"reorderLevel" validate:"gte=0"`
}

type TailorCategory struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	SortOrder   int              `json:"sortOrder"`
	ParentID    *string          `json:"parentId"`
	Children    []TailorCategory `json:"children,omitempty"`
}

type CreateTailorCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

type UpdateTailorCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

type SortOrderItem struct {
	ID        string `json:"id" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

type ReorderTailorCategoriesRequest struct {
	Items []SortOrderItem `json:"items" validate:"required,min=1,dive"`
}
