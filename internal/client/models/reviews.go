package models

const (
	ReviewPublished = "PUBLISHED"
	ReviewPending   = "PENDING"
	ReviewHidden    = "HIDDEN"
)

type Review struct {
	ID               string  `json:"id"`
	CustomerID       string  `json:"customerId"`
	ProductID        string  `json:"productId"`
	Rating           int     `json:"rating"`
	ReviewText       string  `json:"reviewText"`
	Status           string  `json:"status"`
	CustomerImageURL *string `json:"customerImageUrl,omitempty"`
	CustomerName     string  `json:"customerName,omitempty"`
	ProductName      string  `json:"productName,omitempty"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	UpdatedAt        string  `json:"updatedAt,omitempty"`
}

type ReviewStats struct {
	TotalReviews       int            `json:"totalReviews"`
	AverageRating      float64        `json:"averageRating"`
	Published          int            `json:"published"`
	Pending            int            `json:"pending"`
	Hidden             int            `json:"hidden"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}

type CreateReviewRequest struct {
	CustomerID       string `json:"customerId" validate:"required"`
	ProductID        string `json:"productId" validate:"required"`
	Rating           int    `json:"rating" validate:"min=1,max=5"`
	ReviewText       string `json:"reviewText" validate:"required"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=PUBLISHED PENDING HIDDEN"`
	CustomerImageURL string `json:"customerImageUrl,omitempty"`
}

type UpdateReviewRequest struct {
	Rating           *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ReviewText       *string `json:"reviewText,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=PUBLISHED PENDING HIDDEN"`
	CustomerImageURL *string `json:"customerImageUrl,omitempty"`
}

type ReviewFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ReviewPage is the normalized result of a review listing.
// Total is zero when the backend returned a bare array.
type ReviewPage struct {
	Items []Review `json:"items"`
	Total int      `json:"total,omitempty"`
}
