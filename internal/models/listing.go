package models

import (
	"time"

	"github.com/lib/pq"
)

// Типы объявлений.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// Ограничения на количество изображений в объявлении.
const (
	MinImageURLs = 1
	MaxImageURLs = 6
)

// Listing представляет объявление о продаже или аренде недвижимости.
// ImageURLs хранится в Postgres как text[], поэтому используем pq.StringArray.
type Listing struct {
	ID            int64          `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	Address       string         `db:"address" json:"address"`
	Type          string         `db:"type" json:"type"` // sale | rent
	Bedrooms      int            `db:"bedrooms" json:"bedrooms"`
	Bathrooms     int            `db:"bathrooms" json:"bathrooms"`
	RegularPrice  float64        `db:"regular_price" json:"regularPrice"`
	DiscountPrice float64        `db:"discount_price" json:"discountPrice"`
	Offer         bool           `db:"offer" json:"offer"`
	Parking       bool           `db:"parking" json:"parking"`
	Furnished     bool           `db:"furnished" json:"furnished"`
	ImageURLs     pq.StringArray `db:"image_urls" json:"imageUrls"`
	UserRef       int64          `db:"user_ref" json:"userRef"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// ListingUpdate содержит разрешённый набор изменяемых полей объявления.
// ID и UserRef намеренно отсутствуют: владелец и идентификатор неизменяемы.
type ListingUpdate struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	Type          string   `json:"type"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	RegularPrice  float64  `json:"regularPrice"`
	DiscountPrice float64  `json:"discountPrice"`
	Offer         bool     `json:"offer"`
	Parking       bool     `json:"parking"`
	Furnished     bool     `json:"furnished"`
	ImageURLs     []string `json:"imageUrls"`
}
