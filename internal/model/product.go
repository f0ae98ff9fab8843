package model

import "time"

// ProductCategory is the top-level catalog grouping
type ProductCategory string

const (
	CategoryJewelry ProductCategory = "jewelry"
	CategoryIdol    ProductCategory = "idol"
)

// Product represents a catalog item
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Subcategory string          `json:"subcategory"`
	Price       float64         `json:"price"`
	SalePrice   *float64        `json:"salePrice,omitempty"`
	Description string          `json:"description"`
	Details     string          `json:"details"`
	Images      []string        `json:"images"`
	Weight      string          `json:"weight"`
	Material    string          `json:"material"`
	Dimensions  string          `json:"dimensions,omitempty"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductInput carries the caller-supplied fields for a new product
type ProductInput struct {
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Subcategory string          `json:"subcategory"`
	Price       float64         `json:"price"`
	SalePrice   *float64        `json:"salePrice,omitempty"`
	Description string          `json:"description"`
	Details     string          `json:"details"`
	Images      []string        `json:"images"`
	Weight      string          `json:"weight"`
	Material    string          `json:"material"`
	Dimensions  string          `json:"dimensions,omitempty"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
}

// ProductPatch describes a partial product update; nil fields are left
// untouched
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Category    *ProductCategory `json:"category,omitempty"`
	Subcategory *string          `json:"subcategory,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	SalePrice   *float64         `json:"salePrice,omitempty"`
	Description *string          `json:"description,omitempty"`
	Details     *string          `json:"details,omitempty"`
	Images      *[]string        `json:"images,omitempty"`
	Weight      *string          `json:"weight,omitempty"`
	Material    *string          `json:"material,omitempty"`
	Dimensions  *string          `json:"dimensions,omitempty"`
	InStock     *bool            `json:"inStock,omitempty"`
	Featured    *bool            `json:"featured,omitempty"`
}
