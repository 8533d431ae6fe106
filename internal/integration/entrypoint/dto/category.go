package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
)

// CategoryRequest represents the request body for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse represents the owner's categories.
type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}

// SeedCategoriesResponse reports how many default categories were inserted.
type SeedCategoriesResponse struct {
	Created int `json:"created"`
}

// ToCategoryResponse converts a category output to its DTO.
func ToCategoryResponse(c *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}
