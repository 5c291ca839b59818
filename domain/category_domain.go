package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required,max=100"`
		Slug string `json:"slug" validate:"omitempty,max=120"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
)
