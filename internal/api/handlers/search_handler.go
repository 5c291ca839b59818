package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/search"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		SearchRecipesJSON(c *fiber.Ctx) error
		ReconcileRatings(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

// SearchRecipes backs the results page: fixed page length, filters and
// sorting from the query string.
func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	criteria := new(domain.SearchCriteria)
	if err := c.QueryParser(criteria); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))

	res, err := h.searchService.SearchRecipes(c.Context(), *criteria, page)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

// SearchRecipesJSON is the API surface where clients choose a page size.
func (h *searchHandler) SearchRecipesJSON(c *fiber.Ctx) error {
	criteria := new(domain.SearchCriteria)
	if err := c.QueryParser(criteria); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "0"))

	res, err := h.searchService.SearchRecipesJSON(c.Context(), *criteria, page, pageSize)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

// ReconcileRatings repairs stored recipe ratings that drifted from their
// rating rows. Meant for operators, not end users.
func (h *searchHandler) ReconcileRatings(c *fiber.Ctx) error {
	res, err := h.searchService.ReconcileRatings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReconcileRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReconcileRatings)
}
