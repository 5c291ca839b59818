package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/collection"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		CreateCollection(c *fiber.Ctx) error
		UpdateCollection(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
		GetMyCollections(c *fiber.Ctx) error
		GetPublicCollections(c *fiber.Ctx) error
		GetCollectionDetail(c *fiber.Ctx) error
		ToggleRecipe(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func collectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCollectionNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrNotInCollection):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotCollectionOwner),
		errors.Is(err, domain.ErrCollectionPrivate):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyInCollection):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedCreateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *collectionHandler) UpdateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionID := c.Params("id")
	req := new(domain.UpdateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	if err := h.collectionService.UpdateCollection(c.Context(), collectionID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedUpdateCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionID := c.Params("id")

	if err := h.collectionService.DeleteCollection(c.Context(), collectionID, userID); err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedDeleteCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *collectionHandler) GetMyCollections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.collectionService.GetMyCollections(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetPublicCollections(c *fiber.Ctx) error {
	res, err := h.collectionService.GetPublicCollections(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetCollectionDetail(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	collectionID := c.Params("id")

	res, err := h.collectionService.GetCollectionDetail(c.Context(), collectionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedGetCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollection)
}

func (h *collectionHandler) ToggleRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	collectionID := c.Params("id")
	recipeID := c.Params("recipe_id")

	res, err := h.collectionService.ToggleRecipe(c.Context(), collectionID, recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedToggleCollection, err)
	}

	message := domain.MessageSuccessRemoveFromCollection
	if res.InCollection {
		message = domain.MessageSuccessAddToCollection
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *collectionHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CollectionItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCollection, err)
	}

	if err := h.collectionService.AddRecipe(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedAddToCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToCollection)
}

func (h *collectionHandler) RemoveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CollectionItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFromCollection, err)
	}

	if err := h.collectionService.RemoveRecipe(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, collectionErrorStatus(err), domain.MessageFailedRemoveFromCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFromCollection)
}
