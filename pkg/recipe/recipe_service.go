package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/category"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeSummary, int64, error)
		GetMyRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeSummary, int64, error)
		GetLatestRecipes(ctx context.Context, limit int) ([]domain.RecipeSummary, error)
		AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) error
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) (decimal.Decimal, error)
		RemoveRating(ctx context.Context, recipeID string, userID string) (decimal.Decimal, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) error
		DeleteRecipeImage(ctx context.Context, imageID string, userID string) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	if req.CookTime <= 0 {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidCookTime
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = entities.DifficultyEasy
	}
	if !validDifficulty(difficulty) {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidDifficulty
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipeID := uuid.New()
	lines, err := ComputeLineDiff(recipeID, nil, req.Ingredients)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          recipeID,
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Instruction: req.Instruction,
		CookTime:    req.CookTime,
		CategoryID:  categoryID,
		Difficulty:  difficulty,
		Rating:      decimal.Zero,
		Ingredients: lines.ToCreate,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) error {
	recipe, err := s.ownedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instruction != "" {
		recipe.Instruction = req.Instruction
	}
	if req.CookTime > 0 {
		recipe.CookTime = req.CookTime
	}
	if req.Difficulty != "" {
		if !validDifficulty(req.Difficulty) {
			return domain.ErrInvalidDifficulty
		}
		recipe.Difficulty = req.Difficulty
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return err
		}
		recipe.CategoryID = categoryID
	}

	var lines LineDiff
	if req.Ingredients != nil {
		lines, err = ComputeLineDiff(recipe.ID, recipe.Ingredients, req.Ingredients)
		if err != nil {
			return err
		}
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe, lines)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	res := domain.RecipeDetailResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Description: recipe.Description,
		Instruction: recipe.Instruction,
		CookTime:    recipe.CookTime,
		Difficulty:  recipe.Difficulty,
		Rating:      recipe.Rating,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
	if recipe.Author != nil {
		res.Author = recipe.Author.Username
	}
	if recipe.Category != nil {
		res.Category = recipe.Category.Name
	}

	res.Ingredients = make([]domain.RecipeIngredientLine, 0, len(recipe.Ingredients))
	for i := range recipe.Ingredients {
		line := recipe.Ingredients[i]
		item := domain.RecipeIngredientLine{
			ID:           line.ID.String(),
			IngredientID: line.IngredientID.String(),
			Amount:       line.Amount,
			Unit:         line.Unit,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
		}
		res.Ingredients = append(res.Ingredients, item)
	}

	res.Images = make([]domain.RecipeImageResponse, 0, len(recipe.Images))
	for i := range recipe.Images {
		img := recipe.Images[i]
		res.Images = append(res.Images, domain.RecipeImageResponse{
			ID:       img.ID.String(),
			ImageURL: img.ImageURL,
			IsMain:   img.IsMain,
			Position: img.Position,
		})
	}

	res.Comments = make([]domain.CommentResponse, 0, len(recipe.Comments))
	for i := range recipe.Comments {
		comment := recipe.Comments[i]
		item := domain.CommentResponse{
			ID:        comment.ID.String(),
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			item.Author = comment.User.Username
		}
		res.Comments = append(res.Comments, item)
	}

	if userID != "" {
		if userUUID, err := uuid.Parse(userID); err == nil {
			if value, err := s.recipeRepository.GetUserRating(ctx, recipe.ID, userUUID); err == nil {
				res.MyRating = value
			}
		}
	}

	return res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeSummary, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return summarizeAll(recipes), count, nil
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeSummary, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipesByAuthor(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return summarizeAll(recipes), count, nil
}

func (s *recipeService) GetLatestRecipes(ctx context.Context, limit int) ([]domain.RecipeSummary, error) {
	recipes, err := s.recipeRepository.GetLatestRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return summarizeAll(recipes), nil
}

func (s *recipeService) AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.AddComment(ctx, &entities.Comment{
		ID:        uuid.New(),
		RecipeID:  recipe.ID,
		UserID:    userUUID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	})
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) (decimal.Decimal, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return decimal.Zero, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrRecipeNotFound
		}
		return decimal.Zero, err
	}

	return s.recipeRepository.UpsertRating(ctx, &entities.Rating{
		ID:        uuid.New(),
		RecipeID:  recipe.ID,
		UserID:    userUUID,
		Value:     req.Value,
		CreatedAt: time.Now(),
	})
}

func (s *recipeService) RemoveRating(ctx context.Context, recipeID string, userID string) (decimal.Decimal, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return decimal.Zero, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return decimal.Zero, domain.ErrParseUUID
	}

	value, err := s.recipeRepository.DeleteRating(ctx, recipeUUID, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrRatingNotFound
		}
		return decimal.Zero, err
	}
	return value, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) error {
	recipe, err := s.ownedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	fileName := fmt.Sprintf("%s-%d%s", recipe.ID, time.Now().UnixNano(), ext)

	objectKey, err := s.s3.UploadFile(fileName, req.Image, "recipe-images", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrExtensionNotAllowed) {
			return domain.ErrInvalidImageFormat
		}
		return err
	}

	return s.recipeRepository.AddRecipeImage(ctx, &entities.RecipeImage{
		ID:       uuid.New(),
		RecipeID: recipe.ID,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
		IsMain:   req.IsMain,
		Position: req.Position,
	})
}

func (s *recipeService) DeleteRecipeImage(ctx context.Context, imageID string, userID string) error {
	image, err := s.recipeRepository.GetRecipeImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrImageNotFound
		}
		return err
	}

	if _, err := s.ownedRecipe(ctx, image.RecipeID.String(), userID); err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipeImage(ctx, imageID); err != nil {
		return err
	}

	// The bucket object goes last so a failed delete leaves at worst an
	// orphaned file, never a dangling URL.
	return s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(image.ImageURL))
}

func (s *recipeService) ownedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID.String() != userID {
		return nil, domain.ErrNotRecipeOwner
	}
	return recipe, nil
}

func (s *recipeService) resolveCategory(ctx context.Context, id string) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category.ID, nil
}

func validDifficulty(difficulty string) bool {
	switch difficulty {
	case entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard:
		return true
	}
	return false
}

func summarizeAll(recipes []*entities.Recipe) []domain.RecipeSummary {
	res := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, Summarize(r))
	}
	return res
}
