package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type memoryRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe
	images  map[uuid.UUID]*entities.RecipeImage
	ratings map[uuid.UUID]map[uuid.UUID]int

	lastLineDiff LineDiff
}

func newMemoryRecipeRepository() *memoryRecipeRepository {
	return &memoryRecipeRepository{
		recipes: make(map[uuid.UUID]*entities.Recipe),
		images:  make(map[uuid.UUID]*entities.RecipeImage),
		ratings: make(map[uuid.UUID]map[uuid.UUID]int),
	}
}

func (m *memoryRecipeRepository) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	m.recipes[r.ID] = r
	return nil
}

func (m *memoryRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	r, ok := m.recipes[recipeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (m *memoryRecipeRepository) GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error) {
	return m.GetRecipeByID(ctx, id)
}

func (m *memoryRecipeRepository) GetRecipes(_ context.Context, _, _ int) ([]*entities.Recipe, int64, error) {
	var res []*entities.Recipe
	for _, r := range m.recipes {
		res = append(res, r)
	}
	return res, int64(len(res)), nil
}

func (m *memoryRecipeRepository) GetRecipesByAuthor(_ context.Context, authorID string, _, _ int) ([]*entities.Recipe, int64, error) {
	var res []*entities.Recipe
	for _, r := range m.recipes {
		if r.AuthorID.String() == authorID {
			res = append(res, r)
		}
	}
	return res, int64(len(res)), nil
}

func (m *memoryRecipeRepository) GetLatestRecipes(_ context.Context, _ int) ([]*entities.Recipe, error) {
	return nil, nil
}

func (m *memoryRecipeRepository) UpdateRecipe(_ context.Context, r *entities.Recipe, lines LineDiff) error {
	m.recipes[r.ID] = r
	m.lastLineDiff = lines
	return nil
}

func (m *memoryRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(m.recipes, recipeID)
	return nil
}

func (m *memoryRecipeRepository) AddComment(_ context.Context, comment *entities.Comment) error {
	r, ok := m.recipes[comment.RecipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Comments = append(r.Comments, *comment)
	return nil
}

func (m *memoryRecipeRepository) UpsertRating(_ context.Context, rt *entities.Rating) (decimal.Decimal, error) {
	r, ok := m.recipes[rt.RecipeID]
	if !ok {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	if m.ratings[rt.RecipeID] == nil {
		m.ratings[rt.RecipeID] = make(map[uuid.UUID]int)
	}
	m.ratings[rt.RecipeID][rt.UserID] = rt.Value

	var values []int
	for _, v := range m.ratings[rt.RecipeID] {
		values = append(values, v)
	}
	r.Rating = averageOf(values)
	return r.Rating, nil
}

func (m *memoryRecipeRepository) DeleteRating(_ context.Context, recipeID, userID uuid.UUID) (decimal.Decimal, error) {
	users := m.ratings[recipeID]
	if _, ok := users[userID]; !ok {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	delete(users, userID)

	var values []int
	for _, v := range users {
		values = append(values, v)
	}
	newValue := averageOf(values)
	if r, ok := m.recipes[recipeID]; ok {
		r.Rating = newValue
	}
	return newValue, nil
}

func (m *memoryRecipeRepository) GetUserRating(_ context.Context, recipeID, userID uuid.UUID) (int, error) {
	v, ok := m.ratings[recipeID][userID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (m *memoryRecipeRepository) AddRecipeImage(_ context.Context, image *entities.RecipeImage) error {
	m.images[image.ID] = image
	return nil
}

func (m *memoryRecipeRepository) GetRecipeImage(_ context.Context, id string) (*entities.RecipeImage, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	image, ok := m.images[imageID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return image, nil
}

func (m *memoryRecipeRepository) DeleteRecipeImage(_ context.Context, id string) error {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	if _, ok := m.images[imageID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.images, imageID)
	return nil
}

func averageOf(values []int) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(values)))).Round(2)
}

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entities.Category
}

func (f *fakeCategoryRepository) CreateCategory(_ context.Context, c *entities.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	c, ok := f.categories[categoryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepository) GetCategoryBySlug(_ context.Context, slug string) (*entities.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) GetCategories(_ context.Context, _, _ int) ([]*entities.Category, int64, error) {
	return nil, 0, nil
}

func (f *fakeCategoryRepository) CategoryExists(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

type fakeS3 struct {
	deleted []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.test.amazonaws.com/"
	if len(link) > len(prefix) {
		return link[len(prefix):]
	}
	return link
}

func serviceFixture() (RecipeService, *memoryRecipeRepository, *fakeCategoryRepository, *fakeS3) {
	repo := newMemoryRecipeRepository()
	categories := &fakeCategoryRepository{categories: make(map[uuid.UUID]*entities.Category)}
	s3 := &fakeS3{}
	return NewRecipeService(repo, categories, s3), repo, categories, s3
}

func ingredientLine(amount string) domain.RecipeIngredientLineRequest {
	return domain.RecipeIngredientLineRequest{
		IngredientID: uuid.New().String(),
		Amount:       amount,
		Unit:         "г",
	}
}

func TestCreateRecipe(t *testing.T) {
	service, repo, _, _ := serviceFixture()
	author := uuid.New().String()

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Борщ",
		Instruction: "Варить час.",
		CookTime:    60,
		Difficulty:  entities.DifficultyMedium,
		Ingredients: []domain.RecipeIngredientLineRequest{ingredientLine("300")},
	}, author)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "Борщ" || res.Difficulty != entities.DifficultyMedium {
		t.Errorf("unexpected response: %+v", res)
	}
	if !res.Rating.Equal(decimal.Zero) {
		t.Errorf("new recipe rating = %s, want 0", res.Rating)
	}
	if len(repo.recipes) != 1 {
		t.Fatalf("expected one stored recipe, got %d", len(repo.recipes))
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	service, _, _, _ := serviceFixture()
	author := uuid.New().String()
	ctx := context.Background()

	_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title: "Суп", Instruction: "...", CookTime: 0,
		Ingredients: []domain.RecipeIngredientLineRequest{ingredientLine("100")},
	}, author)
	if !errors.Is(err, domain.ErrInvalidCookTime) {
		t.Errorf("cook time 0: got %v, want ErrInvalidCookTime", err)
	}

	_, err = service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title: "Суп", Instruction: "...", CookTime: 30, Difficulty: "extreme",
		Ingredients: []domain.RecipeIngredientLineRequest{ingredientLine("100")},
	}, author)
	if !errors.Is(err, domain.ErrInvalidDifficulty) {
		t.Errorf("bad difficulty: got %v, want ErrInvalidDifficulty", err)
	}

	_, err = service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title: "Суп", Instruction: "...", CookTime: 30, CategoryID: uuid.New().String(),
		Ingredients: []domain.RecipeIngredientLineRequest{ingredientLine("100")},
	}, author)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("unknown category: got %v, want ErrCategoryNotFound", err)
	}
}

func TestUpdateRecipeOwnerCheck(t *testing.T) {
	service, repo, _, _ := serviceFixture()
	owner := uuid.New()
	recipeID := uuid.New()
	repo.recipes[recipeID] = &entities.Recipe{ID: recipeID, AuthorID: owner, Title: "Плов", CookTime: 90}

	err := service.UpdateRecipe(context.Background(), recipeID.String(), domain.UpdateRecipeRequest{Title: "Плов по-фергански"}, uuid.New().String())
	if !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("got %v, want ErrNotRecipeOwner", err)
	}

	if err := service.UpdateRecipe(context.Background(), recipeID.String(), domain.UpdateRecipeRequest{Title: "Плов по-фергански"}, owner.String()); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if repo.recipes[recipeID].Title != "Плов по-фергански" {
		t.Errorf("title not updated: %q", repo.recipes[recipeID].Title)
	}
}

func TestRateRecipeLifecycle(t *testing.T) {
	service, repo, _, _ := serviceFixture()
	recipeID := uuid.New()
	repo.recipes[recipeID] = &entities.Recipe{ID: recipeID, AuthorID: uuid.New(), Rating: decimal.Zero}
	ctx := context.Background()

	alice := uuid.New().String()
	bob := uuid.New().String()

	newRating, err := service.RateRecipe(ctx, recipeID.String(), domain.RateRecipeRequest{Value: 5}, alice)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if newRating.String() != "5" {
		t.Errorf("rating after one vote = %s, want 5", newRating)
	}

	newRating, err = service.RateRecipe(ctx, recipeID.String(), domain.RateRecipeRequest{Value: 4}, bob)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if newRating.String() != "4.5" {
		t.Errorf("rating after two votes = %s, want 4.5", newRating)
	}

	// Re-rating replaces, never stacks.
	newRating, err = service.RateRecipe(ctx, recipeID.String(), domain.RateRecipeRequest{Value: 1}, alice)
	if err != nil {
		t.Fatalf("re-rate: %v", err)
	}
	if newRating.String() != "2.5" {
		t.Errorf("rating after replace = %s, want 2.5", newRating)
	}

	newRating, err = service.RemoveRating(ctx, recipeID.String(), alice)
	if err != nil {
		t.Fatalf("remove rating: %v", err)
	}
	if newRating.String() != "4" {
		t.Errorf("rating after removal = %s, want 4", newRating)
	}

	_, err = service.RemoveRating(ctx, recipeID.String(), alice)
	if !errors.Is(err, domain.ErrRatingNotFound) {
		t.Errorf("second removal: got %v, want ErrRatingNotFound", err)
	}
}

func TestRateUnknownRecipe(t *testing.T) {
	service, _, _, _ := serviceFixture()

	_, err := service.RateRecipe(context.Background(), uuid.New().String(), domain.RateRecipeRequest{Value: 3}, uuid.New().String())
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("got %v, want ErrRecipeNotFound", err)
	}
}

func TestDeleteRecipeImage(t *testing.T) {
	service, repo, _, s3 := serviceFixture()
	owner := uuid.New()
	recipeID := uuid.New()
	imageID := uuid.New()
	repo.recipes[recipeID] = &entities.Recipe{ID: recipeID, AuthorID: owner}
	repo.images[imageID] = &entities.RecipeImage{
		ID:       imageID,
		RecipeID: recipeID,
		ImageURL: "https://bucket.s3.test.amazonaws.com/recipe-images/cover.jpg",
	}

	err := service.DeleteRecipeImage(context.Background(), imageID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrNotRecipeOwner) {
		t.Fatalf("got %v, want ErrNotRecipeOwner", err)
	}

	if err := service.DeleteRecipeImage(context.Background(), imageID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.images) != 0 {
		t.Error("image row should be gone")
	}
	if len(s3.deleted) != 1 || s3.deleted[0] != "recipe-images/cover.jpg" {
		t.Errorf("bucket object not removed: %v", s3.deleted)
	}
}
