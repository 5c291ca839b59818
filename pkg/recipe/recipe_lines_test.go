package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func line(recipeID, ingredientID uuid.UUID, amount string, unit string) entities.RecipeIngredient {
	return entities.RecipeIngredient{
		ID:           uuid.New(),
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       decimal.RequireFromString(amount),
		Unit:         unit,
	}
}

func TestComputeLineDiffCreate(t *testing.T) {
	recipeID := uuid.New()
	flour := uuid.New()
	sugar := uuid.New()

	diff, err := ComputeLineDiff(recipeID, nil, []domain.RecipeIngredientLineRequest{
		{IngredientID: flour.String(), Amount: "200", Unit: "г"},
		{IngredientID: sugar.String(), Amount: "50.5", Unit: "г"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.ToCreate) != 2 || len(diff.ToUpdate) != 0 || len(diff.ToDelete) != 0 {
		t.Fatalf("got create=%d update=%d delete=%d, want 2/0/0",
			len(diff.ToCreate), len(diff.ToUpdate), len(diff.ToDelete))
	}
	if diff.ToCreate[0].RecipeID != recipeID {
		t.Errorf("created line bound to recipe %s, want %s", diff.ToCreate[0].RecipeID, recipeID)
	}
	if !diff.ToCreate[1].Amount.Equal(decimal.RequireFromString("50.5")) {
		t.Errorf("amount = %s, want 50.5", diff.ToCreate[1].Amount)
	}
}

func TestComputeLineDiffUpdateAndDelete(t *testing.T) {
	recipeID := uuid.New()
	flour := uuid.New()
	sugar := uuid.New()
	milk := uuid.New()

	current := []entities.RecipeIngredient{
		line(recipeID, flour, "200", "г"),
		line(recipeID, sugar, "50", "г"),
		line(recipeID, milk, "250", "мл"),
	}

	diff, err := ComputeLineDiff(recipeID, current, []domain.RecipeIngredientLineRequest{
		{IngredientID: flour.String(), Amount: "300", Unit: "г"}, // changed amount
		{IngredientID: sugar.String(), Amount: "50", Unit: "г"},  // unchanged
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.ToCreate) != 0 {
		t.Errorf("expected no creates, got %d", len(diff.ToCreate))
	}
	if len(diff.ToUpdate) != 1 || !diff.ToUpdate[0].Amount.Equal(decimal.RequireFromString("300")) {
		t.Errorf("expected one update to 300, got %+v", diff.ToUpdate)
	}
	if len(diff.ToDelete) != 1 || diff.ToDelete[0] != current[2].ID {
		t.Errorf("expected milk line deleted, got %v", diff.ToDelete)
	}
}

func TestComputeLineDiffUnitOnlyChange(t *testing.T) {
	recipeID := uuid.New()
	flour := uuid.New()
	current := []entities.RecipeIngredient{line(recipeID, flour, "200", "г")}

	diff, err := ComputeLineDiff(recipeID, current, []domain.RecipeIngredientLineRequest{
		{IngredientID: flour.String(), Amount: "200", Unit: "кг"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.ToUpdate) != 1 || diff.ToUpdate[0].Unit != "кг" {
		t.Errorf("expected unit update, got %+v", diff.ToUpdate)
	}
}

func TestComputeLineDiffRejectsDuplicateIngredient(t *testing.T) {
	id := uuid.New().String()
	_, err := ComputeLineDiff(uuid.New(), nil, []domain.RecipeIngredientLineRequest{
		{IngredientID: id, Amount: "100"},
		{IngredientID: id, Amount: "200"},
	})
	if !errors.Is(err, domain.ErrDuplicateIngredientLine) {
		t.Fatalf("got %v, want ErrDuplicateIngredientLine", err)
	}
}

func TestComputeLineDiffRejectsBadAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "0", "-5"} {
		_, err := ComputeLineDiff(uuid.New(), nil, []domain.RecipeIngredientLineRequest{
			{IngredientID: uuid.New().String(), Amount: amount},
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %q: got %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestComputeLineDiffRejectsBadUUID(t *testing.T) {
	_, err := ComputeLineDiff(uuid.New(), nil, []domain.RecipeIngredientLineRequest{
		{IngredientID: "not-a-uuid", Amount: "100"},
	})
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("got %v, want ErrParseUUID", err)
	}
}

func TestTruncateDescription(t *testing.T) {
	short := "Простой летний салат"
	if got := TruncateDescription(short); got != short {
		t.Errorf("short description changed: %q", got)
	}

	long := strings.Repeat("о", 150)
	got := TruncateDescription(long)
	if len([]rune(got)) != summaryDescriptionLimit+3 {
		t.Errorf("truncated length = %d runes, want %d", len([]rune(got)), summaryDescriptionLimit+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated description missing ellipsis: %q", got)
	}
}

func TestMainImageURL(t *testing.T) {
	images := []entities.RecipeImage{
		{ImageURL: "https://cdn.example.com/a.jpg", IsMain: false},
		{ImageURL: "https://cdn.example.com/b.jpg", IsMain: true},
	}
	got := MainImageURL(images)
	if got == nil || *got != "https://cdn.example.com/b.jpg" {
		t.Errorf("got %v, want main image URL", got)
	}
	if MainImageURL(nil) != nil {
		t.Error("expected nil for recipe without images")
	}
	if MainImageURL(images[:1]) != nil {
		t.Error("expected nil when no image is flagged main")
	}
}
