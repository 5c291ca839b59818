package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDiff is the batch of ingredient line changes to apply atomically when
// a recipe is created or edited.
type LineDiff struct {
	ToCreate []entities.RecipeIngredient
	ToUpdate []entities.RecipeIngredient
	ToDelete []uuid.UUID
}

// ComputeLineDiff compares the persisted ingredient lines with the desired
// final set, keyed by ingredient, and returns what to create, update and
// delete. A desired set that names the same ingredient twice is rejected.
func ComputeLineDiff(recipeID uuid.UUID, current []entities.RecipeIngredient, desired []domain.RecipeIngredientLineRequest) (LineDiff, error) {
	existing := make(map[uuid.UUID]entities.RecipeIngredient, len(current))
	for _, line := range current {
		existing[line.IngredientID] = line
	}

	var diff LineDiff
	seen := make(map[uuid.UUID]bool, len(desired))

	for _, req := range desired {
		ingredientID, err := uuid.Parse(req.IngredientID)
		if err != nil {
			return LineDiff{}, domain.ErrParseUUID
		}
		if seen[ingredientID] {
			return LineDiff{}, domain.ErrDuplicateIngredientLine
		}
		seen[ingredientID] = true

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil || !amount.IsPositive() {
			return LineDiff{}, domain.ErrInvalidAmount
		}

		if line, ok := existing[ingredientID]; ok {
			if !line.Amount.Equal(amount) || line.Unit != req.Unit {
				line.Amount = amount
				line.Unit = req.Unit
				diff.ToUpdate = append(diff.ToUpdate, line)
			}
			continue
		}

		diff.ToCreate = append(diff.ToCreate, entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Amount:       amount,
			Unit:         req.Unit,
		})
	}

	for _, line := range current {
		if !seen[line.IngredientID] {
			diff.ToDelete = append(diff.ToDelete, line.ID)
		}
	}

	return diff, nil
}
