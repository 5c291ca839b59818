package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"fmt"
)

const summaryDescriptionLimit = 100

// Summarize maps a recipe entity to the shared list/search projection.
func Summarize(r *entities.Recipe) domain.RecipeSummary {
	summary := domain.RecipeSummary{
		ID:                r.ID.String(),
		Title:             r.Title,
		Description:       TruncateDescription(r.Description),
		Rating:            r.Rating,
		CookTime:          r.CookTime,
		Difficulty:        r.Difficulty,
		DifficultyDisplay: entities.DifficultyLabel(r.Difficulty),
		ImageURL:          MainImageURL(r.Images),
		URL:               fmt.Sprintf("/recipes/%s/", r.ID),
	}
	if r.Author != nil {
		summary.Author = r.Author.Username
	}
	if r.Category != nil {
		summary.Category = r.Category.Name
	}
	return summary
}

// TruncateDescription shortens a description to 100 characters with an
// ellipsis, leaving shorter text untouched.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= summaryDescriptionLimit {
		return description
	}
	return string(runes[:summaryDescriptionLimit]) + "..."
}

// MainImageURL returns the recipe's main image reference, or nil when no
// image is flagged as main.
func MainImageURL(images []entities.RecipeImage) *string {
	for i := range images {
		if images[i].IsMain {
			url := images[i].ImageURL
			return &url
		}
	}
	return nil
}
