package domain

var (
	MessageSuccessSearchRecipes    = "recipes search completed"
	MessageSuccessReconcileRatings = "recipe ratings reconciled"

	MessageFailedSearchRecipes    = "failed to search recipes"
	MessageFailedReconcileRatings = "failed to reconcile recipe ratings"
)

type (
	// SearchCriteria carries the raw optional filters. Numeric bounds stay
	// strings: a non-numeric value means the filter is skipped, not an error.
	SearchCriteria struct {
		Query          string `json:"query" query:"q"`
		CategorySlug   string `json:"category" query:"category"`
		Difficulty     string `json:"difficulty" query:"difficulty"`
		MinRating      string `json:"min_rating" query:"min_rating"`
		MinCookTime    string `json:"min_cook_time" query:"min_cook_time"`
		MaxCookTime    string `json:"max_cook_time" query:"max_cook_time"`
		HasImage       bool   `json:"has_image" query:"has_image"`
		IngredientID   string `json:"ingredient" query:"ingredient"`
		IngredientName string `json:"ingredient_name" query:"ingredient_name"`
		SortBy         string `json:"sort_by" query:"sort_by"`
	}

	SearchPage struct {
		Recipes    []RecipeSummary `json:"recipes"`
		Page       int             `json:"page"`
		PageSize   int             `json:"page_size"`
		TotalCount int64           `json:"total_count"`
		TotalPages int64           `json:"total_pages"`
	}

	ReconcileRatingsResponse struct {
		RecipesChecked int `json:"recipes_checked"`
		RecipesUpdated int `json:"recipes_updated"`
	}
)
