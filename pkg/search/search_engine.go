package search

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultPageSize is the page length of the search results page.
// MaxPageSize caps page lengths requested through the JSON surface.
const (
	DefaultPageSize = 10
	MaxPageSize     = 20
)

var sortOptions = map[string]string{
	"newest":      "recipes.created_at desc",
	"oldest":      "recipes.created_at asc",
	"rating_high": "recipes.rating desc, recipes.created_at desc",
	"rating_low":  "recipes.rating asc, recipes.created_at desc",
	"time_short":  "recipes.cook_time asc, recipes.created_at desc",
	"time_long":   "recipes.cook_time desc, recipes.created_at desc",
	"title_a_z":   "recipes.title asc, recipes.created_at desc",
	"title_z_a":   "recipes.title desc, recipes.created_at desc",
}

// ResolveSort maps a sort key to an order clause, falling back to newest
// first for unknown keys.
func ResolveSort(sortBy string) string {
	if order, ok := sortOptions[sortBy]; ok {
		return order
	}
	return sortOptions["newest"]
}

// Filters is the parsed, typed form of the raw search criteria.
type Filters struct {
	Words          []string
	CategorySlug   string
	Difficulty     string
	MinRating      *decimal.Decimal
	MinCookTime    *int
	MaxCookTime    *int
	HasImage       bool
	IngredientID   string
	IngredientName string
}

// ParseFilters converts raw criteria into filters. Numeric values that do
// not parse are dropped rather than rejected.
func ParseFilters(c domain.SearchCriteria) Filters {
	f := Filters{
		CategorySlug:   strings.TrimSpace(c.CategorySlug),
		Difficulty:     strings.TrimSpace(c.Difficulty),
		HasImage:       c.HasImage,
		IngredientID:   strings.TrimSpace(c.IngredientID),
		IngredientName: strings.TrimSpace(c.IngredientName),
	}
	if query := strings.TrimSpace(c.Query); query != "" {
		f.Words = strings.Fields(query)
	}
	if v, err := decimal.NewFromString(strings.TrimSpace(c.MinRating)); err == nil {
		f.MinRating = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(c.MinCookTime)); err == nil {
		f.MinCookTime = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(c.MaxCookTime)); err == nil {
		f.MaxCookTime = &v
	}
	return f
}

// WordPattern builds a case-insensitive whole-word regex for Postgres `~*`.
// \y matches a word boundary and works for Cyrillic text.
func WordPattern(word string) string {
	return `\y` + regexp.QuoteMeta(word) + `\y`
}

// Apply narrows a recipe query with every active filter. Each query word
// must match the title, an ingredient name or the author's username; the
// EXISTS subqueries keep joined matches from duplicating rows.
func (f Filters) Apply(db *gorm.DB) *gorm.DB {
	q := db.Model(&entities.Recipe{})

	for _, word := range f.Words {
		pattern := WordPattern(word)
		q = q.Where(`(recipes.title ~* ?
			OR EXISTS (
				SELECT 1 FROM recipe_ingredients ri
				JOIN ingredients i ON i.id = ri.ingredient_id
				WHERE ri.recipe_id = recipes.id AND i.name ~* ?)
			OR EXISTS (
				SELECT 1 FROM users u
				WHERE u.id = recipes.author_id AND u.username ~* ?))`,
			pattern, pattern, pattern)
	}

	if f.CategorySlug != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM categories c
			WHERE c.id = recipes.category_id AND c.slug = ?)`, f.CategorySlug)
	}
	if f.Difficulty != "" {
		q = q.Where("recipes.difficulty = ?", f.Difficulty)
	}
	if f.MinRating != nil {
		q = q.Where("recipes.rating >= ?", *f.MinRating)
	}
	if f.MinCookTime != nil {
		q = q.Where("recipes.cook_time >= ?", *f.MinCookTime)
	}
	if f.MaxCookTime != nil {
		q = q.Where("recipes.cook_time <= ?", *f.MaxCookTime)
	}
	if f.HasImage {
		q = q.Where(`EXISTS (
			SELECT 1 FROM recipe_images img
			WHERE img.recipe_id = recipes.id)`)
	}
	if f.IngredientID != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM recipe_ingredients ri
			WHERE ri.recipe_id = recipes.id AND ri.ingredient_id = ?)`, f.IngredientID)
	}
	if f.IngredientName != "" {
		q = q.Where(`EXISTS (
			SELECT 1 FROM recipe_ingredients ri
			JOIN ingredients i ON i.id = ri.ingredient_id
			WHERE ri.recipe_id = recipes.id AND i.name ILIKE ?)`,
			"%"+f.IngredientName+"%")
	}

	return q
}

// NormalizePage clamps the requested page to 1 or greater.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePageSize clamps a requested page size to [1, MaxPageSize],
// defaulting when unset.
func NormalizePageSize(size int) int {
	if size < 1 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// NormalizeJSONPageSize clamps like NormalizePageSize but defaults to
// MaxPageSize when the caller picks no size: the lightweight JSON surface
// serves the first MaxPageSize results unless asked for fewer.
func NormalizeJSONPageSize(size int) int {
	if size < 1 {
		return MaxPageSize
	}
	return NormalizePageSize(size)
}

// TotalPages computes the page count for a result total.
func TotalPages(total int64, pageSize int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
