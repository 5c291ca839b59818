package ingredient

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient // key: id
	usage       map[string]int64                // id -> referencing recipe lines
}

func newFakeIngredientRepository(names ...string) *fakeIngredientRepository {
	repo := &fakeIngredientRepository{
		ingredients: make(map[string]*entities.Ingredient),
		usage:       make(map[string]int64),
	}
	for _, name := range names {
		id := uuid.New()
		repo.ingredients[id.String()] = &entities.Ingredient{ID: id, Name: name}
	}
	return repo
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	f.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	if ingredient, ok := f.ingredients[id]; ok {
		return ingredient, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepository) GetIngredientByName(_ context.Context, name string) (*entities.Ingredient, error) {
	for _, ingredient := range f.ingredients {
		if strings.EqualFold(ingredient.Name, name) {
			return ingredient, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, page, limit int) ([]*entities.Ingredient, int64, error) {
	all := make([]*entities.Ingredient, 0, len(f.ingredients))
	for _, ingredient := range f.ingredients {
		all = append(all, ingredient)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, int64(len(all)), nil
}

func (f *fakeIngredientRepository) SearchIngredients(_ context.Context, pattern string, limit int) ([]*entities.Ingredient, error) {
	var res []*entities.Ingredient
	for _, ingredient := range f.ingredients {
		if strings.Contains(strings.ToLower(ingredient.Name), strings.ToLower(pattern)) {
			res = append(res, ingredient)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeIngredientRepository) GetIngredientNames(_ context.Context) ([]string, error) {
	var names []string
	for _, ingredient := range f.ingredients {
		names = append(names, ingredient.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeIngredientRepository) CountIngredientUsage(_ context.Context, id string) (int64, error) {
	return f.usage[id], nil
}

func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(f.ingredients, id)
	return nil
}

func TestProposeNewIngredientRejectsExactDuplicate(t *testing.T) {
	repo := newFakeIngredientRepository("Томаты")
	service := NewIngredientService(repo)

	_, err := service.ProposeNewIngredient(context.Background(), domain.CreateIngredientRequest{Name: "томаты"})
	if !errors.Is(err, domain.ErrIngredientExists) {
		t.Fatalf("expected ErrIngredientExists, got: %v", err)
	}
}

func TestProposeNewIngredientSuggestsNearDuplicates(t *testing.T) {
	repo := newFakeIngredientRepository("Томаты", "Огурцы")
	service := NewIngredientService(repo)

	res, err := service.ProposeNewIngredient(context.Background(), domain.CreateIngredientRequest{Name: "Томат"})
	if !errors.Is(err, domain.ErrSimilarIngredients) {
		t.Fatalf("expected ErrSimilarIngredients, got: %v", err)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0] != "Томаты" {
		t.Fatalf("unexpected suggestions: %v", res.Suggestions)
	}
	if _, err := repo.GetIngredientByName(context.Background(), "Томат"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("near-duplicate must not be created")
	}
}

func TestProposeNewIngredientCreatesWhenNoMatch(t *testing.T) {
	repo := newFakeIngredientRepository("Томаты")
	service := NewIngredientService(repo)

	res, err := service.ProposeNewIngredient(context.Background(), domain.CreateIngredientRequest{Name: "Свекла", DefaultUnit: "г"})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if res.Ingredient == nil || res.Ingredient.Name != "Свекла" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, err := repo.GetIngredientByName(context.Background(), "Свекла"); err != nil {
		t.Fatalf("ingredient not persisted: %v", err)
	}
}

func TestProposeNewIngredientRejectsEmptyName(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	_, err := service.ProposeNewIngredient(context.Background(), domain.CreateIngredientRequest{Name: "   "})
	if !errors.Is(err, domain.ErrEmptyIngredientName) {
		t.Fatalf("expected ErrEmptyIngredientName, got: %v", err)
	}
}

func TestSimilarNames(t *testing.T) {
	existing := []string{"Томаты", "Томатная паста", "Огурцы", "Соль"}

	cases := []struct {
		name string
		want []string
	}{
		{"Томат", []string{"Томаты"}}, // length diff 1, substring
		{"Томатный сок", nil},         // too far from everything
		{"Сол", []string{"Соль"}},     // short near-duplicate
		{"Перец", nil},                // nothing similar
	}

	for _, tc := range cases {
		got := SimilarNames(tc.name, existing, 3)
		if len(got) != len(tc.want) {
			t.Fatalf("SimilarNames(%q) = %v, want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("SimilarNames(%q) = %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestDeleteIngredientProtectedWhileReferenced(t *testing.T) {
	repo := newFakeIngredientRepository("Мука")
	var id string
	for key := range repo.ingredients {
		id = key
	}
	repo.usage[id] = 2

	service := NewIngredientService(repo)

	if err := service.DeleteIngredient(context.Background(), id); !errors.Is(err, domain.ErrIngredientInUse) {
		t.Fatalf("expected ErrIngredientInUse, got: %v", err)
	}
	if _, err := repo.GetIngredientByID(context.Background(), id); err != nil {
		t.Fatalf("ingredient must remain after refused delete: %v", err)
	}

	repo.usage[id] = 0
	if err := service.DeleteIngredient(context.Background(), id); err != nil {
		t.Fatalf("delete unreferenced: %v", err)
	}
	if _, err := repo.GetIngredientByID(context.Background(), id); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("ingredient should be gone")
	}
}

func TestDeleteIngredientNotFound(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	if err := service.DeleteIngredient(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("expected ErrIngredientNotFound, got: %v", err)
	}
}
