package recipes

import (
	"context"
	"fmt"

	"github.com/coldhands175/globedine/models"
	"github.com/coldhands175/globedine/region"
)

// MockSource is the bundled offline dataset, usable wherever the remote
// recipe API is unavailable or undesirable. It implements Fetcher and is
// fully deterministic: the same cuisine always yields the same records,
// with IDs minted from the per-cuisine ID-range table so the resolver's
// ID-range heuristic and this generator stay a single contract.
type MockSource struct{}

// NewMockSource creates the bundled mock data source
func NewMockSource() *MockSource {
	return &MockSource{}
}

// mockDish is one entry of the bundled dataset before ID assignment
type mockDish struct {
	title       string
	prepTime    string
	description string
	ingredients []string
	tags        []string
}

// mockCuisine anchors a cuisine's dishes to a home country and
// coordinates
type mockCuisine struct {
	country string
	region  string
	lat     float64
	lng     float64
	dishes  []mockDish
}

var mockCuisines = map[string]mockCuisine{
	"Italian": {
		country: "Italy", region: models.RegionEurope, lat: 41.87, lng: 12.56,
		dishes: []mockDish{
			{"Margherita Pizza", "30 min", "Classic Italian pizza with tomato, mozzarella, and basil.", []string{"pizza dough", "tomato sauce", "mozzarella", "basil"}, []string{"vegetarian"}},
			{"Spaghetti Carbonara", "25 min", "Roman pasta with egg, guanciale, and pecorino.", []string{"spaghetti", "egg", "guanciale", "pecorino"}, nil},
			{"Risotto alla Milanese", "40 min", "Creamy saffron risotto from Milan.", []string{"arborio rice", "saffron", "parmesan", "butter"}, []string{"vegetarian", "gluten-free"}},
			{"Lasagna al Forno", "90 min", "Layered Italian pasta bake with ragù and béchamel.", []string{"lasagna sheets", "beef ragù", "béchamel", "parmesan"}, nil},
			{"Tiramisu", "20 min", "Coffee-soaked Italian dessert with mascarpone.", []string{"ladyfingers", "mascarpone", "espresso", "cocoa"}, []string{"vegetarian"}},
		},
	},
	"Mexican": {
		country: "Mexico", region: models.RegionNorthAmerica, lat: 23.63, lng: -102.55,
		dishes: []mockDish{
			{"Tacos al Pastor", "45 min", "Marinated pork tacos with pineapple, a Mexican street classic.", []string{"pork", "corn tortillas", "pineapple", "achiote"}, nil},
			{"Guacamole", "10 min", "Fresh avocado dip with lime and cilantro.", []string{"avocado", "lime", "cilantro", "onion"}, []string{"vegan", "gluten-free"}},
			{"Chiles en Nogada", "80 min", "Stuffed poblano chiles in walnut sauce.", []string{"poblano chiles", "ground meat", "walnut sauce", "pomegranate"}, nil},
			{"Pozole Rojo", "120 min", "Hearty Mexican hominy stew with red chiles.", []string{"hominy", "pork", "guajillo chiles", "oregano"}, []string{"gluten-free"}},
			{"Enchiladas Verdes", "50 min", "Tortillas in green tomatillo salsa.", []string{"tortillas", "chicken", "tomatillo", "crema"}, nil},
		},
	},
	"Chinese": {
		country: "China", region: models.RegionAsia, lat: 35.86, lng: 104.19,
		dishes: []mockDish{
			{"Kung Pao Chicken", "30 min", "Sichuan stir-fry with peanuts and dried chiles.", []string{"chicken", "peanuts", "dried chiles", "sichuan pepper"}, nil},
			{"Mapo Tofu", "25 min", "Silken tofu in a fiery Chinese chili-bean sauce.", []string{"tofu", "doubanjiang", "ground pork", "sichuan pepper"}, nil},
			{"Xiao Long Bao", "90 min", "Shanghai soup dumplings.", []string{"flour", "pork", "aspic", "ginger"}, nil},
			{"Char Siu", "70 min", "Cantonese barbecued pork.", []string{"pork shoulder", "hoisin", "honey", "five spice"}, []string{"dairy-free"}},
			{"Dan Dan Noodles", "35 min", "Spicy Sichuan noodles with sesame and pork.", []string{"noodles", "sesame paste", "pork", "chili oil"}, nil},
		},
	},
	"Indian": {
		country: "India", region: models.RegionAsia, lat: 20.59, lng: 78.96,
		dishes: []mockDish{
			{"Butter Chicken", "50 min", "Creamy tomato curry, the best-known Indian dish abroad.", []string{"chicken", "tomato", "cream", "garam masala"}, []string{"gluten-free"}},
			{"Chana Masala", "40 min", "Spiced chickpea curry.", []string{"chickpeas", "onion", "tomato", "cumin"}, []string{"vegan", "gluten-free"}},
			{"Palak Paneer", "45 min", "Indian cheese simmered in spinach gravy.", []string{"paneer", "spinach", "ginger", "cream"}, []string{"vegetarian", "gluten-free"}},
			{"Masala Dosa", "60 min", "Crisp fermented crepe with potato filling.", []string{"rice batter", "potato", "mustard seed", "curry leaves"}, []string{"vegan"}},
			{"Rogan Josh", "75 min", "Kashmiri lamb curry.", []string{"lamb", "yogurt", "kashmiri chili", "fennel"}, []string{"gluten-free"}},
		},
	},
	"Japanese": {
		country: "Japan", region: models.RegionAsia, lat: 36.20, lng: 138.25,
		dishes: []mockDish{
			{"Sushi Moriawase", "60 min", "Assorted nigiri in the Japanese tradition.", []string{"sushi rice", "tuna", "salmon", "nori"}, []string{"dairy-free"}},
			{"Tonkotsu Ramen", "180 min", "Rich pork-bone ramen.", []string{"ramen noodles", "pork bones", "chashu", "egg"}, nil},
			{"Okonomiyaki", "30 min", "Savory Japanese cabbage pancake.", []string{"cabbage", "flour", "egg", "bonito flakes"}, nil},
			{"Chicken Katsu", "35 min", "Panko-breaded cutlet with tonkatsu sauce.", []string{"chicken", "panko", "egg", "tonkatsu sauce"}, nil},
			{"Miso Soup", "15 min", "Everyday soup of miso, tofu, and wakame.", []string{"miso", "tofu", "wakame", "dashi"}, []string{"vegetarian"}},
		},
	},
	"French": {
		country: "France", region: models.RegionEurope, lat: 46.23, lng: 2.21,
		dishes: []mockDish{
			{"Coq au Vin", "120 min", "Chicken braised in red wine, a French country classic.", []string{"chicken", "red wine", "lardons", "mushrooms"}, []string{"dairy-free"}},
			{"Ratatouille", "60 min", "Provençal vegetable stew.", []string{"eggplant", "zucchini", "tomato", "herbes de provence"}, []string{"vegan", "gluten-free"}},
			{"Boeuf Bourguignon", "180 min", "Burgundy beef stew.", []string{"beef", "red wine", "carrots", "pearl onions"}, nil},
			{"Quiche Lorraine", "55 min", "Savory tart with bacon and custard.", []string{"pastry", "eggs", "cream", "bacon"}, nil},
			{"Crème Brûlée", "45 min", "Vanilla custard with a caramelized top.", []string{"cream", "egg yolks", "vanilla", "sugar"}, []string{"vegetarian", "gluten-free"}},
		},
	},
	"Thai": {
		country: "Thailand", region: models.RegionAsia, lat: 15.87, lng: 100.99,
		dishes: []mockDish{
			{"Pad Thai", "30 min", "Stir-fried rice noodles, Thailand's signature dish.", []string{"rice noodles", "shrimp", "tamarind", "peanuts"}, []string{"dairy-free"}},
			{"Tom Yum Goong", "35 min", "Hot and sour Thai shrimp soup.", []string{"shrimp", "lemongrass", "galangal", "lime"}, []string{"gluten-free", "dairy-free"}},
			{"Green Curry", "45 min", "Thai green curry with coconut milk.", []string{"green curry paste", "coconut milk", "chicken", "thai basil"}, []string{"gluten-free"}},
			{"Som Tam", "15 min", "Green papaya salad.", []string{"green papaya", "fish sauce", "lime", "chiles"}, []string{"gluten-free"}},
			{"Mango Sticky Rice", "40 min", "Sweet coconut rice with ripe mango.", []string{"sticky rice", "coconut milk", "mango", "sugar"}, []string{"vegan", "gluten-free"}},
		},
	},
	"Greek": {
		country: "Greece", region: models.RegionEurope, lat: 39.07, lng: 21.82,
		dishes: []mockDish{
			{"Moussaka", "100 min", "Layered eggplant and lamb bake, the Greek classic.", []string{"eggplant", "lamb", "béchamel", "cinnamon"}, nil},
			{"Greek Salad", "10 min", "Tomato, cucumber, olives, and feta.", []string{"tomato", "cucumber", "feta", "olives"}, []string{"vegetarian", "gluten-free"}},
			{"Souvlaki", "30 min", "Grilled skewers with pita and tzatziki.", []string{"pork", "pita", "tzatziki", "oregano"}, nil},
			{"Spanakopita", "70 min", "Spinach and feta phyllo pie.", []string{"phyllo", "spinach", "feta", "dill"}, []string{"vegetarian"}},
			{"Dolmades", "60 min", "Vine leaves stuffed with herbed rice.", []string{"vine leaves", "rice", "lemon", "dill"}, []string{"vegan", "gluten-free"}},
		},
	},
	"Spanish": {
		country: "Spain", region: models.RegionEurope, lat: 40.46, lng: -3.75,
		dishes: []mockDish{
			{"Paella Valenciana", "75 min", "Saffron rice with chicken and rabbit, Spain's best-known dish.", []string{"bomba rice", "saffron", "chicken", "green beans"}, []string{"gluten-free"}},
			{"Tortilla Española", "35 min", "Spanish potato omelette.", []string{"potatoes", "eggs", "onion", "olive oil"}, []string{"vegetarian", "gluten-free"}},
			{"Gazpacho", "15 min", "Chilled Andalusian tomato soup.", []string{"tomato", "cucumber", "pepper", "olive oil"}, []string{"vegan", "gluten-free"}},
			{"Patatas Bravas", "40 min", "Fried potatoes with spicy tomato sauce.", []string{"potatoes", "tomato sauce", "paprika", "aioli"}, []string{"vegetarian"}},
			{"Churros con Chocolate", "30 min", "Fried dough with thick drinking chocolate.", []string{"flour", "sugar", "chocolate", "cinnamon"}, []string{"vegetarian"}},
		},
	},
	"American": {
		country: "United States", region: models.RegionNorthAmerica, lat: 37.09, lng: -95.71,
		dishes: []mockDish{
			{"Smash Burger", "20 min", "All-American double cheeseburger.", []string{"ground beef", "american cheese", "buns", "pickles"}, nil},
			{"BBQ Brisket", "480 min", "Texas-style smoked brisket.", []string{"beef brisket", "dry rub", "oak smoke", "bbq sauce"}, []string{"gluten-free", "dairy-free"}},
			{"Buffalo Wings", "45 min", "Fried wings in cayenne butter sauce.", []string{"chicken wings", "hot sauce", "butter", "celery"}, []string{"gluten-free"}},
			{"Mac and Cheese", "40 min", "Baked macaroni in cheddar sauce.", []string{"macaroni", "cheddar", "milk", "breadcrumbs"}, []string{"vegetarian"}},
			{"Apple Pie", "90 min", "Classic American double-crust apple pie.", []string{"apples", "pastry", "cinnamon", "butter"}, []string{"vegetarian"}},
		},
	},
}

// FetchRecipesForCuisine returns the bundled records for a cuisine, or an
// empty sequence for a cuisine outside the dataset. It never fails.
func (ms *MockSource) FetchRecipesForCuisine(ctx context.Context, cuisine string) ([]models.RecipeRecord, error) {
	seed, ok := mockCuisines[cuisine]
	if !ok {
		return []models.RecipeRecord{}, nil
	}

	lo, _, ok := region.CuisineIDRange(cuisine)
	if !ok {
		// Every bundled cuisine must have an ID range; reaching this means
		// the two tables have drifted apart.
		return nil, fmt.Errorf("mock cuisine '%s' has no ID range", cuisine)
	}

	records := make([]models.RecipeRecord, 0, len(seed.dishes))
	for i, dish := range seed.dishes {
		records = append(records, models.RecipeRecord{
			ID:          fmt.Sprintf("recipe-%d", lo+i),
			Title:       dish.title,
			Country:     seed.country,
			Region:      seed.region,
			PrepTime:    dish.prepTime,
			Image:       fmt.Sprintf("https://images.globedine.dev/%d.jpg", lo+i),
			Description: dish.description,
			// Spread dishes around the cuisine's home coordinates so globe
			// points do not stack exactly.
			Latitude:    seed.lat + float64(i)*0.4,
			Longitude:   seed.lng + float64(i)*0.4,
			Ingredients: dish.ingredients,
			DietaryTags: dish.tags,
		})
	}

	return records, nil
}

// Cuisines lists the cuisines covered by the bundled dataset
func (ms *MockSource) Cuisines() []string {
	names := make([]string, 0, len(mockCuisines))
	for _, cuisine := range DefaultCuisines {
		if _, ok := mockCuisines[cuisine]; ok {
			names = append(names, cuisine)
		}
	}
	return names
}

// Verify interface implementation at compile time
var _ Fetcher = (*MockSource)(nil)
