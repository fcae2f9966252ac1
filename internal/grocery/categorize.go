package grocery

import "strings"

// Departments lists every department Categorize can return, in store-walk
// order. Views that group by department should follow this order.
var Departments = []string{
	"Produce",
	"Bakery",
	"Meat & Seafood",
	"Dairy",
	"Pantry",
	"Frozen",
	"Beverages",
	"Snacks",
	"Household",
	"Other",
}

// Categorize returns the store department for the given item name.
// Matching is case-insensitive: exact match first, then substring match.
// Falls back to "Other" when nothing matches.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if dept, ok := exactMatch[name]; ok {
		return dept
	}

	// Substring entries are ordered more-specific first.
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.department
		}
	}

	return "Other"
}

var exactMatch = map[string]string{
	// Produce
	"apple":     "Produce",
	"apples":    "Produce",
	"banana":    "Produce",
	"bananas":   "Produce",
	"orange":    "Produce",
	"oranges":   "Produce",
	"lemon":     "Produce",
	"lemons":    "Produce",
	"avocado":   "Produce",
	"avocados":  "Produce",
	"tomato":    "Produce",
	"tomatoes":  "Produce",
	"potato":    "Produce",
	"potatoes":  "Produce",
	"onion":     "Produce",
	"onions":    "Produce",
	"garlic":    "Produce",
	"lettuce":   "Produce",
	"spinach":   "Produce",
	"broccoli":  "Produce",
	"carrot":    "Produce",
	"carrots":   "Produce",
	"celery":    "Produce",
	"cucumber":  "Produce",
	"mushrooms": "Produce",
	"grapes":    "Produce",

	// Bakery
	"bread":      "Bakery",
	"bagels":     "Bakery",
	"tortillas":  "Bakery",
	"croissants": "Bakery",
	"buns":       "Bakery",

	// Meat & Seafood
	"chicken": "Meat & Seafood",
	"beef":    "Meat & Seafood",
	"pork":    "Meat & Seafood",
	"bacon":   "Meat & Seafood",
	"sausage": "Meat & Seafood",
	"salmon":  "Meat & Seafood",
	"shrimp":  "Meat & Seafood",
	"tuna":    "Meat & Seafood",

	// Dairy
	"milk":   "Dairy",
	"butter": "Dairy",
	"eggs":   "Dairy",
	"cheese": "Dairy",
	"yogurt": "Dairy",

	// Pantry
	"rice":    "Pantry",
	"pasta":   "Pantry",
	"flour":   "Pantry",
	"sugar":   "Pantry",
	"salt":    "Pantry",
	"cereal":  "Pantry",
	"oatmeal": "Pantry",
	"beans":   "Pantry",
	"ketchup": "Pantry",
	"mustard": "Pantry",

	// Frozen
	"ice cream": "Frozen",

	// Beverages
	"coffee": "Beverages",
	"tea":    "Beverages",
	"juice":  "Beverages",
	"soda":   "Beverages",
	"water":  "Beverages",
	"beer":   "Beverages",
	"wine":   "Beverages",

	// Snacks
	"chips":    "Snacks",
	"crackers": "Snacks",
	"popcorn":  "Snacks",
	"cookies":  "Snacks",
	"pretzels": "Snacks",

	// Household
	"paper towels":  "Household",
	"toilet paper":  "Household",
	"dish soap":     "Household",
	"laundry":       "Household",
	"trash bags":    "Household",
	"sponges":       "Household",
	"shampoo":       "Household",
	"toothpaste":    "Household",
	"soap":          "Household",
	"aluminum foil": "Household",
}

type substringEntry struct {
	keyword    string
	department string
}

var substringMatches = []substringEntry{
	// Meat & Seafood — longer phrases first
	{"chicken breast", "Meat & Seafood"},
	{"chicken thigh", "Meat & Seafood"},
	{"ground beef", "Meat & Seafood"},
	{"ground turkey", "Meat & Seafood"},
	{"pork chop", "Meat & Seafood"},

	// Dairy
	{"cream cheese", "Dairy"},
	{"sour cream", "Dairy"},
	{"greek yogurt", "Dairy"},
	{"almond milk", "Dairy"},
	{"oat milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"egg", "Dairy"},

	// Produce
	{"baby spinach", "Produce"},
	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"cherry tomato", "Produce"},
	{"salad", "Produce"},
	{"berries", "Produce"},
	{"pepper", "Produce"},

	// Frozen
	{"frozen", "Frozen"},

	// Bakery
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"muffin", "Bakery"},
	{"cake", "Bakery"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"juice", "Beverages"},
	{"coffee", "Beverages"},
	{"kombucha", "Beverages"},

	// Pantry
	{"canned", "Pantry"},
	{"sauce", "Pantry"},
	{"oil", "Pantry"},
	{"spice", "Pantry"},
	{"bean", "Pantry"},

	// Household
	{"detergent", "Household"},
	{"cleaner", "Household"},
	{"soap", "Household"},
	{"paper towel", "Household"},

	// Snacks
	{"chip", "Snacks"},
	{"cookie", "Snacks"},
	{"candy", "Snacks"},
	{"chocolate", "Snacks"},
	{"granola bar", "Snacks"},
}
