package list

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alexsparkes/ShoppingList/internal/grocery"
	"github.com/alexsparkes/ShoppingList/internal/model"
)

// SortMode selects the display ordering within each section.
type SortMode int

const (
	// SortNewest orders items most recently created first.
	SortNewest SortMode = iota
	// SortAlphabetical orders items by name, case-insensitive ascending.
	SortAlphabetical
)

// Section is one display group: a label with the live count baked in, plus
// items ordered per the requested sort mode. Sections hold copies; mutating
// them never touches the list.
type Section struct {
	Title string
	Items []model.GroceryItem
}

// Sections partitions the collection into a to-buy group and a purchased
// group. Empty groups are omitted; an empty list yields no sections.
func (l *List) Sections(mode SortMode) []Section {
	l.mu.Lock()
	var toBuy, purchased []model.GroceryItem
	for _, item := range l.items {
		if item.Purchased {
			purchased = append(purchased, item)
		} else {
			toBuy = append(toBuy, item)
		}
	}
	l.mu.Unlock()

	sortItems(toBuy, mode)
	sortItems(purchased, mode)

	var sections []Section
	if len(toBuy) > 0 {
		sections = append(sections, Section{
			Title: fmt.Sprintf("To buy (%d)", len(toBuy)),
			Items: toBuy,
		})
	}
	if len(purchased) > 0 {
		sections = append(sections, Section{
			Title: fmt.Sprintf("Purchased (%d)", len(purchased)),
			Items: purchased,
		})
	}
	return sections
}

// AisleSections groups the unpurchased items by grocery department in
// store-walk order, alphabetical within each department. Departments are
// derived from item names at read time and never persisted.
func (l *List) AisleSections() []Section {
	l.mu.Lock()
	byDept := make(map[string][]model.GroceryItem)
	for _, item := range l.items {
		if item.Purchased {
			continue
		}
		dept := grocery.Categorize(item.Name)
		byDept[dept] = append(byDept[dept], item)
	}
	l.mu.Unlock()

	var sections []Section
	for _, dept := range grocery.Departments {
		items := byDept[dept]
		if len(items) == 0 {
			continue
		}
		sortItems(items, SortAlphabetical)
		sections = append(sections, Section{
			Title: fmt.Sprintf("%s (%d)", dept, len(items)),
			Items: items,
		})
	}
	return sections
}

// sortItems orders items in place. Ties keep their existing relative order.
func sortItems(items []model.GroceryItem, mode SortMode) {
	switch mode {
	case SortAlphabetical:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Name, items[j].Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}
