package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexsparkes/ShoppingList/internal/list"
	"github.com/alexsparkes/ShoppingList/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D7DE8"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2C94C"))

	purchasedStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// ui is the terminal collaborator. It owns no list state beyond what it
// renders; every read and mutation goes through the list model.
type ui struct {
	items *list.List

	nameInput textinput.Model
	qtyInput  textinput.Model
	adding    bool
	focusQty  bool

	cursor   int
	sortMode list.SortMode
	aisles   bool
	width    int
}

func newUI(items *list.List) ui {
	name := textinput.New()
	name.Placeholder = "Item name"
	name.CharLimit = 80
	name.Width = 28

	qty := textinput.New()
	qty.Placeholder = "Qty (optional)"
	qty.CharLimit = 20
	qty.Width = 14

	return ui{
		items:     items,
		nameInput: name,
		qtyInput:  qty,
		sortMode:  list.SortNewest,
	}
}

func (u ui) Init() tea.Cmd {
	return nil
}

func (u ui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.width = msg.Width
		return u, nil
	case tea.KeyMsg:
		if u.adding {
			return u.updateAdding(msg)
		}
		return u.updateBrowsing(msg)
	}
	return u, nil
}

func (u ui) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return u, tea.Quit
	case "a":
		u.adding = true
		u.focusQty = false
		u.qtyInput.Blur()
		return u, u.nameInput.Focus()
	case "up", "k":
		if u.cursor > 0 {
			u.cursor--
		}
	case "down", "j":
		if u.cursor < len(u.visible())-1 {
			u.cursor++
		}
	case " ", "enter":
		if item := u.selected(); item != nil {
			u.items.TogglePurchased(item.ID)
		}
	case "d", "x":
		if item := u.selected(); item != nil {
			u.items.Remove(item.ID)
		}
		u.clampCursor()
	case "c":
		u.items.ClearPurchased()
		u.clampCursor()
	case "s":
		if u.sortMode == list.SortNewest {
			u.sortMode = list.SortAlphabetical
		} else {
			u.sortMode = list.SortNewest
		}
	case "g":
		u.aisles = !u.aisles
		u.cursor = 0
	}
	return u, nil
}

func (u ui) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		u.adding = false
		u.nameInput.Blur()
		u.qtyInput.Blur()
		return u, nil
	case "tab", "shift+tab":
		u.focusQty = !u.focusQty
		if u.focusQty {
			u.nameInput.Blur()
			return u, u.qtyInput.Focus()
		}
		u.qtyInput.Blur()
		return u, u.nameInput.Focus()
	case "enter":
		u.items.Add(u.nameInput.Value(), u.qtyInput.Value())
		u.nameInput.SetValue("")
		u.qtyInput.SetValue("")
		// Stay in add mode with the name field focused for fast entry.
		u.focusQty = false
		u.qtyInput.Blur()
		return u, u.nameInput.Focus()
	}

	var cmd tea.Cmd
	if u.focusQty {
		u.qtyInput, cmd = u.qtyInput.Update(msg)
	} else {
		u.nameInput, cmd = u.nameInput.Update(msg)
	}
	return u, cmd
}

func (u ui) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shopping List"))
	b.WriteString("\n\n")

	if u.adding {
		b.WriteString(u.nameInput.View())
		b.WriteString("  ")
		b.WriteString(u.qtyInput.View())
		b.WriteString("\n\n")
	}

	sections := u.sections()
	if len(sections) == 0 {
		b.WriteString(helpStyle.Render("Nothing here yet. Press a to add an item."))
		b.WriteString("\n")
	}

	row := 0
	for _, section := range sections {
		b.WriteString(headerStyle.Render(section.Title))
		b.WriteString("\n")
		for _, item := range section.Items {
			b.WriteString(u.renderItem(item, row == u.cursor))
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}

	b.WriteString(u.footer())
	return b.String()
}

func (u ui) renderItem(item model.GroceryItem, selected bool) string {
	marker := "  "
	if selected && !u.adding {
		marker = cursorStyle.Render("> ")
	}

	box := "[ ]"
	if item.Purchased {
		box = "[x]"
	}

	label := item.Name
	if item.Quantity != "" {
		label += " · " + item.Quantity
	}
	if item.Purchased {
		label = purchasedStyle.Render(label)
	}
	return fmt.Sprintf("%s%s %s", marker, box, label)
}

func (u ui) footer() string {
	remaining := u.items.RemainingCount()

	mode := "newest"
	if u.sortMode == list.SortAlphabetical {
		mode = "a-z"
	}
	view := "list"
	if u.aisles {
		view = "aisles"
	}

	if u.adding {
		return helpStyle.Render("enter add · tab qty · esc done")
	}
	return helpStyle.Render(fmt.Sprintf(
		"%d to buy · sort %s · view %s\na add · space toggle · d delete · c clear purchased · s sort · g aisles · q quit",
		remaining, mode, view,
	))
}

// sections returns the current display grouping for the active view mode.
func (u ui) sections() []list.Section {
	if u.aisles {
		return u.items.AisleSections()
	}
	return u.items.Sections(u.sortMode)
}

// visible flattens the current sections into the rows the cursor walks.
func (u ui) visible() []model.GroceryItem {
	var flat []model.GroceryItem
	for _, section := range u.sections() {
		flat = append(flat, section.Items...)
	}
	return flat
}

func (u ui) selected() *model.GroceryItem {
	flat := u.visible()
	if u.cursor < 0 || u.cursor >= len(flat) {
		return nil
	}
	item := flat[u.cursor]
	return &item
}

func (u *ui) clampCursor() {
	if n := len(u.visible()); u.cursor >= n {
		u.cursor = n - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}
