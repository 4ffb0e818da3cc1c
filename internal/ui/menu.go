// internal/ui/menu.go
package ui

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform"
)

// Menu: вертикальный список пунктов с выделением. Выбор перемещается
// по кругу: вниз с последнего пункта попадает на первый.
type Menu struct {
	Title    string
	Items    []string
	Selected int
}

// NewMenu создает меню с выделенным первым пунктом.
func NewMenu(title string, items ...string) *Menu {
	return &Menu{Title: title, Items: items}
}

func (m *Menu) MoveUp()   { m.move(-1) }
func (m *Menu) MoveDown() { m.move(1) }

func (m *Menu) move(step int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+step)%n + n) % n
}

// SelectedItem returns the highlighted item, or "" for an empty menu.
func (m *Menu) SelectedItem() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// Draw отрисовывает заголовок и пункты по центру экрана.
func (m *Menu) Draw(r platform.Renderer, titleFont, itemFont platform.Font) {
	const width = float64(config.ScreenWidth)

	titleY := float64(config.ScreenHeight) / 4
	DrawCentered(r, titleFont, m.Title, width, titleY, config.TextLightColor)

	y := float64(config.ScreenHeight) / 2
	for i, item := range m.Items {
		clr := config.MenuIdleColor
		label := item
		if i == m.Selected {
			clr = config.MenuSelectedColor
			label = "> " + item + " <"
		}
		DrawCentered(r, itemFont, label, width, y, clr)
		y += config.MenuItemGap
	}
}
