package controller

import (
	m "github.com/mouse-blink/datacom/internal/model"
)

// List item types.
type methodItem struct {
	method m.Method
	choice int
}

func (i methodItem) FilterValue() string {
	return i.method.Label()
}

func methodItems() []methodItem {
	methods := m.Methods()
	items := make([]methodItem, 0, len(methods))

	for i, method := range methods {
		items = append(items, methodItem{method: method, choice: i + 1})
	}

	return items
}
