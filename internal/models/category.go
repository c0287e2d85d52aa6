package models

// DefaultCategoryIcon is shown for categories that have no registered glyph.
// A missing lookup is never an error.
const DefaultCategoryIcon = "💸"

type Category struct {
	Name string `db:"name"`
	Icon string `db:"icon"`
}

// IconFor resolves a category name against a registry list, falling back
// to the default glyph.
func IconFor(categories []Category, name string) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Icon
		}
	}
	return DefaultCategoryIcon
}
