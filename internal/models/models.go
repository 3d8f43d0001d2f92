package models

import (
	"strings"

	"github.com/akyairhashvil/zannat/internal/util"
)

// Category is a topic card on the homepage.
type Category struct {
	Name        string
	Description string
}

// Valid reports whether the card has something to show as its heading.
func (c Category) Valid() bool {
	return strings.TrimSpace(c.Name) != ""
}

// Article is a teaser card for a post.
type Article struct {
	Title   string
	Excerpt string
}

// Valid reports whether the teaser has a title.
func (a Article) Valid() bool {
	return strings.TrimSpace(a.Title) != ""
}

// ContactInfo holds the static contact details shown beside the form.
type ContactInfo struct {
	Email    string
	Phone    string
	Location string
}

// Content is every piece of static data the homepage renders.
type Content struct {
	Title       string
	Heading     string
	Tagline     string
	ActionLabel string
	NavItems    []string
	Categories  []Category
	Articles    []Article
	Contact     ContactInfo
	Footer      string
}

// RenderableNav drops blank navigation labels.
func (c Content) RenderableNav() []string {
	return util.Keep(c.NavItems, func(item string) bool { return strings.TrimSpace(item) != "" })
}

// RenderableCategories drops categories without a name.
func (c Content) RenderableCategories() []Category {
	return util.Keep(c.Categories, Category.Valid)
}

// RenderableArticles drops articles without a title.
func (c Content) RenderableArticles() []Article {
	return util.Keep(c.Articles, Article.Valid)
}

// ContactForm is the value of the contact form fields. It is never sent anywhere.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}
