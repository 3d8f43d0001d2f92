package testutil

import (
	"fmt"

	"github.com/akyairhashvil/zannat/internal/models"
)

// ContentBuilder provides fluent API for creating test content.
type ContentBuilder struct {
	content models.Content
}

func NewContent() *ContentBuilder {
	return &ContentBuilder{
		content: models.Content{
			Title:       "Test Blog",
			Heading:     "Test Heading",
			Tagline:     "Test tagline",
			ActionLabel: "Read",
			Footer:      "footer",
		},
	}
}

func (b *ContentBuilder) WithNav(items ...string) *ContentBuilder {
	b.content.NavItems = append(b.content.NavItems, items...)
	return b
}

func (b *ContentBuilder) WithCategories(cats ...models.Category) *ContentBuilder {
	b.content.Categories = append(b.content.Categories, cats...)
	return b
}

func (b *ContentBuilder) WithArticles(articles ...models.Article) *ContentBuilder {
	b.content.Articles = append(b.content.Articles, articles...)
	return b
}

// WithGenerated fills each list with n numbered records.
func (b *ContentBuilder) WithGenerated(n int) *ContentBuilder {
	for i := 0; i < n; i++ {
		b.content.NavItems = append(b.content.NavItems, fmt.Sprintf("Nav %d", i))
		b.content.Categories = append(b.content.Categories, NewCategory().WithName(fmt.Sprintf("Category %d", i)).Build())
		b.content.Articles = append(b.content.Articles, NewArticle().WithTitle(fmt.Sprintf("Article %d", i)).Build())
	}
	return b
}

func (b *ContentBuilder) Build() models.Content {
	return b.content
}

// CategoryBuilder provides fluent API for creating test categories.
type CategoryBuilder struct {
	category models.Category
}

func NewCategory() *CategoryBuilder {
	return &CategoryBuilder{category: models.Category{Name: "Test Category", Description: "Test description"}}
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.category.Name = name
	return b
}

func (b *CategoryBuilder) WithDescription(d string) *CategoryBuilder {
	b.category.Description = d
	return b
}

func (b *CategoryBuilder) Build() models.Category {
	return b.category
}

// ArticleBuilder provides fluent API for creating test articles.
type ArticleBuilder struct {
	article models.Article
}

func NewArticle() *ArticleBuilder {
	return &ArticleBuilder{article: models.Article{Title: "Test Article", Excerpt: "Test excerpt..."}}
}

func (b *ArticleBuilder) WithTitle(title string) *ArticleBuilder {
	b.article.Title = title
	return b
}

func (b *ArticleBuilder) WithExcerpt(e string) *ArticleBuilder {
	b.article.Excerpt = e
	return b
}

func (b *ArticleBuilder) Build() models.Article {
	return b.article
}
