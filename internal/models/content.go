package models

// DefaultContent returns the homepage copy.
func DefaultContent() Content {
	return Content{
		Title:       "Zannat",
		Heading:     "Political Insights",
		Tagline:     "Exploring the complexities of modern politics through thoughtful analysis and commentary.",
		ActionLabel: "Read Latest Post",
		NavItems:    []string{"Home", "Articles", "Categories", "About", "Contact"},
		Categories: []Category{
			{Name: "Global Politics", Description: "International relations and global issues"},
			{Name: "Domestic Policy", Description: "National legislation and governance"},
			{Name: "Economic Analysis", Description: "Financial policies and economic trends"},
			{Name: "Social Issues", Description: "Cultural and societal discussions"},
			{Name: "Environmental Politics", Description: "Climate change and environmental policies"},
		},
		Articles: []Article{
			{Title: "The Impact of Global Trade Policies", Excerpt: "Analyzing recent changes in international trade agreements..."},
			{Title: "Climate Change: A Political Perspective", Excerpt: "Examining the political landscape surrounding environmental policies..."},
			{Title: "The Future of Healthcare Reform", Excerpt: "Discussing potential changes to national healthcare systems..."},
			{Title: "Technology's Role in Modern Governance", Excerpt: "Exploring how technology is shaping political processes..."},
			{Title: "Economic Inequality: A Global Challenge", Excerpt: "Investigating the growing wealth gap and its political implications..."},
		},
		Contact: ContactInfo{
			Email:    "zannat@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "New York, NY",
		},
		Footer: "© 2023 Zannat's Political Blog. All rights reserved.",
	}
}
