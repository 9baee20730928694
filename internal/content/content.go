// Package content holds the site's static copy: navigation, marketing
// sections and contact details.
package content

// Company identity used across pages.
const (
	CompanyName   = "Selam Software Technologies"
	ShortName     = "Selam Software"
	Tagline       = "We are a leading software development company specializing in cutting-edge solutions that transform businesses and drive innovation."
	Email         = "info@selamsoftware.com"
	Phone         = "+251 911 123 456"
	Location      = "Addis Ababa, Ethiopia"
	CopyrightYear = 2024
	UnknownTitle  = "Unknown Position"
)

// NavItem is one entry in the top navigation.
type NavItem struct {
	Name   string
	Path   string
	Active bool
}

var navItems = []NavItem{
	{Name: "Home", Path: "/"},
	{Name: "About", Path: "/about"},
	{Name: "Services", Path: "/services"},
	{Name: "Products", Path: "/products"},
	{Name: "Jobs", Path: "/jobs"},
	{Name: "Contact", Path: "/contact"},
}

// Nav returns the navigation with the item whose path equals activePath
// marked. Matching is exact, so /products/3 highlights nothing.
func Nav(activePath string) []NavItem {
	out := make([]NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = item.Path == activePath
		out[i] = item
	}
	return out
}

// Card is a titled blurb.
type Card struct {
	Title       string
	Description string
}

// Stat is a headline number.
type Stat struct {
	Value string
	Label string
}

// Person is a team member.
type Person struct {
	Name  string
	Role  string
	Image string
}

// Service is one offering on the services page.
type Service struct {
	Title       string
	Description string
	Features    []string
	Price       string
}

// Step is one stage of the delivery process.
type Step struct {
	Number      string
	Title       string
	Description string
}

// ContactCard groups one way of reaching the company.
type ContactCard struct {
	Title       string
	Details     []string
	Description string
}

// QA is a frequently asked question.
type QA struct {
	Question string
	Answer   string
}

// Link is a footer link.
type Link struct {
	Name string
	Path string
}
