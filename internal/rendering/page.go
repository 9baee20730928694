package rendering

import (
	"time"

	"github.com/selamsoft/selam-web/internal/content"
	"github.com/selamsoft/selam-web/internal/notify"
)

// Site is the chrome shared by every page.
type Site struct {
	Name     string
	Tagline  string
	Email    string
	Phone    string
	Location string
	Year     int
	Footer   []content.Link
}

// Page is what the layout template receives. Data is the page body's
// own model.
type Page struct {
	Title  string
	Path   string
	Nav    []content.NavItem
	Notice *notify.Notice
	Site   Site
	Data   any
}

// NewPage builds the layout model for a request path.
func NewPage(path, title string, notice *notify.Notice, data any) *Page {
	year := time.Now().Year()
	if year < content.CopyrightYear {
		year = content.CopyrightYear
	}
	return &Page{
		Title:  title,
		Path:   path,
		Nav:    content.Nav(path),
		Notice: notice,
		Site: Site{
			Name:     content.CompanyName,
			Tagline:  content.Tagline,
			Email:    content.Email,
			Phone:    content.Phone,
			Location: content.Location,
			Year:     year,
			Footer:   content.FooterLinks,
		},
		Data: data,
	}
}
