package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/selamsoft/selam-web/internal/content"
	"github.com/selamsoft/selam-web/internal/rendering"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
	"golang.org/x/sync/errgroup"
)

// featuredCount is how many products the home page shows.
const featuredCount = 3

type homePage struct {
	Features      []content.Card
	Services      []content.Card
	Stats         []content.Stat
	Featured      []types.Product
	JobsLoaded    bool
	OpenPositions int
}

type aboutPage struct {
	Story   []string
	Values  []content.Card
	Team    []content.Person
	Mission string
	Vision  string
}

type servicesPage struct {
	Services []content.Service
	Process  []content.Step
}

type productsPage struct {
	State      view.ListState[types.Product]
	Items      []types.Product
	Categories []string
	Category   string
	Solutions  []content.Card
}

type productPage struct {
	ID     string
	Detail view.DetailState
}

type jobsPage struct {
	State    view.ListState[types.Job]
	Stats    []content.Stat
	Benefits []content.Card
}

type errorPage struct {
	Heading string
	Message string
}

// phaseStatus maps a list phase to the response status.
func phaseStatus(p view.Phase) int {
	if p == view.PhaseError {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func (s *Server) loadJobs(ctx context.Context) view.ListState[types.Job] {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()
	return view.Load[types.Job](ctx, s.catalog.ListJobs)
}

func (s *Server) loadProducts(ctx context.Context) view.ListState[types.Product] {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()
	return view.Load[types.Product](ctx, s.catalog.ListProducts)
}

// handleHome fetches both lists at once. Either failing just hides the
// block it feeds.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var (
		jobs     view.ListState[types.Job]
		products view.ListState[types.Product]
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		jobs = s.loadJobs(gctx)
		return nil
	})
	g.Go(func() error {
		products = s.loadProducts(gctx)
		return nil
	})
	_ = g.Wait()

	data := homePage{
		Features: content.HomeFeatures,
		Services: content.HomeServices,
		Stats:    content.HomeStats,
	}
	if jobs.Phase == view.PhaseReady {
		data.JobsLoaded = true
		data.OpenPositions = len(jobs.Items)
	}
	if products.Phase == view.PhaseReady {
		data.Featured = products.Items
		if len(data.Featured) > featuredCount {
			data.Featured = data.Featured[:featuredCount]
		}
	}

	s.render(w, r, http.StatusOK, rendering.PageHome, "Home", nil, data)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, rendering.PageAbout, "About", nil, aboutPage{
		Story:   content.Story,
		Values:  content.Values,
		Team:    content.Team,
		Mission: content.Mission,
		Vision:  content.Vision,
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, rendering.PageServices, "Services", nil, servicesPage{
		Services: content.Services,
		Process:  content.Process,
	})
}

// handleProducts lists products, optionally narrowed by ?category=.
// Unknown categories fall back to All.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if !content.IsCategory(category) {
		category = "All"
	}

	state := s.loadProducts(r.Context())
	s.render(w, r, phaseStatus(state.Phase), rendering.PageProducts, "Products", nil, productsPage{
		State:      state,
		Items:      view.FilterProducts(state.Items, category),
		Categories: content.ProductCategories,
		Category:   category,
		Solutions:  content.CustomSolutions,
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	detail := view.ProductDetail(s.loadProducts(r.Context()), id)

	status, title := http.StatusOK, "Product"
	switch detail.Phase {
	case view.DetailFound:
		title = detail.Product.Name
	case view.DetailNotFound:
		status, title = http.StatusNotFound, "Product Not Found"
	case view.DetailError:
		status = http.StatusBadGateway
	}
	s.render(w, r, status, rendering.PageProduct, title, nil, productPage{ID: id, Detail: detail})
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	state := s.loadJobs(r.Context())
	s.render(w, r, phaseStatus(state.Phase), rendering.PageJobs, "Careers", nil, jobsPage{
		State:    state,
		Stats:    content.JobStats,
		Benefits: content.Benefits,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, rendering.PageNotFound, "Page Not Found", nil, nil)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	delivery := "notify"
	if s.contacts != nil {
		delivery = "store"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":           "ok",
		"api":              s.catalog.BaseURL(),
		"contact_delivery": delivery,
	})
}
