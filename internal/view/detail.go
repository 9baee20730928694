package view

import (
	"strconv"
	"strings"

	"github.com/selamsoft/selam-web/internal/types"
)

// DetailPhase is the render state of the product detail page.
type DetailPhase int

const (
	DetailLoading DetailPhase = iota
	DetailError
	DetailNotFound
	DetailFound
)

func (p DetailPhase) String() string {
	switch p {
	case DetailLoading:
		return "loading"
	case DetailError:
		return "error"
	case DetailNotFound:
		return "not_found"
	case DetailFound:
		return "found"
	default:
		return "unknown"
	}
}

// DetailState is what the product detail page renders.
type DetailState struct {
	Phase   DetailPhase
	Product types.Product
	Err     string
}

// ProductDetail derives the detail view from the product list. While the
// list is loading the detail is loading too, so a slow list never shows a
// false "not found".
func ProductDetail(list ListState[types.Product], rawID string) DetailState {
	switch list.Phase {
	case PhaseLoading:
		return DetailState{Phase: DetailLoading}
	case PhaseError:
		return DetailState{Phase: DetailError, Err: list.Err}
	}

	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return DetailState{Phase: DetailNotFound}
	}
	for _, p := range list.Items {
		if p.ID == id {
			return DetailState{Phase: DetailFound, Product: p}
		}
	}
	return DetailState{Phase: DetailNotFound}
}

// FindJob returns the first loaded job with the given id.
func FindJob(list ListState[types.Job], id string) (types.Job, bool) {
	if list.Phase != PhaseReady {
		return types.Job{}, false
	}
	id = strings.TrimSpace(id)
	for _, j := range list.Items {
		if j.ID.String() == id {
			return j, true
		}
	}
	return types.Job{}, false
}

// FilterProducts keeps products in category. "" and "All" keep everything.
func FilterProducts(items []types.Product, category string) []types.Product {
	if category == "" || strings.EqualFold(category, "All") {
		return items
	}
	out := make([]types.Product, 0, len(items))
	for _, p := range items {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
