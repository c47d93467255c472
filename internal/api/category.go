package api

import (
	"github.com/eduforum-dev/eduforum/internal/domain"
)

type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
