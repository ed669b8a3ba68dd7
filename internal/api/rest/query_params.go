package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// ListClaimsQueryParams represents the query parameters of a claim listing
type ListClaimsQueryParams struct {
	Status  *domain.ClaimStatus
	Search  string
	Page    int
	PerPage int
}

// ParseListClaimsQuery parses ?status=&search=&page=&per_page=
func ParseListClaimsQuery(c *gin.Context) (*ListClaimsQueryParams, error) {
	params := &ListClaimsQueryParams{
		Search:  strings.TrimSpace(c.Query("search")),
		Page:    claims.DefaultPage,
		PerPage: claims.DefaultPerPage,
	}

	if s := strings.TrimSpace(c.Query("status")); s != "" && s != "all" {
		status := domain.ClaimStatus(s)
		params.Status = &status
	}

	if s := c.Query("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid page: %s", s)
		}
		params.Page = page
	}

	if s := c.Query("per_page"); s != "" {
		perPage, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid per_page: %s", s)
		}
		params.PerPage = perPage
	}

	return params, nil
}

// Validate validates the query parameters
func (p *ListClaimsQueryParams) Validate() error {
	if p.Status != nil && !domain.IsValidClaimStatus(*p.Status) {
		return fmt.Errorf("invalid status: %s", *p.Status)
	}
	if p.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if p.PerPage < 1 || p.PerPage > claims.MaxPerPage {
		return fmt.Errorf("per_page must be between 1 and %d", claims.MaxPerPage)
	}
	return nil
}

// optionalQuery returns a pointer to the trimmed query value, or nil when absent
func optionalQuery(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}
