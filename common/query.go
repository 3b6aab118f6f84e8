package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListSpec declares how a resource may be listed: which columns can be
// sorted on, which are searched, and what the defaults are. The allow-list
// keeps user-supplied sortBy values out of the ORDER BY clause.
type ListSpec struct {
	SortColumns   []string
	DefaultSort   string
	DefaultOrder  string // "ASC" or "DESC"
	SearchColumns []string
}

type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

// ParseListParams reads page/limit/sortBy/sortOrder/search from the query
// string. An unknown sortBy silently falls back to the spec default, and
// only the exact strings ASC/DESC are accepted as sort orders.
func ParseListParams(c *gin.Context, spec ListSpec) ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	sortBy := c.DefaultQuery("sortBy", spec.DefaultSort)
	if !contains(spec.SortColumns, sortBy) {
		sortBy = spec.DefaultSort
	}

	sortOrder := c.DefaultQuery("sortOrder", spec.DefaultOrder)
	if sortOrder != "ASC" && sortOrder != "DESC" {
		sortOrder = spec.DefaultOrder
	}

	return ListParams{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Search:    c.Query("search"),
	}
}

// ListResult carries a filtered page together with the counts computed over
// the same filtered set.
type ListResult struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Paginate applies search, ordering and pagination to an already scoped
// query (model, preloads and any ownership predicate set by the caller) and
// loads the page into dest. The count runs against the filtered query so
// total always matches what pagination walks over.
func Paginate(query *gorm.DB, spec ListSpec, p ListParams, dest any) (ListResult, error) {
	if p.Search != "" && len(spec.SearchColumns) > 0 {
		conds := make([]string, len(spec.SearchColumns))
		args := make([]any, len(spec.SearchColumns))
		for i, col := range spec.SearchColumns {
			conds[i] = col + " LIKE ?"
			args[i] = "%" + p.Search + "%"
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	if err := query.
		Order(fmt.Sprintf("%s %s", p.SortBy, p.SortOrder)).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(dest).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
