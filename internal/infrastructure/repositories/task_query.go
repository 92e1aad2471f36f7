package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

const defaultPageLimit = 5

// taskColumns maps the externally visible field names to their columns. Sort
// and select inputs are validated against this map, never interpolated raw.
var taskColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"isCompleted": "is_completed",
	"priority":    "priority",
	"createdAt":   "created_at",
}

// applyTaskQuery chains filter, sort, select and pagination onto tx.
// Title and description filter as case-insensitive substring matches; the
// remaining filters are exact.
func applyTaskQuery(tx *gorm.DB, q domain.TaskQuery) *gorm.DB {
	if q.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+strings.ToLower(q.Title)+"%")
	}
	if q.Description != "" {
		tx = tx.Where("description LIKE ?", "%"+strings.ToLower(q.Description)+"%")
	}
	if q.IsCompleted != nil {
		tx = tx.Where("is_completed = ?", *q.IsCompleted)
	}
	if q.Priority != "" {
		tx = tx.Where("priority = ?", q.Priority)
	}

	tx = applySort(tx, q.Sort)
	tx = applySelect(tx, q.Select)
	return applyPagination(tx, q.Page, q.Limit)
}

// applySort accepts a comma-separated field list; a leading '-' flips a field
// to descending, matching the query syntax of the public API.
func applySort(tx *gorm.DB, sort string) *gorm.DB {
	if sort == "" {
		return tx.Order("id")
	}
	for _, field := range strings.Split(sort, ",") {
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		col, ok := taskColumns[field]
		if !ok {
			continue
		}
		if desc {
			col += " DESC"
		}
		tx = tx.Order(col)
	}
	return tx
}

func applySelect(tx *gorm.DB, sel string) *gorm.DB {
	if sel == "" {
		return tx
	}
	cols := []string{"id", "user_id"}
	for _, field := range strings.Split(sel, ",") {
		if col, ok := taskColumns[field]; ok {
			cols = append(cols, col)
		}
	}
	return tx.Select(cols)
}

func applyPagination(tx *gorm.DB, page, limit int) *gorm.DB {
	if page <= 0 && limit <= 0 {
		return tx
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return tx.Offset((page - 1) * limit).Limit(limit)
}
