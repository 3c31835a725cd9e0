package service

import (
	"fmt"

	"haskenrayuwa_backend/internals/features/home/blogs/model"
)

// ApplyUpdates merges a partial-update body into the post. Only title,
// author and content are updatable; unknown names are rejected.
func ApplyUpdates(m *model.Blog, updates map[string]interface{}) error {
	for field, value := range updates {
		s, ok := value.(string)
		if !ok || s == "" {
			return fmt.Errorf("invalid value for field: %s", field)
		}
		switch field {
		case "blog_title":
			m.BlogTitle = s
		case "blog_author":
			m.BlogAuthor = s
		case "blog_content":
			m.BlogContent = s
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
	}
	return nil
}
