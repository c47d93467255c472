package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/eduforum-dev/eduforum/internal/errors"
)

const maxTags = 5

type PostValidator struct{}

func (v *PostValidator) Title(title string) error {
	if len(title) == 0 {
		return &errors.ValidationError{Message: "Title is required"}
	}
	if utf8.RuneCountInString(title) > 200 {
		return &errors.ValidationError{Message: "Title is too long"}
	}
	return nil
}

func (v *PostValidator) Content(content string) error {
	if len(content) == 0 {
		return &errors.ValidationError{Message: "Content is required"}
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return &errors.ValidationError{Message: "Content is too long"}
	}
	return nil
}

// Tags expects normalized (lower-cased, trimmed) input.
func (v *PostValidator) Tags(tags []string) error {
	if len(tags) > maxTags {
		return &errors.ValidationError{Message: fmt.Sprintf("At most %d tags allowed", maxTags)}
	}
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if utf8.RuneCountInString(t) > 30 {
			return &errors.ValidationError{Message: "Tag is too long"}
		}
		if _, ok := seen[t]; ok {
			return &errors.ValidationError{Message: "Duplicate tag: " + t}
		}
		seen[t] = struct{}{}
	}
	return nil
}

type CommentValidator struct{}

func (v *CommentValidator) Content(content string) error {
	if len(content) == 0 {
		return &errors.ValidationError{Message: "Content is required"}
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return &errors.ValidationError{Message: "Content is too long"}
	}
	return nil
}
