package filters

import (
	"errors"
	"regexp"
	"time"
)

// Filters narrows down a user's published posts after the full
// feed has been fetched. The zero value matches every post.
type Filters struct {
	StartDate time.Time
	EndDate   time.Time

	TitleRegex *regexp.Regexp

	TagIds []string
}

func (f *Filters) ValidateArgs() error {
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.StartDate.After(f.EndDate) {
		return errors.New("start date cannot be after end date")
	}
	return nil
}

func (f *Filters) IsPostDateValid(postDate time.Time) bool {
	if postDate.IsZero() {
		return true // if the post date is invalid, fallback to true/ignore the date filter
	}
	if f.StartDate.IsZero() && f.EndDate.IsZero() {
		return true
	}
	if !f.StartDate.IsZero() && postDate.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && postDate.After(f.EndDate) {
		return false
	}
	return true
}

func (f *Filters) IsTitleValid(title string) bool {
	if f.TitleRegex == nil {
		return true
	}
	return f.TitleRegex.MatchString(title)
}

func (f *Filters) HasTagId(tagIds []string) bool {
	if len(f.TagIds) == 0 {
		return true
	}
	for _, wanted := range f.TagIds {
		for _, tagId := range tagIds {
			if tagId == wanted {
				return true
			}
		}
	}
	return false
}

// MatchesPost reports whether a published post with the given
// title, publish date and tag ids passes every active filter.
func (f *Filters) MatchesPost(title string, publishedAt time.Time, tagIds []string) bool {
	return f.IsTitleValid(title) && f.IsPostDateValid(publishedAt) && f.HasTagId(tagIds)
}
