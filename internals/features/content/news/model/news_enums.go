package model

type NewsCategory string

const (
	CategoryFestival       NewsCategory = "Festival"
	CategoryInfrastructure NewsCategory = "Infrastructure"
	CategoryHealth         NewsCategory = "Health"
	CategoryEducation      NewsCategory = "Education"
	CategoryEnvironment    NewsCategory = "Environment"
	CategoryCulture        NewsCategory = "Culture"
	CategoryTechnology     NewsCategory = "Technology"
	CategorySports         NewsCategory = "Sports"
	CategoryGovernment     NewsCategory = "Government"
	CategoryEmergency      NewsCategory = "Emergency"
)

var NewsCategories = []NewsCategory{
	CategoryFestival, CategoryInfrastructure, CategoryHealth, CategoryEducation, CategoryEnvironment,
	CategoryCulture, CategoryTechnology, CategorySports, CategoryGovernment, CategoryEmergency,
}

func (c NewsCategory) Valid() bool { return contains(NewsCategories, c) }

// ContentStatus is the editorial state of an article. Only Published
// articles are visible on the public endpoints.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "Draft"
	StatusPublished ContentStatus = "Published"
	StatusArchived  ContentStatus = "Archived"
	StatusScheduled ContentStatus = "Scheduled"
)

var ContentStatuses = []ContentStatus{StatusDraft, StatusPublished, StatusArchived, StatusScheduled}

var contentTransitions = map[ContentStatus][]ContentStatus{
	StatusDraft:     {StatusPublished, StatusScheduled, StatusArchived},
	StatusScheduled: {StatusPublished, StatusDraft, StatusArchived},
	StatusPublished: {StatusDraft, StatusArchived},
	StatusArchived:  {StatusDraft},
}

func (s ContentStatus) Valid() bool { return contains(ContentStatuses, s) }

func (s ContentStatus) CanTransitionTo(next ContentStatus) bool {
	return contains(contentTransitions[s], next)
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
