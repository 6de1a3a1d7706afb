package dto

import (
	"strings"
	"time"

	newsModel "alisto_backend/internals/features/content/news/model"
	helper "alisto_backend/internals/helpers"
)

// NewsFields are accepted both as JSON and as multipart form values.
// Tags are read separately for forms.
type NewsFields struct {
	Title             string                 `json:"title" form:"title" validate:"required,max=200"`
	Summary           *string                `json:"summary" form:"summary" validate:"omitempty,max=500"`
	FullContent       string                 `json:"fullContent" form:"fullContent" validate:"required"`
	ImageURL          *string                `json:"imageUrl" form:"-" validate:"omitempty,max=500"`
	Location          string                 `json:"location" form:"location" validate:"required,max=200"`
	ExpectedAttendees *string                `json:"expectedAttendees" form:"expectedAttendees" validate:"omitempty,max=100"`
	Category          newsModel.NewsCategory `json:"category" form:"category" validate:"required,enum"`
	Author            string                 `json:"author" form:"author" validate:"required,max=100"`
	Tags              []string               `json:"tags" form:"-"`
	IsFeatured        bool                   `json:"isFeatured" form:"isFeatured"`
	IsTrending        bool                   `json:"isTrending" form:"isTrending"`
}

func (f *NewsFields) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.FullContent = strings.TrimSpace(f.FullContent)
	f.Location = strings.TrimSpace(f.Location)
	f.Author = strings.TrimSpace(f.Author)
	f.Summary = trimPtr(f.Summary)
	f.ExpectedAttendees = trimPtr(f.ExpectedAttendees)
	f.ImageURL = trimPtr(f.ImageURL)
	tags := make([]string, 0, len(f.Tags))
	for _, t := range f.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	f.Tags = tags
}

// ApplyTo overwrites the editable fields. The image is left alone; callers
// decide whether the URL comes from the body or from an upload.
func (f *NewsFields) ApplyTo(m *newsModel.NewsArticleModel) {
	m.Title = f.Title
	m.Summary = f.Summary
	m.FullContent = f.FullContent
	m.Location = f.Location
	m.ExpectedAttendees = f.ExpectedAttendees
	m.Category = f.Category
	m.Author = f.Author
	m.Tags = helper.JSONStrings(f.Tags)
	m.IsFeatured = f.IsFeatured
	m.IsTrending = f.IsTrending
}

// ToModel builds a new Draft article.
func (f *NewsFields) ToModel() *newsModel.NewsArticleModel {
	m := &newsModel.NewsArticleModel{Status: newsModel.StatusDraft, ImageURL: f.ImageURL}
	f.ApplyTo(m)
	return m
}

type NewsArticleDTO struct {
	ID                int                     `json:"id"`
	Title             string                  `json:"title"`
	Summary           *string                 `json:"summary"`
	FullContent       string                  `json:"fullContent,omitempty"`
	ImageURL          *string                 `json:"imageUrl"`
	PublishedDate     *time.Time              `json:"publishedDate"`
	PublishedTime     *string                 `json:"publishedTime"`
	Location          string                  `json:"location"`
	ExpectedAttendees *string                 `json:"expectedAttendees"`
	Category          newsModel.NewsCategory  `json:"category"`
	Author            string                  `json:"author"`
	Tags              []string                `json:"tags"`
	IsFeatured        bool                    `json:"isFeatured"`
	IsTrending        bool                    `json:"isTrending"`
	ViewCount         int                     `json:"viewCount"`
	Status            newsModel.ContentStatus `json:"status"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

func ToNewsArticleDTO(m *newsModel.NewsArticleModel) NewsArticleDTO {
	return NewsArticleDTO{
		ID:                m.ID,
		Title:             m.Title,
		Summary:           m.Summary,
		FullContent:       m.FullContent,
		ImageURL:          m.ImageURL,
		PublishedDate:     m.PublishedDate,
		PublishedTime:     m.PublishedTime,
		Location:          m.Location,
		ExpectedAttendees: m.ExpectedAttendees,
		Category:          m.Category,
		Author:            m.Author,
		Tags:              helper.StringsFromJSON(m.Tags),
		IsFeatured:        m.IsFeatured,
		IsTrending:        m.IsTrending,
		ViewCount:         m.ViewCount,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToNewsSummaryDTOs is the list projection: the article body is dropped.
func ToNewsSummaryDTOs(rows []newsModel.NewsArticleModel) []NewsArticleDTO {
	out := make([]NewsArticleDTO, 0, len(rows))
	for i := range rows {
		d := ToNewsArticleDTO(&rows[i])
		d.FullContent = ""
		out = append(out, d)
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
