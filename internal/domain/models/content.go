// internal/domain/models/content.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publishing statuses shared by all content collections.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Program is a long-running initiative shown on the programs page.
// Collection: "program".
type Program struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Summary        string             `bson:"summary" json:"summary"`
	ProblemContext string             `bson:"problem_context,omitempty" json:"problem_context,omitempty"`
	Approach       string             `bson:"approach,omitempty" json:"approach,omitempty"`
	Activities     []string           `bson:"activities" json:"activities"`
	Beneficiaries  []string           `bson:"beneficiaries" json:"beneficiaries"`
	ExpectedImpact string             `bson:"expected_impact,omitempty" json:"expected_impact,omitempty"`
	Locations      []string           `bson:"locations" json:"locations"`
	Tags           []string           `bson:"tags" json:"tags"`
	Status         string             `bson:"status" json:"status"`
}

// ApplyDefaults fills the publishing status and normalizes nil slices so
// stored documents always carry arrays.
func (p *Program) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusPublished
	}
	if p.Activities == nil {
		p.Activities = []string{}
	}
	if p.Beneficiaries == nil {
		p.Beneficiaries = []string{}
	}
	if p.Locations == nil {
		p.Locations = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func (p *Program) Validate() *ValidationError {
	if p.Title == "" {
		return required("title")
	}
	if p.Summary == "" {
		return required("summary")
	}
	if p.Status != "" && !oneOf(p.Status, StatusDraft, StatusPublished) {
		return invalid("status", "must be draft or published")
	}
	return nil
}

// Story is a field story with a publishing workflow. Collection: "story".
type Story struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Body        string             `bson:"body,omitempty" json:"body,omitempty"`
	ProgramTags []string           `bson:"program_tags" json:"program_tags"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Status      string             `bson:"status" json:"status"`
}

func (s *Story) ApplyDefaults() {
	if s.Status == "" {
		s.Status = StatusPublished
	}
	if s.ProgramTags == nil {
		s.ProgramTags = []string{}
	}
}

func (s *Story) Validate() *ValidationError {
	if s.Title == "" {
		return required("title")
	}
	if s.Status != "" && !oneOf(s.Status, StatusDraft, StatusPublished) {
		return invalid("status", "must be draft or published")
	}
	return nil
}

// Post is a news/blog entry. Collection: "post".
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Excerpt  string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Body     string             `bson:"body,omitempty" json:"body,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags     []string           `bson:"tags" json:"tags"`
	Author   string             `bson:"author,omitempty" json:"author,omitempty"`
	Status   string             `bson:"status" json:"status"`
}

func (p *Post) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusPublished
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func (p *Post) Validate() *ValidationError {
	if p.Title == "" {
		return required("title")
	}
	if p.Status != "" && !oneOf(p.Status, StatusDraft, StatusPublished) {
		return invalid("status", "must be draft or published")
	}
	return nil
}

// Report is an annual/impact report. Collection: "report".
// Declared for the documents page; no public endpoint serves it yet.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Year        int                `bson:"year,omitempty" json:"year,omitempty"`
	FileURL     string             `bson:"file_url,omitempty" json:"file_url,omitempty"`
	Status      string             `bson:"status" json:"status"`
}

func (r *Report) ApplyDefaults() {
	if r.Status == "" {
		r.Status = StatusPublished
	}
}

func (r *Report) Validate() *ValidationError {
	if r.Title == "" {
		return required("title")
	}
	if r.Status != "" && !oneOf(r.Status, StatusDraft, StatusPublished) {
		return invalid("status", "must be draft or published")
	}
	return nil
}
