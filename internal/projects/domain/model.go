package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/raghulkannan/portfolio-api/internal/validation"
)

var ErrNotFound = errors.New("project not found")

// Project is a single portfolio entry. Technologies keep insertion
// order; the frontend truncates the list for display.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Image        string    `json:"image,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Update carries a partial project for merge-style updates. Nil
// fields are preserved on the stored document.
type Update struct {
	Title        *string
	Description  *string
	Technologies *[]string
	GithubURL    *string
	LiveURL      *string
	Image        *string
	Featured     *bool
}

// Validate enforces the create invariant: title, description and
// githubUrl non-blank, technologies a non-empty list of non-blank
// tokens.
func (p *Project) Validate() error {
	errs := validation.FieldErrors{}
	errs.Require("title", p.Title)
	errs.Require("description", p.Description)
	errs.Require("githubUrl", p.GithubURL)
	validateTechnologies(errs, p.Technologies)
	return errs.OrNil()
}

// Validate rejects updates that would blank out a required field.
// Absent fields are fine; the merge keeps the stored value.
func (u *Update) Validate() error {
	errs := validation.FieldErrors{}
	if u.Title != nil {
		errs.Require("title", *u.Title)
	}
	if u.Description != nil {
		errs.Require("description", *u.Description)
	}
	if u.GithubURL != nil {
		errs.Require("githubUrl", *u.GithubURL)
	}
	if u.Technologies != nil {
		validateTechnologies(errs, *u.Technologies)
	}
	return errs.OrNil()
}

func validateTechnologies(errs validation.FieldErrors, techs []string) {
	if len(techs) == 0 {
		errs["technologies"] = "at least one technology is required"
		return
	}
	for _, t := range techs {
		if strings.TrimSpace(t) == "" {
			errs["technologies"] = "technologies must not contain blank entries"
			return
		}
	}
}
