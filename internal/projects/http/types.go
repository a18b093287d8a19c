package http

import (
	"encoding/json"
	"strings"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
)

// technologies accepts either a JSON array of strings or a single
// comma-joined string. Older admin forms submitted the joined form;
// normalization to []string happens here, once, at the boundary.
type technologies []string

func (t *technologies) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = normalizeTechs(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*t = normalizeTechs(strings.Split(joined, ","))
	return nil
}

func normalizeTechs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if t := strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type createReq struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Technologies technologies `json:"technologies"`
	GithubURL    string       `json:"githubUrl"`
	LiveURL      string       `json:"liveUrl"`
	Image        string       `json:"image"`
	Featured     bool         `json:"featured"`
}

func (r *createReq) toProject() *domain.Project {
	return &domain.Project{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		Technologies: r.Technologies,
		GithubURL:    strings.TrimSpace(r.GithubURL),
		LiveURL:      strings.TrimSpace(r.LiveURL),
		Image:        strings.TrimSpace(r.Image),
		Featured:     r.Featured,
	}
}

// updateReq distinguishes absent fields from zero values so the
// handler can build a merge-style partial update.
type updateReq struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Technologies *technologies `json:"technologies"`
	GithubURL    *string       `json:"githubUrl"`
	LiveURL      *string       `json:"liveUrl"`
	Image        *string       `json:"image"`
	Featured     *bool         `json:"featured"`
}

func (r *updateReq) toUpdate() domain.Update {
	upd := domain.Update{
		Title:       trimmed(r.Title),
		Description: trimmed(r.Description),
		GithubURL:   trimmed(r.GithubURL),
		LiveURL:     trimmed(r.LiveURL),
		Image:       trimmed(r.Image),
		Featured:    r.Featured,
	}
	if r.Technologies != nil {
		techs := []string(*r.Technologies)
		upd.Technologies = &techs
	}
	return upd
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
