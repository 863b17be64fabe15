// Package service implements the read-modify-write coordinator. Every
// mutation follows one shape: load the whole document, apply exactly one
// collection operation, save the whole document back.
//
// There is deliberately no lock, no revision token and no retry: two
// concurrent mutations both load the pre-mutation document and the second
// save silently discards the first one's effect. Last-writer-wins at
// whole-document granularity is the contract of the upstream store and is
// reproduced here unchanged (see the interleaving test in service_test.go).
package service

import (
	"context"
	"strings"
	"time"

	"github.com/devfolio/devfolio-api/internal/apperror"
	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/internal/portfolio/store"
	"github.com/devfolio/devfolio-api/pkg/logger"
	"github.com/devfolio/devfolio-api/pkg/metrics"
)

// Service coordinates collection operations against the document store.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// mutate runs one load → fn → save cycle and returns the mutated document.
func (s *Service) mutate(ctx context.Context, fn func(doc *portfolio.Document) error) (*portfolio.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ProjectInput carries the mutable fields of a project.
type ProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	LiveURL     string
	GithubURL   string
	Tags        []string
}

func (in *ProjectInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return apperror.ValidationFailed("title", "title is required")
	}
	if in.Description == "" {
		return apperror.ValidationFailed("description", "description is required")
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return nil
}

// Projects returns the project collection, filtered by query.
func (s *Service) Projects(ctx context.Context, query string) ([]portfolio.Project, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.FilterSubstring(doc.Projects, query, portfolio.ProjectSearchFields), nil
}

// CreateProject prepends a new project and persists the document.
func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (*portfolio.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p := portfolio.Project{
		ID:          portfolio.NewID(now),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		LiveURL:     in.LiveURL,
		GithubURL:   in.GithubURL,
		Tags:        in.Tags,
		CreatedAt:   now,
	}
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		doc.Projects = portfolio.InsertFront(doc.Projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("project created id=%s title=%q", p.ID, p.Title)
	return &p, nil
}

// UpdateProject replaces the mutable fields of a project, keeping id and
// createdAt, and stamps updatedAt.
func (s *Service) UpdateProject(ctx context.Context, id string, in ProjectInput) (*portfolio.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	var updated portfolio.Project
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		next, ok := portfolio.UpdateByID(doc.Projects, id, func(p *portfolio.Project) {
			p.Title = in.Title
			p.Description = in.Description
			p.ImageURL = in.ImageURL
			p.LiveURL = in.LiveURL
			p.GithubURL = in.GithubURL
			p.Tags = in.Tags
			p.UpdatedAt = &now
			updated = *p
		})
		if !ok {
			return apperror.NotFound("project", id)
		}
		doc.Projects = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a project by id.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		next, ok := portfolio.DeleteByID(doc.Projects, id)
		if !ok {
			return apperror.NotFound("project", id)
		}
		doc.Projects = next
		return nil
	})
	if err == nil {
		logger.Infof("project deleted id=%s", id)
	}
	return err
}

// CodeInput carries the mutable fields of a code snippet.
type CodeInput struct {
	Title string
	Code  string
}

func (in *CodeInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperror.ValidationFailed("title", "title is required")
	}
	// whitespace is significant inside a snippet, so the body is checked
	// trimmed but stored as received
	if strings.TrimSpace(in.Code) == "" {
		return apperror.ValidationFailed("code", "code is required")
	}
	return nil
}

// Codes returns the snippet collection, filtered by query.
func (s *Service) Codes(ctx context.Context, query string) ([]portfolio.CodeSnippet, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return portfolio.FilterSubstring(doc.Codes, query, portfolio.CodeSearchFields), nil
}

// CreateCode prepends a snippet and returns the full mutated collection —
// the endpoint contract answers with every snippet, not just the new one.
func (s *Service) CreateCode(ctx context.Context, in CodeInput) ([]portfolio.CodeSnippet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	c := portfolio.CodeSnippet{
		ID:        portfolio.NewID(now),
		Title:     in.Title,
		Code:      in.Code,
		CreatedAt: now,
	}
	doc, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		doc.Codes = portfolio.InsertFront(doc.Codes, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("code snippet created id=%s title=%q", c.ID, c.Title)
	return doc.Codes, nil
}

// UpdateCode replaces a snippet's mutable fields.
func (s *Service) UpdateCode(ctx context.Context, id string, in CodeInput) (*portfolio.CodeSnippet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	var updated portfolio.CodeSnippet
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		next, ok := portfolio.UpdateByID(doc.Codes, id, func(c *portfolio.CodeSnippet) {
			c.Title = in.Title
			c.Code = in.Code
			c.UpdatedAt = &now
			updated = *c
		})
		if !ok {
			return apperror.NotFound("code", id)
		}
		doc.Codes = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCode removes a snippet by id.
func (s *Service) DeleteCode(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		next, ok := portfolio.DeleteByID(doc.Codes, id)
		if !ok {
			return apperror.NotFound("code", id)
		}
		doc.Codes = next
		return nil
	})
	return err
}

// Users returns the user collection with passwords stripped.
func (s *Service) Users(ctx context.Context, query string) ([]portfolio.User, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	users := portfolio.FilterSubstring(doc.Users, query, portfolio.UserSearchFields)
	out := make([]portfolio.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	return out, nil
}

// Signup appends a new user (role defaults to "user"). The username must be
// free across the whole collection.
func (s *Service) Signup(ctx context.Context, username, password string) (*portfolio.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}
	now := s.now().UTC()
	u := portfolio.User{
		ID:        portfolio.NewID(now),
		Username:  username,
		Password:  password,
		Role:      portfolio.RoleUser,
		CreatedAt: now,
	}
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		if portfolio.UsernameTaken(doc.Users, username, "") {
			return apperror.Conflict("Username already exists")
		}
		doc.Users = portfolio.InsertBack(doc.Users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("user signed up id=%s username=%s", u.ID, u.Username)
	redacted := u.Redacted()
	return &redacted, nil
}

// Login checks the credentials against the stored collection. Passwords are
// compared exactly as stored.
func (s *Service) Login(ctx context.Context, username, password string) (*portfolio.User, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.Username == username && u.Password == password {
			metrics.TrackAuthAttempt("success")
			redacted := u.Redacted()
			return &redacted, nil
		}
	}
	metrics.TrackAuthAttempt("failure")
	return nil, apperror.Unauthorized("invalid username or password")
}

// UserPatch carries the optional fields of a user update; empty fields are
// left unchanged.
type UserPatch struct {
	Username string
	Password string
	Role     string
}

// UpdateUser patches username, password or role. A renamed user keeps the
// uniqueness invariant; the user's own record is excluded from the check.
func (s *Service) UpdateUser(ctx context.Context, id string, patch UserPatch) (*portfolio.User, error) {
	patch.Username = strings.TrimSpace(patch.Username)
	if patch.Role != "" && patch.Role != portfolio.RoleUser && patch.Role != portfolio.RoleAdmin {
		return nil, apperror.ValidationFailed("role", "role must be user or admin")
	}
	now := s.now().UTC()
	var updated portfolio.User
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		if patch.Username != "" && portfolio.UsernameTaken(doc.Users, patch.Username, id) {
			return apperror.Conflict("Username already exists")
		}
		next, ok := portfolio.UpdateByID(doc.Users, id, func(u *portfolio.User) {
			if patch.Username != "" {
				u.Username = patch.Username
			}
			if patch.Password != "" {
				u.Password = patch.Password
			}
			if patch.Role != "" {
				u.Role = patch.Role
			}
			u.UpdatedAt = &now
			updated = *u
		})
		if !ok {
			return apperror.NotFound("user", id)
		}
		doc.Users = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	redacted := updated.Redacted()
	return &redacted, nil
}

// DeleteUser removes a user. Admin accounts are protected.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(doc *portfolio.Document) error {
		u, ok := portfolio.FindByID(doc.Users, id)
		if !ok {
			return apperror.NotFound("user", id)
		}
		if u.Role == portfolio.RoleAdmin {
			return apperror.Forbidden("admin users cannot be deleted")
		}
		next, _ := portfolio.DeleteByID(doc.Users, id)
		doc.Users = next
		return nil
	})
	if err == nil {
		logger.Infof("user deleted id=%s", id)
	}
	return err
}
