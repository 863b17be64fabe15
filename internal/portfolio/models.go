package portfolio

import (
	"strconv"
	"time"
)

// Document is the single unit of persistence: every collection lives inside
// one remote JSON document that is always read and written whole. The remote
// store has no partial-update capability.
type Document struct {
	Projects []Project     `json:"projects"`
	Codes    []CodeSnippet `json:"codes"`
	Users    []User        `json:"users"`
}

// Normalize replaces nil collections with empty ones. Stored revisions are not
// guaranteed to carry all three keys, so every load passes through here.
func (d *Document) Normalize() {
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Codes == nil {
		d.Codes = []CodeSnippet{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
}

// Project is a portfolio entry. New projects are prepended to the collection
// (most-recent-first is a product requirement).
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	LiveURL     string     `json:"liveUrl,omitempty"`
	GithubURL   string     `json:"githubUrl,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (p Project) RecordID() string { return p.ID }

// CodeSnippet is a shared piece of code, prepended on insert like projects.
type CodeSnippet struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Code      string     `json:"code"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (c CodeSnippet) RecordID() string { return c.ID }

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record. Usernames are unique across the collection and
// users are appended (signup order preserved). The password is stored exactly
// as received — the upstream data format has no hashed credentials and
// changing that would break existing documents.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (u User) RecordID() string { return u.ID }

// Redacted returns a copy safe for API responses: the password never leaves
// the service layer.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

// NewID returns a record id: the current unix time in milliseconds as a
// decimal string, matching ids already present in stored documents.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
