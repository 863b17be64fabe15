package portfolio

import "strings"

// Pure collection operations. Each takes a sequence and returns a new one;
// callers own persisting the result back into the Document.

// Record is any entry stored in a Document collection.
type Record interface {
	RecordID() string
}

// InsertFront prepends a record (projects and code snippets).
func InsertFront[T Record](seq []T, r T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, r)
	return append(out, seq...)
}

// InsertBack appends a record (users).
func InsertBack[T Record](seq []T, r T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, seq...)
	return append(out, r)
}

// FindByID returns the record with the given id.
func FindByID[T Record](seq []T, id string) (T, bool) {
	for _, r := range seq {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// UpdateByID applies patch to the matching record and returns a new sequence.
// The patch closure mutates fields in place; id and createdAt preservation is
// the patch author's contract.
func UpdateByID[T Record](seq []T, id string, patch func(*T)) ([]T, bool) {
	for i, r := range seq {
		if r.RecordID() == id {
			out := make([]T, len(seq))
			copy(out, seq)
			patch(&out[i])
			return out, true
		}
	}
	return seq, false
}

// DeleteByID removes the matching record, shifting later elements down.
func DeleteByID[T Record](seq []T, id string) ([]T, bool) {
	for i, r := range seq {
		if r.RecordID() == id {
			out := make([]T, 0, len(seq)-1)
			out = append(out, seq[:i]...)
			return append(out, seq[i+1:]...), true
		}
	}
	return seq, false
}

// FilterSubstring keeps records whose text fields contain query,
// case-insensitively. An empty query keeps everything. fields extracts the
// searchable strings per record (for projects this includes the tags).
func FilterSubstring[T any](seq []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return seq
	}
	out := []T{}
	for _, r := range seq {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), query) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Paginate slices out page (1-indexed) of size limit and reports the overall
// total and page count. A page past the end yields an empty slice, not an
// error.
func Paginate[T any](seq []T, page, limit int) ([]T, int, int) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	total := len(seq)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return seq[start:end], total, totalPages
}

// UsernameTaken reports whether another user already holds username.
// excludeID skips the user being renamed.
func UsernameTaken(users []User, username, excludeID string) bool {
	for _, u := range users {
		if u.ID == excludeID {
			continue
		}
		if u.Username == username {
			return true
		}
	}
	return false
}

// SearchFields per record type, shared by the list endpoints.

func ProjectSearchFields(p Project) []string {
	fields := []string{p.Title, p.Description}
	return append(fields, p.Tags...)
}

func CodeSearchFields(c CodeSnippet) []string {
	return []string{c.Title, c.Code}
}

func UserSearchFields(u User) []string {
	return []string{u.Username}
}
