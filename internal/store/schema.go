package store

import (
	"fmt"
	"strings"

	"github.com/conectajovem/platform/internal/model"
)

// Entity names served by the emulator.
const (
	EntityUsers    = "users"
	EntityPosts    = "posts"
	EntityJobs     = "jobs"
	EntityCourses  = "courses"
	EntityMessages = "messages"
	EntityFollows  = "follows"
)

// required lists the fields a create must carry per entity, matching
// the production backend's schemas.
var required = map[string][]string{
	EntityUsers:    {"email", "full_name"},
	EntityPosts:    {"author_email", "content"},
	EntityJobs:     {"title", "company"},
	EntityCourses:  {"title"},
	EntityMessages: {"sender_email", "receiver_email", "message"},
	EntityFollows:  {"follower_email", "following_email"},
}

// KnownEntity reports whether the emulator serves this entity.
func KnownEntity(entity string) bool {
	_, ok := required[entity]
	return ok
}

// ValidateCreate checks the create payload against the entity schema.
func ValidateCreate(entity string, rec Record) error {
	fields, ok := required[entity]
	if !ok {
		return fmt.Errorf("unknown entity %q: %w", entity, model.ErrNotFound)
	}
	var missing []string
	for _, f := range fields {
		v, ok := rec[f]
		if !ok {
			missing = append(missing, f)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields %s: %w", strings.Join(missing, ", "), model.ErrValidation)
	}
	if entity == EntityFollows && rec["follower_email"] == rec["following_email"] {
		return fmt.Errorf("follower and following must differ: %w", model.ErrValidation)
	}
	return nil
}
