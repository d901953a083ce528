// Package feed loads and shapes the social feed: posts joined with
// their author records at read time.
package feed

import "github.com/conectajovem/platform/internal/model"

// UnknownAuthorName is shown when a post's author record no longer
// exists (deleted account, stale reference).
const UnknownAuthorName = "Usuário Desconhecido"

// AuthorEmails returns the distinct author emails of the batch in
// first-seen order, so authors are fetched once per batch no matter
// how many posts they wrote.
func AuthorEmails(posts []model.Post) []string {
	seen := make(map[string]struct{}, len(posts))
	emails := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorEmail]; ok {
			continue
		}
		seen[p.AuthorEmail] = struct{}{}
		emails = append(emails, p.AuthorEmail)
	}
	return emails
}

// JoinAuthors annotates each post with its author record from
// usersByEmail. Posts whose author is unresolved get a placeholder
// author instead of being dropped. The input slice is not modified.
func JoinAuthors(posts []model.Post, usersByEmail map[string]model.User) []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		if u, ok := usersByEmail[p.AuthorEmail]; ok {
			author := u
			p.Author = &author
		} else {
			p.Author = &model.User{Email: p.AuthorEmail, FullName: UnknownAuthorName}
		}
		out[i] = p
	}
	return out
}

// UsersByEmail indexes a user batch by email.
func UsersByEmail(users []model.User) map[string]model.User {
	m := make(map[string]model.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return m
}
