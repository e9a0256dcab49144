// Package policy decides what a caller may see or change. It is deliberately
// free of transport and storage concerns so the rules can be tested on their
// own.
package policy

import "github.com/atomdellow/gamingblocksite/internal/models"

// Caller identifies the requester. The zero value is the anonymous caller.
type Caller struct {
	ID   uint
	Role string
}

// Anonymous is the caller used when no credentials were presented.
var Anonymous = Caller{}

func (c Caller) IsAnonymous() bool {
	return c.ID == 0
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CanViewPost reports whether the caller may read the post. Unpublished
// posts are visible only to their author and to admins; everyone else is
// told the post does not exist.
func CanViewPost(c Caller, post *models.Post) bool {
	if post.Published {
		return true
	}
	return c.IsAdmin() || c.ID == post.AuthorID
}

// CanModifyPost implements the author-or-admin rule for update and delete.
func CanModifyPost(c Caller, post *models.Post) bool {
	return c.IsAdmin() || (!c.IsAnonymous() && c.ID == post.AuthorID)
}

// CanModifyComment implements the author-or-admin rule for comments.
func CanModifyComment(c Caller, comment *models.Comment) bool {
	return c.IsAdmin() || (!c.IsAnonymous() && c.ID == comment.UserID)
}

// CanManageCategories restricts category writes to admins.
func CanManageCategories(c Caller) bool {
	return c.IsAdmin()
}
