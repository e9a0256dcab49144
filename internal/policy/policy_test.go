package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomdellow/gamingblocksite/internal/models"
)

var (
	author   = Caller{ID: 7, Role: models.RoleUser}
	stranger = Caller{ID: 9, Role: models.RoleUser}
	admin    = Caller{ID: 2, Role: models.RoleAdmin}
)

func TestCanViewPost(t *testing.T) {
	published := &models.Post{AuthorID: 7, Published: true}
	draft := &models.Post{AuthorID: 7, Published: false}

	assert.True(t, CanViewPost(Anonymous, published))
	assert.True(t, CanViewPost(stranger, published))

	assert.False(t, CanViewPost(Anonymous, draft))
	assert.False(t, CanViewPost(stranger, draft))
	assert.True(t, CanViewPost(author, draft))
	assert.True(t, CanViewPost(admin, draft))
}

func TestCanModifyPost(t *testing.T) {
	post := &models.Post{AuthorID: 7}

	assert.True(t, CanModifyPost(author, post))
	assert.True(t, CanModifyPost(admin, post))
	assert.False(t, CanModifyPost(stranger, post))
	assert.False(t, CanModifyPost(Anonymous, post))
}

func TestCanModifyPostAnonymousNeverMatchesZeroAuthor(t *testing.T) {
	// A post row should never have author 0, but the policy must not grant
	// the anonymous caller access even if one does.
	post := &models.Post{AuthorID: 0}
	assert.False(t, CanModifyPost(Anonymous, post))
}

func TestCanModifyComment(t *testing.T) {
	comment := &models.Comment{UserID: 7}

	assert.True(t, CanModifyComment(author, comment))
	assert.True(t, CanModifyComment(admin, comment))
	assert.False(t, CanModifyComment(stranger, comment))
	assert.False(t, CanModifyComment(Anonymous, comment))
}

func TestCanManageCategories(t *testing.T) {
	assert.True(t, CanManageCategories(admin))
	assert.False(t, CanManageCategories(author))
	assert.False(t, CanManageCategories(Anonymous))
}
