package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atomdellow/gamingblocksite/internal/database"
	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/policy"
)

// TestDB holds the test database connection and container
type TestDB struct {
	DB        *gorm.DB
	Container testcontainers.Container
}

// SetupTestDB creates a PostgreSQL container and applies the schema
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return &TestDB{DB: db, Container: container}
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return &user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create category %s: %v", name, err)
	}
	return &category
}

type postSeed struct {
	Title     string
	Content   string
	Published bool
	Tags      []string
	CreatedAt time.Time
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, seed postSeed) *models.Post {
	t.Helper()
	if seed.Content == "" {
		seed.Content = "content for " + seed.Title
	}
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Now().UTC()
	}
	post := models.Post{
		Title:      seed.Title,
		Slug:       "seed-slug",
		Content:    seed.Content,
		Published:  seed.Published,
		AuthorID:   author.ID,
		CategoryID: category.ID,
		Tags:       seed.Tags,
		CreatedAt:  seed.CreatedAt,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post %q: %v", seed.Title, err)
	}
	return &post
}

func createComment(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, content string) *models.Comment {
	t.Helper()
	comment := models.Comment{Content: content, PostID: post.ID, UserID: user.ID}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	return &comment
}

func asCaller(user *models.User) policy.Caller {
	return policy.Caller{ID: user.ID, Role: user.Role}
}
