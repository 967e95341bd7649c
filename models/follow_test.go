package models

import (
	"errors"
	"os"
	"testing"

	"blog/config"
	"blog/db"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	tmp, err := os.CreateTemp("", "blog-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp db: %v", err)
	}
	tmp.Close()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = tmp.Name()
	db.Init()
	Init()
	t.Cleanup(func() { os.Remove(tmp.Name()) })
}

func createTestUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, "secret")
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", username, err)
	}
	return u
}

func followEdgeCount(t *testing.T) int64 {
	t.Helper()
	count := int64(0)
	if err := db.Instance.Model(&Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("counting follow edges: %v", err)
	}
	return count
}

func TestFollowUnfollow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tester")
	author := createTestUser(t, "author")

	if _, err := FollowAuthor(user.ID, author.ID); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if !IsFollowing(user.ID, author.ID) {
		t.Error("expected IsFollowing to be true after follow")
	}
	if IsFollowing(author.ID, user.ID) {
		t.Error("follow edge must be directed, reverse should be false")
	}
	if err := UnfollowAuthor(user.ID, author.ID); err != nil {
		t.Fatalf("UnfollowAuthor: %v", err)
	}
	if IsFollowing(user.ID, author.ID) {
		t.Error("expected IsFollowing to be false after unfollow")
	}
}

func TestFollowDuplicate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tester")
	author := createTestUser(t, "author")

	if _, err := FollowAuthor(user.ID, author.ID); err != nil {
		t.Fatalf("first FollowAuthor: %v", err)
	}
	_, err := FollowAuthor(user.ID, author.ID)
	if !errors.Is(err, ErrAlreadyFollowing) {
		t.Errorf("second FollowAuthor: got %v, want ErrAlreadyFollowing", err)
	}
	if got := followEdgeCount(t); got != 1 {
		t.Errorf("edge count after duplicate follow = %d, want 1", got)
	}
}

func TestSelfFollow(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tester")

	_, err := FollowAuthor(user.ID, user.ID)
	if !errors.Is(err, ErrSelfFollow) {
		t.Errorf("self follow: got %v, want ErrSelfFollow", err)
	}
	if got := followEdgeCount(t); got != 0 {
		t.Errorf("edge count after self follow = %d, want 0", got)
	}
}

func TestUnfollowMissingEdge(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tester")
	author := createTestUser(t, "author")

	if err := UnfollowAuthor(user.ID, author.ID); err != nil {
		t.Errorf("unfollow without edge should be a no-op, got %v", err)
	}
	if got := followEdgeCount(t); got != 0 {
		t.Errorf("edge count = %d, want 0", got)
	}
}

func TestFollowedAuthorIDs(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "tester")
	author1 := createTestUser(t, "author1")
	author2 := createTestUser(t, "author2")
	createTestUser(t, "author3")

	if _, err := FollowAuthor(user.ID, author1.ID); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}
	if _, err := FollowAuthor(user.ID, author2.ID); err != nil {
		t.Fatalf("FollowAuthor: %v", err)
	}

	ids, err := FollowedAuthorIDs(user.ID)
	if err != nil {
		t.Fatalf("FollowedAuthorIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}
	want := map[uint64]bool{author1.ID: true, author2.ID: true}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("unexpected author id %d", id)
		}
	}
}

func TestGroupDeleteClearsPostReference(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	group, err := GroupCreate("test-slug", "Test group", "A group")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	post, err := PostCreate(author.ID, "group post", &group.ID, "")
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}

	if err := group.Delete(); err != nil {
		t.Fatalf("group.Delete: %v", err)
	}
	reloaded, err := PostByID(post.ID)
	if err != nil {
		t.Fatalf("post should survive group deletion, got %v", err)
	}
	if reloaded.GroupID != nil {
		t.Errorf("post.GroupID = %v, want nil after group deletion", *reloaded.GroupID)
	}
}

func TestPostDeleteCascadesComments(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	reader := createTestUser(t, "reader")
	post, err := PostCreate(author.ID, "a post", nil, "")
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	if _, err := CommentCreate(reader.ID, post.ID, "first"); err != nil {
		t.Fatalf("CommentCreate: %v", err)
	}
	if _, err := CommentCreate(author.ID, post.ID, "second"); err != nil {
		t.Fatalf("CommentCreate: %v", err)
	}

	if err := post.Delete(); err != nil {
		t.Fatalf("post.Delete: %v", err)
	}
	count := int64(0)
	if err := db.Instance.Model(&Comment{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("counting comments: %v", err)
	}
	if count != 0 {
		t.Errorf("comment count after post deletion = %d, want 0", count)
	}
}

func TestUserLogin(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "tester")

	if _, ok := UserLogin("tester", "secret"); !ok {
		t.Error("login with correct password should succeed")
	}
	if _, ok := UserLogin("tester", "wrong"); ok {
		t.Error("login with wrong password should fail")
	}
	if _, ok := UserLogin("nobody", "secret"); ok {
		t.Error("login with unknown username should fail")
	}
}
