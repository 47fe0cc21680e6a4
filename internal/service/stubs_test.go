package service

import (
	"context"
	"time"

	"ripple/internal/models"
)

// Function-field stubs for the repository interfaces. Unset fields return
// zero values so each test only wires what it exercises.

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
	listFn    func(context.Context) ([]models.User, error)
	createFn  func(context.Context, *models.User) error
	updateFn  func(context.Context, *models.User) error
	deleteFn  func(context.Context, uint) error
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	if s.existsFn == nil {
		return true, nil
	}
	return s.existsFn(ctx, id)
}

type followRepoStub struct {
	createFn          func(context.Context, *models.Follow) error
	getByIDFn         func(context.Context, uint) (*models.Follow, error)
	getActiveEdgeFn   func(context.Context, uint, uint) (*models.Follow, error)
	listActiveFn      func(context.Context) ([]models.Follow, error)
	deactivateFn      func(context.Context, *models.Follow, time.Time) error
	deleteFn          func(context.Context, uint) error
	listFollowersFn   func(context.Context, uint, int, int) ([]models.Follow, int64, error)
	getFollowingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}
func (s *followRepoStub) GetActiveEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if s.getActiveEdgeFn == nil {
		return nil, nil
	}
	return s.getActiveEdgeFn(ctx, followerID, followingID)
}
func (s *followRepoStub) ListActive(ctx context.Context) ([]models.Follow, error) {
	if s.listActiveFn == nil {
		return nil, nil
	}
	return s.listActiveFn(ctx)
}
func (s *followRepoStub) Deactivate(ctx context.Context, follow *models.Follow, at time.Time) error {
	if s.deactivateFn == nil {
		return nil
	}
	return s.deactivateFn(ctx, follow, at)
}
func (s *followRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.Follow, int64, error) {
	if s.listFollowersFn == nil {
		return nil, 0, nil
	}
	return s.listFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) GetFollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if s.getFollowingIDsFn == nil {
		return nil, nil
	}
	return s.getFollowingIDsFn(ctx, followerID)
}

type likeRepoStub struct {
	createFn           func(context.Context, *models.Like) error
	getByIDFn          func(context.Context, uint) (*models.Like, error)
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Like, error)
	listFn             func(context.Context) ([]models.Like, error)
	deleteFn           func(context.Context, uint) error
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if s.getByUserAndPostFn == nil {
		return nil, nil
	}
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *likeRepoStub) List(ctx context.Context) ([]models.Like, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}
func (s *likeRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	listFn                func(context.Context) ([]models.Post, error)
	updateFn              func(context.Context, *models.Post) error
	deleteFn              func(context.Context, uint) error
	existsFn              func(context.Context, uint) (bool, error)
	listByAuthorsFn       func(context.Context, []uint, int, int) ([]models.Post, int64, error)
	listByHashtagFn       func(context.Context, string, int, int) ([]models.Post, error)
	likeCountsByPostIDsFn func(context.Context, []uint) (map[uint]int, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	if s.existsFn == nil {
		return true, nil
	}
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, int64, error) {
	if s.listByAuthorsFn == nil {
		return nil, 0, nil
	}
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) ListByHashtag(ctx context.Context, tag string, limit, offset int) ([]models.Post, error) {
	if s.listByHashtagFn == nil {
		return nil, nil
	}
	return s.listByHashtagFn(ctx, tag, limit, offset)
}
func (s *postRepoStub) LikeCountsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int, error) {
	if s.likeCountsByPostIDsFn == nil {
		return map[uint]int{}, nil
	}
	return s.likeCountsByPostIDsFn(ctx, postIDs)
}

type activityRepoStub struct {
	getUserActivityFn func(context.Context, uint, models.ActivityFilter, int, int) ([]models.ActivityEvent, int64, error)
}

func (s *activityRepoStub) GetUserActivity(ctx context.Context, userID uint, filter models.ActivityFilter, limit, offset int) ([]models.ActivityEvent, int64, error) {
	if s.getUserActivityFn == nil {
		return nil, 0, nil
	}
	return s.getUserActivityFn(ctx, userID, filter, limit, offset)
}
