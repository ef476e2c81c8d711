package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/errs"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/lib/job"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/model"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/sqlerr"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/testutil"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func ptr[T any](v T) *T {
	return &v
}

// statusOf resolves err the way the global error handler does.
func statusOf(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
	return httpErr
}

func createUser(t *testing.T, svc *UserService, email string) *model.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), &model.CreateUserRequest{
		Name:    "Ada Lovelace",
		Address: "12 Analytical Row",
		Email:   email,
	})
	require.NoError(t, err)
	return user
}

func TestCreateUserEnqueuesWelcomeEmail(t *testing.T) {
	jobs := &recordingEnqueuer{}
	svc := NewUserService(testutil.NewStore(), jobs)

	user := createUser(t, svc, "ada@example.com")

	require.Len(t, jobs.tasks, 1)
	assert.Equal(t, job.TaskWelcome, jobs.tasks[0].Type())

	var payload job.WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(jobs.tasks[0].Payload(), &payload))
	assert.Equal(t, job.WelcomeEmailPayload{To: user.Email, Name: user.Name}, payload)
}

func TestCreateUserIgnoresEnqueueFailure(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), &recordingEnqueuer{err: errors.New("redis down")})

	user := createUser(t, svc, "ada@example.com")
	assert.NotZero(t, user.ID)
}

func TestCreateUserWithoutJobs(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), nil)

	user := createUser(t, svc, "ada@example.com")
	assert.NotZero(t, user.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), nil)
	createUser(t, svc, "ada@example.com")

	_, err := svc.CreateUser(context.Background(), &model.CreateUserRequest{
		Name: "Someone Else", Address: "Elsewhere", Email: "ada@example.com",
	})
	require.Error(t, err)

	httpErr := statusOf(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestUpdateUserMergesPresentFields(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), nil)
	user := createUser(t, svc, "ada@example.com")

	updated, err := svc.UpdateUser(context.Background(), &model.UpdateUserRequest{
		ID:      user.ID,
		Address: ptr("new"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Address)
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, user.Email, updated.Email)

	fetched, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), nil)

	_, err := svc.UpdateUser(context.Background(), &model.UpdateUserRequest{ID: 42, Name: ptr("x")})
	assert.Equal(t, "User not found", statusOf(t, err).Message)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(testutil.NewStore(), nil)
	user := createUser(t, svc, "ada@example.com")

	res, err := svc.DeleteUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User 1 deleted successfully", res.Message)

	_, err = svc.GetUser(context.Background(), user.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err).Status)

	_, err = svc.DeleteUser(context.Background(), user.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err).Status)
}

func TestListUsersEmpty(t *testing.T) {
	users, err := NewUserService(testutil.NewStore(), nil).ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
