package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	app := newTestApp(t)
	w := app.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fitness Tracker API is running!", decode[map[string]string](t, w)["message"])
}

func TestCreateUserLinksExistingGoal(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "lose_weight"})

	w := app.do(t, http.MethodPost, "/users", map[string]any{
		"name": "Ann", "email": "ann@example.com", "password": "pw", "goal": "lose_weight",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode[map[string]any](t, w)
	assert.Equal(t, "User created successfully", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, user, "PasswordHash")
	goals := user["goals"].([]any)
	require.Len(t, goals, 1)
	assert.Equal(t, float64(goalID), goals[0].(map[string]any)["id"])
	assert.NotContains(t, goals[0].(map[string]any), "users")

	w = app.do(t, http.MethodPost, "/users", map[string]any{
		"name": "Bob", "email": "bob@example.com", "password": "pw", "goal": "no_such_goal",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, decode[map[string]any](t, w)["user"].(map[string]any)["goals"])
	assert.Equal(t, int64(1), app.count(t, "user_goals"))
}

func TestCreateUserValidationAndConflict(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/users", map[string]any{"name": "Ann", "email": "ann@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, readError(t, w), "password")

	w = app.do(t, http.MethodPost, "/users", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No input data provided", readError(t, w))

	app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	w = app.do(t, http.MethodPost, "/users", map[string]any{"name": "Ann 2", "email": "ann@example.com", "password": "pw"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1), app.count(t, "users"))
}

func TestUpdateUser(t *testing.T) {
	app := newTestApp(t)
	id := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	app.createID(t, "/users", map[string]any{"name": "Bob", "email": "bob@example.com", "password": "pw"})

	w := app.do(t, http.MethodPatch, fmt.Sprintf("/users/%d", id), map[string]any{"name": "Annie"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]any](t, w)
	assert.Equal(t, "Annie", user["name"])
	assert.Equal(t, "ann@example.com", user["email"])

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/users/%d", id), map[string]any{"email": "bob@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(t, http.MethodPatch, "/users/999", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = app.do(t, http.MethodPatch, "/users/abc", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUnknownUserWithTakenEmailIsNotFound(t *testing.T) {
	app := newTestApp(t)
	app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})

	w := app.do(t, http.MethodPatch, "/users/999", map[string]any{"email": "ann@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user not found", readError(t, w))
}

func TestUserGoalsIncludeTheirExercises(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "lose_weight"})
	app.createID(t, "/exercises", map[string]any{"exercise_name": "Run", "goal_id": goalID})

	w := app.do(t, http.MethodPost, "/users", map[string]any{
		"name": "Ann", "email": "ann@example.com", "password": "pw", "goal": "lose_weight",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	goals := decode[map[string]any](t, w)["user"].(map[string]any)["goals"].([]any)
	require.Len(t, goals, 1)
	exercises := goals[0].(map[string]any)["exercises"].([]any)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Run", exercises[0].(map[string]any)["exercise_name"])

	w = app.do(t, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]map[string]any](t, w)
	require.Len(t, users, 1)
	listed := users[0]["goals"].([]any)[0].(map[string]any)["exercises"].([]any)
	assert.Len(t, listed, 1)
}

func TestCreatedRecordsRenderEmptyCollections(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/goals", map[string]any{"name": "stay_fit"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"exercises":[]`)

	userID := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	w = app.do(t, http.MethodPost, "/workouts", map[string]any{"title": "Legs", "date": "2024-05-01", "user_id": userID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"exercises":[]`)
}

func TestDeleteUserCascadesWorkoutsAndLogs(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "stay_fit"})
	exerciseID := app.createID(t, "/exercises", map[string]any{"exercise_name": "Plank", "goal_id": goalID})
	userID := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw", "goal_id": goalID})
	otherID := app.createID(t, "/users", map[string]any{"name": "Bob", "email": "bob@example.com", "password": "pw"})

	const n, m = 2, 3
	for i := 0; i < n; i++ {
		workoutID := app.createID(t, "/workouts", map[string]any{"title": "Core", "date": "2024-05-01", "user_id": userID})
		for j := 0; j < m; j++ {
			app.createID(t, "/exercise_logs", map[string]any{"sets": 3, "reps": 10, "workout_id": workoutID, "exercise_id": exerciseID})
		}
	}
	otherWorkout := app.createID(t, "/workouts", map[string]any{"title": "Run", "date": "yesterday", "user_id": otherID})
	app.createID(t, "/exercise_logs", map[string]any{"sets": 1, "reps": 1, "workout_id": otherWorkout, "exercise_id": exerciseID})
	require.Equal(t, int64(n*m+1), app.count(t, "exercise_logs"))

	w := app.do(t, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, int64(1), app.count(t, "workouts"))
	assert.Equal(t, int64(1), app.count(t, "exercise_logs"))
	assert.Equal(t, int64(0), app.count(t, "user_goals"))
	assert.Equal(t, int64(1), app.count(t, "goals"))

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsersNestsWorkoutsWithoutCycles(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "gain_muscle"})
	exerciseID := app.createID(t, "/exercises", map[string]any{"exercise_name": "Deadlift", "goal_id": goalID})
	userID := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	workoutID := app.createID(t, "/workouts", map[string]any{"title": "Pull", "date": "Monday", "notes": "heavy", "user_id": userID})
	app.createID(t, "/exercise_logs", map[string]any{"sets": 5, "reps": 5, "weight": 140.5, "workout_id": workoutID, "exercise_id": exerciseID})

	w := app.do(t, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]map[string]any](t, w)
	require.Len(t, users, 1)
	workouts := users[0]["workouts"].([]any)
	require.Len(t, workouts, 1)
	workout := workouts[0].(map[string]any)
	assert.Equal(t, "heavy", workout["notes"])
	assert.NotContains(t, workout, "user")
	logs := workout["exercises"].([]any)
	require.Len(t, logs, 1)
	log := logs[0].(map[string]any)
	assert.Equal(t, 140.5, log["weight"])
	assert.NotContains(t, log, "workout")
}

func TestGoalEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/goals", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: name", readError(t, w))

	id := app.createID(t, "/goals", map[string]any{"name": "lose_weight"})
	app.createID(t, "/exercises", map[string]any{"exercise_name": "Jump rope", "goal_id": id})

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/goals/%d", id), map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lose_weight", decode[map[string]any](t, w)["name"])

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/goals/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/goals/%d", id), map[string]any{"name": "cut"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cut", decode[map[string]any](t, w)["name"])

	w = app.do(t, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	goals := decode[[]map[string]any](t, w)
	require.Len(t, goals, 1)
	assert.Len(t, goals[0]["exercises"], 1)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/goals/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(0), app.count(t, "exercises"))

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/goals/%d", id), map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExerciseEndpoints(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "grow_glutes"})
	otherGoal := app.createID(t, "/goals", map[string]any{"name": "stay_fit"})

	w := app.do(t, http.MethodPost, "/exercises", map[string]any{"exercise_name": "Squat"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, readError(t, w), "goal_id")

	id := app.createID(t, "/exercises", map[string]any{"exercise_name": "Squat", "goal_id": goalID})

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/exercises/%d", id), map[string]any{"goal_id": otherGoal})
	require.Equal(t, http.StatusOK, w.Code)
	exercise := decode[map[string]any](t, w)
	assert.Equal(t, "Squat", exercise["exercise_name"])
	assert.Equal(t, float64(otherGoal), exercise["goal_id"])

	w = app.do(t, http.MethodGet, "/exercises", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/exercises/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = app.do(t, http.MethodDelete, fmt.Sprintf("/exercises/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkoutEndpoints(t *testing.T) {
	app := newTestApp(t)
	userID := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})

	w := app.do(t, http.MethodPost, "/workouts", map[string]any{"title": "Legs", "user_id": userID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, readError(t, w), "date")

	id := app.createID(t, "/workouts", map[string]any{"title": "Legs", "date": "2024-05-01", "user_id": userID})

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/workouts/%d", id), map[string]any{"notes": "felt strong"})
	require.Equal(t, http.StatusOK, w.Code)
	workout := decode[map[string]any](t, w)
	assert.Equal(t, "Legs", workout["title"])
	assert.Equal(t, "2024-05-01", workout["date"])
	assert.Equal(t, "felt strong", workout["notes"])

	w = app.do(t, http.MethodGet, "/workouts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/workouts/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(0), app.count(t, "workouts"))
}

func TestExerciseLogEndpoints(t *testing.T) {
	app := newTestApp(t)
	goalID := app.createID(t, "/goals", map[string]any{"name": "gain_muscle"})
	exerciseID := app.createID(t, "/exercises", map[string]any{"exercise_name": "Bench", "goal_id": goalID})
	userID := app.createID(t, "/users", map[string]any{"name": "Ann", "email": "ann@example.com", "password": "pw"})
	workoutID := app.createID(t, "/workouts", map[string]any{"title": "Push", "date": "Tue", "user_id": userID})

	w := app.do(t, http.MethodPost, "/exercise_logs", map[string]any{"sets": 3, "workout_id": workoutID, "exercise_id": exerciseID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, readError(t, w), "reps")
	assert.Equal(t, int64(0), app.count(t, "exercise_logs"))

	w = app.do(t, http.MethodPost, "/exercise_logs", map[string]any{"sets": "three", "reps": 8, "workout_id": workoutID, "exercise_id": exerciseID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), app.count(t, "exercise_logs"))

	w = app.do(t, http.MethodPost, "/exercise_logs", map[string]any{"sets": 3, "reps": 8, "workout_id": workoutID, "exercise_id": exerciseID})
	require.Equal(t, http.StatusCreated, w.Code)
	log := decode[map[string]any](t, w)
	assert.Equal(t, 0.0, log["weight"])
	id := uint(log["id"].(float64))

	w = app.do(t, http.MethodPatch, fmt.Sprintf("/exercise_logs/%d", id), map[string]any{"weight": 60})
	require.Equal(t, http.StatusOK, w.Code)
	log = decode[map[string]any](t, w)
	assert.Equal(t, 60.0, log["weight"])
	assert.Equal(t, 8.0, log["reps"])

	w = app.do(t, http.MethodGet, "/exercise_logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = app.do(t, http.MethodDelete, fmt.Sprintf("/exercise_logs/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = app.do(t, http.MethodPatch, fmt.Sprintf("/exercise_logs/%d", id), map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListsStartEmpty(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/users", "/goals", "/exercises", "/workouts", "/exercise_logs"} {
		w := app.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}
