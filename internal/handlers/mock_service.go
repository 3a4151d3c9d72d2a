package handlers

import (
	"context"

	"prep_tracker/internal/models"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseUsername string
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUsername, m.parseErr
}

type trackerCall struct {
	Owner string
	ID    int
}

type mockTracker struct {
	problems    []models.Problem
	listErr     error
	addID       int
	addErr      error
	toggleErr   error
	deleteErr   error
	progress    models.Progress
	progressErr error

	listCalls   []string
	addCalls    []struct{ Owner, Topic, Problem string }
	toggleCalls []trackerCall
	deleteCalls []trackerCall
}

func (m *mockTracker) List(_ context.Context, owner string) ([]models.Problem, error) {
	m.listCalls = append(m.listCalls, owner)
	return m.problems, m.listErr
}

func (m *mockTracker) Add(_ context.Context, owner, topic, problem string) (int, error) {
	m.addCalls = append(m.addCalls, struct{ Owner, Topic, Problem string }{owner, topic, problem})
	return m.addID, m.addErr
}

func (m *mockTracker) ToggleStatus(_ context.Context, owner string, id int) error {
	m.toggleCalls = append(m.toggleCalls, trackerCall{Owner: owner, ID: id})
	return m.toggleErr
}

func (m *mockTracker) Delete(_ context.Context, owner string, id int) error {
	m.deleteCalls = append(m.deleteCalls, trackerCall{Owner: owner, ID: id})
	return m.deleteErr
}

func (m *mockTracker) Progress(_ context.Context, owner string) (models.Progress, error) {
	return m.progress, m.progressErr
}

// mutations reports how many writes the tracker saw, across all operations.
func (m *mockTracker) mutations() int {
	return len(m.addCalls) + len(m.toggleCalls) + len(m.deleteCalls)
}
