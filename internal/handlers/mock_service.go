package handlers

import (
	"context"
	"net/http"
	"time"

	"pi_alarm_clock"
	"pi_alarm_clock/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAlarmClock struct {
	setErr    error
	clearErr  error
	inputRes  pi_alarm_clock.ScoreResult
	inputErr  error
	snapshot  pi_alarm_clock.ClockSnapshot
	lastSet   service.AlarmParams
	lastInput string

	setCalls   int
	clearCalls int
	inputCalls int
}

func (m *mockAlarmClock) SetAlarm(ctx context.Context, p service.AlarmParams) error {
	m.setCalls++
	m.lastSet = p
	return m.setErr
}
func (m *mockAlarmClock) ClearAlarm(ctx context.Context) error {
	m.clearCalls++
	return m.clearErr
}
func (m *mockAlarmClock) SubmitInput(ctx context.Context, text string) (pi_alarm_clock.ScoreResult, error) {
	m.inputCalls++
	m.lastInput = text
	return m.inputRes, m.inputErr
}
func (m *mockAlarmClock) Snapshot(ctx context.Context) pi_alarm_clock.ClockSnapshot {
	return m.snapshot
}

type mockEventLog struct {
	resp     []pi_alarm_clock.ClockEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]pi_alarm_clock.ClockEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
