package handlers

import (
	"context"
	"net/http"
	"time"

	"ovenpanel/internal/models"
	"ovenpanel/internal/service"

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

type mockPanel struct {
	setReadout   models.PanelReadout
	setErr       error
	calReadout   models.PanelReadout
	calErr       error
	lastTempC    float64
	setTempCalls int
	calibrateCnt int
}

func (m *mockPanel) SetTemperature(ctx context.Context, tempC float64) (models.PanelReadout, error) {
	m.setTempCalls++
	m.lastTempC = tempC
	return m.setReadout, m.setErr
}
func (m *mockPanel) Calibrate(ctx context.Context) (models.PanelReadout, error) {
	m.calibrateCnt++
	return m.calReadout, m.calErr
}

type mockMonitoring struct {
	readout models.PanelReadout
	err     error
}

func (m *mockMonitoring) GetReadout(ctx context.Context) (models.PanelReadout, error) {
	return m.readout, m.err
}

type mockEventLog struct {
	resp     []models.PanelEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.PanelEvent, error) {
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
