package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-event-checkin/internal/handlers"
	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
	"github.com/sbilibin2017/gw-event-checkin/internal/middlewares"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "50051", cfg.GRPCPort)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "guest-events", cfg.KafkaTopic)

	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 10*time.Second, cfg.SMTP.Timeout)

	assert.Equal(t, "my_super_secret_key", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.JWTExp)
	assert.Equal(t, 24*time.Hour, cfg.JWTRefreshExp)

	assert.Equal(t, cfg.JWTSecret, cfg.TicketSecret)
	assert.Zero(t, cfg.TicketTTL)
	assert.Equal(t, 256, cfg.QRSize)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("GRPC_PORT", "50052")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "events")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_DB", "2")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "checkins")

	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USE_TLS", "true")
	t.Setenv("SMTP_FROM", "events@example.com")
	t.Setenv("SMTP_TIMEOUT_SECOND", "3")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "60")
	t.Setenv("JWT_REFRESH_EXP_SECOND", "3600")
	t.Setenv("TICKET_SECRET_KEY", "ticketsecret")
	t.Setenv("TICKET_TTL_SECOND", "86400")
	t.Setenv("TICKET_QR_SIZE", "512")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "50052", cfg.GRPCPort)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "events", cfg.PGDB)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "checkins", cfg.KafkaTopic)

	assert.True(t, cfg.SMTP.Enabled)
	assert.True(t, cfg.SMTP.UseTLS)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, "events@example.com", cfg.SMTP.From)
	assert.Equal(t, 3*time.Second, cfg.SMTP.Timeout)

	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, time.Minute, cfg.JWTExp)
	assert.Equal(t, time.Hour, cfg.JWTRefreshExp)
	assert.Equal(t, "ticketsecret", cfg.TicketSecret)
	assert.Equal(t, 24*time.Hour, cfg.TicketTTL)
	assert.Equal(t, 512, cfg.QRSize)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestParseConfig_InvalidBool(t *testing.T) {
	resetEnv()
	t.Setenv("SMTP_ENABLED", "sometimes")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()
	path := t.TempDir() + "/test.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nKAFKA_TOPIC=from-file\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.KafkaTopic)
	resetEnv()
}

type routerMocks struct {
	auth    *handlers.MockAuthenticator
	users   *handlers.MockUserManager
	events  *handlers.MockEventManager
	guests  *handlers.MockGuestManager
	tokener *middlewares.MockTokener
	txCalls int
}

func newTestRouter(t *testing.T) (http.Handler, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		auth:    handlers.NewMockAuthenticator(ctrl),
		users:   handlers.NewMockUserManager(ctrl),
		events:  handlers.NewMockEventManager(ctrl),
		guests:  handlers.NewMockGuestManager(ctrl),
		tokener: middlewares.NewMockTokener(ctrl),
	}
	r := newRouter(routerDeps{
		Auth:    m.auth,
		Users:   m.users,
		Events:  m.events,
		Guests:  m.guests,
		Tokener: m.tokener,
		Tx: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				m.txCalls++
				next.ServeHTTP(w, r)
			})
		},
		SwaggerURL: "http://localhost:8080/swagger/doc.json",
	})
	return r, m
}

func (m *routerMocks) expectAccessToken() {
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	m.tokener.EXPECT().GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{TokenType: jwt.TokenTypeAccess}, nil)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rr
}

func TestRouter_PublicEventList(t *testing.T) {
	r, m := newTestRouter(t)
	m.events.EXPECT().List(gomock.Any()).Return([]models.EventDB{}, nil)

	rr := serve(r, http.MethodGet, "/events/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UsersRequireAuth(t *testing.T) {
	r, m := newTestRouter(t)
	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrInvalidToken)

	rr := serve(r, http.MethodGet, "/users/", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_MyEventsIsNotAnID(t *testing.T) {
	r, m := newTestRouter(t)
	m.expectAccessToken()
	m.events.EXPECT().ListMine(gomock.Any(), gomock.Any()).Return(nil, nil)

	rr := serve(r, http.MethodGet, "/events/my_events/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_EventWritesRunInTransaction(t *testing.T) {
	r, m := newTestRouter(t)
	m.expectAccessToken()
	m.events.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(3)).Return(nil)

	rr := serve(r, http.MethodDelete, "/events/3/", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, m.txCalls)

	m.events.EXPECT().Get(gomock.Any(), int64(3)).Return(&models.EventDB{EventID: 3}, nil)
	rr = serve(r, http.MethodGet, "/events/3/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, m.txCalls)
}

func TestRouter_GuestRoutes(t *testing.T) {
	r, m := newTestRouter(t)

	m.guests.EXPECT().ListByEvent(gomock.Any(), int64(7)).Return([]models.GuestDB{}, nil)
	rr := serve(r, http.MethodGet, "/guests/by-event/7/", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(r, http.MethodPost, "/guests/check-in/", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), handlers.MsgMissingData)

	m.tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrInvalidToken)
	rr = serve(r, http.MethodDelete, "/guests/"+"0b6f4c8e-3a55-4c1e-9d1c-3d3f2b9a1e10"+"/", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_GuestUpdateIsPublic(t *testing.T) {
	r, m := newTestRouter(t)
	id := "0b6f4c8e-3a55-4c1e-9d1c-3d3f2b9a1e10"
	guest := &models.GuestDB{Name: "Ana", Email: "ana@example.com", RSVPStatus: models.RSVPYes, EventID: 7}

	m.guests.EXPECT().Get(gomock.Any(), id).Return(guest, nil)
	m.guests.EXPECT().Update(gomock.Any(), id, "Ana", "ana@example.com", models.RSVPNo).
		Return(&models.GuestDB{Name: "Ana", Email: "ana@example.com", RSVPStatus: models.RSVPNo, EventID: 7}, nil)

	rr := serve(r, http.MethodPatch, "/guests/"+id+"/", `{"rsvp_status":"N"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"rsvp_status":"N"`)
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	resetEnv()
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	cfg.AppHost = "127.0.0.1"
	cfg.AppPort = "8086"
	cfg.GRPCPort = "50086"
	cfg.LogLevel = "debug"
	cfg.PGHost, cfg.PGPort, cfg.PGDB = pgHost, pgPort.Int(), "testdb"
	cfg.RedisHost, cfg.RedisPort = redisHost, redisPort.Int()

	testCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	base := fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/events/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
