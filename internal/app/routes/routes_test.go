package routes

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/database"
)

// testTemplates stands in for web/templates: same names, same data keys,
// minimal bodies.
const testTemplates = `
{{define "login.html"}}login page {{range .flashes}}[{{.Level}}] {{.Message}} {{end}}{{end}}
{{define "dashboard.html"}}dashboard {{.total_criminals}} {{range .flashes}}{{.Message}} {{end}}{{end}}
{{define "reports.html"}}reports{{end}}
{{define "search.html"}}search {{range .flashes}}{{.Message}} {{end}}{{end}}
{{define "criminals.html"}}criminals {{len .criminals}} {{range .flashes}}{{.Message}} {{end}}{{end}}
{{define "add_criminal.html"}}add criminal form{{end}}
{{define "edit_criminal.html"}}edit criminal form{{end}}
{{define "cases.html"}}cases {{range .flashes}}{{.Message}} {{end}}{{end}}
{{define "add_case.html"}}add case form{{end}}
{{define "edit_case.html"}}edit case form{{end}}
`

// clientAddr gives every test its own source address so the package-level
// rate-limiter buckets never bleed between tests.
var (
	clientSeq  int
	clientAddr string
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clientSeq++
	clientAddr = fmt.Sprintf("10.9.0.%d:1000", clientSeq)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		SessionSecretKey:       "routes-test-secret",
		SessionTTLHours:        1,
		DefaultOfficerUsername: "admin",
		DefaultOfficerPassword: "admin123",
	}

	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	officerService := serviceContainer.GetService("officer").(services.InterfaceOfficerService)
	require.NoError(t, officerService.EnsureDefaultOfficer(context.Background()))

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	return SetupRouterWithContainer(r, serviceContainer)
}

func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = clientAddr
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.RemoteAddr = clientAddr
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login runs the credential flow and returns the authenticated session
// cookie.
func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	w := doPostForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	// Keep the last cookie per name, as a real client's cookie jar would:
	// the login response carries both the pre-login session cookie and its
	// authenticated replacement under the same name.
	byName := map[string]int{}
	var cookies []*http.Cookie
	for _, c := range w.Result().Cookies() {
		if i, ok := byName[c.Name]; ok {
			cookies[i] = c
			continue
		}
		byName[c.Name] = len(cookies)
		cookies = append(cookies, c)
	}
	require.NotEmpty(t, cookies)
	return cookies
}

func TestRootRedirectsToLogin(t *testing.T) {
	r := newTestApp(t)

	w := doGet(r, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginPage(t *testing.T) {
	r := newTestApp(t)

	w := doGet(r, "/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login page")
	// an anonymous session cookie is issued so pre-login flashes work
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	r := newTestApp(t)

	for _, path := range []string{"/dashboard", "/reports", "/search", "/criminals", "/cases"} {
		w := doGet(r, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestApp(t)

	w := doPostForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password!")
}

func TestLoginAndDashboard(t *testing.T) {
	r := newTestApp(t)
	cookies := login(t, r)

	w := doGet(r, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")
	assert.Contains(t, w.Body.String(), "Login successful!")

	// flash is one-shot
	w = doGet(r, "/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Login successful!")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestApp(t)
	cookies := login(t, r)

	w := doGet(r, "/logout", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	loggedOut := w.Result().Cookies()

	// the replacement session carries the goodbye flash
	w = doGet(r, "/login", loggedOut)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You have been logged out.")

	// the old session no longer authenticates
	w = doGet(r, "/dashboard", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAddCriminalFlow(t *testing.T) {
	r := newTestApp(t)
	cookies := login(t, r)

	w := doGet(r, "/criminals/add", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "add criminal form")

	w = doPostForm(r, "/criminals/add", url.Values{
		"first_name":   {"John"},
		"last_name":    {"Smith"},
		"dob":          {"1985-03-12"},
		"gender":       {"Male"},
		"national_id":  {"NID-1001"},
		"address":      {"12 Harbor St"},
		"status":       {"Wanted"},
		"danger_level": {"High"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/criminals", w.Header().Get("Location"))

	w = doGet(r, "/criminals", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "criminals 1")
	assert.Contains(t, w.Body.String(), "Successfully added criminal: John Smith")
}

func TestAddCriminalBadDate(t *testing.T) {
	r := newTestApp(t)
	cookies := login(t, r)

	w := doPostForm(r, "/criminals/add", url.Values{
		"first_name": {"John"},
		"last_name":  {"Smith"},
		"dob":        {"not-a-date"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	w = doGet(r, "/criminals", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "criminals 0")
	assert.Contains(t, w.Body.String(), "invalid date of birth")
}

func TestSearchFlow(t *testing.T) {
	r := newTestApp(t)
	cookies := login(t, r)

	// a blank submission warns without querying
	w := doPostForm(r, "/search", url.Values{}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a search type and enter a query.")

	w = doPostForm(r, "/search", url.Values{
		"search_type": {"criminal"},
		"query":       {"nobody"},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No results found.")
}

func TestHealthz(t *testing.T) {
	r := newTestApp(t)

	w := doGet(r, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
	assert.Contains(t, w.Body.String(), `"sessions":"up"`)
}
