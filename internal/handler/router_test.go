package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lucien-Luc/Programs/internal/config"
	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Activity{},
		&model.TableConfig{},
		&model.ColumnHeader{},
		&model.ProgramSuggestion{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		GinMode:         "test",
		SessionCookie:   "session_id",
		SessionTTLHours: 1,
		UploadDir:       t.TempDir(),
	}
	router, err := SetupRouter(cfg, gormDB)
	if err != nil {
		t.Fatalf("SetupRouter failed: %v", err)
	}
	return router, gormDB
}

func seedAdmin(t *testing.T, gormDB *gorm.DB) {
	t.Helper()
	hash, err := service.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	err = gormDB.WithContext(context.Background()).Create(&model.User{
		Username:     "admin",
		Email:        "admin@example.org",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}).Error
	if err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func login(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "s3cret"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestProgramCRUD(t *testing.T) {
	router, _ := newTestServer(t)

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/programs", gin.H{
		"name":  "Youth Employment",
		"color": "#4A90A4",
		"tags":  []string{"youth", "skills"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created model.Program
	decode(t, w, &created)
	if created.ID == 0 || created.Status != "active" || created.Icon != "bullseye" {
		t.Errorf("unexpected created program: %+v", created)
	}

	// List
	w = doJSON(t, router, http.MethodGet, "/api/programs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}
	var listed []model.Program
	decode(t, w, &listed)
	if len(listed) != 1 {
		t.Fatalf("listed %d programs, want 1", len(listed))
	}

	// Partial update
	w = doJSON(t, router, http.MethodPut, "/api/programs/1", gin.H{"progress": 60})
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	var updated model.Program
	decode(t, w, &updated)
	if updated.Progress != 60 || updated.Name != "Youth Employment" {
		t.Errorf("unexpected updated program: %+v", updated)
	}

	// Out-of-range progress is a 400 and leaves the record alone
	w = doJSON(t, router, http.MethodPut, "/api/programs/1", gin.H{"progress": 150})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for progress 150, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/programs/1", nil)
	decode(t, w, &updated)
	if updated.Progress != 60 {
		t.Errorf("progress = %d after rejected update, want 60", updated.Progress)
	}

	// Delete, then 404
	w = doJSON(t, router, http.MethodDelete, "/api/programs/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/programs/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/programs/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", w.Code)
	}
}

func TestProgramNotFoundRoutes(t *testing.T) {
	router, _ := newTestServer(t)
	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/programs/99", nil},
		{http.MethodPut, "/api/programs/99", gin.H{"name": "x"}},
		{http.MethodDelete, "/api/programs/99", nil},
	} {
		w := doJSON(t, router, tc.method, tc.path, tc.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", tc.method, tc.path, w.Code)
		}
	}
}

func TestActivityWritesRequireAdmin(t *testing.T) {
	router, gormDB := newTestServer(t)
	seedAdmin(t, gormDB)

	payload := gin.H{"programId": 1, "title": "Workshop"}

	// Anonymous write is refused
	w := doJSON(t, router, http.MethodPost, "/api/activities", payload)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create = %d, want 401", w.Code)
	}

	cookie := login(t, router)
	w = doJSON(t, router, http.MethodPost, "/api/activities", payload, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create = %d %s", w.Code, w.Body.String())
	}

	// Reads stay public
	w = doJSON(t, router, http.MethodGet, "/api/activities", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var activities []model.Activity
	decode(t, w, &activities)
	if len(activities) != 1 || activities[0].Status != "pending" {
		t.Errorf("activities = %+v", activities)
	}

	w = doJSON(t, router, http.MethodGet, "/api/programs/1/activities", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list by program = %d", w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	router, gormDB := newTestServer(t)
	seedAdmin(t, gormDB)

	// Anonymous current user is JSON null
	w := doJSON(t, router, http.MethodGet, "/api/auth/user", nil)
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Fatalf("anonymous user = %d %q, want 200 null", w.Code, w.Body.String())
	}

	// Wrong password: 401 and no cookie
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password = %d, want 401", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			t.Error("failed login must not set a session cookie")
		}
	}

	cookie := login(t, router)

	w = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("current user = %d", w.Code)
	}
	var sess struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	decode(t, w, &sess)
	if sess.Username != "admin" || sess.Role != "admin" {
		t.Errorf("session = %+v", sess)
	}

	// Logout destroys the session
	w = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("logout = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/auth/user", nil, cookie)
	if w.Body.String() != "null" {
		t.Errorf("user after logout = %q, want null", w.Body.String())
	}
}

func TestAdminExistsAndSignup(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/auth/admin-exists", nil)
	var exists struct {
		Exists bool `json:"exists"`
	}
	decode(t, w, &exists)
	if exists.Exists {
		t.Error("admin should not exist yet")
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": "admin", "email": "a@b.c", "password": "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup = %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/auth/admin-exists", nil)
	decode(t, w, &exists)
	if !exists.Exists {
		t.Error("admin should exist after signup")
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": "other", "email": "x@y.z", "password": "pw",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("second signup = %d, want 400", w.Code)
	}
}

func TestSuggestionKeywordRules(t *testing.T) {
	router, gormDB := newTestServer(t)
	seedAdmin(t, gormDB)
	cookie := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/program-suggestions", gin.H{
		"name": "Community Outreach", "type": "outreach", "tags": []string{"community"},
	}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create suggestion = %d %s", w.Code, w.Body.String())
	}

	// Single-character keyword short-circuits to empty
	w = doJSON(t, router, http.MethodGet, "/api/program-suggestions?keyword=a", nil)
	var results []model.ProgramSuggestion
	decode(t, w, &results)
	if len(results) != 0 {
		t.Errorf("keyword=a returned %d results, want 0", len(results))
	}

	w = doJSON(t, router, http.MethodGet, "/api/program-suggestions?keyword=co", nil)
	decode(t, w, &results)
	if len(results) != 1 || results[0].Name != "Community Outreach" {
		t.Errorf("keyword=co results = %v", results)
	}
}

func TestTableConfigEndpoints(t *testing.T) {
	router, gormDB := newTestServer(t)
	seedAdmin(t, gormDB)
	cookie := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/table-config/programs", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing config = %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/table-config", gin.H{
		"tableName": "programs", "visibleColumns": []string{"name", "status"},
	}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert config = %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/table-config/programs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get config = %d", w.Code)
	}

	// Header upsert requires admin
	w = doJSON(t, router, http.MethodPost, "/api/column-headers", gin.H{
		"tableName": "programs", "columnKey": "name", "label": "Name",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous header upsert = %d, want 401", w.Code)
	}
	w = doJSON(t, router, http.MethodPost, "/api/column-headers", gin.H{
		"tableName": "programs", "columnKey": "name", "label": "Name",
	}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("header upsert = %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/column-headers/programs", nil)
	var headers []model.ColumnHeader
	decode(t, w, &headers)
	if len(headers) != 1 || headers[0].Label != "Name" {
		t.Errorf("headers = %v", headers)
	}
}

func TestTranslateEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/translate", gin.H{
		"text": "Dashboard", "targetLanguage": "fr",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("translate = %d", w.Code)
	}
	var resp struct {
		TranslatedText string `json:"translatedText"`
	}
	decode(t, w, &resp)
	if resp.TranslatedText != "Tableau de bord" {
		t.Errorf("translated = %q, want Tableau de bord", resp.TranslatedText)
	}

	// Missing target language is a 400
	w = doJSON(t, router, http.MethodPost, "/api/translate", gin.H{"text": "Dashboard"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing target = %d, want 400", w.Code)
	}
}

func TestExportImportDoublesDataset(t *testing.T) {
	router, _ := newTestServer(t)

	for _, name := range []string{"P1", "P2"} {
		w := doJSON(t, router, http.MethodPost, "/api/programs", gin.H{"name": name, "color": "#fff"})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %s = %d", name, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/export/programs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d", w.Code)
	}
	var export struct {
		Programs   []map[string]interface{} `json:"programs"`
		Activities []map[string]interface{} `json:"activities"`
		Version    string                   `json:"version"`
	}
	decode(t, w, &export)
	if export.Version != "1.0" || len(export.Programs) != 2 {
		t.Fatalf("export = version %q, %d programs", export.Version, len(export.Programs))
	}

	// Importing the export back is additive, not idempotent
	w = doJSON(t, router, http.MethodPost, "/api/import/programs", gin.H{
		"programs":   export.Programs,
		"activities": export.Activities,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("import = %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/programs", nil)
	var programs []model.Program
	decode(t, w, &programs)
	if len(programs) != 4 {
		t.Errorf("programs after re-import = %d, want 4", len(programs))
	}
}

func TestHealthProbes(t *testing.T) {
	router, _ := newTestServer(t)
	for _, path := range []string{"/health", "/api/health/postgres", "/api/health/firebase"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s = %d, want 200", path, w.Code)
		}
	}
}
