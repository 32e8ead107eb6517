package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kbukum/travelpay/internal/auth"
	"github.com/kbukum/travelpay/internal/logger"
	"github.com/kbukum/travelpay/internal/model"
)

// --- fakes ---

type fakeUsers struct {
	users  []*model.User
	nextID int64
}

func (s *fakeUsers) find(pred func(*model.User) bool) (*model.User, error) {
	for _, u := range s.users {
		if pred(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUsers) ByID(_ context.Context, id int64) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.ID == id })
}

func (s *fakeUsers) ByUsername(_ context.Context, v string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Username != nil && *u.Username == v })
}

func (s *fakeUsers) ByEmail(_ context.Context, v string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Email != nil && *u.Email == v })
}

func (s *fakeUsers) ByPhoneNumber(_ context.Context, v string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.PhoneNumber != nil && *u.PhoneNumber == v })
}

func (s *fakeUsers) ByCitizenID(_ context.Context, v string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.CitizenID != nil && *u.CitizenID == v })
}

func (s *fakeUsers) Create(_ context.Context, u *model.User) error {
	s.nextID++
	u.ID = s.nextID
	copied := *u
	s.users = append(s.users, &copied)
	return nil
}

type fakeProvinces struct {
	provinces []*model.Province
	nextID    int64
}

func (s *fakeProvinces) ByID(_ context.Context, id int64) (*model.Province, error) {
	for _, p := range s.provinces {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeProvinces) ByNameTH(_ context.Context, nameTH string) (*model.Province, error) {
	for _, p := range s.provinces {
		if p.NameTH == nameTH {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeProvinces) All(_ context.Context, tier model.CityTier) ([]model.Province, error) {
	out := make([]model.Province, 0)
	for _, p := range s.provinces {
		if tier == "" || p.CityTier == tier {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProvinces) Create(_ context.Context, p *model.Province) error {
	s.nextID++
	p.ID = s.nextID
	copied := *p
	s.provinces = append(s.provinces, &copied)
	return nil
}

type fakeTravels struct {
	travels   []*model.Travel
	provinces *fakeProvinces
	nextID    int64
	loseRows  bool
}

func (s *fakeTravels) ByID(ctx context.Context, id, userID int64) (*model.Travel, error) {
	if s.loseRows {
		return nil, nil
	}
	for _, t := range s.travels {
		if t.ID == id && t.UserID == userID {
			copied := *t
			if p, _ := s.provinces.ByID(ctx, t.ProvinceID); p != nil {
				copied.Province = *p
			}
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeTravels) ByUser(ctx context.Context, userID int64) ([]model.Travel, error) {
	out := make([]model.Travel, 0)
	for _, t := range s.travels {
		if t.UserID == userID {
			copied := *t
			if p, _ := s.provinces.ByID(ctx, t.ProvinceID); p != nil {
				copied.Province = *p
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (s *fakeTravels) Create(_ context.Context, t *model.Travel) error {
	s.nextID++
	t.ID = s.nextID
	copied := *t
	s.travels = append(s.travels, &copied)
	return nil
}

func (s *fakeTravels) Save(_ context.Context, t *model.Travel) error {
	for i, existing := range s.travels {
		if existing.ID == t.ID {
			copied := *t
			s.travels[i] = &copied
			return nil
		}
	}
	return errors.New("travel not found")
}

func (s *fakeTravels) Delete(_ context.Context, t *model.Travel) error {
	for i, existing := range s.travels {
		if existing.ID == t.ID {
			s.travels = append(s.travels[:i], s.travels[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

// --- fixture ---

type fixture struct {
	engine    *gin.Engine
	auth      *auth.Service
	users     *fakeUsers
	provinces *fakeProvinces
	travels   *fakeTravels
	pinger    *fakePinger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUsers{}
	provinces := &fakeProvinces{}
	travels := &fakeTravels{provinces: provinces}
	pinger := &fakePinger{}
	log := logger.NewDefault("test")

	authSvc := auth.NewService(
		users,
		auth.NewHasher(bcrypt.MinCost),
		auth.NewTokenCodec("unit-test-secret", "HS256", time.Hour),
		auth.Attributes([]string{"username", "email", "phone_number", "citizen_id"}),
		log,
	)

	engine := gin.New()
	New(authSvc, provinces, travels, pinger, log).RegisterRoutes(engine)

	return &fixture{
		engine:    engine,
		auth:      authSvc,
		users:     users,
		provinces: provinces,
		travels:   travels,
		pinger:    pinger,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) doForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

// register creates a user and returns a valid token for it.
func (f *fixture) register(t *testing.T, username, password string) string {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"username":   username,
		"email":      username + "@example.com",
		"password":   password,
		"first_name": "Test",
		"last_name":  "User",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}
	form := url.Values{"username": {username}, "password": {password}}
	lw := f.doForm(t, "/api/auth/login", form)
	if lw.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", lw.Code, lw.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(lw.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.AccessToken
}

func (f *fixture) seedProvince(nameTH string, tier model.CityTier) *model.Province {
	p := &model.Province{NameTH: nameTH, CityTier: tier, TaxReductionRate: 15}
	_ = f.provinces.Create(context.Background(), p)
	return p
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Detail
}

// --- auth endpoints ---

func TestRegisterEndpoint(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"username":   "anna",
		"email":      "anna@example.com",
		"password":   "s3cret-pass",
		"first_name": "Anna",
		"last_name":  "Srisuk",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var user map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user["username"] != "anna" {
		t.Errorf("username = %v", user["username"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("response leaks the password hash")
	}
	if user["is_active"] != true {
		t.Errorf("is_active = %v, want true", user["is_active"])
	}
}

func TestRegisterConflictMessages(t *testing.T) {
	f := newFixture(t)

	first := gin.H{
		"username": "alice", "email": "a@x.com", "phone_number": "0811111111",
		"password": "p4ssw0rd", "first_name": "Alice", "last_name": "A",
	}
	if w := f.do(t, http.MethodPost, "/api/auth/register", first, ""); w.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d, body = %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name       string
		body       gin.H
		wantDetail string
	}{
		{
			name: "username taken",
			body: gin.H{
				"username": "alice", "email": "b@x.com", "phone_number": "0822222222",
				"password": "p4ssw0rd", "first_name": "Bea", "last_name": "B",
			},
			wantDetail: "Username already taken",
		},
		{
			name: "email taken",
			body: gin.H{
				"username": "bob", "email": "a@x.com", "phone_number": "0833333333",
				"password": "p4ssw0rd", "first_name": "Bob", "last_name": "B",
			},
			wantDetail: "Email already registered",
		},
		{
			name: "phone taken",
			body: gin.H{
				"username": "carol", "email": "c@x.com", "phone_number": "0811111111",
				"password": "p4ssw0rd", "first_name": "Carol", "last_name": "C",
			},
			wantDetail: "Phone number already registered",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/auth/register", tt.body, "")
			if w.Code != http.StatusConflict {
				t.Fatalf("status = %d, want 409, body = %s", w.Code, w.Body.String())
			}
			if got := detail(t, w); got != tt.wantDetail {
				t.Errorf("detail = %q, want %q", got, tt.wantDetail)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"no contact attribute", gin.H{
			"username": "anna", "password": "s3cret-pass",
			"first_name": "Anna", "last_name": "S",
		}},
		{"missing names", gin.H{"email": "anna@example.com", "password": "s3cret-pass"}},
		{"short password", gin.H{
			"email": "anna@example.com", "password": "short",
			"first_name": "Anna", "last_name": "S",
		}},
		{"bad email", gin.H{
			"email": "nope", "password": "s3cret-pass",
			"first_name": "Anna", "last_name": "S",
		}},
		{"bad citizen id", gin.H{
			"email": "anna@example.com", "citizen_id": "123", "password": "s3cret-pass",
			"first_name": "Anna", "last_name": "S",
		}},
		{"bad phone", gin.H{
			"phone_number": "12ab34", "password": "s3cret-pass",
			"first_name": "Anna", "last_name": "S",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/auth/register", tt.body, "")
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422, body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginGenericFailure(t *testing.T) {
	f := newFixture(t)
	f.register(t, "anna", "s3cret-pass")

	form := url.Values{"username": {"anna"}, "password": {"wrong"}}
	w := f.doForm(t, "/api/auth/login", form)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	want := "Incorrect username, email, phone number, citizen id, or password"
	if got := detail(t, w); got != want {
		t.Errorf("detail = %q, want %q", got, want)
	}
	if w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", w.Header().Get("WWW-Authenticate"))
	}
}

func TestLoginMissingFields(t *testing.T) {
	f := newFixture(t)

	w := f.doForm(t, "/api/auth/login", url.Values{"username": {"anna"}})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

// --- protected routes ---

func TestMe(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "anna", "s3cret-pass")

	w := f.do(t, http.MethodGet, "/api/users/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var user map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user["username"] != "anna" {
		t.Errorf("username = %v", user["username"])
	}
}

func TestProtectedRouteRejections(t *testing.T) {
	f := newFixture(t)

	expired := auth.NewTokenCodec("unit-test-secret", "HS256", -time.Hour)
	expiredToken, err := expired.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	foreign := auth.NewTokenCodec("other-secret", "HS256", time.Hour)
	foreignToken, err := foreign.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	vanished, err := auth.NewTokenCodec("unit-test-secret", "HS256", time.Hour).Issue(999)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer " + expiredToken},
		{"foreign secret", "Bearer " + foreignToken},
		{"vanished user", "Bearer " + vanished},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			f.engine.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			if got := detail(t, w); got != "Could not validate credentials" {
				t.Errorf("detail = %q", got)
			}
			if w.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Error("missing WWW-Authenticate challenge")
			}
		})
	}
}

// --- provinces ---

func TestListProvincesFilter(t *testing.T) {
	f := newFixture(t)
	f.seedProvince("เชียงใหม่", model.CityTierMain)
	f.seedProvince("น่าน", model.CityTierSecondary)

	w := f.do(t, http.MethodGet, "/api/provinces", nil, "")
	var all []model.Province
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d provinces, want 2", len(all))
	}

	w = f.do(t, http.MethodGet, "/api/provinces?city_tier=secondary", nil, "")
	var secondary []model.Province
	if err := json.Unmarshal(w.Body.Bytes(), &secondary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(secondary) != 1 || secondary[0].NameTH != "น่าน" {
		t.Errorf("secondary filter returned %+v", secondary)
	}

	w = f.do(t, http.MethodGet, "/api/provinces/secondary", nil, "")
	if err := json.Unmarshal(w.Body.Bytes(), &secondary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(secondary) != 1 {
		t.Errorf("/secondary returned %d provinces, want 1", len(secondary))
	}

	w = f.do(t, http.MethodGet, "/api/provinces?city_tier=village", nil, "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad tier: status = %d, want 422", w.Code)
	}
}

func TestGetProvinceNotFound(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/provinces/42", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := detail(t, w); got != "Province not found" {
		t.Errorf("detail = %q", got)
	}
}

func TestCreateProvince(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "anna", "s3cret-pass")

	body := gin.H{
		"name_th":            "เชียงใหม่",
		"name_en":            "Chiang Mai",
		"region":             "north",
		"city_tier":          "main",
		"tax_reduction_rate": 15,
	}
	w := f.do(t, http.MethodPost, "/api/provinces", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodPost, "/api/provinces", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: status = %d, want 409", w.Code)
	}
	if got := detail(t, w); got != "Province with this Thai name already exists" {
		t.Errorf("detail = %q", got)
	}
}

// --- travels ---

func TestTravelLifecycle(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "anna", "s3cret-pass")
	province := f.seedProvince("น่าน", model.CityTierSecondary)

	// Create.
	w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
		"province_id": province.ID,
		"start_date":  "2026-10-01",
		"end_date":    "2026-10-05",
		"notes":       "long weekend",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	var created model.Travel
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Province.NameTH != "น่าน" {
		t.Errorf("created travel missing embedded province: %+v", created.Province)
	}

	// List.
	w = f.do(t, http.MethodGet, "/api/users/me/travels", nil, token)
	var list []model.Travel
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list: got %d travels, want 1", len(list))
	}

	// Get.
	w = f.do(t, http.MethodGet, "/api/users/me/travels/1", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}

	// Update.
	w = f.do(t, http.MethodPut, "/api/users/me/travels/1", gin.H{
		"province_id": province.ID,
		"start_date":  "2026-10-02",
		"end_date":    "2026-10-06",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated model.Travel
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.StartDate.Time.Day() != 2 {
		t.Errorf("start date not updated: %v", updated.StartDate)
	}

	// Delete.
	w = f.do(t, http.MethodDelete, "/api/users/me/travels/1", nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d, want 204", w.Code)
	}
	w = f.do(t, http.MethodGet, "/api/users/me/travels/1", nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", w.Code)
	}
}

func TestCreateTravelValidation(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "anna", "s3cret-pass")
	province := f.seedProvince("น่าน", model.CityTierSecondary)

	t.Run("unknown province", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
			"province_id": 999,
			"start_date":  "2026-10-01",
			"end_date":    "2026-10-05",
		}, token)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if got := detail(t, w); got != "Province not found" {
			t.Errorf("detail = %q", got)
		}
	})

	t.Run("dates out of order", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
			"province_id": province.ID,
			"start_date":  "2026-10-05",
			"end_date":    "2026-10-01",
		}, token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if got := detail(t, w); got != "Start date cannot be after end date" {
			t.Errorf("detail = %q", got)
		}
	})

	t.Run("single day trip is fine", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
			"province_id": province.ID,
			"start_date":  "2026-10-01",
			"end_date":    "2026-10-01",
		}, token)
		if w.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201, body = %s", w.Code, w.Body.String())
		}
	})
}

func TestTravelOwnershipScope(t *testing.T) {
	f := newFixture(t)
	annaToken := f.register(t, "anna", "s3cret-pass")
	bobToken := f.register(t, "bob", "s3cret-pass")
	province := f.seedProvince("น่าน", model.CityTierSecondary)

	w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
		"province_id": province.ID,
		"start_date":  "2026-10-01",
		"end_date":    "2026-10-05",
	}, annaToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/users/me/travels/1", nil, bobToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := detail(t, w); got != "Travel not found or not authorized" {
		t.Errorf("detail = %q", got)
	}

	w = f.do(t, http.MethodDelete, "/api/users/me/travels/1", nil, bobToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete: status = %d, want 404", w.Code)
	}
}

func TestCreateTravelLostRowIsServerFault(t *testing.T) {
	f := newFixture(t)
	token := f.register(t, "anna", "s3cret-pass")
	province := f.seedProvince("น่าน", model.CityTierSecondary)
	f.travels.loseRows = true

	w := f.do(t, http.MethodPost, "/api/users/me/travels", gin.H{
		"province_id": province.ID,
		"start_date":  "2026-10-01",
		"end_date":    "2026-10-05",
	}, token)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// --- health ---

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	f.pinger.err = errors.New("connection refused")
	w = f.do(t, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestWelcome(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
