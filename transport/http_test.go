package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appaddress "github.com/wpangestu/contacts-api/application/address"
	appcontact "github.com/wpangestu/contacts-api/application/contact"
	appuser "github.com/wpangestu/contacts-api/application/user"
	"github.com/wpangestu/contacts-api/cmd/config"
	addressmocks "github.com/wpangestu/contacts-api/mocks/repository/address"
	contactmocks "github.com/wpangestu/contacts-api/mocks/repository/contact"
	sessionmocks "github.com/wpangestu/contacts-api/mocks/repository/session"
	txmocks "github.com/wpangestu/contacts-api/mocks/repository/tx"
	usermocks "github.com/wpangestu/contacts-api/mocks/repository/user"
	"github.com/wpangestu/contacts-api/model"
	"github.com/wpangestu/contacts-api/transport"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testToken = "3f8d7a2e-1b4c-4c9e-9f0a-6d5e4c3b2a10"

type testServer struct {
	handler     http.Handler
	userRepo    *usermocks.UserRepository
	contactRepo *contactmocks.ContactRepository
	addressRepo *addressmocks.AddressRepository
	txRepo      *txmocks.TxRepository
	sessionRepo *sessionmocks.SessionRepository
}

func newTestServer(t *testing.T) *testServer {
	cfg := &config.Config{
		Auth: config.AuthConfig{SessionExpTime: time.Hour},
	}
	ts := &testServer{
		userRepo:    usermocks.NewUserRepository(t),
		contactRepo: contactmocks.NewContactRepository(t),
		addressRepo: addressmocks.NewAddressRepository(t),
		txRepo:      txmocks.NewTxRepository(t),
		sessionRepo: sessionmocks.NewSessionRepository(t),
	}
	userApp := appuser.NewUserApp(cfg, ts.userRepo, ts.sessionRepo)
	contactApp := appcontact.NewContactApp(ts.txRepo, ts.contactRepo, ts.addressRepo)
	addressApp := appaddress.NewAddressApp(ts.contactRepo, ts.addressRepo)
	ts.handler = transport.NewTransport(userApp, contactApp, addressApp)
	return ts
}

// expectAuth arms the mocks for one authenticated request: a cache miss
// followed by the token column lookup and a cache repopulation.
func (ts *testServer) expectAuth(username, name string) {
	token := testToken
	entity := &model.UserEntity{Username: username, Name: name, Token: &token}
	ts.sessionRepo.On("GetSession", mock.Anything, testToken).
		Return("", errors.New("redis: nil")).Once()
	ts.userRepo.On("Get", mock.Anything, &model.UserFilter{Token: testToken}).
		Return(entity, nil).Once()
	ts.sessionRepo.On("SetSession", mock.Anything, testToken, username, time.Hour).
		Return(nil).Once()
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return body
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, status, rec.Body.String())
	}
	body := parseBody(t, rec)
	if body["errors"] != message {
		t.Fatalf("errors = %v, want %q", body["errors"], message)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("error response must not carry a data key: %s", rec.Body.String())
	}
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)
	ts.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
		Return(nil, nil).Once()
	ts.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
		return u.Username == "wpangestu" && u.Name == "Wahyu Pangestu"
	})).Return(nil).Once()

	rec := ts.do(t, http.MethodPost, "/api/users", "",
		`{"username":"wpangestu","password":"rahasia","name":"Wahyu Pangestu"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	body := parseBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data missing from response: %s", rec.Body.String())
	}
	if data["username"] != "wpangestu" || data["name"] != "Wahyu Pangestu" {
		t.Fatalf("unexpected data: %v", data)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must never echo the password: %s", rec.Body.String())
	}
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/users", "",
		`{"password":"rahasia","name":"Wahyu Pangestu"}`)

	assertErrorBody(t, rec, http.StatusBadRequest, "username is required")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	existing := &model.UserEntity{Username: "wpangestu", Name: "Wahyu Pangestu"}
	ts.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
		Return(existing, nil).Once()

	rec := ts.do(t, http.MethodPost, "/api/users", "",
		`{"username":"wpangestu","password":"rahasia","name":"Wahyu Pangestu"}`)

	assertErrorBody(t, rec, http.StatusBadRequest, "Username already exists")
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	ts.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "wpangestu"}).
		Return(&model.UserEntity{Username: "wpangestu", PasswordHash: string(hash)}, nil).Once()

	rec := ts.do(t, http.MethodPost, "/api/users/login", "",
		`{"username":"wpangestu","password":"salah"}`)

	assertErrorBody(t, rec, http.StatusUnauthorized, "Username or password wrong")
}

func TestAuth_MissingToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/users/current", "", "")

	assertErrorBody(t, rec, http.StatusUnauthorized, "Unauthorized")
}

func TestAuth_UnknownToken(t *testing.T) {
	ts := newTestServer(t)
	ts.sessionRepo.On("GetSession", mock.Anything, "stale-token").
		Return("", errors.New("redis: nil")).Once()
	ts.userRepo.On("Get", mock.Anything, &model.UserFilter{Token: "stale-token"}).
		Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/users/current", "stale-token", "")

	assertErrorBody(t, rec, http.StatusUnauthorized, "Unauthorized")
}

func TestCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")

	rec := ts.do(t, http.MethodGet, "/api/users/current", testToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	data := parseBody(t, rec)["data"].(map[string]interface{})
	if data["username"] != "wpangestu" || data["name"] != "Wahyu Pangestu" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	ts.userRepo.On("UpdateToken", mock.Anything, "wpangestu", (*string)(nil)).
		Return(nil).Once()
	ts.sessionRepo.On("DeleteSession", mock.Anything, testToken).
		Return(nil).Once()

	rec := ts.do(t, http.MethodDelete, "/api/users/logout", testToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	if parseBody(t, rec)["data"] != "OK" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetContact_BadPathID(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")

	rec := ts.do(t, http.MethodGet, "/api/contacts/abc", testToken, "")

	assertErrorBody(t, rec, http.StatusBadRequest, "contactId must be a positive number")
}

func TestGetContact_NotOwned(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	ts.contactRepo.On("Get", mock.Anything, "wpangestu", uint64(42)).
		Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/contacts/42", testToken, "")

	assertErrorBody(t, rec, http.StatusNotFound, "Contact is not found")
}

func TestCreateContact(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	created := &model.ContactEntity{
		ID:        1,
		Username:  "wpangestu",
		FirstName: "test",
		LastName:  "test",
		Email:     "test@testmail.com",
		Phone:     "084123123123",
	}
	ts.contactRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.ContactEntity) bool {
		return c.Username == "wpangestu" && c.FirstName == "test"
	})).Return(created, nil).Once()

	rec := ts.do(t, http.MethodPost, "/api/contacts", testToken,
		`{"first_name":"test","last_name":"test","email":"test@testmail.com","phone":"084123123123"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	data := parseBody(t, rec)["data"].(map[string]interface{})
	if data["id"] != float64(1) || data["email"] != "test@testmail.com" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestSearchContact_Defaults(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	rows := []model.ContactEntity{
		{ID: 1, Username: "wpangestu", FirstName: "test", LastName: "test", Email: "test@testmail.com", Phone: "084123123123"},
		{ID: 2, Username: "wpangestu", FirstName: "peter", LastName: "parker", Email: "peter@testmail.com", Phone: "084123123124"},
	}
	ts.contactRepo.On("Search", mock.Anything,
		&model.ContactSearchFilter{Username: "wpangestu", Name: "test"}, 10, 0).
		Return(rows, int64(2), nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/contacts?name=test", testToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	body := parseBody(t, rec)
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 2 {
		t.Fatalf("data = %v, want 2 rows", body["data"])
	}
	paging, ok := body["paging"].(map[string]interface{})
	if !ok {
		t.Fatalf("paging missing from response: %s", rec.Body.String())
	}
	if paging["page"] != float64(1) || paging["total_item"] != float64(2) || paging["total_page"] != float64(1) {
		t.Fatalf("unexpected paging: %v", paging)
	}
}

func TestSearchContact_BadPage(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")

	rec := ts.do(t, http.MethodGet, "/api/contacts?page=abc", testToken, "")

	assertErrorBody(t, rec, http.StatusBadRequest, "page must be a positive number")
}

func TestGetAddress_ContactNotOwned(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	ts.contactRepo.On("Count", mock.Anything, "wpangestu", uint64(5)).
		Return(int64(0), nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/contacts/5/address/2", testToken, "")

	assertErrorBody(t, rec, http.StatusNotFound, "Contact is not found")
}

func TestGetAddress_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	ts.contactRepo.On("Count", mock.Anything, "wpangestu", uint64(5)).
		Return(int64(1), nil).Once()
	ts.addressRepo.On("Get", mock.Anything, uint64(5), uint64(2)).
		Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/contacts/5/address/2", testToken, "")

	assertErrorBody(t, rec, http.StatusNotFound, "Address is not found")
}

func TestUpdateAddress_Validation(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")

	rec := ts.do(t, http.MethodPut, "/api/contacts/5/address/2", testToken,
		`{"street":"Jalan Baru","country":"","postal_code":"12345"}`)

	assertErrorBody(t, rec, http.StatusBadRequest, "country is required")
}

func TestListAddress(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuth("wpangestu", "Wahyu Pangestu")
	street := "Jalan Sudirman"
	ts.contactRepo.On("Count", mock.Anything, "wpangestu", uint64(5)).
		Return(int64(1), nil).Once()
	ts.addressRepo.On("List", mock.Anything, uint64(5)).
		Return([]model.AddressEntity{
			{ID: 1, ContactID: 5, Street: &street, Country: "Indonesia"},
		}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/api/contacts/5/address", testToken, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	data, ok := parseBody(t, rec)["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v, want 1 row", data)
	}
	row := data[0].(map[string]interface{})
	if row["street"] != "Jalan Sudirman" || row["country"] != "Indonesia" {
		t.Fatalf("unexpected row: %v", row)
	}
}
