package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	addressapp "github.com/wpangestu/contacts-api/application/address"
	contactapp "github.com/wpangestu/contacts-api/application/contact"
	userapp "github.com/wpangestu/contacts-api/application/user"
	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/utils/errors"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	ContactApp contactapp.ContactApp
	AddressApp addressapp.AddressApp
}

func NewTransport(UserApp userapp.UserApp, ContactApp contactapp.ContactApp, AddressApp addressapp.AddressApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		ContactApp: ContactApp,
		AddressApp: AddressApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/api/users", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)

	// Protected routes: user
	mux.HandleFunc("/api/users/current", rh.CurrentUser).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/current", rh.UpdateUser).Methods(http.MethodPatch)
	mux.HandleFunc("/api/users/logout", rh.Logout).Methods(http.MethodDelete)

	// Protected routes: contact
	mux.HandleFunc("/api/contacts", rh.CreateContact).Methods(http.MethodPost)
	mux.HandleFunc("/api/contacts", rh.SearchContact).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{contactId}", rh.GetContact).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{contactId}", rh.UpdateContact).Methods(http.MethodPut)
	mux.HandleFunc("/api/contacts/{contactId}", rh.DeleteContact).Methods(http.MethodDelete)

	// Protected routes: address, nested under the owning contact
	mux.HandleFunc("/api/contacts/{contactId}/address", rh.CreateAddress).Methods(http.MethodPost)
	mux.HandleFunc("/api/contacts/{contactId}/address", rh.ListAddress).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{contactId}/address/{addressId}", rh.GetAddress).Methods(http.MethodGet)
	mux.HandleFunc("/api/contacts/{contactId}/address/{addressId}", rh.UpdateAddress).Methods(http.MethodPut)
	mux.HandleFunc("/api/contacts/{contactId}/address/{addressId}", rh.DeleteAddress).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// decodeBody parses the JSON request body; unknown fields are ignored
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrValidation, "request body is not valid JSON")
	}
	return nil
}

// parsePathID parses a path parameter as a positive integer
func parsePathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMessage(constant.ErrValidation, fmt.Sprintf("%s must be a positive number", name))
	}
	return id, nil
}
