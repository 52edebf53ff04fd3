package http

import (
	"encoding/json"
	"net/http"

	"accounts/internal/domain"
	"accounts/internal/dto"
	obsmw "accounts/internal/observability/middleware"
	"accounts/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlers struct {
	signup   service.SignupService
	auth     service.AuthService
	profiles service.ProfileService
	devices  service.DeviceService
}

func NewRouter(
	signup service.SignupService,
	auth service.AuthService,
	profiles service.ProfileService,
	devices service.DeviceService,
	tokens service.TokenService,
) http.Handler {
	h := &handlers{signup: signup, auth: auth, profiles: profiles, devices: devices}

	r := chi.NewRouter()
	r.Use(obsmw.WithRequestID)
	r.Use(withMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/signup", h.handleSignup)
	r.Post("/auth", h.handleAuth)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireAccount(tokens))
		pr.Get("/profile", h.handleProfile)
		pr.Post("/profile/changePassword", h.handleChangePassword)
		pr.Post("/device", h.handleDeviceCreate)
		pr.Get("/device", h.handleDeviceList)
		pr.Delete("/device/{id}", h.handleDeviceRemove)
	})

	return r
}

func (h *handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	req.Trim()
	res, err := h.signup.Signup(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *handlers) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	req.Trim()
	res, err := h.auth.Authenticate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	acc := AccountFromContext(r.Context())
	res, err := h.profiles.Profile(r.Context(), acc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	acc := AccountFromContext(r.Context())
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	res, err := h.profiles.ChangePassword(r.Context(), acc, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleDeviceCreate(w http.ResponseWriter, r *http.Request) {
	acc := AccountFromContext(r.Context())
	var req dto.DeviceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	req.Trim()
	res, err := h.devices.Register(r.Context(), acc, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *handlers) handleDeviceList(w http.ResponseWriter, r *http.Request) {
	acc := AccountFromContext(r.Context())
	res, err := h.devices.List(r.Context(), acc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleDeviceRemove(w http.ResponseWriter, r *http.Request) {
	acc := AccountFromContext(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrDeviceNotFound)
		return
	}
	res, err := h.devices.Remove(r.Context(), acc, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
