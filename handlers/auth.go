package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"illuminati/chat-api/config"
	"illuminati/chat-api/supabase"
	"illuminati/chat-api/types"
)

// Signup handles POST /auth/signup. Accounts need email confirmation before
// they can log in, so the response carries a hint instead of a token.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, "Missing email or password", http.StatusBadRequest)
		return
	}

	client, err := supabase.NewClient(h.cfg)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Failed to create Supabase client", http.StatusInternalServerError)
		return
	}

	profile, err := supabase.SignUp(client, req.Email, req.Password, req.DisplayName)
	if err != nil {
		config.Logger.Error("Signup failed:", err)
		writeError(w, "Signup failed", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Success: true,
		User: &types.AuthUser{
			ID:          profile.ID,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
		},
		Message: "Please check your email to confirm your account before logging in.",
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, "Missing email or password", http.StatusBadRequest)
		return
	}

	client, err := supabase.NewClient(h.cfg)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Failed to create Supabase client", http.StatusInternalServerError)
		return
	}

	session, user, err := supabase.SignIn(client, req.Email, req.Password)
	if err != nil {
		config.Logger.Warn("Login failed:", err)
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	authUser := types.AuthUser{ID: user.ID, Email: user.Email}
	if profile, perr := supabase.GetProfile(client, user.ID); perr == nil {
		authUser.DisplayName = profile.DisplayName
		authUser.IsAdmin = profile.IsAdmin
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Success:      true,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         &authUser,
	})
}
