package supabase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"illuminati/chat-api/chat"
)

const profilesTable = "profiles"

// Profile is the public profile row created at signup.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
}

// SignUp registers a new account and creates its profile row. The account
// stays unusable until the confirmation email is acknowledged.
func SignUp(client *supabase.Client, email, password, displayName string) (Profile, error) {
	resp, err := client.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"display_name": displayName,
		},
	})
	if err != nil {
		return Profile{}, fmt.Errorf("signup failed: %w", err)
	}

	profile := Profile{
		ID:          resp.ID.String(),
		Email:       resp.Email,
		DisplayName: displayName,
	}
	if _, _, err := client.From(profilesTable).Insert(profile, false, "", "", "").Execute(); err != nil {
		return Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// SignIn exchanges credentials for a Supabase session.
func SignIn(client *supabase.Client, email, password string) (types.Session, chat.User, error) {
	session, err := client.SignInWithEmailPassword(email, password)
	if err != nil {
		if strings.Contains(err.Error(), "Email not confirmed") {
			return types.Session{}, chat.User{}, fmt.Errorf("please check your email and confirm your account before logging in")
		}
		return types.Session{}, chat.User{}, err
	}

	return session, chat.User{ID: session.User.ID.String(), Email: session.User.Email}, nil
}

// GetProfile fetches the caller's profile row.
func GetProfile(client *supabase.Client, userID string) (Profile, error) {
	resp, _, err := client.From(profilesTable).
		Select("*", "", false).
		Eq("id", userID).
		Single().
		Execute()
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := json.Unmarshal(resp, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, nil
}
