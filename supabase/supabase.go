package supabase

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"

	"illuminati/chat-api/chat"
	"illuminati/chat-api/config"
)

// NewClient builds a service-level client with the anon key only. Auth
// endpoints use this; everything touching user rows goes through
// ClientFromRequest so row-level security applies.
func NewClient(cfg config.Config) (*supabase.Client, error) {
	return supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
}

// ClientFromRequest builds a client scoped to the caller by forwarding the
// request's Supabase JWT. The token is parsed unverified here: Supabase
// verifies it on every call, we only need the subject and email claims to
// key local state.
func ClientFromRequest(cfg config.Config, r *http.Request) (*supabase.Client, chat.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, chat.User{}, fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" {
		return nil, chat.User{}, fmt.Errorf("invalid Authorization header")
	}

	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return nil, chat.User{}, fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, chat.User{}, fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, chat.User{}, fmt.Errorf("missing sub in token")
	}
	email, _ := claims["email"].(string)

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	return client, chat.User{ID: sub, Email: email}, err
}

// Identity adapts the JWT-derived user to the chat core's identity
// collaborator.
type Identity struct {
	user chat.User
}

func NewIdentity(user chat.User) Identity {
	return Identity{user: user}
}

func (i Identity) CurrentUser() (chat.User, bool) {
	if i.user.ID == "" {
		return chat.User{}, false
	}
	return i.user, true
}
