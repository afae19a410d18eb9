// Package session keeps a small signed, encrypted visitor cookie. It lets the
// no-script menu buttons carry the menu state from one page load to the next.
package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(Data{})
}

// CookieName is the name of the visitor cookie.
const CookieName = "twm_visitor"

// Data holds the visitor information stored in the cookie.
type Data struct {
	VisitorID uuid.UUID
	MenuOpen  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// New returns fresh visitor data with a random id.
func New() *Data {
	return &Data{VisitorID: uuid.New()}
}

// Store manages visitor cookies.
type Store struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewStore creates a new visitor cookie store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewStore(secret string, maxAge time.Duration, secure bool) *Store {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &Store{
		cookie: securecookie.New(hashKey, blockKey),
		name:   CookieName,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get retrieves the visitor data from the request cookie.
func (s *Store) Get(r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data Data
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, http.ErrNoCookie
	}

	return &data, nil
}

// Set stores the visitor data in a cookie. CreatedAt is kept when already set
// and the expiry slides forward on every write.
func (s *Store) Set(w http.ResponseWriter, data *Data) error {
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.ExpiresAt = now.Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the visitor cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
