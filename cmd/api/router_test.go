package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photocards-backend/internal/auth/token"
	authUsecase "photocards-backend/internal/auth/usecase"
	carddomain "photocards-backend/internal/card/domain"
	cardUsecase "photocards-backend/internal/card/usecase"
	userdomain "photocards-backend/internal/user/domain"
	userUsecase "photocards-backend/internal/user/usecase"
	"photocards-backend/pkg/apperror"
	"photocards-backend/pkg/config"
)

// In-memory repositories backing the full route surface.

type memUserRepo struct {
	users map[string]*userdomain.User
}

func (m *memUserRepo) Create(_ context.Context, user *userdomain.User) (*userdomain.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, apperror.Conflict("a user with this email is already registered")
		}
	}
	user.ID = primitive.NewObjectID()
	m.users[user.ID.Hex()] = user
	return user, nil
}

func (m *memUserRepo) FindAll(_ context.Context) ([]userdomain.User, error) {
	all := []userdomain.User{}
	for _, u := range m.users {
		all = append(all, *u)
	}
	return all, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*userdomain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	return u, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*userdomain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (m *memUserRepo) UpdateProfile(ctx context.Context, id, name, about string) (*userdomain.User, error) {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name, u.About = name, about
	return u, nil
}

func (m *memUserRepo) UpdateAvatar(ctx context.Context, id, avatar string) (*userdomain.User, error) {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Avatar = avatar
	return u, nil
}

type memCardRepo struct {
	cards map[string]*carddomain.Card
}

func (m *memCardRepo) Create(_ context.Context, card *carddomain.Card) (*carddomain.Card, error) {
	card.ID = primitive.NewObjectID()
	m.cards[card.ID.Hex()] = card
	return card, nil
}

func (m *memCardRepo) FindAll(_ context.Context) ([]carddomain.Card, error) {
	all := []carddomain.Card{}
	for _, c := range m.cards {
		all = append(all, *c)
	}
	return all, nil
}

func (m *memCardRepo) FindByID(_ context.Context, id string) (*carddomain.Card, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperror.BadRequest("incorrect card id")
	}
	c, ok := m.cards[id]
	if !ok {
		return nil, apperror.NotFound("card not found")
	}
	return c, nil
}

func (m *memCardRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.cards[id]; !ok {
		return apperror.NotFound("card not found")
	}
	delete(m.cards, id)
	return nil
}

func (m *memCardRepo) AddLike(ctx context.Context, cardID, userID string) (*carddomain.Card, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}
	card, err := m.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	for _, id := range card.Likes {
		if id == userOID {
			return card, nil
		}
	}
	card.Likes = append(card.Likes, userOID)
	return card, nil
}

func (m *memCardRepo) RemoveLike(ctx context.Context, cardID, userID string) (*carddomain.Card, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}
	card, err := m.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	kept := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userOID {
			kept = append(kept, id)
		}
	}
	card.Likes = kept
	return card, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewService(&config.Config{Env: "development"})
	users := &memUserRepo{users: map[string]*userdomain.User{}}
	cards := &memCardRepo{cards: map[string]*carddomain.Card{}}

	r := gin.New()
	SetupRoutes(r,
		authUsecase.NewAuthUsecase(users, tokens),
		userUsecase.NewUserUsecase(users),
		cardUsecase.NewCardUsecase(cards),
	)
	return r
}

func do(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := do(r, http.MethodPost, "/signup", `{
		"name": "Ann",
		"about": "Explorer",
		"avatar": "http://example.com/a.png",
		"email": "`+email+`",
		"password": "secret1"
	}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/signin", `{"email":"`+email+`","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthIsOpen(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"resource not found"}`, w.Body.String())
}

func TestProtectedRoutesRejectExpiredToken(t *testing.T) {
	r := newTestRouter(t)

	claims := jwt.MapClaims{
		"_id": primitive.NewObjectID().Hex(),
		"iat": time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-secret-key"))
	require.NoError(t, err)

	routes := []struct {
		method, path string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users/me"},
		{http.MethodPatch, "/users/me/avatar"},
		{http.MethodGet, "/cards"},
		{http.MethodPost, "/cards"},
		{http.MethodDelete, "/cards/000000000000000000000000"},
		{http.MethodPut, "/cards/000000000000000000000000/likes"},
		{http.MethodDelete, "/cards/000000000000000000000000/likes"},
	}

	for _, rt := range routes {
		w := do(r, rt.method, rt.path, "", expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	r := newTestRouter(t)

	body := `{"name":"Ann","about":"Explorer","avatar":"http://x/a.png","email":"dup@example.com","password":"secret1"}`
	w := do(r, http.MethodPost, "/signup", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/signup", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCardLifecycle(t *testing.T) {
	r := newTestRouter(t)
	annToken := signupAndLogin(t, r, "ann@example.com")
	bobToken := signupAndLogin(t, r, "bob@example.com")

	// Ann creates a card.
	w := do(r, http.MethodPost, "/cards", `{"name":"Sunset","link":"http://example.com/s.png"}`, annToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card struct {
		ID    string   `json:"_id"`
		Likes []string `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Empty(t, card.Likes)

	// Bob likes it twice; the second like changes nothing.
	w = do(r, http.MethodPut, "/cards/"+card.ID+"/likes", "", bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	var liked struct {
		Likes []string `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	require.Len(t, liked.Likes, 1)

	w = do(r, http.MethodPut, "/cards/"+card.ID+"/likes", "", bobToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Len(t, liked.Likes, 1)

	// Bob cannot delete Ann's card.
	w = do(r, http.MethodDelete, "/cards/"+card.ID, "", bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The card is still there.
	w = do(r, http.MethodGet, "/cards", "", annToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), card.ID)

	// Ann deletes it and gets the snapshot back.
	w = do(r, http.MethodDelete, "/cards/"+card.ID, "", annToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Sunset"`)

	// A like on the deleted card is NotFound.
	w = do(r, http.MethodPut, "/cards/"+card.ID+"/likes", "", bobToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileRoutes(t *testing.T) {
	r := newTestRouter(t)
	annToken := signupAndLogin(t, r, "ann@example.com")

	w := do(r, http.MethodGet, "/users/me", "", annToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ann@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	w = do(r, http.MethodPatch, "/users/me", `{"name":"Anna","about":"Traveler"}`, annToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Anna"`)

	w = do(r, http.MethodPatch, "/users/me/avatar", `{"avatar":"http://example.com/b.png"}`, annToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b.png")

	w = do(r, http.MethodGet, "/users/not-an-id", "", annToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
