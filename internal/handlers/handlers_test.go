package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/auth"
	"github.com/kynarochlani2006/storefront-api/internal/catalog"
	"github.com/kynarochlani2006/storefront-api/internal/guest"
	"github.com/kynarochlani2006/storefront-api/internal/handlers"
	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/routes"
	"github.com/kynarochlani2006/storefront-api/internal/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApp(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	st := memory.New()
	h := &handlers.Handlers{
		Store:    st,
		Sessions: auth.NewSessions(st),
	}
	return routes.SetupRouter(h), st
}

// client drives the API the way a browser would: it keeps cookies
// across requests and, when given a guest provider, sends the guest
// header on every call.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
	guest   *guest.Provider
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.guest != nil {
		c.guest.Apply(req)
	}
	for _, cookie := range c.cookies {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func seedCatalog(t *testing.T, st *memory.Store) []models.Product {
	t.Helper()
	if err := catalog.Seed(context.Background(), st); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	products, err := st.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("failed to list products: %v", err)
	}
	return products
}

// --- Auth ---

func TestSignup_CreatesUserAndSession(t *testing.T) {
	router, st := newTestApp(t)
	c := newClient(t, router)

	w := c.do("POST", "/auth/signup", gin.H{
		"email":    "jane@example.com",
		"name":     "Jane",
		"password": "correct-horse",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected a user object, got %v", body)
	}
	if user["email"] != "jane@example.com" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatal("response must not carry the password hash")
	}

	cookie, ok := c.cookies[auth.CookieName]
	if !ok || cookie.Value == "" {
		t.Fatal("signup must set the session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HTTP-only")
	}
	if until := time.Until(cookie.Expires); until < 6*24*time.Hour {
		t.Fatalf("cookie should live ~7 days, expires in %v", until)
	}

	// The cookie must reference a real, resolvable session.
	if _, err := st.UserByEmail(context.Background(), "jane@example.com"); err != nil {
		t.Fatalf("user row was not created: %v", err)
	}
	me := decode(t, c.do("GET", "/auth/me", nil))
	meUser, _ := me["user"].(map[string]any)
	if meUser == nil || meUser["email"] != "jane@example.com" {
		t.Fatalf("session cookie did not authenticate /auth/me: %v", me)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	router, _ := newTestApp(t)
	c := newClient(t, router)

	if w := c.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "correct-horse"}); w.Code != http.StatusOK {
		t.Fatalf("first signup failed: %d", w.Code)
	}

	other := newClient(t, router)
	w := other.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "different-pass"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if _, ok := other.cookies[auth.CookieName]; ok {
		t.Fatal("failed signup must not set a session cookie")
	}
}

func TestSignup_InvalidPayload(t *testing.T) {
	router, _ := newTestApp(t)
	c := newClient(t, router)

	cases := []gin.H{
		{"email": "not-an-email", "password": "correct-horse"},
		{"email": "jane@example.com", "password": "short"},
		{"password": "correct-horse"},
	}
	for _, payload := range cases {
		if w := c.do("POST", "/auth/signup", payload); w.Code != http.StatusBadRequest {
			t.Fatalf("payload %v: expected 400, got %d", payload, w.Code)
		}
	}
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	router, _ := newTestApp(t)
	c := newClient(t, router)
	c.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "correct-horse"})

	wrongPass := newClient(t, router).do("POST", "/auth/login", gin.H{"email": "jane@example.com", "password": "wrong-password"})
	unknownUser := newClient(t, router).do("POST", "/auth/login", gin.H{"email": "nobody@example.com", "password": "whatever-pass"})

	if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknownUser.Code)
	}
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Fatal("credential failures must not reveal which field was wrong")
	}
}

func TestLoginAndLogout(t *testing.T) {
	router, _ := newTestApp(t)
	signup := newClient(t, router)
	signup.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "correct-horse"})

	c := newClient(t, router)
	w := c.do("POST", "/auth/login", gin.H{"email": "jane@example.com", "password": "correct-horse"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d: %s", w.Code, w.Body.String())
	}
	token := c.cookies[auth.CookieName].Value
	if token == "" {
		t.Fatal("login must set the session cookie")
	}

	w = c.do("POST", "/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", w.Code)
	}
	if got := c.cookies[auth.CookieName]; got.MaxAge != -1 {
		t.Fatal("logout must clear the session cookie")
	}

	// The revoked token must be dead server-side, not just dropped by
	// the client.
	stale := newClient(t, router)
	stale.cookies[auth.CookieName] = &http.Cookie{Name: auth.CookieName, Value: token}
	me := decode(t, stale.do("GET", "/auth/me", nil))
	if me["user"] != nil {
		t.Fatalf("revoked session still authenticates: %v", me)
	}
}

func TestMe_ExpiredSessionIsIgnored(t *testing.T) {
	router, st := newTestApp(t)
	c := newClient(t, router)
	c.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "correct-horse"})

	// Rewrite the session row as expired; the row still exists.
	token := c.cookies[auth.CookieName].Value
	user, err := st.UserByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("UserByEmail returned error: %v", err)
	}
	err = st.CreateSession(context.Background(), &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	me := decode(t, c.do("GET", "/auth/me", nil))
	if me["user"] != nil {
		t.Fatalf("expired session must not authenticate: %v", me)
	}
}

// --- Catalog ---

func TestListProducts(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	w := newClient(t, router).do("GET", "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	listed, _ := body["products"].([]any)
	if len(listed) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(listed))
	}
	first, _ := listed[0].(map[string]any)
	if first["slug"] == "" || first["name"] == "" {
		t.Fatalf("product payload incomplete: %v", first)
	}
}

// --- Cart ---

func TestAddToCart_AnonymousRejected(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	// No cookie, no guest header: nowhere to hang a cart.
	w := newClient(t, router).do("POST", "/cart", gin.H{"productId": products[0].ID, "quantity": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddToCart_GuestFlow(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	c := newClient(t, router)
	c.guest = &guest.Provider{}

	// Quantity defaults to 1 when omitted.
	w := c.do("POST", "/cart", gin.H{"productId": products[0].ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	item, _ := decode(t, w)["item"].(map[string]any)
	if item["quantity"] != float64(1) {
		t.Fatalf("expected default quantity 1, got %v", item["quantity"])
	}

	// Re-adding increments the same row instead of duplicating it.
	w = c.do("POST", "/cart", gin.H{"productId": products[0].ID, "quantity": 2})
	again, _ := decode(t, w)["item"].(map[string]any)
	if again["id"] != item["id"] {
		t.Fatal("re-adding a product must not create a second item row")
	}
	if again["quantity"] != float64(3) {
		t.Fatalf("expected quantity 3, got %v", again["quantity"])
	}

	cart, _ := decode(t, c.do("GET", "/cart", nil))["cart"].(map[string]any)
	if cart == nil {
		t.Fatal("expected the guest's cart")
	}
	items, _ := cart["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	joined, _ := items[0].(map[string]any)
	product, _ := joined["product"].(map[string]any)
	if product == nil || product["id"] != products[0].ID {
		t.Fatalf("cart items must join product details: %v", joined)
	}
}

func TestGetCart_ReadDoesNotCreate(t *testing.T) {
	router, _ := newTestApp(t)

	c := newClient(t, router)
	c.guest = &guest.Provider{}

	body := decode(t, c.do("GET", "/cart", nil))
	if body["cart"] != nil {
		t.Fatalf("expected cart:null, got %v", body)
	}
	// Still null on the second read: the first one must not have
	// created anything.
	body = decode(t, c.do("GET", "/cart", nil))
	if body["cart"] != nil {
		t.Fatalf("read created a cart as a side effect: %v", body)
	}
}

func TestRemoveFromCart_Semantics(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	c := newClient(t, router)
	c.guest = &guest.Provider{}

	// No cart yet: not an error, just removed:false.
	body := decode(t, c.do("DELETE", "/cart", gin.H{"productId": products[0].ID}))
	if body["removed"] != false {
		t.Fatalf("expected removed:false before any cart exists, got %v", body)
	}

	c.do("POST", "/cart", gin.H{"productId": products[0].ID, "quantity": 1})

	// First removal drops the row.
	body = decode(t, c.do("DELETE", "/cart", gin.H{"productId": products[0].ID}))
	if body["removed"] != true {
		t.Fatalf("expected removed:true, got %v", body)
	}
	cart, _ := decode(t, c.do("GET", "/cart", nil))["cart"].(map[string]any)
	if items, _ := cart["items"].([]any); len(items) != 0 {
		t.Fatalf("item should be gone, got %v", items)
	}

	// The cart still exists, so the delete path reports removed:true
	// whether or not a row matched.
	body = decode(t, c.do("DELETE", "/cart", gin.H{"productId": products[0].ID}))
	if body["removed"] != true {
		t.Fatalf("expected removed:true on an existing cart, got %v", body)
	}
}

func TestGetCart_GuestHeaderIgnoredWhenAuthenticated(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	// A guest builds up a cart first.
	guestClient := newClient(t, router)
	guestClient.guest = &guest.Provider{}
	guestClient.do("POST", "/cart", gin.H{"productId": products[0].ID, "quantity": 5})

	// The same browser signs up; cookie and guest header are now both
	// present on every request.
	guestClient.do("POST", "/auth/signup", gin.H{"email": "jane@example.com", "password": "correct-horse"})
	guestClient.do("POST", "/cart", gin.H{"productId": products[1].ID, "quantity": 1})

	cart, _ := decode(t, guestClient.do("GET", "/cart", nil))["cart"].(map[string]any)
	if cart == nil {
		t.Fatal("expected the user's cart")
	}
	if cart["userId"] == nil || cart["guestId"] != nil {
		t.Fatalf("valid session must win over the guest header: %v", cart)
	}
	items, _ := cart["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("user cart must not contain the guest's items, got %v", items)
	}
	item, _ := items[0].(map[string]any)
	if item["productId"] != products[1].ID {
		t.Fatalf("expected only the post-signup item, got %v", item)
	}
}

// --- Wishlist ---

func TestToggleWishlist_Roundtrip(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	c := newClient(t, router)
	c.guest = &guest.Provider{}

	// First toggle adds and returns the item.
	body := decode(t, c.do("POST", "/wishlist", gin.H{"productId": products[0].ID}))
	item, _ := body["item"].(map[string]any)
	if item == nil || item["productId"] != products[0].ID {
		t.Fatalf("expected the created item, got %v", body)
	}

	listed := decode(t, c.do("GET", "/wishlist", nil))
	if items, _ := listed["items"].([]any); len(items) != 1 {
		t.Fatalf("expected 1 wishlist item, got %v", listed)
	}

	// Second toggle removes it and says so explicitly.
	body = decode(t, c.do("POST", "/wishlist", gin.H{"productId": products[0].ID}))
	if body["removed"] != true {
		t.Fatalf("expected removed:true, got %v", body)
	}

	listed = decode(t, c.do("GET", "/wishlist", nil))
	if items, _ := listed["items"].([]any); len(items) != 0 {
		t.Fatalf("expected the wishlist back to empty, got %v", listed)
	}
}

func TestToggleWishlist_AnonymousRejected(t *testing.T) {
	router, st := newTestApp(t)
	products := seedCatalog(t, st)

	w := newClient(t, router).do("POST", "/wishlist", gin.H{"productId": products[0].ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetWishlist_AnonymousIsEmpty(t *testing.T) {
	router, _ := newTestApp(t)

	w := newClient(t, router).do("GET", "/wishlist", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if items, _ := body["items"].([]any); len(items) != 0 {
		t.Fatalf("expected an empty list, got %v", body)
	}
}
