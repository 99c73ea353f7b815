package authControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.CartItem{}, &models.Product{},
	))
	return db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Binding fails before any persistence access.
	r.POST("/auth/register", Register(nil, "secret"))

	cases := []string{
		`{}`,
		`{"name":"A","email":"a@x.com"}`,
		`{"name":"A","password":"secret123"}`,
		`{"name":"A","email":"not-an-email","password":"secret123"}`,
		`{"name":"A","email":"a@x.com","password":"short"}`,
	}
	for _, body := range cases {
		w := postJSON(r, "/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Please provide all required fields")
	}
}

func TestRegisterDuplicateEmailCreatesNoSecondUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	r.POST("/auth/register", Register(db, "secret"))

	w := postJSON(r, "/auth/register", `{"name":"Asha","email":"asha@x.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same address, different casing.
	w = postJSON(r, "/auth/register", `{"name":"Imposter","email":"Asha@X.com","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var user models.User
	require.NoError(t, db.Where("email = ?", "asha@x.com").First(&user).Error)
	assert.Equal(t, "Asha", user.Name)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login(nil, "secret"))

	w := postJSON(r, "/auth/login", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide email and password")
}

func TestOAuthRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/oauth", OAuth(nil, "secret"))

	w := postJSON(r, "/auth/oauth", `{"name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestOAuthCredentialsAccountRejectedUnmodified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	user := models.User{
		ID:       "u1",
		Name:     "Asha",
		Email:    "asha@x.com",
		Password: "bcrypt-hash",
		Provider: models.ProviderCredentials,
	}
	require.NoError(t, db.Create(&user).Error)

	r := gin.New()
	r.POST("/auth/oauth", OAuth(db, "secret"))

	w := postJSON(r, "/auth/oauth",
		`{"email":"asha@x.com","name":"Google Asha","image":"https://img.example/a.png"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "registered with password")

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", "u1").Error)
	assert.Equal(t, "Asha", stored.Name)
	assert.Empty(t, stored.Image)
	assert.Equal(t, models.ProviderCredentials, stored.Provider)
	assert.Equal(t, "bcrypt-hash", stored.Password)
}

func TestOAuthConcurrentFirstLoginUsesWinningAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	// Simulate a second session winning the insert between the lookup and the
	// create: the conflicting row appears right before this session's insert.
	var raced bool
	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("concurrent_signup", func(tx *gorm.DB) {
			if raced {
				return
			}
			if _, ok := tx.Statement.Dest.(*models.User); !ok {
				return
			}
			raced = true
			winner := models.User{
				ID:       "winner",
				Name:     "First Session",
				Email:    "race@x.com",
				Provider: models.ProviderGoogle,
			}
			require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(&winner).Error)
		}))

	r := gin.New()
	r.POST("/auth/oauth", OAuth(db, "secret"))

	w := postJSON(r, "/auth/oauth", `{"email":"race@x.com","name":"Second Session"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"winner"`)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "race@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMeReturnsUserWithResolvedCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	product := models.Product{
		Title:            "Winter Jacket",
		ShortDescription: "Warm",
		FullDescription:  "Very warm",
		Price:            1999,
		Category:         models.CategoryJacket,
	}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.User{
		ID:       "u1",
		Name:     "Asha",
		Email:    "asha@x.com",
		Provider: models.ProviderCredentials,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		UserID:    "u1",
		ProductID: product.ID,
		Quantity:  2,
		Size:      "M",
		Color:     "Black",
	}).Error)

	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) { c.Set("user_id", "u1") }, Me(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			User struct {
				Email string `json:"email"`
				Cart  []struct {
					Quantity int `json:"quantity"`
					Product  *struct {
						Title string `json:"title"`
					} `json:"product"`
				} `json:"cart"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "asha@x.com", body.Data.User.Email)
	require.Len(t, body.Data.User.Cart, 1)
	assert.Equal(t, 2, body.Data.User.Cart[0].Quantity)
	require.NotNil(t, body.Data.User.Cart[0].Product)
	assert.Equal(t, "Winter Jacket", body.Data.User.Cart[0].Product.Title)
}
