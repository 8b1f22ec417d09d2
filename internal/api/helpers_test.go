package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/database"
	"github.com/lvicens/blanca-med/backend/internal/middleware"
	"github.com/lvicens/blanca-med/backend/internal/models"
	"github.com/lvicens/blanca-med/backend/internal/service"
	"github.com/lvicens/blanca-med/backend/internal/types"
)

type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Auth   *service.AuthService
}

func seedTestAllergens(t *testing.T, db *gorm.DB) {
	t.Helper()
	kua := 24.5
	rows := []models.Allergen{
		{Name: "Gamba", IsAllergic: true, Intensity: "high", Category: "Crustaceans", KUAPerLiter: &kua},
		{Name: "Langosta", IsAllergic: false, Intensity: "low", Category: "Crustaceans"},
		{Name: "Fresa", IsAllergic: true, Intensity: "medium", Category: "Fruits"},
		{Name: "Manzana", IsAllergic: false, Intensity: "low", Category: "Fruits"},
		{Name: "Pera", IsAllergic: false, Intensity: "low", Category: "Fruits"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	seedTestAllergens(t, db)

	allergenService, err := service.NewAllergenService(db, nil)
	require.NoError(t, err)
	authService := service.NewAuthService(db, "test-secret")
	profileService := service.NewProfileService(db)
	personalService := service.NewPersonalAllergenService(db)
	protocolService := service.NewProtocolService(db)

	allergenHandler := NewAllergenHandler(allergenService, nil, 3)
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, personalService)
	protocolHandler := NewProtocolHandler(protocolService)

	router := gin.New()
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	allergens := v1.Group("/allergens")
	{
		allergens.GET("/search", allergenHandler.Search)
		allergens.GET("/categories", allergenHandler.Categories)
		allergens.GET("/categories/:category", allergenHandler.Category)
	}

	protocols := v1.Group("/protocols")
	{
		protocols.GET("", protocolHandler.List)
		protocols.GET("/:id", protocolHandler.Get)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/allergens/export", allergenHandler.Export)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.GET("/allergens", profileHandler.ListAllergens)
			profile.POST("/allergens", profileHandler.CreateAllergen)
			profile.PUT("/allergens/:id", profileHandler.UpdateAllergen)
			profile.DELETE("/allergens/:id", profileHandler.DeleteAllergen)
			profile.GET("/allergens/search", profileHandler.SearchAllergens)
		}
	}

	return &testEnv{Router: router, DB: db, Auth: authService}
}

func createTestUserAndToken(t *testing.T, env *testEnv) string {
	t.Helper()
	token, err := env.Auth.Register(&types.RegisterRequest{
		Name:     "Blanca",
		Email:    "blanca@example.com",
		Password: "supersecret",
		Username: "blanca",
	})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, env *testEnv, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}
