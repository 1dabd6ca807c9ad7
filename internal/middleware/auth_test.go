package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/zineb-24/ReportingBackend/internal/auth"
	"github.com/zineb-24/ReportingBackend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB, *models.User) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.AuthToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := models.User{Email: "u@x.com", Password: "hash", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token := models.AuthToken{Key: "0123456789abcdef0123456789abcdef01234567", UserID: user.ID}
	if err := db.Create(&token).Error; err != nil {
		t.Fatalf("seed token: %v", err)
	}

	app := fiber.New()
	app.Get("/protected", TokenRequired(db), func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"email": u.Email})
	})
	return app, db, &user
}

func request(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestTokenRequired(t *testing.T) {
	app, db, user := setupAuthTest(t)

	if code := request(t, app, "Token 0123456789abcdef0123456789abcdef01234567"); code != http.StatusOK {
		t.Fatalf("valid token: expected 200 got %d", code)
	}
	if code := request(t, app, ""); code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401 got %d", code)
	}
	if code := request(t, app, "Bearer 0123456789abcdef0123456789abcdef01234567"); code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: expected 401 got %d", code)
	}
	if code := request(t, app, "Token ffffffffffffffffffffffffffffffffffffffff"); code != http.StatusUnauthorized {
		t.Fatalf("unknown token: expected 401 got %d", code)
	}

	// Disabling the account revokes the session without touching the token.
	db.Model(user).Update("is_active", false)
	if code := request(t, app, "Token 0123456789abcdef0123456789abcdef01234567"); code != http.StatusUnauthorized {
		t.Fatalf("disabled account token: expected 401 got %d", code)
	}
}
