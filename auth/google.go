package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/bakery-api/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const stateCookie = "oauth_state"

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_CALLBACK_URL"),
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GET /auth/google/login — redirect the browser to the Google consent page.
func GoogleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetCookie(stateCookie, state, 300, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, googleOAuthConfig().AuthCodeURL(state))
	}
}

// GET /auth/google/callback — exchange the code, provision the user if the
// email is new, then hand the frontend a signed token.
func GoogleCallback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := c.Cookie(stateCookie)
		if err != nil || state == "" || state != c.Query("state") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OAuth state"})
			return
		}

		conf := googleOAuthConfig()
		token, err := conf.Exchange(c.Request.Context(), c.Query("code"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code exchange failed"})
			return
		}

		client := conf.Client(c.Request.Context(), token)
		resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Google profile"})
			return
		}
		defer resp.Body.Close()

		var profile googleProfile
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No email found in Google profile"})
			return
		}

		user, err := UpsertGoogleUser(db, profile.Email, profile.Name, profile.Picture)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision user"})
			return
		}

		jwtToken, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		frontend := os.Getenv("FRONTEND_URL")
		if frontend == "" {
			frontend = "http://localhost:3000"
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("%s?token=%s", frontend, jwtToken))
	}
}

// UpsertGoogleUser looks up a user by email and provisions a local record
// with provider "google" and an empty password hash when none exists. An
// existing email is reused; no duplicate is created.
func UpsertGoogleUser(db *gorm.DB, email, name, picture string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Email:    email,
			Name:     name,
			Picture:  picture,
			Password: "",
			Provider: "google",
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			return models.User{}, err
		}
		return user, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
