package routes

import (
	"time"

	"github.com/Jezzej/craftique/internals/config"
	"github.com/Jezzej/craftique/internals/controllers"
	"github.com/Jezzej/craftique/internals/middleware"
	"github.com/Jezzej/craftique/internals/services"
	"github.com/Jezzej/craftique/internals/stores"
	"github.com/Jezzej/craftique/internals/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	appName := config.GetEnvAsStr("APP_NAME", "Craftique")
	origin := config.GetEnvAsStr("ORIGIN", "http://localhost:3000")
	otpExpMinutes := config.GetEnvAsInt("OTP_EXPIRATION_MINUTES", 10, true)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"X-Total-Count"},
		AllowCredentials: true,
	}))

	emailManager := utils.NewEmailManager(
		&utils.SMTPConfig{
			Host:           config.GetEnvAsStr("SMTP_HOST", "smtp.gmail.com"),
			Port:           config.GetEnvAsInt("SMTP_PORT", 587, true),
			User:           config.GetEnv("SMTP_USER"),
			Password:       config.GetEnv("SMTP_PASSWORD"),
			AppName:        appName,
			CodeExp:        otpExpMinutes,
			FrontendOrigin: origin,
		},
	)

	tokenManager := utils.NewTokenManager(
		&config.CookieConfig{
			Domain:   config.GetEnvAsStr("DOMAIN", ""),
			IsSecure: config.GetEnvAsStr("SECURE_COOKIE", "true") == "true",
			HttpOnly: true, // Always HttpOnly for security
		},
		config.GetEnv("JWT_SECRET_KEY"),
		config.GetEnvAsInt("SESSION_EXPIRATION_SECONDS", 86400, true),
		otpExpMinutes*60, // reset tokens live exactly as long as the OTP window
	)

	userStore := stores.NewUserStore(db)
	otpStore := stores.NewOtpStore(db)
	resetTokenStore := stores.NewResetTokenStore(db)

	authService := services.NewAuthService(
		userStore,
		otpStore,
		resetTokenStore,
		emailManager,
		tokenManager,
		time.Duration(otpExpMinutes)*time.Minute,
	)

	authMiddleware := middleware.NewVerifyTokenMiddleware(tokenManager)
	authCtrl := controllers.NewAuthController(authService, tokenManager)
	userCtrl := controllers.NewUserController(userStore)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "running"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/verify-otp", authCtrl.VerifyOtp)
		auth.POST("/resend-otp", authCtrl.ResendOtp)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
		auth.GET("/logout", authCtrl.Logout)

		auth.GET("/check-auth", authMiddleware.VerifyToken, authCtrl.CheckAuth)
	}

	users := r.Group("/users")
	users.Use(authMiddleware.VerifyToken)
	{
		users.GET("/:id", userCtrl.GetByID)
		users.PATCH("/:id", userCtrl.UpdateByID)
	}

	return r
}
