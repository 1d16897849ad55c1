package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	TokenTTLHours  int
	AllowAnonymous bool
	DefaultLang    string
	CookieSecure   bool
	AppEnv         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	JWTSecret = GetEnv("JWT_SECRET")
	TokenTTLHours = GetEnvInt("TOKEN_TTL_HOURS", 168) // 7 days
	AllowAnonymous = GetEnvBool("AUTH_ALLOW_ANONYMOUS", true)
	DefaultLang = GetEnv("DEFAULT_LANG", "en")
	CookieSecure = GetEnvBool("COOKIE_SECURE", AppEnv == "production")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if AllowAnonymous {
		// Demo posture: admin routes tolerate missing/invalid tokens.
		log.Println("⚠️ AUTH_ALLOW_ANONYMOUS=true — admin routes accept anonymous requests (demo mode)")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
