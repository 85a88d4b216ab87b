package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
	AppLocation      *time.Location
	WeekStartsOn     time.Weekday
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_REFRESH_SECRET berhasil dimuat.")
	}

	loadTimezone()
	loadWeekStart()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// APP TIMEZONE
// =======================
// "Hari ini" untuk absensi ditentukan oleh timezone aplikasi, bukan UTC.
func loadTimezone() {
	tz := GetEnv("APP_TIMEZONE", "Asia/Tokyo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ APP_TIMEZONE %q tidak valid, fallback ke UTC: %v", tz, err)
		loc = time.UTC
	}
	AppLocation = loc
	log.Printf("✅ APP_TIMEZONE: %s", loc)
}

// =======================
// WEEK START (statistik mingguan)
// =======================
// Default Minggu (index 0). Set WEEK_STARTS_ON=monday untuk locale lain.
func loadWeekStart() {
	switch strings.ToLower(GetEnv("WEEK_STARTS_ON", "sunday")) {
	case "monday":
		WeekStartsOn = time.Monday
	case "sunday", "":
		WeekStartsOn = time.Sunday
	default:
		log.Printf("⚠️ WEEK_STARTS_ON tidak dikenal, fallback ke sunday")
		WeekStartsOn = time.Sunday
	}
	log.Printf("✅ WEEK_STARTS_ON: %s", WeekStartsOn)
}

// Now mengembalikan waktu sekarang di timezone aplikasi.
func Now() time.Time {
	if AppLocation == nil {
		return time.Now().UTC()
	}
	return time.Now().In(AppLocation)
}
