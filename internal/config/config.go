package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	MongoURI string
	MongoDB  string

	LineChannelSecret string
	LineChannelToken  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	AIEndpoint string
	AIToken    string

	JWTSecret      string
	JWTExpireHours int

	// Command keywords are exact-match and case-sensitive. The report
	// command additionally accepts a comma-separated alias list so older
	// rich-menu buttons keep working.
	CmdReport        string
	CmdReportAliases []string
	CmdView          string
	CmdCancel        string

	PlaceholderImageURL string
	InfoLinkURL         string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "foundbot"),

		LineChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		LineChannelToken:  getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "foundbot"),

		AIEndpoint: getEnv("AI_API_URL", ""),
		AIToken:    getEnv("AI_API_TOKEN", ""),

		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),

		CmdReport:        getEnv("CMD_REPORT", "撿到失物"),
		CmdReportAliases: getEnvList("CMD_REPORT_ALIASES", "上報失物,我撿到失物"),
		CmdView:          getEnv("CMD_VIEW", "查看失物招領"),
		CmdCancel:        getEnv("CMD_CANCEL", "取消上報"),

		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/450x300?text=No+Image"),
		InfoLinkURL:         getEnv("INFO_LINK_URL", "https://line.me/zh-hant/"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
