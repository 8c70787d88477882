package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	Quiz       Quiz
	DeepSeek   DeepSeek
	OCR        OCR
	Database   Database
	Logger     Logger
	Browser    Browser
	Migrations Migrations
}

// Quiz описывает параметры целевой страницы с вопросами.
type Quiz struct {
	URL      string // ссылка на страницу с вопросами; пустая — спросим в консоли
	Username string
	Password string
	Language string // язык программирования для кодовых вопросов, например "C语言"

	// UnknownAsCode включает поведение "неизвестный тип = кодовый вопрос".
	// По умолчанию неизвестные типы пропускаются.
	UnknownAsCode bool

	WaitTimeout  time.Duration // ожидание обязательных элементов
	ShortTimeout time.Duration // ожидание диалогов и кнопки сохранения
}

type DeepSeek struct {
	APIKey            string
	BaseURL           string
	Model             string
	Retries           uint
	RequestsPerMinute int
	TokensPerHour     int
}

type OCR struct {
	Enabled  bool
	Endpoint string
	Token    string
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

type Browser struct {
	Display     string
	Headless    bool
	UserDataDir string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		Quiz: Quiz{
			URL:           os.Getenv("QUIZ_URL"),
			Username:      os.Getenv("QUIZ_USERNAME"),
			Password:      os.Getenv("QUIZ_PASSWORD"),
			Language:      env("QUIZ_LANGUAGE", "C语言"),
			UnknownAsCode: envBool("QUIZ_UNKNOWN_AS_CODE"),
			WaitTimeout:   envDuration("QUIZ_WAIT_TIMEOUT", 15*time.Second),
			ShortTimeout:  envDuration("QUIZ_SHORT_TIMEOUT", 3*time.Second),
		},
		DeepSeek: DeepSeek{
			APIKey:            os.Getenv("DEEPSEEK_API_KEY"),
			BaseURL:           env("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			Model:             env("DEEPSEEK_MODEL", "deepseek-chat"),
			Retries:           uint(envInt("DEEPSEEK_RETRIES", 3)),
			RequestsPerMinute: envInt("DEEPSEEK_RPM", 60),
			TokensPerHour:     envInt("DEEPSEEK_TPH", 500000),
		},
		OCR: OCR{
			Enabled:  envBool("OCR_ENABLED"),
			Endpoint: os.Getenv("OCR_ENDPOINT"),
			Token:    os.Getenv("OCR_TOKEN"),
		},
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     env("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Browser: Browser{
			Display:     env("DISPLAY", ":0"),
			Headless:    envBool("PW_HEADLESS"),
			UserDataDir: env("PW_USER_DATA_DIR", "./userdata"),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
