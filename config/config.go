package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	ContentAPI ContentAPIConfig `yaml:"content_api"`
	Links      LinksConfig      `yaml:"links"`
	Store      StoreConfig      `yaml:"store"`
	Magazine   MagazineConfig   `yaml:"magazine"`
	Subscribe  SubscribeConfig  `yaml:"subscribe"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// AdminToken 은 DELETE /view/cache 같은 운영용 라우트의 Bearer 토큰이다.
	AdminToken string `yaml:"-"`
}

// ContentAPIConfig 는 원격 콘텐츠 API(WordPress REST) 접속 정보다.
// User/Password 는 작성자 목록처럼 권한이 필요한 호출에만 basic auth 로 사용된다.
type ContentAPIConfig struct {
	BaseURL               string        `yaml:"base_url"`
	Timeout               time.Duration `yaml:"timeout"`
	EnrichmentConcurrency int           `yaml:"enrichment_concurrency"`
	User                  string        `yaml:"-"`
	Password              string        `yaml:"-"`
}

// LinksConfig 는 원본 콘텐츠 도메인 링크를 로컬 라우트로 바꾸는 규칙이다.
type LinksConfig struct {
	OriginHost string            `yaml:"origin_host"`
	Pages      map[string]string `yaml:"pages"`
}

// StoreConfig 는 캐시 스토어의 스냅샷 저장소를 정의한다.
// Persistence: none | file | redis | mongo
type StoreConfig struct {
	Persistence   string `yaml:"persistence"`
	SnapshotName  string `yaml:"snapshot_name"`
	FileDir       string `yaml:"file_dir"`
	RedisURL      string `yaml:"redis_url"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDBName   string `yaml:"mongo_db_name"`
	PartitionSize int    `yaml:"partition_size"`
}

type MagazineConfig struct {
	SectionTags      []string `yaml:"section_tags"`
	FallbackCategory string   `yaml:"fallback_category"`
	PerPage          int      `yaml:"per_page"`
}

type SubscribeConfig struct {
	BaseURL       string `yaml:"base_url"`
	ListID        string `yaml:"list_id"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	Token         string `yaml:"-"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	config = c
}

// Parse 는 yaml 설정을 읽고 환경변수(비밀값, 접속 URL)를 덮어쓴 뒤 기본값을 채운다.
func Parse(data []byte) (*AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.applyEnv()
	c.applyDefaults()
	return &c, nil
}

func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("CONTENT_API_BASE_URL")); v != "" {
		c.ContentAPI.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		c.Store.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_URI")); v != "" {
		c.Store.MongoURI = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.Server.Port = v
	}
	c.ContentAPI.User = os.Getenv("CONTENT_API_USER")
	c.ContentAPI.Password = os.Getenv("CONTENT_API_PASSWORD")
	c.Subscribe.Token = os.Getenv("MAILCHIMP_API_TOKEN")
	c.Server.AdminToken = os.Getenv("CACHE_ADMIN_TOKEN")
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.ContentAPI.BaseURL == "" {
		c.ContentAPI.BaseURL = "https://wp.blackyouthproject.com"
	}
	if c.ContentAPI.Timeout <= 0 {
		c.ContentAPI.Timeout = 10 * time.Second
	}
	if c.ContentAPI.EnrichmentConcurrency <= 0 {
		c.ContentAPI.EnrichmentConcurrency = 8
	}
	if c.Links.OriginHost == "" {
		c.Links.OriginHost = "wp.blackyouthproject.com"
	}
	if c.Store.Persistence == "" {
		c.Store.Persistence = "none"
	}
	if c.Store.SnapshotName == "" {
		c.Store.SnapshotName = "byp-store"
	}
	if c.Store.FileDir == "" {
		c.Store.FileDir = ".cache"
	}
	if c.Store.MongoDBName == "" {
		c.Store.MongoDBName = "byp"
	}
	if c.Store.PartitionSize <= 0 {
		c.Store.PartitionSize = 256
	}
	if len(c.Magazine.SectionTags) == 0 {
		c.Magazine.SectionTags = []string{"ble", "black-life-everywhere"}
	}
	if c.Magazine.FallbackCategory == "" {
		c.Magazine.FallbackCategory = "Magazine"
	}
	if c.Magazine.PerPage <= 0 {
		c.Magazine.PerPage = 6
	}
	if c.Subscribe.RatePerMinute <= 0 {
		c.Subscribe.RatePerMinute = 10
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
