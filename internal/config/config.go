package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AppName    = "Inkwell"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/inkwell-app/inkwell"
)

// UserAgent identifies outbound requests (webhooks, feed import, reference fetches).
var UserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Config is loaded from INKWELL_* environment variables.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DataDir   string `envconfig:"DATA_DIR" default:"./data"`
	DBPath    string `envconfig:"DB_PATH"`
	StaticDir string `envconfig:"STATIC_DIR"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	NodeID    int64  `envconfig:"NODE_ID" default:"1"`

	// WebhookURL is the workflow automation endpoint used for content generation.
	WebhookURL     string        `envconfig:"WEBHOOK_URL"`
	WebhookSecret  string        `envconfig:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"120s"`

	BillingURL           string `envconfig:"BILLING_URL"`
	BillingAPIKey        string `envconfig:"BILLING_API_KEY"`
	BillingWebhookSecret string `envconfig:"BILLING_WEBHOOK_SECRET"`
	AppURL               string `envconfig:"APP_URL" default:"http://localhost:8080"`
	PlansFile            string `envconfig:"PLANS_FILE"`

	MaxPriorities       int           `envconfig:"MAX_PRIORITIES" default:"5"`
	TranslationInterval time.Duration `envconfig:"TRANSLATION_INTERVAL" default:"1m"`
	TranslationWorkers  int           `envconfig:"TRANSLATION_WORKERS" default:"3"`
	AIRateLimit         int           `envconfig:"AI_RATE_LIMIT" default:"10"`
	ContactRateLimit    float64       `envconfig:"CONTACT_RATE_LIMIT" default:"0.2"`

	// CORSOrigins lists origins of a separately hosted client, comma separated.
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
	// TrustedProxies lists reverse proxy IPs or CIDRs whose X-Forwarded-For
	// is honoured. Empty means the peer address is the client address.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// LoadEnvFile loads a .env file if present. A missing default file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("inkwell", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "inkwell.db")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = detectStaticDir()
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	if cfg.StaticDir != "" {
		cfg.StaticDir = filepath.Clean(cfg.StaticDir)
	}
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("INKWELL_ADDR is required")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("INKWELL_NODE_ID must be between 0 and 1023")
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("INKWELL_LOG_FORMAT must be text or json")
	}
	if c.MaxPriorities < 1 {
		return fmt.Errorf("INKWELL_MAX_PRIORITIES must be >= 1")
	}
	if c.TranslationWorkers < 1 {
		return fmt.Errorf("INKWELL_TRANSLATION_WORKERS must be >= 1")
	}
	if c.TranslationInterval <= 0 {
		return fmt.Errorf("INKWELL_TRANSLATION_INTERVAL must be positive")
	}
	if c.WebhookTimeout <= 0 {
		return fmt.Errorf("INKWELL_WEBHOOK_TIMEOUT must be positive")
	}
	if _, err := ParseCIDRs(c.TrustedProxies); err != nil {
		return fmt.Errorf("INKWELL_TRUSTED_PROXIES: %w", err)
	}
	return nil
}

// ParseCIDRs parses IPs and CIDR ranges. A bare IP becomes a single-host range.
func ParseCIDRs(values []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !strings.Contains(v, "/") {
			ip := net.ParseIP(v)
			if ip == nil {
				return nil, fmt.Errorf("invalid address %q", v)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(v)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q", v)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
