package embeddings

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/moleary1107/etownz-grants-sub008/pkg/config"
)

// Config configures the embedding client. Fields with env tags can be loaded
// from the environment via LoadConfig; HTTPClient and Logger are wired in
// code only.
type Config struct {
	// APIKey authenticates against the embedding provider.
	APIKey string `env:"OPENAI_API_KEY,required"`

	// Model is the embedding model requested for every call.
	Model string `env:"EMBEDDINGS_MODEL" envDefault:"text-embedding-3-small"`

	// BaseURL is the provider's embeddings endpoint. Override for proxies or
	// OpenAI-compatible providers.
	BaseURL string `env:"EMBEDDINGS_BASE_URL" envDefault:"https://api.openai.com/v1/embeddings"`

	// BatchSize is the maximum number of inputs per provider request.
	BatchSize int `env:"EMBEDDINGS_BATCH_SIZE" envDefault:"100"`

	// BatchInterval is the minimum spacing between consecutive batch requests,
	// a deliberate throttle to stay under provider rate limits.
	BatchInterval time.Duration `env:"EMBEDDINGS_BATCH_INTERVAL" envDefault:"100ms"`

	// HTTPTimeout bounds each provider request when no custom HTTPClient is set.
	HTTPTimeout time.Duration `env:"EMBEDDINGS_HTTP_TIMEOUT" envDefault:"30s"`

	// HTTPClient allows custom transport configuration.
	HTTPClient *http.Client `env:"-"`

	// Logger receives degraded-input warnings. When nil, the client builds a
	// JSON logger tagged with the component name.
	Logger *slog.Logger `env:"-"`
}

// LoadConfig loads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
