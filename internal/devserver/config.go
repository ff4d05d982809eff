package devserver

import (
	"flag"
	"os"
	"time"

	"github.com/filebox/filebox/internal/flagx"
)

// Config holds runtime settings for the development server.
type Config struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadDefaults populates c with sensible defaults. The default secret is
// fine for a throwaway dev instance and nothing else.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.JWTSecret = "filebox-dev-secret"
	c.TokenTTL = 24 * time.Hour
}

// LoadConfig constructs a Config from defaults overlaid with command-line
// flags:
//
//	-a string   listen address
//	-s string   JWT signing secret
//	-l int      token lifetime in minutes
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "JWT signing secret")
	ttl := fs.Int("l", int(cfg.TokenTTL.Minutes()), "token lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	return cfg
}
