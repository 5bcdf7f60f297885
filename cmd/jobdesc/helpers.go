package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dhakago/jobdesc-cli/internal/api"
	"github.com/dhakago/jobdesc-cli/internal/config"
	"github.com/dhakago/jobdesc-cli/internal/workflow"
)

// Persistent flags shared by all commands. Precedence is flag > config file
// > environment.
var (
	flagConfigFile string
	flagAPIURL     string
	flagSecret     string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Job-Description Service URL incl. /api prefix (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&flagSecret, "session-secret", "", "Session secret for mutating requests (overrides "+config.EnvSessionSecret+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed output")
}

// resolveConfig merges CLI flags, the optional config file and the
// environment into an effective configuration.
func resolveConfig() (*config.Config, error) {
	cfg := config.Config{
		BaseURL:       flagAPIURL,
		SessionSecret: flagSecret,
		Verbose:       flagVerbose,
	}

	if flagConfigFile != "" {
		fileCfg, err := config.LoadConfig(flagConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("service URL is required (set %s, use --api-url, or configure base_url)", config.EnvAPIURL)
	}
	return &cfg, nil
}

// newClient builds the service client from the effective configuration.
func newClient(cfg *config.Config) (*api.Client, error) {
	opts := api.DefaultOptions()
	opts.SessionSecret = cfg.SessionSecret
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return api.New(cfg.BaseURL, opts)
}

// clientFromFlags is the common command preamble: resolve config, build client.
func clientFromFlags() (*api.Client, *config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// notifier returns the standard stderr notifier for workflow feedback.
func notifier() workflow.Notifier {
	return workflow.NewWriterNotifier(os.Stderr)
}

// stdinConfirmer prompts on stderr and reads a y/N answer from stdin.
// assumeYes short-circuits to true for scripted use.
func stdinConfirmer(assumeYes bool) workflow.Confirmer {
	return workflow.ConfirmerFunc(func(prompt string) bool {
		if assumeYes {
			return true
		}
		fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}
