package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sh0ckwavezero/folio"
	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/github"
)

type cli struct {
	cfgFile string
	v       *viper.Viper
	cfg     folio.SiteConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Portfolio and markdown blog server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initializeConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	root.PersistentFlags().String("content-dir", "", "markdown content directory (default: built-in posts)")
	root.PersistentFlags().String("order", "", "listing order: declared or date-desc")
	root.PersistentFlags().String("log-level", "", "debug, info, warn, error or off")

	root.AddCommand(
		newServeCmd(c),
		newRenderCmd(c),
		newPostsCmd(c),
		newStatsCmd(c),
		newVersionCmd(),
	)
	return root
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Sh0ckWaveZero")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "Full Stack Developer & Creative Builder")
	v.SetDefault("author", "MidSeeLee")
	v.SetDefault("lang", "th")
	v.SetDefault("addr", ":3000")
	v.SetDefault("static_dir", "public")
	v.SetDefault("database_path", "data/folio.db")
	v.SetDefault("github.user", "Sh0ckWaveZero")
	v.SetDefault("github.ttl", "24h")
	v.SetDefault("github.timeout", "5s")
	v.SetDefault("github.api_url", github.DefaultBaseURL)
	v.SetDefault("github.max_failures", 3)
	v.SetDefault("github.failure_window", "5m")
	v.SetDefault("post_cache_ttl", "5m")
	v.SetDefault("order", string(content.OrderDeclared))
	v.SetDefault("theme", "monokai")
	v.SetDefault("watch", false)
	v.SetDefault("log_level", "info")
}

// bindFlags maps dashed flag names onto underscore config keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func (c *cli) initializeConfig(cmd *cobra.Command) error {
	v := c.v
	setDefaults(v)

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || c.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg, err := siteConfig(v)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func siteConfig(v *viper.Viper) (folio.SiteConfig, error) {
	order, err := content.ParseOrder(v.GetString("order"))
	if err != nil {
		return folio.SiteConfig{}, err
	}
	return folio.SiteConfig{
		Name:                v.GetString("name"),
		URL:                 v.GetString("url"),
		Description:         v.GetString("description"),
		Author:              v.GetString("author"),
		Lang:                v.GetString("lang"),
		Addr:                v.GetString("addr"),
		ContentDir:          v.GetString("content_dir"),
		StaticDir:           v.GetString("static_dir"),
		DatabasePath:        v.GetString("database_path"),
		GitHubUser:          v.GetString("github.user"),
		GitHubAPIURL:        v.GetString("github.api_url"),
		GitHubTTL:           v.GetDuration("github.ttl"),
		GitHubTimeout:       v.GetDuration("github.timeout"),
		GitHubMaxFailures:   v.GetInt("github.max_failures"),
		GitHubFailureWindow: v.GetDuration("github.failure_window"),
		PostCacheTTL:        v.GetDuration("post_cache_ttl"),
		Order:               order,
		Theme:               v.GetString("theme"),
		Watch:               v.GetBool("watch"),
		LogLevel:            v.GetString("log_level"),
	}, nil
}
