package cli

import (
	"context"
	"fmt"

	"github.com/soyeahso/underline/internal/api"
	"github.com/soyeahso/underline/internal/config"
	"github.com/soyeahso/underline/internal/logging"
	"github.com/soyeahso/underline/internal/module"
	"github.com/spf13/cobra"
)

// envModule applies UNDERLINE_* overrides between loading the config and
// initializing the modules that read it.
type envModule struct {
	store *config.Store
}

func (m envModule) ID() string   { return "config-env" }
func (m envModule) Name() string { return "Environment overrides" }
func (m envModule) Init(_ context.Context, _ ...any) error {
	return m.store.ApplyEnvOverrides()
}

// bootstrap registers and initializes the config and API modules.
func bootstrap(ctx context.Context, sink api.ErrorLogSink) (*config.Store, *module.Registry, error) {
	if err := prepareDirs(); err != nil {
		return nil, nil, err
	}

	store := config.New()
	reg := module.NewRegistry(log)
	for _, r := range []struct {
		m    module.Module
		args []any
	}{
		{store, []any{paths.Config}},
		{envModule{store: store}, nil},
		{api.New(store, sink), nil},
	} {
		if err := reg.Register(r.m, r.args...); err != nil {
			return nil, nil, err
		}
	}

	if err := reg.InitAll(ctx); err != nil {
		return nil, nil, err
	}
	return store, reg, nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Load (or create) the config and apply it to the API error log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, reg, err := bootstrap(cmd.Context(), logging.Errors)
			if err != nil {
				return err
			}
			defer logging.Errors.Close()

			for _, info := range reg.Info() {
				fmt.Printf("Module:  %s (%s)\n", info.Name, info.ID)
			}
			fmt.Printf("Config:  %s\n", paths.Config)
			if logging.Errors.Enabled() {
				fmt.Printf("API log: %s\n", logging.Errors.Path())
			} else {
				fmt.Println("API log: disabled")
			}

			log.Debug().Interface("values", store.Export()).Msg("configuration applied")
			return nil
		},
	}
}
