package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbaccus/hue-dispatch/pkg/bootstrap"
	"github.com/tbaccus/hue-dispatch/pkg/command"
	"github.com/tbaccus/hue-dispatch/pkg/config"
	"github.com/tbaccus/hue-dispatch/pkg/dispatch"
	log "github.com/tbaccus/hue-dispatch/pkg/logger"
	"github.com/tbaccus/hue-dispatch/pkg/transport"
)

// Config aggregates everything huectl needs from configs/ and the env.
type Config struct {
	Bridge   config.BridgeConfig   `yaml:"bridge" mapstructure:"bridge"`
	Dispatch config.DispatchConfig `yaml:"dispatch" mapstructure:"dispatch"`
	Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
	Tracing  config.TracingConfig  `yaml:"tracing" mapstructure:"tracing"`
}

type app struct {
	cfg  Config
	conn *dispatch.Connection
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:           "huectl",
		Short:         "Send control commands to a Hue bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(&a.cfg, config.LoadOptions{
				ConfigPath:    configPath,
				EnvPrefix:     "HUECTL",
				AllowNoConfig: true,
			}); err != nil {
				return err
			}
			a.cfg.Dispatch.ApplyDefaults()
			a.cfg.Tracing.ApplyDefaults()
			if err := bootstrap.InitLogger(a.cfg.Log); err != nil {
				return err
			}
			shutdown, err := bootstrap.InitTracing(cmd.Context(), a.cfg.Tracing)
			if err != nil {
				return err
			}
			cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
				return shutdown(cmd.Context())
			}
			return a.connect()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "./configs", "config file directory")

	root.AddCommand(newLightCmd(a, false))
	root.AddCommand(newLightCmd(a, true))
	root.AddCommand(newSmartSceneCmd(a))
	root.AddCommand(newSceneCmd(a))
	return root
}

func (a *app) connect() error {
	rootCA, err := transport.LoadRootCA(a.cfg.Bridge.RootCAFile)
	if err != nil {
		return err
	}
	conn, err := dispatch.NewConnection(dispatch.Options{
		BridgeAddress:  a.cfg.Bridge.Address,
		BridgeID:       a.cfg.Bridge.BridgeID,
		AppKey:         a.cfg.Bridge.AppKey,
		RetryLimit:     a.cfg.Dispatch.RetryLimit,
		RetryBackoff:   a.cfg.Dispatch.RetryBackoffSeconds.Duration(),
		RequestTimeout: a.cfg.Dispatch.RequestTimeoutSeconds.Duration(),
		RootCAPEM:      rootCA,
	})
	if err != nil {
		return err
	}
	a.conn = conn
	// huectl runs on an already-networked host, so the connectivity
	// collaborator is trivially "up".
	a.conn.ReportConnected()
	return nil
}

// send submits cmd and waits for the dispatcher to finish with it.
func (a *app) send(cmd command.Command) error {
	req, err := cmd.Build()
	if err != nil {
		return err
	}
	if err := a.conn.Submit(req); err != nil {
		return err
	}
	attempts := time.Duration(a.cfg.Dispatch.RetryLimit + 1)
	budget := attempts*a.cfg.Dispatch.RequestTimeoutSeconds.Duration() +
		attempts*a.cfg.Dispatch.RetryBackoffSeconds.Duration()
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()
	err = a.conn.Drain(ctx)
	a.conn.Close()
	return err
}

func newLightCmd(a *app, grouped bool) *cobra.Command {
	use, short := "light <resource-id>", "Control a single light"
	if grouped {
		use, short = "group <resource-id>", "Control a grouped light"
	}

	var (
		off        bool
		brightness int
		dimUp      int
		dimDown    int
		mirek      int
		mirekUp    int
		mirekDown  int
		xyVals     []float64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc := command.LightCommand{ResourceID: args[0], Off: off}
			switch {
			case cmd.Flags().Changed("brightness"):
				lc.BrightnessAction, lc.Brightness = command.ActionSet, brightness
			case cmd.Flags().Changed("dim-up"):
				lc.BrightnessAction, lc.Brightness = command.ActionAdd, dimUp
			case cmd.Flags().Changed("dim-down"):
				lc.BrightnessAction, lc.Brightness = command.ActionSubtract, dimDown
			}
			switch {
			case cmd.Flags().Changed("mirek"):
				lc.ColorTempAction, lc.ColorTemp = command.ActionSet, mirek
			case cmd.Flags().Changed("mirek-up"):
				lc.ColorTempAction, lc.ColorTemp = command.ActionAdd, mirekUp
			case cmd.Flags().Changed("mirek-down"):
				lc.ColorTempAction, lc.ColorTemp = command.ActionSubtract, mirekDown
			}
			if cmd.Flags().Changed("xy") {
				if len(xyVals) != 2 {
					return fmt.Errorf("--xy takes exactly two coordinates, got %d", len(xyVals))
				}
				lc.SetColor, lc.X, lc.Y = true, xyVals[0], xyVals[1]
			}
			log.WithField("resource", args[0]).Info("sending light command")
			if grouped {
				gc := command.GroupedLightCommand(lc)
				return a.send(&gc)
			}
			return a.send(&lc)
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "turn the light off instead of on")
	cmd.Flags().IntVar(&brightness, "brightness", 0, "set brightness [1-100]")
	cmd.Flags().IntVar(&dimUp, "dim-up", 0, "increase brightness by delta [0-100]")
	cmd.Flags().IntVar(&dimDown, "dim-down", 0, "decrease brightness by delta [0-100]")
	cmd.Flags().IntVar(&mirek, "mirek", 0, "set color temperature [153-500]")
	cmd.Flags().IntVar(&mirekUp, "mirek-up", 0, "increase color temperature by delta [0-347]")
	cmd.Flags().IntVar(&mirekDown, "mirek-down", 0, "decrease color temperature by delta [0-347]")
	cmd.Flags().Float64SliceVar(&xyVals, "xy", nil, "CIE xy color coordinates, e.g. --xy 0.31,0.32")
	return cmd
}

func newSmartSceneCmd(a *app) *cobra.Command {
	var deactivate bool
	cmd := &cobra.Command{
		Use:   "smart-scene <resource-id>",
		Short: "Activate or deactivate a smart scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(&command.SmartSceneCommand{ResourceID: args[0], Deactivate: deactivate})
		},
	}
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "deactivate instead of activate")
	return cmd
}

func newSceneCmd(a *app) *cobra.Command {
	var (
		static     bool
		durationMS int
		brightness int
	)
	cmd := &cobra.Command{
		Use:   "scene <resource-id>",
		Short: "Recall a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(&command.SceneCommand{
				ResourceID: args[0],
				Static:     static,
				DurationMS: durationMS,
				Brightness: brightness,
			})
		},
	}
	cmd.Flags().BoolVar(&static, "static", false, "recall the static state instead of the dynamic palette")
	cmd.Flags().IntVar(&durationMS, "duration", 0, "transition duration in milliseconds")
	cmd.Flags().IntVar(&brightness, "brightness", 0, "override scene brightness [1-100]")
	return cmd
}
