// Command metro-routing answers station-network queries from the shell:
// route finding, fuzzy station resolution, line listings and proximity
// search over the configured dataset.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	lib "metro-routing"
	"metro-routing/config"
	"metro-routing/internal"
	"metro-routing/routing"
)

var cfgFile string

func main() {
	internal.InitLogging()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "metro-routing",
		Short:        "Routing and station lookup over a metro network dataset",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "config.yml", "path to the YAML config file")
	root.AddCommand(
		newRouteCmd(),
		newResolveCmd(),
		newLinesCmd(),
		newStationsCmd(),
		newNearbyCmd(),
	)
	return root
}

func loadEngine() (*lib.Engine, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return lib.NewEngine(cfg)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRouteCmd() *cobra.Command {
	var strategy string
	var alternatives int
	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find a route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			strat, err := lib.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			if alternatives > 0 {
				routes, err := eng.AlternativeRoutes(args[0], args[1], alternatives)
				if err != nil {
					return suggestOnUnknown(eng, err)
				}
				return printJSON(routes)
			}
			route, err := eng.FindRoute(args[0], args[1], strat)
			if err != nil {
				return suggestOnUnknown(eng, err)
			}
			return printJSON(route)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "hops", "optimization target: hops|distance")
	cmd.Flags().IntVar(&alternatives, "alternatives", 0, "list all simple routes up to this many hops instead of the single best")
	return cmd
}

// suggestOnUnknown augments an unknown-station failure with fuzzy
// suggestions before handing the error back to cobra.
func suggestOnUnknown(eng *lib.Engine, err error) error {
	var unknown *routing.UnknownStationError
	if !errors.As(err, &unknown) {
		return err
	}
	matches, rerr := eng.ResolveStation(unknown.Station)
	if rerr == nil && len(matches) > 0 {
		fmt.Fprintf(os.Stderr, "station %q not found, did you mean:\n", unknown.Station)
		for _, m := range matches {
			fmt.Fprintf(os.Stderr, "  %s (score %d)\n", m.Name, m.Score)
		}
	}
	return err
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve raw text to matching stations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			matches, err := eng.ResolveStation(args[0])
			if err != nil {
				return err
			}
			return printJSON(matches)
		},
	}
	return cmd
}

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List all lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			return printJSON(eng.ListLines())
		},
	}
}

func newStationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stations <line>",
		Short: "List the stations of a line in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			stations, ok := eng.StationsOnLine(args[0])
			if !ok {
				return fmt.Errorf("unknown line %q", args[0])
			}
			return printJSON(stations)
		},
	}
}

func newNearbyCmd() *cobra.Command {
	var radiusKM float64
	cmd := &cobra.Command{
		Use:   "nearby <lat> <lon>",
		Short: "List stations near a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q", args[0])
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q", args[1])
			}
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			return printJSON(eng.Nearby(lat, lon, radiusKM))
		},
	}
	cmd.Flags().Float64Var(&radiusKM, "radius", 1.0, "search radius in kilometers")
	return cmd
}
