package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/nulzo/model-catalog-api/internal/catalog"
	"github.com/nulzo/model-catalog-api/internal/cli"
	"github.com/nulzo/model-catalog-api/internal/config"
)

// catalog is an inspection tool: it renders the builtin tables and the
// derived views exactly as the API would serve them, using whichever provider
// credentials are present in the environment.
func main() {
	view := flag.String("view", "models", "view to render: providers, models, grouped, selectable, default, model, sdk")
	modelID := flag.String("model", "", "model id for the model/sdk views")
	pro := flag.Bool("pro", false, "render the selectable/default views with Pro entitlement")
	checkUpdate := flag.Bool("check-update", false, "check for a newer release before running")
	flag.Parse()

	if *checkUpdate {
		CheckForUpdates()
	}

	registry, err := catalog.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s catalog tables invalid: %v\n", cli.CrossMark(), err)
		os.Exit(1)
	}
	keys := config.ResolveAPIKeys(registry.ListProviders())

	var out any
	switch *view {
	case "providers":
		out = registry.ListProviders()
	case "models":
		out = registry.ListModels()
	case "grouped":
		out = registry.GroupByProvider()
	case "selectable":
		out = registry.ListSelectableModels(*pro, keys)
	case "default":
		out = map[string]any{"model": registry.DefaultModel(*pro), "pro": *pro}
	case "model":
		m, ok := registry.GetModel(*modelID)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s model not found: %q\n", cli.CrossMark(), *modelID)
			os.Exit(1)
		}
		out = m
	case "sdk":
		cfg, ok := registry.SDKConfig(*modelID)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s model not found: %q\n", cli.CrossMark(), *modelID)
			os.Exit(1)
		}
		out = cfg
	default:
		fmt.Fprintf(os.Stderr, "%s unknown view: %q\n", cli.CrossMark(), *view)
		os.Exit(2)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s encoding failed: %v\n", cli.CrossMark(), err)
		os.Exit(1)
	}
	fmt.Println(cli.HighlightJSON(string(b)))
}
