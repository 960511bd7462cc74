package integration

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// featureSets are run as separate suites so a failure names the area.
var featureSets = map[string]string{
	"rights":    "features/rights.feature",
	"catalogue": "features/catalogue.feature",
}

func TestFeatures(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}
	// Scenarios reset the database directly, behind any cache the server
	// under test would keep.
	if backend := os.Getenv("ARTRIGHTS_CACHE_BACKEND"); backend != "" && backend != "none" {
		t.Fatalf("ARTRIGHTS_CACHE_BACKEND=%s: feature tests need the query cache disabled", backend)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc, err := NewTestContext(ctx)
	if err != nil {
		t.Fatalf("Failed to create test context: %v", err)
	}
	defer tc.Close(ctx)

	for name, path := range featureSets {
		t.Run(name, func(t *testing.T) {
			suite := godog.TestSuite{
				Name: "artrights-" + name,
				ScenarioInitializer: func(sc *godog.ScenarioContext) {
					NewStepsContext(tc).RegisterSteps(sc)
				},
				Options: &godog.Options{
					Format:   "pretty",
					Paths:    []string{path},
					Tags:     os.Getenv("ARTRIGHTS_FEATURE_TAGS"),
					Strict:   true,
					TestingT: t,
				},
			}
			if suite.Run() != 0 {
				t.Fatalf("%s features failed", name)
			}
		})
	}
}
