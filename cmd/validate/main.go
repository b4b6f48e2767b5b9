// Command validate spot-checks the county status registry against known
// ground truth: counties whose status changed recently, the only dry
// counties left in several states, and a sample of fully wet counties.
// It guards the dataset against regressions when the YAML file is edited
// by hand or the remote updater picks up bad data.
//
// Usage:
//
//	go run ./cmd/validate [-registry path/to/counties.yaml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/dry-county-map/internal/domain"
	"github.com/couchcryptid/dry-county-map/internal/registry"
)

// check is one expected classification.
type check struct {
	county   string
	state    string
	fips     string // consulted when set, name lookup otherwise
	expected domain.Status
	note     string
}

var checks = []check{
	{county: "Hot Spring", state: "Arkansas", fips: "05059", expected: domain.StatusWet, note: "voted wet Nov 2022"},
	{county: "Borden", state: "Texas", expected: domain.StatusDry, note: "one of only 3 dry TX counties"},
	{county: "Kent", state: "Texas", expected: domain.StatusDry, note: "one of only 3 dry TX counties"},
	{county: "Roberts", state: "Texas", expected: domain.StatusDry, note: "one of only 3 dry TX counties"},
	{county: "Throckmorton", state: "Texas", fips: "48447", expected: domain.StatusWet, note: "voted wet Nov 2024"},
	{county: "Benton", state: "Mississippi", expected: domain.StatusDry, note: "only fully dry MS county"},
	{county: "Liberty", state: "Florida", expected: domain.StatusDry, note: "only fully dry FL county"},
	{county: "Cullman", state: "Alabama", expected: domain.StatusMoist, note: "has wet cities"},
	{county: "Moore", state: "Tennessee", expected: domain.StatusMoist, note: "Jack Daniel's county"},
	{county: "Davidson", state: "Tennessee", expected: domain.StatusWet, note: "Nashville, fully wet"},
	{county: "Shelby", state: "Tennessee", expected: domain.StatusWet, note: "Memphis, fully wet"},
	{county: "Fairfax", state: "Virginia", expected: domain.StatusWet, note: "VA has zero dry counties"},
}

func main() {
	registryPath := flag.String("registry", "", "registry YAML path (default: embedded dataset)")
	flag.Parse()

	if code := run(*registryPath); code != 0 {
		os.Exit(code)
	}
}

func run(registryPath string) int {
	reg, err := registry.Load(registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load registry: %v\n", err)
		return 1
	}

	fmt.Println("=== County Status Registry Validation ===")
	fmt.Println()

	counts := make(map[domain.Status]int)
	for _, e := range reg.All() {
		counts[e.Status]++
	}
	fmt.Printf("Entries: %d listed (Dry %d, Moist %d, Wet overrides %d)\n\n",
		reg.Len(), counts[domain.StatusDry], counts[domain.StatusMoist], counts[domain.StatusWet])

	failures := 0
	for _, c := range checks {
		stateFIPS, ok := domain.StateFIPS(c.state)
		if !ok {
			fmt.Printf("FAIL  %s County, %s: unknown state\n", c.county, c.state)
			failures++
			continue
		}

		actual, _ := reg.Classify(c.fips, stateFIPS, c.county)
		if actual != c.expected {
			fmt.Printf("FAIL  %s County, %s: %s (expected %s) - %s\n",
				c.county, c.state, actual, c.expected, c.note)
			failures++
			continue
		}
		fmt.Printf("PASS  %s County, %s: %s - %s\n", c.county, c.state, actual, c.note)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%d of %d checks failed\n", failures, len(checks))
		return 1
	}
	fmt.Printf("All %d checks passed\n", len(checks))
	return 0
}
