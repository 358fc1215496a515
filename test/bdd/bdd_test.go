package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplanner-go/test/bdd/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/planning", "features/catalog"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: RecipeDatabaseScenario registered FIRST so its catalog steps take
	// precedence for features/catalog (first registration wins in godog)
	steps.InitializeRecipeDatabaseScenario(sc)
	steps.InitializePlanningScenario(sc)
	steps.InitializeDependencyGraphScenario(sc)
}
