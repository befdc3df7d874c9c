//go:build integration

package repository_test

import (
	"os"
	"testing"

	"yelpcamp/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithCleanup(m))
}
