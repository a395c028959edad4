// Package main provides tests for the filmlens CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/filmlens/internal/cli"
	"github.com/leapstack-labs/filmlens/internal/cli/config"
)

func testDataset(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "..", "..", "testdata", "films.csv")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "filmlens") {
		t.Errorf("version output should contain 'filmlens', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := execute(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"report", "schema", "ui", "serve", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestReportCommand(t *testing.T) {
	output, err := execute(t, "report", "--dataset", testDataset(t))
	if err != nil {
		t.Errorf("report command error = %v", err)
	}

	expected := []string{
		"Top 10 Highest Rated Movies",
		"Average Rating by Year",
		"Runtime Distribution",
		"Total Gross by Rating",
		"Rating Distribution by Censor Group",
		"The Shawshank Redemption",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("report output should contain %q, got: %s", want, output)
		}
	}
}

func TestReportCommandJSON(t *testing.T) {
	output, err := execute(t, "report", "--dataset", testDataset(t), "--output", "json")
	if err != nil {
		t.Errorf("report --output json command error = %v", err)
	}

	for _, want := range []string{`"row_count"`, `"top_rated"`, `"runtime_bins"`} {
		if !strings.Contains(output, want) {
			t.Errorf("json output should contain %s, got: %s", want, output)
		}
	}
}

func TestReportCommandFiltered(t *testing.T) {
	output, err := execute(t, "report",
		"--dataset", testDataset(t),
		"--genre", "Crime",
		"--years", "1990:1999")
	if err != nil {
		t.Errorf("filtered report command error = %v", err)
	}

	if !strings.Contains(output, "Pulp Fiction") {
		t.Errorf("filtered report should contain 'Pulp Fiction', got: %s", output)
	}
	if strings.Contains(output, "The Godfather Part II") {
		t.Errorf("filtered report should not contain 1974 films, got: %s", output)
	}
}

func TestReportCommandBadYears(t *testing.T) {
	_, err := execute(t, "report", "--dataset", testDataset(t), "--years", "1990")
	if err == nil {
		t.Error("report with malformed year range should fail")
	}
}

func TestReportCommandMissingDataset(t *testing.T) {
	_, err := execute(t, "report", "--dataset", "no-such-file.csv")
	if err == nil {
		t.Error("report with missing dataset should fail")
	}
}

func TestSchemaCommand(t *testing.T) {
	output, err := execute(t, "schema", "--dataset", testDataset(t))
	if err != nil {
		t.Errorf("schema command error = %v", err)
	}

	for _, want := range []string{"movie_title", "censor", "genre filter"} {
		if !strings.Contains(output, want) {
			t.Errorf("schema output should contain %q, got: %s", want, output)
		}
	}
}

func TestSchemaCommandJSON(t *testing.T) {
	output, err := execute(t, "schema", "--dataset", testDataset(t), "--output", "json")
	if err != nil {
		t.Errorf("schema --output json command error = %v", err)
	}

	if !strings.Contains(output, `"fields"`) {
		t.Errorf("schema json should contain fields, got: %s", output)
	}
}
