// ABOUTME: Integration tests for healthsum CLI.
// ABOUTME: Tests the full summarize-then-show workflow against real CSV exports.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "healthsum")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/healthsum")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	exportDir := filepath.Join(tmpDir, "exports")
	if err := os.Mkdir(exportDir, 0o755); err != nil {
		t.Fatal(err)
	}

	healthCSV := strings.Join([]string{
		"Date,Carbohydrates (g),Protein (g),Total Fat (g),Steps (count),Sleep Analysis [Asleep] (hr),Sleep Analysis [In Bed] (hr),Apple Exercise Time (min)",
		"2024-06-01,200,150,60,9100,6.0,8.0,45",
		"2024-06-02,180,140,55,7200,7.5,8.5,20",
	}, "\n")
	sleepCSV := strings.Join([]string{
		"ISO8601,asleep,inBed,bedtime,waketime",
		"2024-06-01,6:59:24,8:00:00,22:45:00,06:30:00",
	}, "\n")

	for name, content := range map[string]string{
		"HealthAutoExport-2024-06.csv": healthCSV,
		"AutoSleep-2024-06.csv":        sleepCSV,
	} {
		if err := os.WriteFile(filepath.Join(exportDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Rebuild summaries from the export directory.
	output, err := run("summarize", exportDir)
	if err != nil {
		t.Fatalf("Failed to summarize: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Summarized 2 days") {
		t.Errorf("Expected 'Summarized 2 days' in output, got: %s", output)
	}

	// Show stored summaries: wearable sleep overrides the health export,
	// calories are derived from macros, steps are comma-grouped.
	output, err = run("show")
	if err != nil {
		t.Fatalf("Failed to show: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2024-06-01") {
		t.Errorf("Expected 2024-06-01 in show output, got: %s", output)
	}
	if !strings.Contains(output, "1,940") {
		t.Errorf("Expected derived calories 1,940 in show output, got: %s", output)
	}
	if !strings.Contains(output, "9,100") {
		t.Errorf("Expected comma-grouped steps 9,100 in show output, got: %s", output)
	}

	// Re-running is idempotent: same inputs, same stored rows.
	if output, err = run("summarize", exportDir); err != nil {
		t.Fatalf("Failed to re-summarize: %v\n%s", err, output)
	}
	second, err := run("show")
	if err != nil {
		t.Fatalf("Failed to show after re-run: %v\n%s", err, second)
	}
	if !strings.Contains(second, "1,940") {
		t.Errorf("Expected identical output after re-run, got: %s", second)
	}

	// One-shot strength math needs no database.
	output, err = run("dots", "500", "83", "male")
	if err != nil {
		t.Fatalf("Failed to compute dots: %v\n%s", err, output)
	}
	if !strings.Contains(output, "314.05") {
		t.Errorf("Expected DOTS 314.05 in output, got: %s", output)
	}

	output, err = run("e1rm", "150", "3")
	if err != nil {
		t.Fatalf("Failed to estimate e1rm: %v\n%s", err, output)
	}
	if !strings.Contains(output, "165.0") {
		t.Errorf("Expected estimate 165.0 in output, got: %s", output)
	}
}

func TestSummarizeParquetExport(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "healthsum")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/healthsum")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	tmpDir := t.TempDir()
	exportDir := filepath.Join(tmpDir, "exports")
	if err := os.Mkdir(exportDir, 0o755); err != nil {
		t.Fatal(err)
	}
	csv := "Date,Steps (count)\n2024-06-01,5000\n"
	if err := os.WriteFile(filepath.Join(exportDir, "HealthAutoExport.csv"), []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	parquetPath := filepath.Join(tmpDir, "summaries.parquet")
	cmd := exec.Command(binary,
		"--db", filepath.Join(tmpDir, "test.db"),
		"summarize", exportDir,
		"--parquet", parquetPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to summarize with parquet: %v\n%s", err, output)
	}

	data, err := os.ReadFile(parquetPath)
	if err != nil {
		t.Fatalf("Failed to read parquet output: %v", err)
	}
	if len(data) < 8 || string(data[:4]) != "PAR1" {
		t.Error("Expected a parquet file with PAR1 magic")
	}
}
