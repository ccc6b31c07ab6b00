//go:build ignore

// build.go - investreports build script
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: all, stock-report, buyer-calculator, test, clean

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const version = "1.0.0"

var (
	distDir = "dist"

	// key = cmd directory, value = output executable name without extension
	executables = map[string]string{
		"stock-report":     "stock-report",
		"buyer-calculator": "buyer-calculator",
	}

	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

func main() {
	target := flag.String("target", "all", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println(colorCyan + "        investreports - Build Script       " + colorReset)
	fmt.Println(colorCyan + "===========================================" + colorReset)

	start := time.Now()

	switch *target {
	case "all":
		prepareDirectories()
		for _, name := range []string{"stock-report", "buyer-calculator"} {
			buildExecutable(name, *verbose)
		}
	case "stock-report", "buyer-calculator":
		prepareDirectories()
		buildExecutable(*target, *verbose)
	case "test":
		runTests(*verbose)
	case "clean":
		clean()
	default:
		printError(fmt.Sprintf("Unknown target: %s", *target))
		fmt.Println("Targets: all, stock-report, buyer-calculator, test, clean")
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("Build completed in %s", time.Since(start).Round(time.Millisecond)))
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorBlue, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[SUCCESS]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Printf("%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}

// prepareDirectories creates the executable-relative layout the tools expect
func prepareDirectories() {
	for _, dir := range []string{"data", "output", "logs"} {
		if err := os.MkdirAll(filepath.Join(distDir, dir), 0755); err != nil {
			printError(fmt.Sprintf("Failed to create %s: %v", dir, err))
			os.Exit(1)
		}
	}
}

func buildExecutable(name string, verbose bool) {
	exeName := executables[name]
	if runtime.GOOS == "windows" {
		exeName += ".exe"
	}
	printInfo(fmt.Sprintf("Building %s...", name))

	outputPath := filepath.Join(distDir, exeName)
	args := []string{"build", "-ldflags", "-s -w", "-o", outputPath, "./cmd/" + name}
	if verbose {
		args = append([]string{"build", "-v"}, args[1:]...)
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
	}

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError(fmt.Sprintf("Failed to build %s: %v", name, err))
		os.Exit(1)
	}

	if info, err := os.Stat(outputPath); err == nil {
		printSuccess(fmt.Sprintf("Built %s %s (%.1f MB)", exeName, version, float64(info.Size())/1024/1024))
	}
}

func runTests(verbose bool) {
	printInfo("Running Go tests...")
	args := []string{"test", "-race"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError(fmt.Sprintf("Go tests failed: %v", err))
		os.Exit(1)
	}
	printSuccess("All tests passed")
}

// clean empties dist but keeps input data placed under dist/data
func clean() {
	printInfo("Cleaning build artifacts...")
	entries, err := os.ReadDir(distDir)
	if err != nil && !os.IsNotExist(err) {
		printError(fmt.Sprintf("Failed to read %s: %v", distDir, err))
		os.Exit(1)
	}
	for _, e := range entries {
		if e.Name() == "data" {
			continue
		}
		if err := os.RemoveAll(filepath.Join(distDir, e.Name())); err != nil {
			printError(fmt.Sprintf("Failed to remove %s: %v", e.Name(), err))
		}
	}
	printSuccess("Build artifacts cleaned")
}
