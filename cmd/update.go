package cmd

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const updateRepo = "chinmay1088/harbor"

// GitHubRelease represents a GitHub release
type GitHubRelease struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update Harbor to the latest version",
	Long: `Check for and build the latest version of Harbor from source.

This command will:
  • Check GitHub releases for the latest version
  • Compare with your current version (` + version + `)
  • Download source code and build automatically if newer version exists
  • Backup current version before updating

Examples:
  harbor update           # Check and build latest version
  harbor update --check   # Only check for updates, don't install`,
	RunE: runUpdate,
}

var (
	checkOnly bool
)

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only check for updates, don't install")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Println("🔄 Checking for Harbor updates...")
	fmt.Printf("📦 Current version: %s\n", color.CyanString("v"+version))
	fmt.Println()

	if err := verifyBuildTools(); err != nil {
		return err
	}

	latest, err := getLatestRelease()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	currentVer := "v" + version
	latestVer := latest.TagName

	if latestVer == currentVer {
		fmt.Printf("✅ You're running the latest version (%s)\n", color.GreenString(currentVer))
		return nil
	}

	if !isNewerVersion(latestVer, currentVer) {
		fmt.Printf("ℹ️  You're running a newer version (%s) than the latest release (%s)\n",
			color.YellowString(currentVer), color.CyanString(latestVer))
		return nil
	}

	fmt.Printf("🚀 New version available: %s\n", color.GreenString(latestVer))
	fmt.Printf("📅 Released: %s\n", formatReleaseDate(latest.PublishedAt))

	if latest.Body != "" {
		fmt.Println("\n📝 Release Notes:")
		fmt.Println(latest.Body)
	}
	fmt.Println()

	if checkOnly {
		fmt.Printf("💡 Run '%s' to build and install the update\n", color.YellowString("harbor update"))
		return nil
	}

	if !confirmUpdate(latestVer) {
		fmt.Println("❌ Update cancelled")
		return nil
	}

	return performSourceUpdate(latest)
}

func verifyBuildTools() error {
	if _, err := exec.LookPath("go"); err != nil {
		return fmt.Errorf("go compiler not found. Please install Go from https://golang.org/dl/")
	}
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git not found. Please install Git from https://git-scm.com/download")
	}

	output, err := exec.Command("go", "version").Output()
	if err != nil {
		return fmt.Errorf("failed to check Go version: %w", err)
	}
	fmt.Printf("🔧 Build environment: %s\n", color.CyanString(strings.TrimSpace(string(output))))

	return nil
}

func getLatestRelease() (*GitHubRelease, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", updateRepo))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

// isNewerVersion compares dotted version tags segment by segment
func isNewerVersion(latest, current string) bool {
	latestParts := strings.Split(strings.TrimPrefix(latest, "v"), ".")
	currentParts := strings.Split(strings.TrimPrefix(current, "v"), ".")

	for len(latestParts) < len(currentParts) {
		latestParts = append(latestParts, "0")
	}
	for len(currentParts) < len(latestParts) {
		currentParts = append(currentParts, "0")
	}

	for i := range latestParts {
		latestNum, _ := strconv.Atoi(strings.SplitN(latestParts[i], "-", 2)[0])
		currentNum, _ := strconv.Atoi(strings.SplitN(currentParts[i], "-", 2)[0])
		if latestNum != currentNum {
			return latestNum > currentNum
		}
	}

	return false
}

func formatReleaseDate(dateStr string) string {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}

func confirmUpdate(newVersion string) bool {
	fmt.Printf("🔧 Build and install %s from source? This will replace your current installation (y/N): ", color.GreenString(newVersion))

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func performSourceUpdate(release *GitHubRelease) error {
	fmt.Printf("⬇️  Downloading source code for %s...\n", release.TagName)

	tempDir, err := os.MkdirTemp("", "harbor-update-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Zipball keeps this working on Windows too
	sourceURL := fmt.Sprintf("https://github.com/%s/archive/refs/tags/%s.zip", updateRepo, release.TagName)
	zipPath := filepath.Join(tempDir, "source.zip")

	if err := downloadFile(sourceURL, zipPath); err != nil {
		return fmt.Errorf("failed to download source code: %w", err)
	}

	fmt.Println("📦 Extracting source code...")

	extractDir := filepath.Join(tempDir, "extracted")
	if err := extractZip(zipPath, extractDir); err != nil {
		return fmt.Errorf("failed to extract source code: %w", err)
	}

	// GitHub archives unpack into a folder like harbor-0.3.1
	sourceDir, err := findSourceDirectory(extractDir)
	if err != nil {
		return fmt.Errorf("failed to locate source directory: %w", err)
	}

	fmt.Println("🔨 Building from source...")

	binaryPath, err := buildFromSource(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to build from source: %w", err)
	}

	fmt.Println("🔧 Installing update...")

	currentExe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get current executable path: %w", err)
	}

	backupPath := currentExe + ".backup"
	if err := copyFile(currentExe, backupPath); err != nil {
		fmt.Printf("⚠️  Warning: failed to create backup: %v\n", err)
	} else {
		fmt.Printf("💾 Backup created: %s\n", backupPath)
	}

	if err := copyFile(binaryPath, currentExe); err != nil {
		return fmt.Errorf("failed to replace executable: %w", err)
	}

	fmt.Printf("✅ Successfully updated to %s!\n", color.GreenString(release.TagName))

	fmt.Println("\n🔍 Verifying installation...")
	output, err := exec.Command(currentExe, "version").Output()
	if err == nil {
		fmt.Printf("✅ Verification successful: %s", string(output))
	} else {
		fmt.Printf("⚠️  Verification failed: %v\n", err)
		fmt.Printf("💡 You can restore the backup if needed: mv %s %s\n", backupPath, currentExe)
	}

	return nil
}

func findSourceDirectory(extractDir string) (string, error) {
	entries, err := os.ReadDir(extractDir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "harbor-") {
			return filepath.Join(extractDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("source directory not found in extracted archive")
}

func buildFromSource(sourceDir string) (string, error) {
	fmt.Println("  📥 Downloading dependencies...")
	download := exec.Command("go", "mod", "download")
	download.Dir = sourceDir
	if err := download.Run(); err != nil {
		return "", fmt.Errorf("failed to download dependencies: %w", err)
	}

	fmt.Println("  🔨 Compiling binary...")
	binaryName := "harbor"
	if runtime.GOOS == "windows" {
		binaryName = "harbor.exe"
	}

	build := exec.Command("go", "build", "-ldflags", "-s -w", "-o", binaryName, ".")
	build.Dir = sourceDir
	build.Env = append(os.Environ(), "CGO_ENABLED=0")

	if output, err := build.CombinedOutput(); err != nil {
		return "", fmt.Errorf("build failed: %w\nOutput: %s", err, string(output))
	}

	binaryPath := filepath.Join(sourceDir, binaryName)
	if _, err := os.Stat(binaryPath); err != nil {
		return "", fmt.Errorf("binary was not created at expected path: %s", binaryPath)
	}

	return binaryPath, nil
}

func downloadFile(url, path string) error {
	client := &http.Client{Timeout: 5 * time.Minute}

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractZip(src, dest string) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer reader.Close()

	dest = filepath.Clean(dest)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}

	for _, file := range reader.File {
		path := filepath.Clean(filepath.Join(dest, file.Name))

		// Prevent directory traversal
		if !strings.HasPrefix(path, dest+string(os.PathSeparator)) && path != dest {
			continue
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(path, file.Mode()); err != nil {
				return err
			}
			continue
		}

		// Skip symlinks
		if file.Mode()&os.ModeSymlink != 0 {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}

		if err := extractZipFile(file, path); err != nil {
			return err
		}
	}

	return nil
}

func extractZipFile(file *zip.File, path string) error {
	fileReader, err := file.Open()
	if err != nil {
		return err
	}
	defer fileReader.Close()

	target, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}

	_, err = io.Copy(target, fileReader)
	if closeErr := target.Close(); err == nil {
		err = closeErr
	}
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	// Write to a temp file in the same dir so the rename is atomic
	tmp := dst + ".tmp"
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}

	if fi, err := os.Stat(src); err == nil {
		os.Chmod(tmp, fi.Mode())
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}
