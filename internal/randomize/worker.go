// Package randomize runs the external ROM randomizer against a selected ROM
// on a background goroutine, reporting progress into the shared run state.
package randomize

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/config"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// Worker orchestrates one randomization attempt: copy the ROM to a scratch
// directory, invoke the external tool, collect its single output file and
// place it next to the original.
type Worker struct {
	JavaBin    string
	JavaHeap   string
	JarPath    string
	ConfigsDir string

	now func() time.Time // nil means time.Now
}

// NewWorker resolves the configured tool paths relative to the executable.
func NewWorker(cfg *config.Config) *Worker {
	return &Worker{
		JavaBin:    cfg.Randomizer.JavaBin,
		JavaHeap:   cfg.Randomizer.JavaHeap,
		JarPath:    config.ResolvePath(cfg.Randomizer.Jar),
		ConfigsDir: config.ResolvePath(cfg.Randomizer.ConfigsDir),
		now:        time.Now,
	}
}

// Run performs the attempt. The caller must have claimed the run slot with
// StartIfIdle before spawning this on its own goroutine. Validation failures
// (no ROM, ROM/settings/binary missing) end retryable; anything after the
// tool was actually invoked ends the attempt for good. Run never panics and
// never returns an error: every failure becomes a log-panel line.
func (w *Worker) Run(st *state.AppStatus) {
	run := &st.Randomize

	origPath := st.Select.SelectedROM
	if origPath == "" {
		w.failRetryable(run, "No ROM selected.")
		return
	}
	if _, err := os.Stat(origPath); err != nil {
		w.failRetryable(run, fmt.Sprintf("ROM not found: %s", origPath))
		return
	}

	tempDir, err := os.MkdirTemp("", "rom-randomizer-*")
	if err != nil {
		w.failRetryable(run, fmt.Sprintf("Could not create working directory: %v", err))
		return
	}
	defer os.RemoveAll(tempDir)

	ext := strings.ToLower(filepath.Ext(origPath))
	extName := strings.TrimPrefix(ext, ".")

	srcPath := filepath.Join(tempDir, "src"+ext)
	if err := copyFile(origPath, srcPath); err != nil {
		w.failRetryable(run, fmt.Sprintf("Could not copy ROM: %v", err))
		return
	}

	settingsPath := filepath.Join(w.ConfigsDir, extName+".rnqs")
	if _, err := os.Stat(settingsPath); err != nil {
		message := fmt.Sprintf("No configuration found for %s files:\n %s", extName, settingsPath)
		if hint := closestSettings(w.ConfigsDir, extName+".rnqs"); hint != "" {
			message += fmt.Sprintf("\nClosest available settings file: %s", hint)
		}
		w.failRetryable(run, message)
		return
	}

	if _, err := os.Stat(w.JarPath); err != nil {
		w.failRetryable(run, fmt.Sprintf("Randomizer binary not found: %s", w.JarPath))
		return
	}

	now := time.Now
	if w.now != nil {
		now = w.now
	}
	stamp := now().Format("20060102150405")
	dstPath := filepath.Join(tempDir, fmt.Sprintf("src.randomized.%s.%s", stamp, extName))
	// The destination keeps the requested extension even though the tool may
	// emit a different one (a .gb input can come back as .gbc). The original
	// suffix is stripped as-is so an uppercase extension does not survive
	// into the output name.
	outPath := strings.TrimSuffix(origPath, filepath.Ext(origPath)) +
		fmt.Sprintf(".randomized.%s.%s", stamp, extName)

	message := glyph.Exclamation + " Starting randomization"
	logrus.Info(message)
	run.AppendLog(message)

	err = w.invoke(srcPath, dstPath, settingsPath)
	if err == nil {
		err = w.collectOutput(tempDir, filepath.Base(srcPath), outPath)
	}

	if err != nil {
		message := fmt.Sprintf("[ERROR] Randomization failed: %v", err)
		logrus.Error(message)
		run.AppendLog(message)
	} else {
		message := fmt.Sprintf("[SUCCESS] Randomization completed %s.\nRandomized ROM saved to: %s",
			glyph.Heart, outPath)
		logrus.Info(message)
		run.AppendLog(message)
	}

	run.EndAttempted()
}

func (w *Worker) failRetryable(run *state.RunState, message string) {
	logrus.Info(message)
	run.AppendLog(message)
	run.EndRetryable()
}

// invoke blocks until the external tool exits. The process inherits the
// current environment; there is no timeout and no cancellation.
func (w *Worker) invoke(srcPath, dstPath, settingsPath string) error {
	cmd := exec.Command(w.JavaBin,
		"-Xmx"+w.JavaHeap,
		"-jar", w.JarPath,
		"cli",
		"-i", srcPath,
		"-o", dstPath,
		"-s", settingsPath,
	)
	cmd.Env = os.Environ()

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		logrus.WithField("tool", filepath.Base(w.JarPath)).Debug(string(out))
	}
	if err != nil {
		return fmt.Errorf("randomizer invocation: %w", err)
	}
	return nil
}

// collectOutput copies the tool's output next to the original ROM. The tool
// is free to pick its own output extension, so instead of trusting the
// requested path the scratch directory is scanned for exactly one file
// besides the copied source.
func (w *Worker) collectOutput(tempDir, srcName, outPath string) error {
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return fmt.Errorf("scanning output directory: %w", err)
	}

	var produced []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && entry.Name() != srcName {
			produced = append(produced, entry.Name())
		}
	}
	if len(produced) != 1 {
		return fmt.Errorf("expected one file in output directory, but found %d: %v",
			len(produced), produced)
	}

	if err := copyFile(filepath.Join(tempDir, produced[0]), outPath); err != nil {
		return fmt.Errorf("copying randomized ROM: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
