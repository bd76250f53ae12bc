package cli

import (
	"bytes"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/watch"
)

// resetFlags restores flag variables, which persist across Execute calls.
func resetFlags() {
	analyzeFormat, analyzeNow, analyzeDryRun = formatText, "", false
	reportFormat = formatText
	contactsStrength, contactsDormant, contactsCategory, contactsLimit, contactsFormat = "", false, "", 0, formatText
	summaryAnonymize, summaryJSON, summaryMax = false, false, 0
	watchDebounce, watchInterval, watchDryRun = watch.DefaultDebounce, watch.DefaultMinInterval, false
	verboseFlag, configDirFlag, dataDirFlag = false, "", ""
}

// executeCommand runs the root command with args and returns combined output.
func executeCommand(args ...string) (string, error) {
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
