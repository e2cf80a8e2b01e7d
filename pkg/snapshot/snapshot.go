package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem/internal/util"
)

var (
	funcCount   = make(map[string]int)
	funcCountMu sync.Mutex
)

// ValidateSnapshot compares obj, encoded as JSON, to testdata/<func>-<call>.json
// The file is written if it does not exist yet, or if UPDATE_SNAPSHOTS=1.
// depth is the number of helper frames between the test and this call.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := snapshotFilename(depth + 2)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv("UPDATE_SNAPSHOTS", "") == "1" {
		if err := write(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

// snapshotFilename names the file after the calling function and how many times it has been called
func snapshotFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	funcCountMu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	funcCountMu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(filename string, objJSON []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(objJSON, '\n'), 0644)
}
